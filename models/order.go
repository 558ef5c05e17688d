package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is created exactly once per successful checkout and never
// mutated afterwards.
type Order struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	OrderRef string `gorm:"uniqueIndex;not null" json:"order_ref"`

	FullName string `gorm:"not null" json:"full_name"`
	Email    string `gorm:"not null" json:"email"`
	Phone    string `gorm:"not null" json:"phone"`

	Country    string `gorm:"not null" json:"country"`
	Region     string `gorm:"not null" json:"region"`
	City       string `gorm:"not null" json:"city"`
	PostalCode string `gorm:"not null" json:"postal_code"`
	Address    string `gorm:"type:text;not null" json:"address"`

	Items     []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time   `json:"created_at"`
}

// OrderItem is created only as a side effect of checkout, copying the
// product reference and quantity of one cart line.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"index" json:"-"`
	ProductID uint    `gorm:"not null" json:"product_id"`
	Product   Product `gorm:"constraint:OnDelete:CASCADE" json:"product"`
	Quantity  int     `gorm:"not null;default:1" json:"quantity"`
}

// TotalPrice is quantity times the product price, in exact decimal.
// The product must be loaded.
func (oi *OrderItem) TotalPrice() decimal.Decimal {
	return oi.Product.Price.Mul(decimal.NewFromInt(int64(oi.Quantity)))
}

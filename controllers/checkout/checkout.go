package checkoutControllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	cartControllers "github.com/q3rmos/imperial-gems/controllers/cart"
	ordersControllers "github.com/q3rmos/imperial-gems/controllers/orders"
	"github.com/q3rmos/imperial-gems/forms"
	"github.com/q3rmos/imperial-gems/logging"
	"github.com/q3rmos/imperial-gems/middleware"
	"github.com/q3rmos/imperial-gems/models"
	"github.com/q3rmos/imperial-gems/validators"
)

var ErrEmptyCart = errors.New("cart is empty")

// Generate unique order reference, e.g. 20250908130500-<uuid4>
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// -------- Core Logic --------

// PlaceOrder converts the session's cart into a persisted order.
//
// An empty cart refuses the operation; a validation failure returns
// the per-field messages and touches nothing. Otherwise one Order row
// plus one OrderItem per cart line is created and the cart cleared,
// all inside one transaction. The cart lines are re-read and the
// delete count checked inside that transaction, so two racing
// checkouts of the same cart cannot both materialize its lines: the
// loser's delete hits zero rows and the whole transaction rolls back.
func PlaceOrder(db *gorm.DB, sessionID string, form forms.OrderForm) (*models.Order, validators.FieldErrors, error) {
	var cart models.Cart
	if err := db.Preload("Items").Where("session_id = ?", sessionID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrEmptyCart
		}
		return nil, nil, err
	}
	if len(cart.Items) == 0 {
		return nil, nil, ErrEmptyCart
	}

	if errs := form.Validate(); len(errs) > 0 {
		return nil, errs, nil
	}

	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var items []models.CartItem
		if err := tx.Where("cart_id = ?", cart.CartID).Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		orderItems := make([]models.OrderItem, 0, len(items))
		for _, item := range items {
			orderItems = append(orderItems, models.OrderItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
			})
		}

		order = models.Order{
			OrderRef:   generateOrderRef(),
			FullName:   strings.TrimSpace(form.FullName),
			Email:      strings.TrimSpace(form.Email),
			Phone:      strings.TrimSpace(form.Phone),
			Country:    strings.TrimSpace(form.Country),
			Region:     strings.TrimSpace(form.Region),
			City:       strings.TrimSpace(form.City),
			PostalCode: strings.TrimSpace(form.PostalCode),
			Address:    strings.TrimSpace(form.Address),
			Items:      orderItems,
			CreatedAt:  time.Now(),
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		result := tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			// Another checkout already consumed these lines.
			return ErrEmptyCart
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	ordersControllers.BroadcastNewOrder(order)
	return &order, nil, nil
}

// -------- Handlers --------

// GET /checkout
// ShowCheckout serves the declarative form configuration together
// with the cart the order would be built from.
func ShowCheckout(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, ok := middleware.SessionID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		items, total, err := cartControllers.Contents(db, sessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		if len(items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty", "redirect": "/cart/"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"fields":      forms.OrderFields,
			"items":       items,
			"total_price": total,
		})
	}
}

// POST /checkout
func Checkout(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, ok := middleware.SessionID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var form forms.OrderForm
		if err := c.ShouldBind(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order, fieldErrs, err := PlaceOrder(db, sessionID, form)
		if err != nil {
			if errors.Is(err, ErrEmptyCart) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty", "redirect": "/cart/"})
				return
			}
			logging.From(c).Error("checkout failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}
		if len(fieldErrs) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrs})
			return
		}

		logging.From(c).Info("order placed", "order_ref", order.OrderRef, "items", len(order.Items))
		c.JSON(http.StatusOK, gin.H{
			"message":   "Thank you for your order!",
			"order_id":  order.ID,
			"order_ref": order.OrderRef,
		})
	}
}

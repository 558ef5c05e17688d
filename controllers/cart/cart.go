package cartControllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/q3rmos/imperial-gems/middleware"
	"github.com/q3rmos/imperial-gems/models"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrItemNotFound    = errors.New("cart item not found")
)

// UpdateResult is what a quantity change reports back: the new line
// state plus the cart-wide total.
type UpdateResult struct {
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"total_price"`
	CartTotal decimal.Decimal `json:"cart_total"`
	Removed   bool            `json:"removed,omitempty"`
}

// -------- Core Logic --------

func getOrCreateCart(db *gorm.DB, sessionID string) (*models.Cart, error) {
	var cart models.Cart
	err := db.Where("session_id = ?", sessionID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.Cart{SessionID: sessionID}
		if err := db.Create(&cart).Error; err != nil {
			return nil, err
		}
		return &cart, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// AddItem looks up or creates the session's line for the product.
// A new line starts at quantity 1; an existing one is incremented.
func AddItem(db *gorm.DB, sessionID string, productID uint) (*models.CartItem, error) {
	var product models.Product
	if err := db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	cart, err := getOrCreateCart(db, sessionID)
	if err != nil {
		return nil, err
	}

	var item models.CartItem
	err = db.Where("cart_id = ? AND product_id = ?", cart.CartID, productID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		item = models.CartItem{
			CartID:    cart.CartID,
			ProductID: product.ID,
			Quantity:  1,
			AddedAt:   time.Now(),
		}
		if err := db.Create(&item).Error; err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	} else {
		item.Quantity++
		item.AddedAt = time.Now()
		if err := db.Save(&item).Error; err != nil {
			return nil, err
		}
	}

	item.Product = product
	return &item, nil
}

// UpdateItemQuantity sets the line to the given quantity, or deletes
// it when the quantity drops below 1.
func UpdateItemQuantity(db *gorm.DB, sessionID string, productID uint, quantity int) (*UpdateResult, error) {
	var cart models.Cart
	if err := db.Where("session_id = ?", sessionID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	var item models.CartItem
	err := db.Preload("Product").
		Where("cart_id = ? AND product_id = ?", cart.CartID, productID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	result := UpdateResult{}
	if quantity >= 1 {
		item.Quantity = quantity
		if err := db.Save(&item).Error; err != nil {
			return nil, err
		}
		result.Quantity = item.Quantity
		result.LineTotal = item.TotalPrice()
	} else {
		if err := db.Delete(&item).Error; err != nil {
			return nil, err
		}
		result.Removed = true
		result.LineTotal = decimal.Zero
	}

	_, total, err := Contents(db, sessionID)
	if err != nil {
		return nil, err
	}
	result.CartTotal = total
	return &result, nil
}

// RemoveItem deletes the session's line for the product.
func RemoveItem(db *gorm.DB, sessionID string, productID uint) error {
	var cart models.Cart
	if err := db.Where("session_id = ?", sessionID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrItemNotFound
		}
		return err
	}

	result := db.Where("cart_id = ? AND product_id = ?", cart.CartID, productID).Delete(&models.CartItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

// ClearCart deletes every line of the session's cart unconditionally.
func ClearCart(db *gorm.DB, sessionID string) error {
	var cart models.Cart
	if err := db.Where("session_id = ?", sessionID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil // nothing to clear
		}
		return err
	}
	return db.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error
}

// Contents returns the session's lines (products loaded) and the
// exact decimal sum over them.
func Contents(db *gorm.DB, sessionID string) ([]models.CartItem, decimal.Decimal, error) {
	var cart models.Cart
	if err := db.Where("session_id = ?", sessionID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, decimal.Zero, nil
		}
		return nil, decimal.Zero, err
	}

	var items []models.CartItem
	if err := db.Preload("Product").
		Where("cart_id = ?", cart.CartID).
		Order("added_at").
		Find(&items).Error; err != nil {
		return nil, decimal.Zero, err
	}
	return items, Total(items), nil
}

// Total sums quantity*price over the lines in exact decimal.
func Total(items []models.CartItem) decimal.Decimal {
	total := decimal.Zero
	for i := range items {
		total = total.Add(items[i].TotalPrice())
	}
	return total
}

// -------- Handlers --------

// GET /cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, ok := middleware.SessionID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		items, total, err := Contents(db, sessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items, "total_price": total})
	}
}

// POST /cart/add/:product_id
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, ok := middleware.SessionID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		productID, ok := parseProductID(c)
		if !ok {
			return
		}

		item, err := AddItem(db, sessionID, productID)
		if err != nil {
			if errors.Is(err, ErrProductNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// POST /cart/update/:product_id (form field: quantity)
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, ok := middleware.SessionID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
			return
		}
		productID, ok := parseProductID(c)
		if !ok {
			return
		}

		quantity, err := strconv.Atoi(c.DefaultPostForm("quantity", "1"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid quantity"})
			return
		}

		result, err := UpdateItemQuantity(db, sessionID, productID, quantity)
		if err != nil {
			if errors.Is(err, ErrItemNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Cart item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update cart item"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":     true,
			"quantity":    result.Quantity,
			"total_price": result.LineTotal,
			"cart_total":  result.CartTotal,
		})
	}
}

// Any non-POST hit on /cart/update/:product_id.
func UpdateCartItemInvalidMethod() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"success": false, "error": "Invalid request"})
	}
}

// POST /cart/remove/:product_id
func RemoveFromCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, ok := middleware.SessionID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		productID, ok := parseProductID(c)
		if !ok {
			return
		}

		if err := RemoveItem(db, sessionID, productID); err != nil {
			if errors.Is(err, ErrItemNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// POST /cart/clear
func ClearCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, ok := middleware.SessionID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if err := ClearCart(db, sessionID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart successfully emptied!"})
	}
}

func parseProductID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("product_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return 0, false
	}
	return uint(id), true
}

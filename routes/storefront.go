package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/q3rmos/imperial-gems/controllers/cart"
	catalogControllers "github.com/q3rmos/imperial-gems/controllers/catalog"
	checkoutControllers "github.com/q3rmos/imperial-gems/controllers/checkout"
	contactControllers "github.com/q3rmos/imperial-gems/controllers/contact"
	"github.com/q3rmos/imperial-gems/middleware"
)

// SetupStorefrontRoutes registers the public catalog endpoints and the
// session-scoped cart and checkout endpoints.
func SetupStorefrontRoutes(r *gin.Engine, db *gorm.DB) {
	// ──────────────── Browse Catalog ────────────────
	r.GET("/categories", catalogControllers.GetAllCategories(db))
	r.GET("/categories/:slug", catalogControllers.GetCategoryBySlug(db))
	r.GET("/products", catalogControllers.GetProducts(db))
	r.GET("/products/:slug", catalogControllers.GetProductBySlug(db))

	// ──────────────── Contact ────────────────
	r.GET("/contact", contactControllers.ShowContactForm())
	r.POST("/contact", contactControllers.SubmitContactForm())

	// ──────────────── Shopping Cart ────────────────
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.ValidateSession)
	{
		cartGroup.GET("", cartControllers.GetCart(db))
		cartGroup.POST("/add/:product_id", cartControllers.AddToCart(db))
		cartGroup.POST("/update/:product_id", cartControllers.UpdateCartItem(db))
		// Any other verb gets the fixed invalid-request body, not a 404.
		cartGroup.Match(
			[]string{http.MethodGet, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodHead},
			"/update/:product_id", cartControllers.UpdateCartItemInvalidMethod(),
		)
		cartGroup.POST("/remove/:product_id", cartControllers.RemoveFromCart(db))
		cartGroup.POST("/clear", cartControllers.ClearCartHandler(db))
	}

	// ──────────────── Checkout ────────────────
	checkoutGroup := r.Group("/checkout")
	checkoutGroup.Use(middleware.ValidateSession)
	{
		checkoutGroup.GET("", checkoutControllers.ShowCheckout(db))
		checkoutGroup.POST("", checkoutControllers.Checkout(db))
	}
}

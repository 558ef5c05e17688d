package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	catalogControllers "github.com/q3rmos/imperial-gems/controllers/catalog"
	ordersControllers "github.com/q3rmos/imperial-gems/controllers/orders"
	"github.com/q3rmos/imperial-gems/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-Key middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", catalogControllers.CreateProduct(db))
			productAdmin.PUT("/:id", catalogControllers.UpdateProduct(db))
			productAdmin.DELETE("/:id", catalogControllers.DeleteProduct(db))
		}

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", catalogControllers.CreateCategory(db))
			categoryAdmin.PUT("/:id", catalogControllers.UpdateCategory(db))
			categoryAdmin.DELETE("/:id", catalogControllers.DeleteCategory(db))
		}

		// ─────────── Orders ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", ordersControllers.GetAllOrdersHandler(db))
			orderAdmin.GET("/export-excel", ordersControllers.ExportOrdersToExcel(db))
			orderAdmin.GET("/ws", ordersControllers.OrderFeedHandler)
			orderAdmin.GET("/:orderID", ordersControllers.GetOrderByIDHandler(db))
			orderAdmin.DELETE("/:orderID", ordersControllers.DeleteOrderHandler(db))
		}
	}
}

package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/q3rmos/imperial-gems/auth"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/session", auth.CreateSession(db))
	}
}

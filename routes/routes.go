package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// Catalog (public reads, admin writes)
	SetupProductRoutes(r, db)

	// JWT-protected user surface
	SetupUserRoutes(r, db)
	SetupCartRoutes(r, db)
	SetupAddressRoutes(r, db)
	SetupOrderRoutes(r, db)
}

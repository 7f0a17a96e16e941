package routes

import (
	"github.com/gin-gonic/gin"
	addressControllers "github.com/harperco/storefront-api/controllers/address"
	"github.com/harperco/storefront-api/middleware"
	"gorm.io/gorm"
)

// SetupAddressRoutes registers all "/addresses/*" endpoints, scoped to the
// authenticated owner.
func SetupAddressRoutes(r *gin.Engine, db *gorm.DB) {
	addresses := r.Group("/addresses")
	addresses.Use(middleware.ValidateToken)
	{
		addresses.GET("/", addressControllers.ListAddresses(db))               // GET /addresses
		addresses.GET("/:addressID", addressControllers.GetAddressByID(db))    // GET /addresses/:addressID
		addresses.POST("/", addressControllers.CreateAddress(db))              // POST /addresses
		addresses.PUT("/:addressID", addressControllers.UpdateAddress(db))     // PUT /addresses/:addressID
		addresses.DELETE("/:addressID", addressControllers.DeleteAddress(db))  // DELETE /addresses/:addressID
	}
}

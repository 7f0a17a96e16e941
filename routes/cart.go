package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/harperco/storefront-api/controllers/cart"
	"github.com/harperco/storefront-api/middleware"
	"gorm.io/gorm"
)

// SetupCartRoutes registers all "/cart/*" endpoints. Requires JWT middleware.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	cart := r.Group("/cart")
	cart.Use(middleware.ValidateToken)
	{
		cart.GET("/", cartControllers.GetUserCart(db))                      // GET /cart
		cart.POST("/add", cartControllers.AddToCart(db))                    // POST /cart/add
		cart.DELETE("/remove/:productID", cartControllers.RemoveFromCart(db)) // DELETE /cart/remove/:productID
		cart.DELETE("/", cartControllers.ClearUserCart(db))                 // DELETE /cart
	}
}

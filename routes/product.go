package routes

import (
	"github.com/gin-gonic/gin"
	productcontroller "github.com/harperco/storefront-api/controllers/product"
	"github.com/harperco/storefront-api/middleware"
	"gorm.io/gorm"
)

// SetupProductRoutes registers all "/products/*" endpoints. Reads are
// public; writes and the catalog export require an admin token.
func SetupProductRoutes(r *gin.Engine, db *gorm.DB) {
	products := r.Group("/products")
	{
		products.GET("/", productcontroller.GetProducts(db))      // GET /products
		products.GET("/:id", productcontroller.GetProductByID(db)) // GET /products/:id
	}

	adminProducts := r.Group("/products")
	adminProducts.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		adminProducts.POST("/", productcontroller.CreateProduct(db))          // POST /products
		adminProducts.PUT("/:id", productcontroller.UpdateProduct(db))        // PUT /products/:id
		adminProducts.DELETE("/:id", productcontroller.DeleteProduct(db))     // DELETE /products/:id
		adminProducts.GET("/export", productcontroller.ExportProductsToExcel(db)) // GET /products/export
	}
}

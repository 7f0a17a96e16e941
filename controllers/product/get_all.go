package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harperco/storefront-api/models"
	"gorm.io/gorm"
)

// GetProducts lists the catalog, optionally filtered by category.
// Query param: /products?category=...
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Order("created_at DESC")
		if category := c.Query("category"); category != "" {
			query = query.Where("category = ?", category)
		}

		var products []models.Product
		if err := query.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harperco/storefront-api/models"
	"gorm.io/gorm"
)

// DeleteProduct removes a product from the catalog (admin only). Past
// orders keep their own snapshot of product fields and are unaffected.
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.Product{}, "id = ?", c.Param("id"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}

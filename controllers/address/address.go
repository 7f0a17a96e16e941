package addressControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harperco/storefront-api/models"
	"gorm.io/gorm"
)

type CreateAddressInput struct {
	FullName     string `json:"full_name" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	AddressLine1 string `json:"address_line1" binding:"required"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city" binding:"required"`
	State        string `json:"state" binding:"required"`
	ZipCode      string `json:"zip_code" binding:"required"`
	Country      string `json:"country"`
	IsDefault    bool   `json:"is_default"`
}

type UpdateAddressInput struct {
	FullName     *string `json:"full_name"`
	Phone        *string `json:"phone"`
	AddressLine1 *string `json:"address_line1"`
	AddressLine2 *string `json:"address_line2"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	ZipCode      *string `json:"zip_code"`
	Country      *string `json:"country"`
	IsDefault    *bool   `json:"is_default"`
}

// clearDefault unsets the default flag on every address the user owns except
// keepID. Running it inside the mutating transaction keeps "at most one
// default per user" a single atomic operation.
func clearDefault(tx *gorm.DB, userID string, keepID uint) error {
	return tx.Model(&models.Address{}).
		Where("user_id = ? AND id <> ?", userID, keepID).
		Update("is_default", false).Error
}

// GET /addresses
func ListAddresses(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var addresses []models.Address
		if err := db.Where("user_id = ?", userIDVal.(string)).
			Order("created_at ASC").
			Find(&addresses).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch addresses"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"addresses": addresses})
	}
}

// GET /addresses/:addressID
func GetAddressByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var address models.Address
		if err := db.Where("id = ? AND user_id = ?", c.Param("addressID"), userIDVal.(string)).
			First(&address).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Address not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch address"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"address": address})
	}
}

// POST /addresses
func CreateAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var input CreateAddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Country == "" {
			input.Country = "USA"
		}

		address := models.Address{
			UserID:       userID,
			FullName:     input.FullName,
			Phone:        input.Phone,
			AddressLine1: input.AddressLine1,
			AddressLine2: input.AddressLine2,
			City:         input.City,
			State:        input.State,
			ZipCode:      input.ZipCode,
			Country:      input.Country,
			IsDefault:    input.IsDefault,
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&address).Error; err != nil {
				return err
			}
			if address.IsDefault {
				return clearDefault(tx, userID, address.ID)
			}
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create address"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Address created successfully", "address": address})
	}
}

// PUT /addresses/:addressID
func UpdateAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var address models.Address
		if err := db.Where("id = ? AND user_id = ?", c.Param("addressID"), userID).
			First(&address).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Address not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch address"})
			return
		}

		var input UpdateAddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if input.FullName != nil {
			updates["full_name"] = *input.FullName
		}
		if input.Phone != nil {
			updates["phone"] = *input.Phone
		}
		if input.AddressLine1 != nil {
			updates["address_line1"] = *input.AddressLine1
		}
		if input.AddressLine2 != nil {
			updates["address_line2"] = *input.AddressLine2
		}
		if input.City != nil {
			updates["city"] = *input.City
		}
		if input.State != nil {
			updates["state"] = *input.State
		}
		if input.ZipCode != nil {
			updates["zip_code"] = *input.ZipCode
		}
		if input.Country != nil {
			updates["country"] = *input.Country
		}
		if input.IsDefault != nil {
			updates["is_default"] = *input.IsDefault
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if len(updates) > 0 {
				if err := tx.Model(&address).Updates(updates).Error; err != nil {
					return err
				}
			}
			if input.IsDefault != nil && *input.IsDefault {
				return clearDefault(tx, userID, address.ID)
			}
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update address"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Address updated successfully", "address": address})
	}
}

// DELETE /addresses/:addressID
//
// Orders keep their own snapshot of the shipping address, so deleting an
// address referenced by past orders is allowed and leaves them untouched.
func DeleteAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		result := db.Where("id = ? AND user_id = ?", c.Param("addressID"), userIDVal.(string)).
			Delete(&models.Address{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete address"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Address not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Address deleted successfully"})
	}
}

package routes

import (
	"github.com/gin-gonic/gin"
	userControllers "github.com/harperco/storefront-api/controllers/user"
	"github.com/harperco/storefront-api/middleware"
	"gorm.io/gorm"
)

// SetupUserRoutes registers the profile endpoints plus the admin user list.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	users := r.Group("/users")
	users.Use(middleware.ValidateToken)
	{
		users.GET("/me", userControllers.GetUser(db))    // GET /users/me
		users.PUT("/me", userControllers.UpdateUser(db)) // PUT /users/me
	}

	adminUsers := r.Group("/admin/users")
	adminUsers.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		adminUsers.GET("/", userControllers.GetAllUsers(db)) // GET /admin/users
	}
}

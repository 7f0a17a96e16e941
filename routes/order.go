package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/harperco/storefront-api/controllers/order"
	"github.com/harperco/storefront-api/middleware"
	"gorm.io/gorm"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders")
	orders.Use(middleware.ValidateToken)
	{
		// Create a new order
		orders.POST("/", orderControllers.PlaceOrderHandler(db))

		// Fetch the caller's orders
		orders.GET("/", orderControllers.GetUserOrdersHandler(db))

		// Fetch a single order by id or order_ref
		orders.GET("/:orderID", orderControllers.GetOrderByIDHandler(db))
	}

	adminOrders := r.Group("/admin/orders")
	adminOrders.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		// Fetch all orders
		adminOrders.GET("/", orderControllers.GetAllOrdersHandler(db))

		// Update order status (e.g. shipped, cancelled)
		adminOrders.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))
	}

	// websocket endpoint for real-time order updates
	r.GET("/orders/ws", orderControllers.OrderWebSocketHandler)
}

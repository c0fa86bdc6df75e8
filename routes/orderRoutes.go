package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/velmart/velmart-api/controllers"
	"github.com/velmart/velmart-api/middlewares"
)

func OrderRoutes(server *gin.Engine, ctrl *controllers.OrderController, jwtSecret string) {
	server.POST("/api/checkout", middlewares.RequireAuth(jwtSecret), ctrl.Checkout)

	orders := server.Group("/api/orders")
	orders.Use(middlewares.RequireAuth(jwtSecret))
	{
		orders.GET("", ctrl.GetOrders)
		orders.GET("/:orderId", ctrl.GetOrder)
	}
}

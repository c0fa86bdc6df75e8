package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/velmart/velmart-api/controllers"
	"github.com/velmart/velmart-api/middlewares"
)

func CartRoutes(server *gin.Engine, ctrl *controllers.CartController, jwtSecret string) {
	cart := server.Group("/api/cart")
	cart.Use(middlewares.RequireAuth(jwtSecret))
	{
		cart.GET("", ctrl.GetCart)
		cart.POST("", ctrl.AddToCart)
		cart.PUT("/:itemId", ctrl.UpdateCartItem)
		cart.DELETE("/:itemId", ctrl.RemoveCartItem)
	}
}

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/velmart/velmart-api/controllers"
	"github.com/velmart/velmart-api/middlewares"
)

func ProductRoutes(server *gin.Engine, ctrl *controllers.ProductController, jwtSecret string) {
	server.GET("/api/products", ctrl.GetProducts)
	server.GET("/api/products/:id", ctrl.GetProduct)

	admin := server.Group("/api/products")
	admin.Use(middlewares.RequireAuth(jwtSecret), middlewares.RequireAdmin())
	{
		admin.POST("", ctrl.CreateProduct)
		admin.DELETE("/:id", ctrl.DeleteProduct)
		admin.POST("/:id/images", ctrl.UploadProductImages)
	}
}

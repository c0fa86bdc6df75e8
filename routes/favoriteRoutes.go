package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/velmart/velmart-api/controllers"
	"github.com/velmart/velmart-api/middlewares"
)

func FavoriteRoutes(server *gin.Engine, ctrl *controllers.FavoriteController, jwtSecret string) {
	favorites := server.Group("/api/favorites")
	favorites.Use(middlewares.RequireAuth(jwtSecret))
	{
		favorites.GET("", ctrl.GetFavorites)
		favorites.POST("/:productId", ctrl.AddFavorite)
		favorites.DELETE("/:productId", ctrl.RemoveFavorite)
	}
}

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/velmart/velmart-api/controllers"
	"github.com/velmart/velmart-api/middlewares"
)

func ProfileRoutes(server *gin.Engine, ctrl *controllers.ProfileController, jwtSecret string) {
	profile := server.Group("/api/profile")
	profile.Use(middlewares.RequireAuth(jwtSecret))
	{
		profile.GET("", ctrl.GetProfile)
		profile.PUT("", ctrl.UpdateProfile)
	}
}

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/velmart/velmart-api/controllers"
)

func DefaultRoutes(server *gin.Engine, ctrl *controllers.DefaultController) {
	server.GET("/", ctrl.GetHome)
	server.GET("/api/config", ctrl.GetConfig)
}

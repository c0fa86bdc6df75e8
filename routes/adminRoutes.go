package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/velmart/velmart-api/controllers"
	"github.com/velmart/velmart-api/middlewares"
)

func AdminRoutes(server *gin.Engine, ctrl *controllers.AdminController, jwtSecret string) {
	admin := server.Group("/api/admin")
	admin.Use(middlewares.RequireAuth(jwtSecret), middlewares.RequireAdmin())
	{
		admin.GET("/admins", ctrl.ListAdmins)
		admin.POST("/admins", ctrl.PromoteAdmin)
		admin.DELETE("/admins/:userId", ctrl.RevokeAdmin)
	}
}

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/velmart/velmart-api/controllers"
)

func AuthRoutes(server *gin.Engine, ctrl *controllers.AuthController) {
	auth := server.Group("/api/auth")
	{
		auth.POST("/register", ctrl.Signup)
		auth.POST("/login", ctrl.Login)
		auth.POST("/google", ctrl.GoogleLogin)
		auth.POST("/forgot-password", ctrl.SendPasswordResetLink)
		auth.POST("/reset-password/:resetToken", ctrl.ResetPassword)
	}
}

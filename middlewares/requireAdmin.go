package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/velmart/velmart-api/models"
)

func RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		principal, ok := GetPrincipal(ctx)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "User not found in context"})
			return
		}

		if !principal.Role.Satisfies(models.RoleAdmin) {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Admin access required"})
			return
		}

		ctx.Next()
	}
}

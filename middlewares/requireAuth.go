package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/velmart/velmart-api/auth"
)

const principalKey = "principal"

func RequireAuth(jwtSecret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Access denied. Token missing."})
			return
		}

		principal, err := auth.ParseToken(strings.TrimPrefix(header, "Bearer "), jwtSecret)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token."})
			return
		}

		ctx.Set(principalKey, principal)
		ctx.Next()
	}
}

// GetPrincipal returns the authenticated principal set by RequireAuth.
func GetPrincipal(ctx *gin.Context) (auth.Principal, bool) {
	value, exists := ctx.Get(principalKey)
	if !exists {
		return auth.Principal{}, false
	}
	principal, ok := value.(auth.Principal)
	return principal, ok
}

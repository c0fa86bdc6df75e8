package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/velmart/velmart-api/auth"
	"github.com/velmart/velmart-api/models"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

func newTestRouter(extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handlers := append([]gin.HandlerFunc{RequireAuth(testSecret)}, extra...)
	handlers = append(handlers, func(ctx *gin.Context) {
		principal, _ := GetPrincipal(ctx)
		ctx.JSON(http.StatusOK, gin.H{"username": principal.Username})
	})
	router.GET("/protected", handlers...)
	return router
}

func tokenFor(t *testing.T, role models.Role) string {
	t.Helper()
	user := models.User{Model: gorm.Model{ID: 7}, Username: "alice", Role: role}
	token, err := auth.GenerateToken(user, testSecret, time.Hour)
	require.NoError(t, err)
	return token
}

func TestRequireAuthMissingToken(t *testing.T) {
	router := newTestRouter()

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRequireAuthInvalidToken(t *testing.T) {
	router := newTestRouter()

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/protected", nil)
	request.Header.Set("Authorization", "Bearer garbage")
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRequireAuthValidToken(t *testing.T) {
	router := newTestRouter()

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/protected", nil)
	request.Header.Set("Authorization", "Bearer "+tokenFor(t, models.RoleClient))
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "alice")
}

func TestRequireAdminForbidsClients(t *testing.T) {
	router := newTestRouter(RequireAdmin())

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/protected", nil)
	request.Header.Set("Authorization", "Bearer "+tokenFor(t, models.RoleClient))
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestRequireAdminAllowsAdmins(t *testing.T) {
	router := newTestRouter(RequireAdmin())

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/protected", nil)
	request.Header.Set("Authorization", "Bearer "+tokenFor(t, models.RoleAdmin))
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

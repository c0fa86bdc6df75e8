package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/velmart/velmart-api/config"
)

type DefaultController struct {
	Cfg *config.Config
}

func NewDefaultController(cfg *config.Config) *DefaultController {
	return &DefaultController{Cfg: cfg}
}

func (c *DefaultController) GetHome(ctx *gin.Context) {
	message := `Welcome to the Velmart API.

The following are the endpoints for this API:

AUTH
- POST "/api/auth/register" - Create user account
- POST "/api/auth/login" - Access user account
- POST "/api/auth/google" - Sign in with a Google ID token
- POST "/api/auth/forgot-password" - Request password reset
- POST "/api/auth/reset-password/:resetToken" - Reset user password

PRODUCT
- GET "/api/products" - Get all products
- GET "/api/products/:id" - Get product by ID
- POST "/api/products" - Create new product (admin)
- DELETE "/api/products/:id" - Delete product (admin)
- POST "/api/products/:id/images" - Upload product images (admin)

CART
- GET "/api/cart" - Get your cart
- POST "/api/cart" - Add a product to your cart
- PUT "/api/cart/:itemId" - Update a cart entry quantity
- DELETE "/api/cart/:itemId" - Remove a cart entry

ORDERS
- POST "/api/checkout" - Turn your cart into an order
- GET "/api/orders" - Get your past orders
- GET "/api/orders/:orderId" - Get one of your orders

FAVORITES
- GET "/api/favorites" - Get your favorite products
- POST "/api/favorites/:productId" - Add a favorite
- DELETE "/api/favorites/:productId" - Remove a favorite

PROFILE
- GET "/api/profile" - Get your account details
- PUT "/api/profile" - Update your account

ADMIN
- GET "/api/admin/admins" - List administrators
- POST "/api/admin/admins" - Promote a user by email
- DELETE "/api/admin/admins/:userId" - Revoke an administrator`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}

// GetConfig exposes the public configuration the frontend needs.
func (c *DefaultController) GetConfig(ctx *gin.Context) {
	var clientID any
	if c.Cfg.GoogleAuthEnabled() {
		clientID = c.Cfg.GoogleClientID
	}
	ctx.JSON(http.StatusOK, gin.H{
		"googleClientId":    clientID,
		"googleAuthEnabled": c.Cfg.GoogleAuthEnabled(),
	})
}

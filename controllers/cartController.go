package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/velmart/velmart-api/middlewares"
	"github.com/velmart/velmart-api/services"
)

type CartController struct {
	Carts *services.CartService
}

func NewCartController(carts *services.CartService) *CartController {
	return &CartController{Carts: carts}
}

// GetCart returns the principal's cart joined with current product data.
func (c *CartController) GetCart(ctx *gin.Context) {
	principal, _ := middlewares.GetPrincipal(ctx)

	lines, err := c.Carts.List(principal.UserID)
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"items": lines})
}

// AddToCart inserts a cart entry or increments an existing one.
func (c *CartController) AddToCart(ctx *gin.Context) {
	principal, _ := middlewares.GetPrincipal(ctx)

	var body struct {
		ProductID uint `json:"product_id" binding:"required"`
		Quantity  int  `json:"quantity"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	if body.Quantity == 0 {
		body.Quantity = 1
	}

	item, err := c.Carts.Upsert(principal.UserID, body.ProductID, body.Quantity)
	if err != nil {
		sendErrorResponse(ctx, statusForError(err), "Unable to add product to cart: "+err.Error())
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Added to cart",
		"id":      item.ID,
	})
}

// UpdateCartItem replaces the quantity of one cart entry.
func (c *CartController) UpdateCartItem(ctx *gin.Context) {
	principal, _ := middlewares.GetPrincipal(ctx)

	itemID, err := strconv.Atoi(ctx.Param("itemId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid cart item id")
		return
	}

	var body struct {
		Quantity int `json:"quantity" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if err := c.Carts.SetQuantity(principal.UserID, uint(itemID), body.Quantity); err != nil {
		sendErrorResponse(ctx, statusForError(err), "Unable to update quantity: "+err.Error())
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Quantity updated"})
}

// RemoveCartItem deletes one cart entry. Removing an absent entry succeeds.
func (c *CartController) RemoveCartItem(ctx *gin.Context) {
	principal, _ := middlewares.GetPrincipal(ctx)

	itemID, err := strconv.Atoi(ctx.Param("itemId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid cart item id")
		return
	}

	if err := c.Carts.Remove(principal.UserID, uint(itemID)); err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to remove cart item")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Removed from cart"})
}

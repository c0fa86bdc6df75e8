package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/velmart/velmart-api/middlewares"
	"github.com/velmart/velmart-api/services"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

// Checkout turns the principal's cart into an order.
func (c *OrderController) Checkout(ctx *gin.Context) {
	principal, _ := middlewares.GetPrincipal(ctx)

	order, err := c.Orders.Checkout(principal.UserID)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			sendErrorResponse(ctx, http.StatusBadRequest, "Cart is empty")
			return
		}
		if errors.Is(err, services.ErrNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "A product in your cart is no longer available")
			return
		}
		log.Println("Checkout error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create order")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message":  "Order created",
		"order_id": order.ID,
		"total":    order.Total,
	})
}

// GetOrders returns the principal's past orders, newest first, with their
// line items embedded.
func (c *OrderController) GetOrders(ctx *gin.Context) {
	principal, _ := middlewares.GetPrincipal(ctx)

	orders, err := c.Orders.ListByUser(principal.UserID)
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"orders": orders})
}

// GetOrder returns one of the principal's orders by id.
func (c *OrderController) GetOrder(ctx *gin.Context) {
	principal, _ := middlewares.GetPrincipal(ctx)

	orderID, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	order, err := c.Orders.GetByID(principal.UserID, uint(orderID))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
			return
		}
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch order")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"order": order})
}

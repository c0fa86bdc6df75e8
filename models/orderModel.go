package models

import "gorm.io/gorm"

const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
)

type Order struct {
	gorm.Model
	UserID     uint        `json:"userId"`
	Total      float64     `json:"total"`
	Status     string      `json:"status"`
	OrderItems []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderItem copies name and price from the catalog at checkout time. The
// copies keep order history stable when products are repriced or deleted.
type OrderItem struct {
	gorm.Model
	OrderID   uint    `json:"orderId"`
	ProductID uint    `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

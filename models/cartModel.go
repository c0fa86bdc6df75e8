package models

import "time"

// CartItem rows are transient pre-purchase state and are deleted outright,
// so no soft-delete column. The composite unique index makes repeat adds for
// the same product hit the increment path instead of a second row.
type CartItem struct {
	ID        uint `json:"id" gorm:"primarykey"`
	UserID    uint `json:"userId" gorm:"uniqueIndex:idx_cart_user_product"`
	ProductID uint `json:"productId" gorm:"uniqueIndex:idx_cart_user_product"`
	Quantity  int  `json:"quantity"`
	UpdatedAt time.Time
}

// CartLine is a cart row joined with live catalog data. Price here is the
// current catalog price, not a snapshot.
type CartLine struct {
	ID        uint    `json:"cart_id"`
	Quantity  int     `json:"quantity"`
	ProductID uint    `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Thumbnail string  `json:"thumbnail"`
}

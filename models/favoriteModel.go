package models

import "time"

type Favorite struct {
	ID        uint `json:"id" gorm:"primarykey"`
	UserID    uint `json:"userId" gorm:"uniqueIndex:idx_favorite_user_product"`
	ProductID uint `json:"productId" gorm:"uniqueIndex:idx_favorite_user_product"`
	CreatedAt time.Time
}

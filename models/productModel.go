package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProductImage struct {
	gorm.Model
	Url       string `json:"url" binding:"required"`
	ProductID uint   `json:"productId"`
}

type Product struct {
	gorm.Model
	Name            string         `json:"name" binding:"required"`
	Slug            string         `json:"slug"`
	Category        string         `json:"category" binding:"required"`
	CategoryLabel   string         `json:"categoryLabel"`
	Price           float64        `json:"price" binding:"gte=0"`
	Badge           string         `json:"badge"`
	Description     string         `json:"description"`
	Characteristics datatypes.JSON `json:"characteristics"`
	Thumbnail       string         `json:"thumbnail"`
	Images          []ProductImage `json:"images" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

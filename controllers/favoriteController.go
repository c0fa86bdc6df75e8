package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/velmart/velmart-api/middlewares"
	"github.com/velmart/velmart-api/models"
	"gorm.io/gorm"
)

type FavoriteController struct {
	DB *gorm.DB
}

func NewFavoriteController(db *gorm.DB) *FavoriteController {
	return &FavoriteController{DB: db}
}

// GetFavorites returns the principal's favorite products.
func (c *FavoriteController) GetFavorites(ctx *gin.Context) {
	principal, _ := middlewares.GetPrincipal(ctx)

	products := []models.Product{}
	err := c.DB.Preload("Images").
		Joins("INNER JOIN favorites ON favorites.product_id = products.id").
		Where("favorites.user_id = ?", principal.UserID).
		Find(&products).Error
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch favorites")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"favorites": products})
}

// AddFavorite marks a product as a favorite. Adding it twice is a conflict.
func (c *FavoriteController) AddFavorite(ctx *gin.Context) {
	principal, _ := middlewares.GetPrincipal(ctx)

	productID, err := strconv.Atoi(ctx.Param("productId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var product models.Product
	if err := c.DB.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Product not found")
			return
		}
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to validate product")
		return
	}

	var existing models.Favorite
	err = c.DB.Where("user_id = ? AND product_id = ?", principal.UserID, productID).
		First(&existing).Error
	if err == nil {
		sendErrorResponse(ctx, http.StatusConflict, "Already in favorites")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch favorites")
		return
	}

	favorite := models.Favorite{UserID: principal.UserID, ProductID: uint(productID)}
	if err := c.DB.Create(&favorite).Error; err != nil {
		log.Println("Create error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to add favorite")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"message": "Added to favorites"})
}

// RemoveFavorite unmarks a product. Removing an absent favorite succeeds.
func (c *FavoriteController) RemoveFavorite(ctx *gin.Context) {
	principal, _ := middlewares.GetPrincipal(ctx)

	productID, err := strconv.Atoi(ctx.Param("productId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid product ID")
		return
	}

	err = c.DB.Where("user_id = ? AND product_id = ?", principal.UserID, productID).
		Delete(&models.Favorite{}).Error
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to remove favorite")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Removed from favorites"})
}

package services

import (
	"errors"

	"github.com/velmart/velmart-api/models"
	"gorm.io/gorm"
)

type CartService struct {
	DB *gorm.DB
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{DB: db}
}

// Upsert adds qty of a product to the user's cart. If the product is already
// in the cart the existing quantity is incremented.
func (s *CartService) Upsert(userID, productID uint, qty int) (models.CartItem, error) {
	var item models.CartItem
	if qty < 1 {
		return item, ErrInvalidQuantity
	}

	var product models.Product
	if err := s.DB.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return item, ErrNotFound
		}
		return item, err
	}

	err := s.DB.Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error
	if err == nil {
		item.Quantity += qty
		return item, s.DB.Save(&item).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return item, err
	}

	item = models.CartItem{UserID: userID, ProductID: productID, Quantity: qty}
	return item, s.DB.Create(&item).Error
}

// SetQuantity replaces the quantity of one cart entry. Removing an entry is a
// separate operation; qty below 1 is rejected rather than treated as removal.
func (s *CartService) SetQuantity(userID, itemID uint, qty int) error {
	if qty < 1 {
		return ErrInvalidQuantity
	}

	result := s.DB.Model(&models.CartItem{}).
		Where("id = ? AND user_id = ?", itemID, userID).
		Update("quantity", qty)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Remove deletes one cart entry. Removing an entry that does not exist is a
// successful no-op.
func (s *CartService) Remove(userID, itemID uint) error {
	return s.DB.Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&models.CartItem{}).Error
}

// List returns the user's cart entries joined with current product data.
func (s *CartService) List(userID uint) ([]models.CartLine, error) {
	lines := []models.CartLine{}
	err := s.DB.Table("cart_items").
		Select("cart_items.id AS id, cart_items.quantity, products.id AS product_id, products.name, products.price, products.thumbnail").
		Joins("INNER JOIN products ON products.id = cart_items.product_id AND products.deleted_at IS NULL").
		Where("cart_items.user_id = ?", userID).
		Scan(&lines).Error
	return lines, err
}

// Clear deletes every cart entry for the user. Checkout is the only caller.
func (s *CartService) Clear(userID uint) error {
	return s.DB.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}

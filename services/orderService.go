package services

import (
	"errors"
	"fmt"

	"github.com/velmart/velmart-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderService struct {
	DB *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{DB: db}
}

// Checkout materializes the user's cart into an order. The whole sequence --
// read cart, snapshot prices, create order and items, clear cart -- runs in
// one transaction and rolls back entirely on any failure. The cart rows are
// read under a row lock so two concurrent checkouts for the same user cannot
// both turn the same cart into an order; the loser observes an empty cart.
//
// A product deleted between cart-add and checkout blocks the whole checkout
// with ErrNotFound instead of being silently dropped from the order.
func (s *OrderService) Checkout(userID uint) (*models.Order, error) {
	var order models.Order

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		cartQuery := tx.Where("user_id = ?", userID)
		if tx.Dialector.Name() == "mysql" {
			// sqlite (tests) has no SELECT ... FOR UPDATE
			cartQuery = cartQuery.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var items []models.CartItem
		if err := cartQuery.Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		var total float64
		orderItems := make([]models.OrderItem, 0, len(items))
		for _, item := range items {
			var product models.Product
			if err := tx.First(&product, item.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("product %d: %w", item.ProductID, ErrNotFound)
				}
				return err
			}

			total += product.Price * float64(item.Quantity)
			orderItems = append(orderItems, models.OrderItem{
				ProductID: product.ID,
				Name:      product.Name,
				Price:     product.Price,
				Quantity:  item.Quantity,
			})
		}

		order = models.Order{UserID: userID, Total: total, Status: models.OrderStatusPending}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for i := range orderItems {
			orderItems[i].OrderID = order.ID
			if err := tx.Create(&orderItems[i]).Error; err != nil {
				return err
			}
		}
		order.OrderItems = orderItems

		return tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ListByUser returns the user's orders with their line items, newest first.
func (s *OrderService) ListByUser(userID uint) ([]models.Order, error) {
	orders := []models.Order{}
	err := s.DB.Preload("OrderItems").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&orders).Error
	return orders, err
}

// GetByID returns one of the user's orders with its line items.
func (s *OrderService) GetByID(userID, orderID uint) (*models.Order, error) {
	var order models.Order
	err := s.DB.Preload("OrderItems").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

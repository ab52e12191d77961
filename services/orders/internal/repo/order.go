package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/Skotchmaster/vinyl_shop/services/orders/internal/models"
)

type GormRepo struct {
	DB *gorm.DB
}

// CreateOrder persists the order together with its items in one
// transaction.
func (r *GormRepo) CreateOrder(ctx context.Context, order *models.Order) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
}

func (r *GormRepo) GetOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC, id DESC").
		Find(&orders).Error
	return orders, err
}

func (r *GormRepo) GetOrdersByEmail(ctx context.Context, email string) ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.WithContext(ctx).
		Preload("Items").
		Where("user_email = ?", email).
		Order("created_at DESC, id DESC").
		Find(&orders).Error
	return orders, err
}

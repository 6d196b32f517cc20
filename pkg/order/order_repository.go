package order

import (
	"GreenBite-Backend/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	OrderRepository interface {
		CreateOrder(ctx context.Context, order *entities.Order, addOnIDs []string) error
		GetOrderByID(ctx context.Context, id string, userID string) (*entities.Order, error)
		GetOrdersByUser(ctx context.Context, userID string) ([]*entities.Order, error)
	}

	orderRepository struct {
		db *gorm.DB
	}
)

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// CreateOrder writes the order row and one join row per add-on in a
// single transaction. A failure on any row rolls back everything.
func (r *orderRepository) CreateOrder(ctx context.Context, order *entities.Order, addOnIDs []string) error {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := tx.Create(order).Error; err != nil {
		tx.Rollback()
		return err
	}

	for _, addOnID := range addOnIDs {
		orderAddOn := &entities.OrderAddOn{
			ID:      uuid.New(),
			OrderID: order.ID,
			AddOnID: addOnID,
		}
		if err := tx.Create(orderAddOn).Error; err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit().Error
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id string, userID string) (*entities.Order, error) {
	var order entities.Order
	if err := r.db.WithContext(ctx).
		Preload("Dish").
		Preload("AddOns").
		Preload("AddOns.AddOn").
		Where("id = ? AND user_id = ?", id, userID).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetOrdersByUser(ctx context.Context, userID string) ([]*entities.Order, error) {
	var orders []*entities.Order
	if err := r.db.WithContext(ctx).
		Preload("Dish").
		Preload("AddOns").
		Preload("AddOns.AddOn").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

package catalog

import (
	"GreenBite-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	CatalogRepository interface {
		GetDishes(ctx context.Context) ([]*entities.Dish, error)
		GetDishByID(ctx context.Context, id string) (*entities.Dish, error)
		GetAddOns(ctx context.Context) ([]*entities.AddOn, error)
		GetAddOnsByIDs(ctx context.Context, ids []string) ([]*entities.AddOn, error)
	}

	catalogRepository struct {
		db *gorm.DB
	}
)

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) GetDishes(ctx context.Context) ([]*entities.Dish, error) {
	var dishes []*entities.Dish
	if err := r.db.WithContext(ctx).
		Where("is_available = ?", true).
		Order("created_at asc").
		Find(&dishes).Error; err != nil {
		return nil, err
	}
	return dishes, nil
}

func (r *catalogRepository) GetDishByID(ctx context.Context, id string) (*entities.Dish, error) {
	var dish entities.Dish
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&dish).Error; err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *catalogRepository) GetAddOns(ctx context.Context) ([]*entities.AddOn, error) {
	var addOns []*entities.AddOn
	if err := r.db.WithContext(ctx).
		Where("is_available = ?", true).
		Order("category asc, created_at asc").
		Find(&addOns).Error; err != nil {
		return nil, err
	}
	return addOns, nil
}

func (r *catalogRepository) GetAddOnsByIDs(ctx context.Context, ids []string) ([]*entities.AddOn, error) {
	var addOns []*entities.AddOn
	if len(ids) == 0 {
		return addOns, nil
	}
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&addOns).Error; err != nil {
		return nil, err
	}
	return addOns, nil
}

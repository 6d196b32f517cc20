package catalog

import (
	"GreenBite-Backend/domain"
	"GreenBite-Backend/entities"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	CatalogService interface {
		GetDishes(ctx context.Context) ([]domain.DishResponse, error)
		GetDishByID(ctx context.Context, id string) (domain.DishResponse, error)
		GetAddOns(ctx context.Context) ([]domain.AddOnResponse, error)
	}

	catalogService struct {
		catalogRepository CatalogRepository
	}
)

func NewCatalogService(catalogRepository CatalogRepository) CatalogService {
	return &catalogService{catalogRepository: catalogRepository}
}

func (s *catalogService) GetDishes(ctx context.Context) ([]domain.DishResponse, error) {
	dishes, err := s.catalogRepository.GetDishes(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.DishResponse, 0, len(dishes))
	for _, dish := range dishes {
		response = append(response, DishToResponse(dish))
	}
	return response, nil
}

func (s *catalogService) GetDishByID(ctx context.Context, id string) (domain.DishResponse, error) {
	dish, err := s.catalogRepository.GetDishByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DishResponse{}, domain.ErrDishNotFound
		}
		return domain.DishResponse{}, err
	}
	return DishToResponse(dish), nil
}

func (s *catalogService) GetAddOns(ctx context.Context) ([]domain.AddOnResponse, error) {
	addOns, err := s.catalogRepository.GetAddOns(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.AddOnResponse, 0, len(addOns))
	for _, addOn := range addOns {
		response = append(response, AddOnToResponse(addOn))
	}
	return response, nil
}

func DishToResponse(dish *entities.Dish) domain.DishResponse {
	return domain.DishResponse{
		ID:                 dish.ID,
		Name:               dish.Name,
		Description:        dish.Description,
		Image:              dish.Image,
		DefaultIngredients: dish.DefaultIngredients,
		BaseCalories:       dish.BaseCalories,
		BaseProtein:        dish.BaseProtein,
		BaseCarbs:          dish.BaseCarbs,
		BaseFat:            dish.BaseFat,
	}
}

func AddOnToResponse(addOn *entities.AddOn) domain.AddOnResponse {
	return domain.AddOnResponse{
		ID:       addOn.ID,
		Name:     addOn.Name,
		Category: addOn.Category,
		Calories: addOn.Calories,
		Protein:  addOn.Protein,
		Carbs:    addOn.Carbs,
		Fat:      addOn.Fat,
	}
}

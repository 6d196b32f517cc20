package order

import (
	"GreenBite-Backend/domain"
	"GreenBite-Backend/entities"
	"GreenBite-Backend/pkg/catalog"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const StatusPending = "pending"

type (
	OrderService interface {
		ComposeDraft(ctx context.Context, req domain.ComposeDraftRequest) (domain.OrderDraftResponse, error)
		CreateOrder(ctx context.Context, req domain.CreateOrderRequest, userID string) (domain.OrderResponse, error)
		GetMyOrders(ctx context.Context, userID string) ([]domain.OrderResponse, error)
		GetOrderByID(ctx context.Context, orderID string, userID string) (domain.OrderResponse, error)
	}

	orderService struct {
		orderRepository   OrderRepository
		catalogRepository catalog.CatalogRepository
	}
)

func NewOrderService(orderRepository OrderRepository, catalogRepository catalog.CatalogRepository) OrderService {
	return &orderService{
		orderRepository:   orderRepository,
		catalogRepository: catalogRepository,
	}
}

// ComposeDraft previews an order without persisting anything. The same
// resolution and aggregation run again inside CreateOrder, so a client
// holding a stale draft can never smuggle its own totals in.
func (s *orderService) ComposeDraft(ctx context.Context, req domain.ComposeDraftRequest) (domain.OrderDraftResponse, error) {
	dish, addOns, err := s.resolveSelection(ctx, req.DishID, req.AddOnIDs)
	if err != nil {
		return domain.OrderDraftResponse{}, err
	}

	addOnResponses := make([]domain.AddOnResponse, 0, len(addOns))
	for _, addOn := range addOns {
		addOnResponses = append(addOnResponses, catalog.AddOnToResponse(addOn))
	}

	return domain.OrderDraftResponse{
		DishID:   dish.ID,
		DishName: dish.Name,
		Image:    dish.Image,
		AddOns:   addOnResponses,
		Totals:   AggregateNutrition(dish, addOns),
	}, nil
}

func (s *orderService) CreateOrder(ctx context.Context, req domain.CreateOrderRequest, userID string) (domain.OrderResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.OrderResponse{}, domain.ErrParseUUID
	}

	dish, addOns, err := s.resolveSelection(ctx, req.DishID, req.AddOnIDs)
	if err != nil {
		return domain.OrderResponse{}, err
	}

	totals := AggregateNutrition(dish, addOns)

	order := &entities.Order{
		ID:            uuid.New(),
		UserID:        userUUID,
		DishID:        dish.ID,
		TotalCalories: totals.Calories,
		TotalProtein:  totals.Protein,
		TotalCarbs:    totals.Carbs,
		TotalFat:      totals.Fat,
		TotalFiber:    totals.Fiber,
		Status:        StatusPending,
	}

	addOnIDs := make([]string, 0, len(addOns))
	for _, addOn := range addOns {
		addOnIDs = append(addOnIDs, addOn.ID)
	}

	if err := s.orderRepository.CreateOrder(ctx, order, addOnIDs); err != nil {
		return domain.OrderResponse{}, err
	}

	created, err := s.orderRepository.GetOrderByID(ctx, order.ID.String(), userID)
	if err != nil {
		return domain.OrderResponse{}, err
	}
	return OrderToResponse(created), nil
}

func (s *orderService) GetMyOrders(ctx context.Context, userID string) ([]domain.OrderResponse, error) {
	orders, err := s.orderRepository.GetOrdersByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, OrderToResponse(o))
	}
	return response, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, orderID string, userID string) (domain.OrderResponse, error) {
	o, err := s.orderRepository.GetOrderByID(ctx, orderID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.OrderResponse{}, domain.ErrOrderNotFound
		}
		return domain.OrderResponse{}, err
	}
	return OrderToResponse(o), nil
}

// resolveSelection loads the dish, normalizes the add-on selection
// through the toggle policy, and resolves every surviving id against
// the catalog. Unknown ids are rejected rather than silently dropped.
func (s *orderService) resolveSelection(ctx context.Context, dishID string, addOnIDs []string) (*entities.Dish, []*entities.AddOn, error) {
	dish, err := s.catalogRepository.GetDishByID(ctx, dishID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, domain.ErrDishNotFound
		}
		return nil, nil, err
	}

	selection := BuildSelection(addOnIDs)

	resolved, err := s.catalogRepository.GetAddOnsByIDs(ctx, selection)
	if err != nil {
		return nil, nil, err
	}

	byID := make(map[string]*entities.AddOn, len(resolved))
	for _, addOn := range resolved {
		byID[addOn.ID] = addOn
	}

	addOns := make([]*entities.AddOn, 0, len(selection))
	for _, id := range selection {
		addOn, ok := byID[id]
		if !ok {
			return nil, nil, domain.ErrAddOnNotFound
		}
		addOns = append(addOns, addOn)
	}

	return dish, addOns, nil
}

func OrderToResponse(o *entities.Order) domain.OrderResponse {
	response := domain.OrderResponse{
		ID:     o.ID.String(),
		Status: o.Status,
		Totals: domain.NutritionTotals{
			Calories: o.TotalCalories,
			Protein:  o.TotalProtein,
			Carbs:    o.TotalCarbs,
			Fat:      o.TotalFat,
			Fiber:    o.TotalFiber,
		},
		AddOns:    make([]domain.AddOnResponse, 0, len(o.AddOns)),
		CreatedAt: o.CreatedAt,
	}

	if o.Dish != nil {
		response.Dish = catalog.DishToResponse(o.Dish)
	}
	for _, join := range o.AddOns {
		if join.AddOn != nil {
			response.AddOns = append(response.AddOns, catalog.AddOnToResponse(join.AddOn))
		}
	}
	return response
}

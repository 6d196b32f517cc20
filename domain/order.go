package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessComposeDraft = "order draft composed successfully"
	MessageSuccessCreateOrder  = "order created successfully"
	MessageSuccessGetOrders    = "orders retrieved successfully"
	MessageSuccessGetOrder     = "order retrieved successfully"

	MessageFailedComposeDraft = "failed to compose order draft"
	MessageFailedCreateOrder  = "failed to create order"
	MessageFailedGetOrders    = "failed to retrieve orders"
	MessageFailedGetOrder     = "failed to retrieve order"

	ErrOrderNotFound = errors.New("order not found")
)

type (
	NutritionTotals struct {
		Calories float64 `json:"calories"`
		Protein  float64 `json:"protein"`
		Carbs    float64 `json:"carbs"`
		Fat      float64 `json:"fat"`
		Fiber    float64 `json:"fiber"`
	}

	ComposeDraftRequest struct {
		DishID   string   `json:"dish_id" validate:"required"`
		AddOnIDs []string `json:"add_on_ids" validate:"max=6"`
	}

	OrderDraftResponse struct {
		DishID   string          `json:"dish_id"`
		DishName string          `json:"dish_name"`
		Image    string          `json:"image"`
		AddOns   []AddOnResponse `json:"add_ons"`
		Totals   NutritionTotals `json:"totals"`
	}

	// Totals on the wire mirror the client's own computation. They are
	// recomputed from the catalog before anything is persisted.
	CreateOrderRequest struct {
		DishID        string   `json:"dish_id" validate:"required"`
		AddOnIDs      []string `json:"add_on_ids" validate:"max=6"`
		TotalCalories float64  `json:"total_calories"`
		TotalProtein  float64  `json:"total_protein"`
		TotalCarbs    float64  `json:"total_carbs"`
		TotalFat      float64  `json:"total_fat"`
		TotalFiber    float64  `json:"total_fiber"`
	}

	OrderResponse struct {
		ID        string          `json:"id"`
		Dish      DishResponse    `json:"dish"`
		AddOns    []AddOnResponse `json:"add_ons"`
		Totals    NutritionTotals `json:"totals"`
		Status    string          `json:"status"`
		CreatedAt time.Time       `json:"created_at"`
	}
)

package domain

import "errors"

var (
	MessageSuccessGetDishes = "dishes retrieved successfully"
	MessageSuccessGetDish   = "dish retrieved successfully"
	MessageSuccessGetAddOns = "add-ons retrieved successfully"

	MessageFailedGetDishes = "failed to retrieve dishes"
	MessageFailedGetDish   = "failed to retrieve dish"
	MessageFailedGetAddOns = "failed to retrieve add-ons"

	ErrDishNotFound  = errors.New("dish not found")
	ErrAddOnNotFound = errors.New("add-on not found")
)

type (
	DishResponse struct {
		ID                 string   `json:"id"`
		Name               string   `json:"name"`
		Description        string   `json:"description"`
		Image              string   `json:"image"`
		DefaultIngredients []string `json:"default_ingredients"`
		BaseCalories       int      `json:"base_calories"`
		BaseProtein        float64  `json:"base_protein"`
		BaseCarbs          float64  `json:"base_carbs"`
		BaseFat            float64  `json:"base_fat"`
	}

	AddOnResponse struct {
		ID       string  `json:"id"`
		Name     string  `json:"name"`
		Category string  `json:"category"`
		Calories float64 `json:"calories"`
		Protein  float64 `json:"protein"`
		Carbs    float64 `json:"carbs"`
		Fat      float64 `json:"fat"`
	}
)

package order

import (
	"GreenBite-Backend/domain"
	"GreenBite-Backend/entities"
)

// baseFiber is a placeholder: ingredients carry no fiber data, so every
// order gets a flat base plus one unit per add-on.
const baseFiber = 5

// AggregateNutrition sums a dish's base nutrition with the chosen
// add-ons, field-wise. Dish calories are integral while add-on macros
// may be fractional, so every total is kept as float64.
func AggregateNutrition(dish *entities.Dish, addOns []*entities.AddOn) domain.NutritionTotals {
	totals := domain.NutritionTotals{
		Calories: float64(dish.BaseCalories),
		Protein:  dish.BaseProtein,
		Carbs:    dish.BaseCarbs,
		Fat:      dish.BaseFat,
		Fiber:    baseFiber,
	}

	for _, addOn := range addOns {
		totals.Calories += addOn.Calories
		totals.Protein += addOn.Protein
		totals.Carbs += addOn.Carbs
		totals.Fat += addOn.Fat
		totals.Fiber++
	}

	return totals
}

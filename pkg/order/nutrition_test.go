package order

import (
	"GreenBite-Backend/entities"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregateNutritionDishOnly(t *testing.T) {
	dish := &entities.Dish{BaseCalories: 150, BaseProtein: 5, BaseCarbs: 25, BaseFat: 3}

	totals := AggregateNutrition(dish, nil)

	assert.Equal(t, 150.0, totals.Calories)
	assert.Equal(t, 5.0, totals.Protein)
	assert.Equal(t, 25.0, totals.Carbs)
	assert.Equal(t, 3.0, totals.Fat)
	assert.Equal(t, 5.0, totals.Fiber)
}

func TestAggregateNutritionSumsAddOns(t *testing.T) {
	dish := &entities.Dish{BaseCalories: 280, BaseProtein: 12, BaseCarbs: 35, BaseFat: 10}
	addOns := []*entities.AddOn{
		{ID: "ing-1", Calories: 20, Protein: 2, Carbs: 3, Fat: 1},
		{ID: "ing-5", Calories: 80, Protein: 15, Carbs: 0, Fat: 2},
	}

	totals := AggregateNutrition(dish, addOns)

	assert.Equal(t, 380.0, totals.Calories)
	assert.Equal(t, 29.0, totals.Protein)
	assert.Equal(t, 38.0, totals.Carbs)
	assert.Equal(t, 13.0, totals.Fat)
	assert.Equal(t, 7.0, totals.Fiber)
}

func TestAggregateNutritionFractionalMacros(t *testing.T) {
	dish := &entities.Dish{BaseCalories: 450, BaseProtein: 35, BaseCarbs: 20, BaseFat: 25}
	addOns := []*entities.AddOn{
		{ID: "ing-2", Calories: 18, Protein: 1.5, Carbs: 4, Fat: 0.5},
	}

	totals := AggregateNutrition(dish, addOns)

	assert.InDelta(t, 468.0, totals.Calories, 1e-9)
	assert.InDelta(t, 36.5, totals.Protein, 1e-9)
	assert.InDelta(t, 24.0, totals.Carbs, 1e-9)
	assert.InDelta(t, 25.5, totals.Fat, 1e-9)
	assert.Equal(t, 6.0, totals.Fiber)
}

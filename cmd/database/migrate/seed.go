package migration

import (
	"GreenBite-Backend/entities"
	"fmt"

	"gorm.io/gorm"
)

// Seed fills the catalog tables when they are empty. Dishes and
// add-ons are fixed menu data; user flows never mutate them.
func Seed(db *gorm.DB) error {
	var dishCount int64
	if err := db.Model(&entities.Dish{}).Count(&dishCount).Error; err != nil {
		return err
	}

	if dishCount == 0 {
		for _, dish := range seedDishes() {
			if err := db.Create(dish).Error; err != nil {
				return err
			}
		}
	}

	var addOnCount int64
	if err := db.Model(&entities.AddOn{}).Count(&addOnCount).Error; err != nil {
		return err
	}

	if addOnCount == 0 {
		for _, addOn := range seedAddOns() {
			if err := db.Create(addOn).Error; err != nil {
				return err
			}
		}
	}

	fmt.Println("Database seeding complete")
	return nil
}

func seedDishes() []*entities.Dish {
	return []*entities.Dish{
		{
			ID:                 "pizza-1",
			Name:               "Rustic Organic Pizza",
			Description:        "Wood-fired crust topped with heirloom tomatoes and fresh basil.",
			Image:              "https://images.unsplash.com/photo-1604068549290-dea0e4a305ca?w=600&h=400&fit=crop",
			DefaultIngredients: []string{"Organic Flour Dough", "Tomato Sauce", "Mozzarella", "Basil", "Olive Oil"},
			BaseCalories:       280,
			BaseProtein:        12,
			BaseCarbs:          35,
			BaseFat:            10,
			IsAvailable:        true,
		},
		{
			ID:                 "soup-veg",
			Name:               "Garden Vegetable Soup",
			Description:        "A hearty blend of seasonal root vegetables in a clear broth.",
			Image:              "https://images.unsplash.com/photo-1547592166-23ac45744acd?w=600&h=400&fit=crop",
			DefaultIngredients: []string{"Vegetable Broth", "Carrots", "Celery", "Potatoes", "Peas"},
			BaseCalories:       150,
			BaseProtein:        5,
			BaseCarbs:          25,
			BaseFat:            3,
			IsAvailable:        true,
		},
		{
			ID:                 "curry-nonveg",
			Name:               "Chicken Curry Bowl",
			Description:        "Free-range chicken simmered in coconut milk and aromatic spices.",
			Image:              "https://images.unsplash.com/photo-1565557623262-b51c2513a641?w=600&h=400&fit=crop",
			DefaultIngredients: []string{"Chicken Breast", "Coconut Milk", "Curry Paste", "Potatoes", "Cilantro"},
			BaseCalories:       450,
			BaseProtein:        35,
			BaseCarbs:          20,
			BaseFat:            25,
			IsAvailable:        true,
		},
		{
			ID:                 "platter-chick",
			Name:               "Grilled Chicken Platter",
			Description:        "Lemon-herb marinated chicken served with quinoa.",
			Image:              "https://images.unsplash.com/photo-1532550907401-a500c9a57435?w=600&h=400&fit=crop",
			DefaultIngredients: []string{"Chicken Thighs", "Quinoa", "Lemon", "Garlic", "Parsley"},
			BaseCalories:       520,
			BaseProtein:        45,
			BaseCarbs:          40,
			BaseFat:            18,
			IsAvailable:        true,
		},
		{
			ID:                 "pie-savory",
			Name:               "Spinach & Feta Pie",
			Description:        "Flaky pastry filled with organic spinach and sheep feta.",
			Image:              "https://images.unsplash.com/photo-1619566636858-adf3ef46400b?w=600&h=400&fit=crop",
			DefaultIngredients: []string{"Puff Pastry", "Spinach", "Feta Cheese", "Eggs", "Onion"},
			BaseCalories:       380,
			BaseProtein:        14,
			BaseCarbs:          30,
			BaseFat:            22,
			IsAvailable:        true,
		},
	}
}

func seedAddOns() []*entities.AddOn {
	return []*entities.AddOn{
		{ID: "ing-1", Name: "Carrot", Category: "vegetable", Calories: 20, Protein: 2, Carbs: 3, Fat: 1, IsAvailable: true},
		{ID: "ing-2", Name: "Onion", Category: "vegetable", Calories: 18, Protein: 1.5, Carbs: 4, Fat: 0.5, IsAvailable: true},
		{ID: "ing-3", Name: "Beetroot", Category: "vegetable", Calories: 22, Protein: 2, Carbs: 5, Fat: 0.5, IsAvailable: true},
		{ID: "ing-4", Name: "Spinach", Category: "vegetable", Calories: 15, Protein: 2.5, Carbs: 2, Fat: 0.5, IsAvailable: true},
		{ID: "ing-5", Name: "Grilled Fish", Category: "protein", Calories: 80, Protein: 15, Carbs: 0, Fat: 2, IsAvailable: true},
		{ID: "ing-6", Name: "Tofu", Category: "protein", Calories: 60, Protein: 8, Carbs: 2, Fat: 3.5, IsAvailable: true},
		{ID: "ing-7", Name: "Chicken Bits", Category: "protein", Calories: 70, Protein: 12, Carbs: 0, Fat: 2.5, IsAvailable: true},
		{ID: "ing-8", Name: "Mushrooms", Category: "vegetable", Calories: 12, Protein: 1.5, Carbs: 2, Fat: 0.5, IsAvailable: true},
		{ID: "ing-9", Name: "Cheddar", Category: "dairy", Calories: 50, Protein: 4, Carbs: 0.5, Fat: 4, IsAvailable: true},
		{ID: "ing-10", Name: "Chili Flakes", Category: "spice", Calories: 5, Protein: 0.5, Carbs: 1, Fat: 0.5, IsAvailable: true},
		{ID: "ing-11", Name: "Corn", Category: "vegetable", Calories: 30, Protein: 2, Carbs: 6, Fat: 0.5, IsAvailable: true},
		{ID: "ing-12", Name: "Boiled Egg", Category: "protein", Calories: 70, Protein: 6, Carbs: 1, Fat: 5, IsAvailable: true},
	}
}

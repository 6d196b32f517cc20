package entities

type Dish struct {
	ID                 string   `gorm:"type:varchar(64);primary_key" json:"id"`
	Name               string   `json:"name"`
	Description        string   `gorm:"type:text" json:"description"`
	Image              string   `json:"image"`
	DefaultIngredients []string `gorm:"serializer:json" json:"default_ingredients"`
	BaseCalories       int      `json:"base_calories"`
	BaseProtein        float64  `json:"base_protein"`
	BaseCarbs          float64  `json:"base_carbs"`
	BaseFat            float64  `json:"base_fat"`
	IsAvailable        bool     `json:"is_available"`

	Timestamp
}

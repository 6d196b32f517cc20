package entities

import (
	"github.com/google/uuid"
)

type Order struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID `gorm:"index" json:"user_id"`
	DishID        string    `gorm:"type:varchar(64)" json:"dish_id"`
	TotalCalories float64   `json:"total_calories"`
	TotalProtein  float64   `json:"total_protein"`
	TotalCarbs    float64   `json:"total_carbs"`
	TotalFat      float64   `json:"total_fat"`
	TotalFiber    float64   `json:"total_fiber"`
	Status        string    `json:"status"` // "pending", "confirmed" (reserved)

	User   *User          `gorm:"foreignKey:UserID" json:"-"`
	Dish   *Dish          `gorm:"foreignKey:DishID" json:"dish,omitempty"`
	AddOns []*OrderAddOn  `gorm:"foreignKey:OrderID" json:"add_ons"`
	Timestamp
}

type OrderAddOn struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OrderID uuid.UUID `gorm:"index" json:"order_id"`
	AddOnID string    `gorm:"type:varchar(64)" json:"add_on_id"`

	Order *Order `gorm:"foreignKey:OrderID" json:"-"`
	AddOn *AddOn `gorm:"foreignKey:AddOnID" json:"add_on,omitempty"`
	Timestamp
}

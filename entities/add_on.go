package entities

type AddOn struct {
	ID          string  `gorm:"type:varchar(64);primary_key" json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"` // "vegetable", "protein", "dairy", "grain", "spice"
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	IsAvailable bool    `json:"is_available"`

	Timestamp
}

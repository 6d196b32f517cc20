package entities

import (
	"time"

	"github.com/google/uuid"
)

type Timestamp struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name           string    `json:"name"`
	Email          string    `gorm:"uniqueIndex" json:"email"`
	Password       string    `json:"-"`
	Role           string    `json:"role"` // "user"
	IsVerified     bool      `json:"is_verified"`
	ProfilePicture string    `json:"profile_picture,omitempty"`

	Orders []*Order `gorm:"foreignKey:UserID"`
	Timestamp
}

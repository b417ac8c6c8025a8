package entities

import (
	"github.com/google/uuid"
	"time"
)

type Ingredient struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name      string     `json:"name"`
	Category  string     `json:"category"` // "Dairy", "Meat", "Protein", "Seafood", "Vegetable", "Fruit", "Grain", "Pantry", "Beverage", "Frozen", "Snack"
	Unit      string     `json:"unit"`
	Amount    float64    `json:"amount"`
	AddedAt   *time.Time `json:"added_at,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`

	Timestamp
}

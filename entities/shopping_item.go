package entities

import (
	"github.com/google/uuid"
	"time"
)

type ShoppingItem struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
	Unit     string    `json:"unit"`
	Amount   float64   `json:"amount"`
	Checked  bool      `json:"checked"`
	AddedAt  time.Time `json:"added_at"`

	Timestamp
}

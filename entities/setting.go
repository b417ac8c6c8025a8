package entities

import (
	"github.com/google/uuid"
)

// AppSetting is a single-row table; Load returns defaults when empty.
type AppSetting struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeAPIKey string    `json:"recipe_api_key"`

	Timestamp
}

package entities

import (
	"github.com/google/uuid"
	"time"
)

// CookedRecipe is one entry of the cooking history log. The log is
// append-only and capped at the 50 most recent entries.
type CookedRecipe struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID string    `json:"recipe_id"` // external meal id, stable across runs
	Title    string    `json:"title"`
	Image    string    `json:"image"`
	CookedAt time.Time `gorm:"type:timestamp" json:"cooked_at"`
}

type FavoriteRecipe struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID string    `gorm:"uniqueIndex" json:"recipe_id"`
	Title    string    `json:"title"`
	Image    string    `json:"image"`
	Category string    `json:"category"`
	Area     string    `json:"area"`
	SavedAt  time.Time `gorm:"type:timestamp" json:"saved_at"`
}

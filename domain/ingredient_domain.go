package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddIngredient    = "ingredient added successfully"
	MessageSuccessUpdateIngredient = "ingredient updated successfully"
	MessageSuccessDeleteIngredient = "ingredient deleted successfully"
	MessageSuccessGetIngredients   = "ingredients retrieved successfully"
	MessageSuccessConsume          = "ingredients consumed successfully"
	MessageSuccessGetExpiring      = "expiring ingredients retrieved successfully"
	MessageSuccessGetDashboard     = "dashboard statistics retrieved successfully"

	MessageFailedAddIngredient    = "failed to add ingredient"
	MessageFailedUpdateIngredient = "failed to update ingredient"
	MessageFailedDeleteIngredient = "failed to delete ingredient"
	MessageFailedGetIngredients   = "failed to retrieve ingredients"
	MessageFailedConsume          = "failed to consume ingredients"
	MessageFailedGetExpiring      = "failed to retrieve expiring ingredients"
	MessageFailedGetDashboard     = "failed to retrieve dashboard statistics"

	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrInvalidExpiryDate  = errors.New("invalid expiry date")
)

type (
	AddIngredientRequest struct {
		Name     string  `json:"name" validate:"required"`
		Category string  `json:"category" validate:"required,oneof=Dairy Meat Protein Seafood Vegetable Fruit Grain Pantry Beverage Frozen Snack"`
		Unit     string  `json:"unit" validate:"required"`
		Amount   float64 `json:"amount"`
		// ExpiresAt is a "2006-01-02" date; empty means the ingredient
		// does not expire.
		ExpiresAt string `json:"expires_at" validate:"omitempty"`
	}

	// UpdateIngredientRequest carries explicit per-field updates: nil
	// leaves the field unchanged. An empty ExpiresAt string clears the
	// expiry date.
	UpdateIngredientRequest struct {
		Name      *string  `json:"name,omitempty"`
		Category  *string  `json:"category,omitempty" validate:"omitempty,oneof=Dairy Meat Protein Seafood Vegetable Fruit Grain Pantry Beverage Frozen Snack"`
		Unit      *string  `json:"unit,omitempty"`
		Amount    *float64 `json:"amount,omitempty"`
		ExpiresAt *string  `json:"expires_at,omitempty"`
	}

	ConsumedItem struct {
		Name   string  `json:"name" validate:"required"`
		Amount float64 `json:"amount"`
	}

	ConsumeRequest struct {
		Items []ConsumedItem `json:"items" validate:"required,dive"`
	}

	IngredientResponse struct {
		ID              string     `json:"id"`
		Name            string     `json:"name"`
		Category        string     `json:"category"`
		Unit            string     `json:"unit"`
		Amount          float64    `json:"amount"`
		AddedAt         *time.Time `json:"added_at,omitempty"`
		ExpiresAt       *time.Time `json:"expires_at,omitempty"`
		ExpiryStatus    string     `json:"expiry_status"`
		DaysUntilExpiry *int       `json:"days_until_expiry,omitempty"`
	}

	DashboardStatsResponse struct {
		TotalItems    int `json:"total_items"`
		FreshItems    int `json:"fresh_items"`
		ExpiringItems int `json:"expiring_items"`
		ExpiredItems  int `json:"expired_items"`
		NoExpiryItems int `json:"no_expiry_items"`
	}
)

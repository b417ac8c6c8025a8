package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddShoppingItem    = "shopping item added successfully"
	MessageSuccessToggleShoppingItem = "shopping item toggled successfully"
	MessageSuccessDeleteShoppingItem = "shopping item removed successfully"
	MessageSuccessClearChecked       = "checked items cleared successfully"
	MessageSuccessGetShoppingList    = "shopping list retrieved successfully"
	MessageSuccessMoveToKitchen      = "shopping item moved to kitchen"

	MessageFailedAddShoppingItem    = "failed to add shopping item"
	MessageFailedToggleShoppingItem = "failed to toggle shopping item"
	MessageFailedDeleteShoppingItem = "failed to remove shopping item"
	MessageFailedClearChecked       = "failed to clear checked items"
	MessageFailedGetShoppingList    = "failed to retrieve shopping list"
	MessageFailedMoveToKitchen      = "failed to move shopping item to kitchen"

	ErrShoppingItemNotFound = errors.New("shopping item not found")
)

type (
	AddShoppingItemRequest struct {
		Name     string  `json:"name" validate:"required"`
		Category string  `json:"category" validate:"required,oneof=Dairy Meat Protein Seafood Vegetable Fruit Grain Pantry Beverage Frozen Snack"`
		Unit     string  `json:"unit" validate:"required"`
		Amount   float64 `json:"amount"`
	}

	ShoppingItemResponse struct {
		ID       string    `json:"id"`
		Name     string    `json:"name"`
		Category string    `json:"category"`
		Unit     string    `json:"unit"`
		Amount   float64   `json:"amount"`
		Checked  bool      `json:"checked"`
		AddedAt  time.Time `json:"added_at"`
	}

	MoveToKitchenResponse struct {
		Ingredient IngredientResponse `json:"ingredient"`
		Merged     bool               `json:"merged"`
	}
)

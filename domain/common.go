package domain

import (
	"errors"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"

	ErrParseUUID = errors.New("failed to parse UUID")
)

// Categories is the fixed ingredient category enumeration shared by
// ingredients, shopping items and barcode resolution.
var Categories = []string{
	"Dairy", "Meat", "Protein", "Seafood", "Vegetable", "Fruit",
	"Grain", "Pantry", "Beverage", "Frozen", "Snack",
}

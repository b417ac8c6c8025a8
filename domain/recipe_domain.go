package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessDiscoverRecipes = "recipe matches retrieved successfully"
	MessageSuccessSearchRecipes   = "recipes retrieved successfully"
	MessageSuccessGetRecipeDetail = "recipe detail retrieved successfully"
	MessageSuccessGetCategories   = "recipe categories retrieved successfully"
	MessageSuccessMarkAsCooked    = "recipe marked as cooked successfully"
	MessageSuccessGetHistory      = "cooking history retrieved successfully"
	MessageSuccessAddFavorite     = "recipe saved to favorites"
	MessageSuccessRemoveFavorite  = "recipe removed from favorites"
	MessageSuccessGetFavorites    = "favorite recipes retrieved successfully"

	MessageFailedDiscoverRecipes = "failed to retrieve recipe matches"
	MessageFailedSearchRecipes   = "failed to retrieve recipes"
	MessageFailedGetRecipeDetail = "failed to retrieve recipe detail"
	MessageFailedGetCategories   = "failed to retrieve recipe categories"
	MessageFailedMarkAsCooked    = "failed to mark recipe as cooked"
	MessageFailedGetHistory      = "failed to retrieve cooking history"
	MessageFailedAddFavorite     = "failed to save recipe to favorites"
	MessageFailedRemoveFavorite  = "failed to remove recipe from favorites"
	MessageFailedGetFavorites    = "failed to retrieve favorite recipes"

	ErrRecipeNotFound = errors.New("recipe not found")
)

type (
	RecipeIngredient struct {
		Name    string `json:"name"`
		Measure string `json:"measure"`
	}

	// ParsedRecipe is a recipe as returned by the external search
	// collaborator, normalized from its wire shape.
	ParsedRecipe struct {
		ID           string             `json:"id"`
		Title        string             `json:"title"`
		Image        string             `json:"image"`
		Category     string             `json:"category"`
		Area         string             `json:"area"`
		Instructions string             `json:"instructions"`
		Ingredients  []RecipeIngredient `json:"ingredients"`
		YoutubeURL   string             `json:"youtube_url,omitempty"`
		SourceURL    string             `json:"source_url,omitempty"`
		Tags         []string           `json:"tags,omitempty"`
	}

	// RecipeMatch is one ranked result of a matching run: the recipe
	// plus the breakdown of its ingredient list against the inventory.
	RecipeMatch struct {
		Recipe             ParsedRecipe `json:"recipe"`
		MatchedIngredients []string     `json:"matched_ingredients"`
		MissingIngredients []string     `json:"missing_ingredients"`
		ExpiringMatchCount int          `json:"expiring_match_count"`
	}

	RecipeCategory struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Image       string `json:"image"`
		Description string `json:"description"`
	}

	DiscoverRecipesResponse struct {
		Results       []RecipeMatch `json:"results"`
		TotalResults  int           `json:"total_results"`
		ExpiringItems int           `json:"expiring_items"`
	}

	MarkAsCookedRequest struct {
		RecipeID        string         `json:"recipe_id" validate:"required"`
		Title           string         `json:"title" validate:"required"`
		Image           string         `json:"image"`
		UsedIngredients []ConsumedItem `json:"used_ingredients" validate:"omitempty,dive"`
	}

	CookedRecipeResponse struct {
		ID       string    `json:"id"`
		RecipeID string    `json:"recipe_id"`
		Title    string    `json:"title"`
		Image    string    `json:"image"`
		CookedAt time.Time `json:"cooked_at"`
	}

	AddFavoriteRequest struct {
		RecipeID string `json:"recipe_id" validate:"required"`
		Title    string `json:"title" validate:"required"`
		Image    string `json:"image"`
		Category string `json:"category"`
		Area     string `json:"area"`
	}

	FavoriteRecipeResponse struct {
		ID       string    `json:"id"`
		RecipeID string    `json:"recipe_id"`
		Title    string    `json:"title"`
		Image    string    `json:"image"`
		Category string    `json:"category"`
		Area     string    `json:"area"`
		SavedAt  time.Time `json:"saved_at"`
	}
)

package mealdb

import (
	"recipefridge/domain"

	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultAPIKey is the public test key of the recipe catalog API. A
// personal key can be configured at runtime through the settings
// service.
const DefaultAPIKey = "1"

const maxNumberedIngredients = 20

type (
	// Client wraps the recipe catalog HTTP API. Filter endpoints return
	// summaries (id, title, image only); detail fields come from GetByID.
	Client interface {
		FilterByIngredient(ctx context.Context, ingredient string) ([]domain.ParsedRecipe, error)
		FilterByCategory(ctx context.Context, category string) ([]domain.ParsedRecipe, error)
		SearchByName(ctx context.Context, query string) ([]domain.ParsedRecipe, error)
		GetByID(ctx context.Context, id string) (*domain.ParsedRecipe, error)
		Random(ctx context.Context) (*domain.ParsedRecipe, error)
		Categories(ctx context.Context) ([]domain.RecipeCategory, error)
	}

	client struct {
		httpClient *http.Client
		baseURL    string
		apiKey     func(ctx context.Context) string
	}
)

// NewClient builds a catalog client. apiKey resolves the key per
// request so a key changed in settings takes effect without a restart;
// a nil resolver or empty key falls back to DefaultAPIKey.
func NewClient(baseURL string, apiKey func(ctx context.Context) string) Client {
	return &client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
	}
}

func (c *client) FilterByIngredient(ctx context.Context, ingredient string) ([]domain.ParsedRecipe, error) {
	return c.fetchMeals(ctx, "filter.php", url.Values{"i": {ingredient}})
}

func (c *client) FilterByCategory(ctx context.Context, category string) ([]domain.ParsedRecipe, error) {
	return c.fetchMeals(ctx, "filter.php", url.Values{"c": {category}})
}

func (c *client) SearchByName(ctx context.Context, query string) ([]domain.ParsedRecipe, error) {
	return c.fetchMeals(ctx, "search.php", url.Values{"s": {query}})
}

func (c *client) GetByID(ctx context.Context, id string) (*domain.ParsedRecipe, error) {
	meals, err := c.fetchMeals(ctx, "lookup.php", url.Values{"i": {id}})
	if err != nil {
		return nil, err
	}
	if len(meals) == 0 {
		return nil, domain.ErrRecipeNotFound
	}
	return &meals[0], nil
}

func (c *client) Random(ctx context.Context) (*domain.ParsedRecipe, error) {
	meals, err := c.fetchMeals(ctx, "random.php", nil)
	if err != nil {
		return nil, err
	}
	if len(meals) == 0 {
		return nil, domain.ErrRecipeNotFound
	}
	return &meals[0], nil
}

func (c *client) Categories(ctx context.Context) ([]domain.RecipeCategory, error) {
	body, err := c.get(ctx, "categories.php", nil)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Categories []struct {
			ID          string `json:"idCategory"`
			Name        string `json:"strCategory"`
			Thumb       string `json:"strCategoryThumb"`
			Description string `json:"strCategoryDescription"`
		} `json:"categories"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, err
	}

	categories := make([]domain.RecipeCategory, 0, len(envelope.Categories))
	for _, category := range envelope.Categories {
		categories = append(categories, domain.RecipeCategory{
			ID:          category.ID,
			Name:        category.Name,
			Image:       category.Thumb,
			Description: category.Description,
		})
	}
	return categories, nil
}

func (c *client) fetchMeals(ctx context.Context, endpoint string, query url.Values) ([]domain.ParsedRecipe, error) {
	body, err := c.get(ctx, endpoint, query)
	if err != nil {
		return nil, err
	}

	// The API answers "meals": null for an empty result set.
	var envelope struct {
		Meals []map[string]any `json:"meals"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, err
	}

	meals := make([]domain.ParsedRecipe, 0, len(envelope.Meals))
	for _, raw := range envelope.Meals {
		meals = append(meals, parseMeal(raw))
	}
	return meals, nil
}

func (c *client) get(ctx context.Context, endpoint string, query url.Values) ([]byte, error) {
	key := DefaultAPIKey
	if c.apiKey != nil {
		if resolved := c.apiKey(ctx); resolved != "" {
			key = resolved
		}
	}

	target := fmt.Sprintf("%s/api/json/v1/%s/%s", c.baseURL, key, endpoint)
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("recipe catalog returned status %d", res.StatusCode)
	}
	return io.ReadAll(res.Body)
}

// parseMeal flattens the numbered strIngredientN/strMeasureN pairs of
// the wire format into a single ingredient list. Blank and
// whitespace-only names end the useful range but are skipped rather
// than treated as a terminator; the API leaves gaps.
func parseMeal(raw map[string]any) domain.ParsedRecipe {
	recipe := domain.ParsedRecipe{
		ID:           stringField(raw, "idMeal"),
		Title:        stringField(raw, "strMeal"),
		Image:        stringField(raw, "strMealThumb"),
		Category:     stringField(raw, "strCategory"),
		Area:         stringField(raw, "strArea"),
		Instructions: stringField(raw, "strInstructions"),
		YoutubeURL:   stringField(raw, "strYoutube"),
		SourceURL:    stringField(raw, "strSource"),
	}

	if tags := stringField(raw, "strTags"); tags != "" {
		for _, tag := range strings.Split(tags, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				recipe.Tags = append(recipe.Tags, tag)
			}
		}
	}

	for i := 1; i <= maxNumberedIngredients; i++ {
		name := strings.TrimSpace(stringField(raw, fmt.Sprintf("strIngredient%d", i)))
		if name == "" {
			continue
		}
		measure := strings.TrimSpace(stringField(raw, fmt.Sprintf("strMeasure%d", i)))
		recipe.Ingredients = append(recipe.Ingredients, domain.RecipeIngredient{
			Name:    name,
			Measure: measure,
		})
	}
	return recipe
}

func stringField(raw map[string]any, key string) string {
	if value, ok := raw[key].(string); ok {
		return value
	}
	return ""
}

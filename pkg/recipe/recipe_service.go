package recipe

import (
	"recipefridge/domain"
	"recipefridge/entities"
	"recipefridge/pkg/expiry"
	"recipefridge/pkg/inventory"
	"recipefridge/pkg/logger"
	"recipefridge/pkg/mealdb"

	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// historyLimit caps the cooking history log; the oldest entries are
	// evicted when a new record pushes the count past it.
	historyLimit = 50

	// detailLookupLimit bounds how many filter results per ingredient
	// name are hydrated with a full detail lookup.
	detailLookupLimit = 10

	// discoveryCacheTTL keeps a match run around long enough to survive
	// UI re-renders; Refresh bypasses it.
	discoveryCacheTTL = 2 * time.Minute
)

type (
	RecipeService interface {
		DiscoverRecipes(ctx context.Context) (domain.DiscoverRecipesResponse, error)
		RefreshDiscovery(ctx context.Context) (domain.DiscoverRecipesResponse, error)
		SearchRecipes(ctx context.Context, query string) ([]domain.ParsedRecipe, error)
		GetRecipeDetail(ctx context.Context, id string) (*domain.ParsedRecipe, error)
		GetRandomRecipe(ctx context.Context) (*domain.ParsedRecipe, error)
		GetCategories(ctx context.Context) ([]domain.RecipeCategory, error)
		GetRecipesByCategory(ctx context.Context, category string) ([]domain.ParsedRecipe, error)
		MarkAsCooked(ctx context.Context, req domain.MarkAsCookedRequest) (domain.CookedRecipeResponse, error)
		GetHistory(ctx context.Context) ([]domain.CookedRecipeResponse, error)
		AddFavorite(ctx context.Context, req domain.AddFavoriteRequest) (domain.FavoriteRecipeResponse, error)
		RemoveFavorite(ctx context.Context, recipeID string) error
		GetFavorites(ctx context.Context) ([]domain.FavoriteRecipeResponse, error)
	}

	recipeService struct {
		recipeRepository     RecipeRepository
		ingredientRepository inventory.IngredientRepository
		inventoryService     inventory.InventoryService
		client               mealdb.Client
		matcher              Matcher
		log                  *logger.Logger

		mu       sync.Mutex
		cached   *domain.DiscoverRecipesResponse
		cachedAt time.Time
	}
)

func NewRecipeService(
	recipeRepository RecipeRepository,
	ingredientRepository inventory.IngredientRepository,
	inventoryService inventory.InventoryService,
	client mealdb.Client,
	log *logger.Logger,
) RecipeService {
	return &recipeService{
		recipeRepository:     recipeRepository,
		ingredientRepository: ingredientRepository,
		inventoryService:     inventoryService,
		client:               client,
		matcher:              NewMatcher(&hydratedSearcher{client: client, log: log}, log),
		log:                  log,
	}
}

// hydratedSearcher adapts the catalog client for the matcher. Filter
// results carry no ingredient lists, so the first detailLookupLimit
// summaries per name are upgraded with a detail lookup; a failed lookup
// keeps the summary rather than dropping the recipe.
type hydratedSearcher struct {
	client mealdb.Client
	log    *logger.Logger
}

func (s *hydratedSearcher) FilterByIngredient(ctx context.Context, ingredient string) ([]domain.ParsedRecipe, error) {
	summaries, err := s.client.FilterByIngredient(ctx, ingredient)
	if err != nil {
		return nil, err
	}
	if len(summaries) > detailLookupLimit {
		summaries = summaries[:detailLookupLimit]
	}

	recipes := make([]domain.ParsedRecipe, 0, len(summaries))
	for _, summary := range summaries {
		detail, err := s.client.GetByID(ctx, summary.ID)
		if err != nil {
			s.log.Warnw("recipe detail lookup failed", "recipe_id", summary.ID, "error", err)
			recipes = append(recipes, summary)
			continue
		}
		recipes = append(recipes, *detail)
	}
	return recipes, nil
}

func (s *hydratedSearcher) Random(ctx context.Context) (*domain.ParsedRecipe, error) {
	return s.client.Random(ctx)
}

// DiscoverRecipes runs the matcher against the current inventory. A
// recent run is served from cache; RefreshDiscovery forces a new one.
func (s *recipeService) DiscoverRecipes(ctx context.Context) (domain.DiscoverRecipesResponse, error) {
	s.mu.Lock()
	if s.cached != nil && time.Since(s.cachedAt) < discoveryCacheTTL {
		cached := *s.cached
		s.mu.Unlock()
		return cached, nil
	}
	s.mu.Unlock()

	return s.runDiscovery(ctx)
}

// RefreshDiscovery invalidates the cached run and recomputes.
func (s *recipeService) RefreshDiscovery(ctx context.Context) (domain.DiscoverRecipesResponse, error) {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
	return s.runDiscovery(ctx)
}

func (s *recipeService) runDiscovery(ctx context.Context) (domain.DiscoverRecipesResponse, error) {
	ingredients, err := s.ingredientRepository.GetIngredients(ctx)
	if err != nil {
		return domain.DiscoverRecipesResponse{}, err
	}

	matches, err := s.matcher.Match(ctx, ingredients)
	if err != nil {
		return domain.DiscoverRecipesResponse{}, err
	}

	now := time.Now()
	expiringItems := 0
	for _, ingredient := range ingredients {
		if _, ok := expiry.UrgencyScore(ingredient.ExpiresAt, now); ok {
			expiringItems++
		}
	}

	response := domain.DiscoverRecipesResponse{
		Results:       matches,
		TotalResults:  len(matches),
		ExpiringItems: expiringItems,
	}

	s.mu.Lock()
	s.cached = &response
	s.cachedAt = now
	s.mu.Unlock()
	return response, nil
}

// SearchRecipes degrades a catalog failure to an empty result; a flaky
// external API should not break the search screen.
func (s *recipeService) SearchRecipes(ctx context.Context, query string) ([]domain.ParsedRecipe, error) {
	recipes, err := s.client.SearchByName(ctx, query)
	if err != nil {
		s.log.Warnw("recipe search failed", "query", query, "error", err)
		return []domain.ParsedRecipe{}, nil
	}
	return recipes, nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, id string) (*domain.ParsedRecipe, error) {
	return s.client.GetByID(ctx, id)
}

func (s *recipeService) GetRandomRecipe(ctx context.Context) (*domain.ParsedRecipe, error) {
	return s.client.Random(ctx)
}

func (s *recipeService) GetCategories(ctx context.Context) ([]domain.RecipeCategory, error) {
	categories, err := s.client.Categories(ctx)
	if err != nil {
		s.log.Warnw("category listing failed", "error", err)
		return []domain.RecipeCategory{}, nil
	}
	return categories, nil
}

func (s *recipeService) GetRecipesByCategory(ctx context.Context, category string) ([]domain.ParsedRecipe, error) {
	recipes, err := s.client.FilterByCategory(ctx, category)
	if err != nil {
		s.log.Warnw("category filter failed", "category", category, "error", err)
		return []domain.ParsedRecipe{}, nil
	}
	return recipes, nil
}

// MarkAsCooked consumes the used ingredients, appends a history record
// and evicts the oldest records beyond the history cap.
func (s *recipeService) MarkAsCooked(ctx context.Context, req domain.MarkAsCookedRequest) (domain.CookedRecipeResponse, error) {
	if len(req.UsedIngredients) > 0 {
		if err := s.inventoryService.Consume(ctx, req.UsedIngredients); err != nil {
			return domain.CookedRecipeResponse{}, err
		}
	}

	record := &entities.CookedRecipe{
		ID:       uuid.New(),
		RecipeID: req.RecipeID,
		Title:    req.Title,
		Image:    req.Image,
		CookedAt: time.Now(),
	}
	if err := s.recipeRepository.AddCookedRecipe(ctx, record); err != nil {
		return domain.CookedRecipeResponse{}, err
	}

	count, err := s.recipeRepository.CountCookedRecipes(ctx)
	if err != nil {
		return domain.CookedRecipeResponse{}, err
	}
	if count > historyLimit {
		if err := s.recipeRepository.DeleteOldestCookedRecipes(ctx, int(count)-historyLimit); err != nil {
			return domain.CookedRecipeResponse{}, err
		}
	}

	s.mu.Lock()
	s.cached = nil // inventory changed, a cached match run is stale
	s.mu.Unlock()

	return toCookedRecipeResponse(record), nil
}

func (s *recipeService) GetHistory(ctx context.Context) ([]domain.CookedRecipeResponse, error) {
	records, err := s.recipeRepository.GetCookedRecipes(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.CookedRecipeResponse, 0, len(records))
	for _, record := range records {
		response = append(response, toCookedRecipeResponse(record))
	}
	return response, nil
}

// AddFavorite is idempotent per recipe id; saving an already saved
// recipe returns the existing entry.
func (s *recipeService) AddFavorite(ctx context.Context, req domain.AddFavoriteRequest) (domain.FavoriteRecipeResponse, error) {
	existing, err := s.recipeRepository.GetFavoriteByRecipeID(ctx, req.RecipeID)
	if err == nil {
		return toFavoriteRecipeResponse(existing), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.FavoriteRecipeResponse{}, err
	}

	favorite := &entities.FavoriteRecipe{
		ID:       uuid.New(),
		RecipeID: req.RecipeID,
		Title:    req.Title,
		Image:    req.Image,
		Category: req.Category,
		Area:     req.Area,
		SavedAt:  time.Now(),
	}
	if err := s.recipeRepository.AddFavorite(ctx, favorite); err != nil {
		return domain.FavoriteRecipeResponse{}, err
	}
	return toFavoriteRecipeResponse(favorite), nil
}

func (s *recipeService) RemoveFavorite(ctx context.Context, recipeID string) error {
	return s.recipeRepository.DeleteFavorite(ctx, recipeID)
}

func (s *recipeService) GetFavorites(ctx context.Context) ([]domain.FavoriteRecipeResponse, error) {
	favorites, err := s.recipeRepository.GetFavorites(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.FavoriteRecipeResponse, 0, len(favorites))
	for _, favorite := range favorites {
		response = append(response, toFavoriteRecipeResponse(favorite))
	}
	return response, nil
}

func toCookedRecipeResponse(record *entities.CookedRecipe) domain.CookedRecipeResponse {
	return domain.CookedRecipeResponse{
		ID:       record.ID.String(),
		RecipeID: record.RecipeID,
		Title:    record.Title,
		Image:    record.Image,
		CookedAt: record.CookedAt,
	}
}

func toFavoriteRecipeResponse(favorite *entities.FavoriteRecipe) domain.FavoriteRecipeResponse {
	return domain.FavoriteRecipeResponse{
		ID:       favorite.ID.String(),
		RecipeID: favorite.RecipeID,
		Title:    favorite.Title,
		Image:    favorite.Image,
		Category: favorite.Category,
		Area:     favorite.Area,
		SavedAt:  favorite.SavedAt,
	}
}

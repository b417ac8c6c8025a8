package recipe

import (
	"recipefridge/domain"
	"recipefridge/entities"
	"recipefridge/pkg/logger"

	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSearcher struct {
	byIngredient map[string][]domain.ParsedRecipe
	searchErr    error
	randomQueue  []domain.ParsedRecipe
	randomCalls  int
	searchCalls  []string
}

func (s *fakeSearcher) FilterByIngredient(_ context.Context, ingredient string) ([]domain.ParsedRecipe, error) {
	s.searchCalls = append(s.searchCalls, ingredient)
	if s.searchErr != nil {
		return nil, s.searchErr
	}
	return s.byIngredient[ingredient], nil
}

func (s *fakeSearcher) Random(_ context.Context) (*domain.ParsedRecipe, error) {
	s.randomCalls++
	if len(s.randomQueue) == 0 {
		return nil, errors.New("random source exhausted")
	}
	recipe := s.randomQueue[0]
	s.randomQueue = s.randomQueue[1:]
	return &recipe, nil
}

func summary(id, title string) domain.ParsedRecipe {
	return domain.ParsedRecipe{ID: id, Title: title}
}

func withIngredients(id, title string, names ...string) domain.ParsedRecipe {
	recipe := summary(id, title)
	for _, name := range names {
		recipe.Ingredients = append(recipe.Ingredients, domain.RecipeIngredient{Name: name})
	}
	return recipe
}

func owned(name string) *entities.Ingredient {
	return &entities.Ingredient{Name: name}
}

func ownedExpiring(name string, days int) *entities.Ingredient {
	expiresAt := time.Now().Add(time.Duration(days) * 24 * time.Hour)
	return &entities.Ingredient{Name: name, ExpiresAt: &expiresAt}
}

func uniqueRandoms(n int) []domain.ParsedRecipe {
	recipes := make([]domain.ParsedRecipe, 0, n)
	for i := 0; i < n; i++ {
		recipes = append(recipes, summary(fmt.Sprintf("random-%d", i), fmt.Sprintf("Random %d", i)))
	}
	return recipes
}

func TestMatchEmptyInventoryMakesNoCalls(t *testing.T) {
	searcher := &fakeSearcher{}
	m := NewMatcher(searcher, logger.NewNop())

	matches, err := m.Match(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, matches)
	assert.Empty(t, searcher.searchCalls)
	assert.Zero(t, searcher.randomCalls)
}

func TestMatchDeduplicatesOverlappingResults(t *testing.T) {
	searcher := &fakeSearcher{
		byIngredient: map[string][]domain.ParsedRecipe{
			"chicken": {summary("1", "Chicken Soup"), summary("2", "Chicken Curry")},
			"rice":    {summary("2", "Chicken Curry"), summary("3", "Fried Rice")},
		},
		randomQueue: uniqueRandoms(30),
	}
	m := NewMatcher(searcher, logger.NewNop())

	matches, err := m.Match(context.Background(), []*entities.Ingredient{owned("chicken"), owned("rice")})
	require.NoError(t, err)

	counts := map[string]int{}
	for _, match := range matches {
		counts[match.Recipe.ID]++
	}
	assert.Equal(t, 1, counts["1"])
	assert.Equal(t, 1, counts["2"])
	assert.Equal(t, 1, counts["3"])
}

func TestMatchExpiringNamesSearchedFirst(t *testing.T) {
	searcher := &fakeSearcher{randomQueue: uniqueRandoms(30)}
	m := NewMatcher(searcher, logger.NewNop())

	_, err := m.Match(context.Background(), []*entities.Ingredient{
		owned("rice"),
		ownedExpiring("milk", 2),
		owned("flour"),
		ownedExpiring("spinach", 1),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"milk", "spinach", "rice", "flour"}, searcher.searchCalls)
}

func TestMatchSearchQueueTruncatedToTen(t *testing.T) {
	searcher := &fakeSearcher{randomQueue: uniqueRandoms(30)}
	m := NewMatcher(searcher, logger.NewNop())

	var inventory []*entities.Ingredient
	for i := 0; i < 14; i++ {
		inventory = append(inventory, owned(fmt.Sprintf("ingredient-%d", i)))
	}

	_, err := m.Match(context.Background(), inventory)
	require.NoError(t, err)
	assert.Len(t, searcher.searchCalls, 10)
}

func TestMatchBackfillStopsAtFifteenResults(t *testing.T) {
	searcher := &fakeSearcher{randomQueue: uniqueRandoms(40)}
	m := NewMatcher(searcher, logger.NewNop())

	matches, err := m.Match(context.Background(), []*entities.Ingredient{owned("chicken")})
	require.NoError(t, err)

	assert.Len(t, matches, 15)
	assert.Equal(t, 15, searcher.randomCalls)
}

func TestMatchBackfillStopsAtThirtyAttempts(t *testing.T) {
	// every random call returns the same recipe, so the result set never
	// grows past one
	duplicate := summary("dup", "Duplicate")
	queue := make([]domain.ParsedRecipe, 40)
	for i := range queue {
		queue[i] = duplicate
	}
	searcher := &fakeSearcher{randomQueue: queue}
	m := NewMatcher(searcher, logger.NewNop())

	matches, err := m.Match(context.Background(), []*entities.Ingredient{owned("chicken")})
	require.NoError(t, err)

	assert.Equal(t, 30, searcher.randomCalls)
	assert.Len(t, matches, 1)
}

func TestMatchFailedSearchDegradesToEmpty(t *testing.T) {
	searcher := &fakeSearcher{
		searchErr:   errors.New("catalog unavailable"),
		randomQueue: uniqueRandoms(30),
	}
	m := NewMatcher(searcher, logger.NewNop())

	matches, err := m.Match(context.Background(), []*entities.Ingredient{owned("chicken")})
	require.NoError(t, err)
	assert.Len(t, matches, 15) // backfill still fills the page
}

func TestMatchBreakdownBidirectionalSubstring(t *testing.T) {
	searcher := &fakeSearcher{
		byIngredient: map[string][]domain.ParsedRecipe{
			"Chicken Breast": {withIngredients("1", "Satay", "chicken", "peanut", "soy sauce")},
		},
		randomQueue: uniqueRandoms(30),
	}
	m := NewMatcher(searcher, logger.NewNop())

	matches, err := m.Match(context.Background(), []*entities.Ingredient{
		owned("Chicken Breast"), // recipe name contained in owned name
		owned("pea"),            // owned name contained in recipe name
	})
	require.NoError(t, err)

	var satay *domain.RecipeMatch
	for i := range matches {
		if matches[i].Recipe.ID == "1" {
			satay = &matches[i]
		}
	}
	require.NotNil(t, satay)
	assert.Equal(t, []string{"chicken", "peanut"}, satay.MatchedIngredients)
	assert.Equal(t, []string{"soy sauce"}, satay.MissingIngredients)
}

func TestMatchRankingPrefersExpiringCoverage(t *testing.T) {
	searcher := &fakeSearcher{
		byIngredient: map[string][]domain.ParsedRecipe{
			"milk": {
				withIngredients("wide", "Big Bake", "flour", "sugar", "butter"),
				withIngredients("urgent", "Milk Pudding", "milk"),
			},
		},
		randomQueue: uniqueRandoms(30),
	}
	m := NewMatcher(searcher, logger.NewNop())

	matches, err := m.Match(context.Background(), []*entities.Ingredient{
		ownedExpiring("milk", 2), // urgency score 5, weight 6
		owned("flour"),
		owned("sugar"),
		owned("butter"),
	})
	require.NoError(t, err)

	require.True(t, len(matches) >= 2)
	assert.Equal(t, "urgent", matches[0].Recipe.ID)
	assert.Equal(t, 6, matches[0].ExpiringMatchCount)
	assert.Equal(t, "wide", matches[1].Recipe.ID)
	assert.Equal(t, 0, matches[1].ExpiringMatchCount)
	assert.Len(t, matches[1].MatchedIngredients, 3)
}

func TestMatchRankingTieBrokenByMatchCount(t *testing.T) {
	searcher := &fakeSearcher{
		byIngredient: map[string][]domain.ParsedRecipe{
			"flour": {
				withIngredients("narrow", "Flatbread", "flour"),
				withIngredients("wide", "Pancakes", "flour", "sugar"),
			},
		},
		randomQueue: uniqueRandoms(30),
	}
	m := NewMatcher(searcher, logger.NewNop())

	matches, err := m.Match(context.Background(), []*entities.Ingredient{
		owned("flour"), owned("sugar"),
	})
	require.NoError(t, err)

	require.True(t, len(matches) >= 2)
	assert.Equal(t, "wide", matches[0].Recipe.ID)
	assert.Equal(t, "narrow", matches[1].Recipe.ID)
}

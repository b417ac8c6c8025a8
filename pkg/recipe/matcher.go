package recipe

import (
	"recipefridge/domain"
	"recipefridge/entities"
	"recipefridge/pkg/expiry"
	"recipefridge/pkg/logger"

	"context"
	"sort"
	"strings"
	"time"
)

const (
	// searchQueueLimit caps how many ingredient names trigger a catalog
	// search per run; expiring names take the slots first.
	searchQueueLimit = 10

	// maxResults is both the backfill target and the size of the
	// returned ranking.
	maxResults = 15

	// maxBackfillAttempts bounds the random backfill loop so a random
	// source that keeps producing duplicates cannot stall a run.
	maxBackfillAttempts = 30
)

type (
	// RecipeSearcher is the slice of the catalog client the matcher
	// needs. FilterByIngredient returns summaries; Random returns a
	// full recipe.
	RecipeSearcher interface {
		FilterByIngredient(ctx context.Context, ingredient string) ([]domain.ParsedRecipe, error)
		Random(ctx context.Context) (*domain.ParsedRecipe, error)
	}

	Matcher interface {
		Match(ctx context.Context, ingredients []*entities.Ingredient) ([]domain.RecipeMatch, error)
	}

	matcher struct {
		searcher RecipeSearcher
		log      *logger.Logger
	}
)

func NewMatcher(searcher RecipeSearcher, log *logger.Logger) Matcher {
	return &matcher{searcher: searcher, log: log}
}

// Match searches the catalog once per queued ingredient name, unions
// the results by recipe id (first occurrence wins), backfills with
// random recipes up to maxResults, then ranks every candidate by how
// much expiring inventory it would use and, on ties, by how many
// inventory items it matches at all.
func (m *matcher) Match(ctx context.Context, ingredients []*entities.Ingredient) ([]domain.RecipeMatch, error) {
	if len(ingredients) == 0 {
		return []domain.RecipeMatch{}, nil
	}

	now := time.Now()
	urgency := make(map[string]int, len(ingredients))
	var expiring, rest []string
	for _, ingredient := range ingredients {
		if score, ok := expiry.UrgencyScore(ingredient.ExpiresAt, now); ok {
			urgency[strings.ToLower(ingredient.Name)] = score
			expiring = append(expiring, ingredient.Name)
		} else {
			rest = append(rest, ingredient.Name)
		}
	}

	queue := append(expiring, rest...)
	if len(queue) > searchQueueLimit {
		queue = queue[:searchQueueLimit]
	}

	seen := make(map[string]bool)
	var candidates []domain.ParsedRecipe
	for _, name := range queue {
		results, err := m.searcher.FilterByIngredient(ctx, name)
		if err != nil {
			// a failed search for one name is zero results, not a
			// failed run
			m.log.Warnw("ingredient search failed", "ingredient", name, "error", err)
			continue
		}
		for _, result := range results {
			if result.ID == "" || seen[result.ID] {
				continue
			}
			seen[result.ID] = true
			candidates = append(candidates, result)
		}
	}

	for attempts := 0; len(candidates) < maxResults && attempts < maxBackfillAttempts; attempts++ {
		result, err := m.searcher.Random(ctx)
		if err != nil || result == nil {
			continue
		}
		if result.ID == "" || seen[result.ID] {
			continue
		}
		seen[result.ID] = true
		candidates = append(candidates, *result)
	}

	names := make([]string, 0, len(ingredients))
	for _, ingredient := range ingredients {
		names = append(names, ingredient.Name)
	}

	matches := make([]domain.RecipeMatch, 0, len(candidates))
	for _, candidate := range candidates {
		matches = append(matches, breakdown(candidate, names, urgency))
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].ExpiringMatchCount != matches[j].ExpiringMatchCount {
			return matches[i].ExpiringMatchCount > matches[j].ExpiringMatchCount
		}
		return len(matches[i].MatchedIngredients) > len(matches[j].MatchedIngredients)
	})

	if len(matches) > maxResults {
		matches = matches[:maxResults]
	}
	return matches, nil
}

// breakdown partitions a recipe's ingredient list against the full
// inventory name list. Matching is case-insensitive substring
// containment in either direction, first hit wins. The rule is
// deliberately permissive; tightening it to exact or token matching
// would silently change ranking outcomes.
func breakdown(candidate domain.ParsedRecipe, names []string, urgency map[string]int) domain.RecipeMatch {
	match := domain.RecipeMatch{
		Recipe:             candidate,
		MatchedIngredients: []string{},
		MissingIngredients: []string{},
	}

	for _, recipeIngredient := range candidate.Ingredients {
		recipeName := strings.ToLower(recipeIngredient.Name)
		matched := false
		for _, name := range names {
			owned := strings.ToLower(name)
			if strings.Contains(recipeName, owned) || strings.Contains(owned, recipeName) {
				match.MatchedIngredients = append(match.MatchedIngredients, recipeIngredient.Name)
				if score, ok := urgency[owned]; ok {
					match.ExpiringMatchCount += score + 1
				}
				matched = true
				break
			}
		}
		if !matched {
			match.MissingIngredients = append(match.MissingIngredients, recipeIngredient.Name)
		}
	}
	return match
}

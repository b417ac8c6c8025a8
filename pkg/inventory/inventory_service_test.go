package inventory

import (
	"recipefridge/domain"
	"recipefridge/entities"

	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeIngredientRepository struct {
	ingredients []*entities.Ingredient
}

func (r *fakeIngredientRepository) AddIngredient(_ context.Context, ingredient *entities.Ingredient) error {
	copied := *ingredient
	r.ingredients = append(r.ingredients, &copied)
	return nil
}

func (r *fakeIngredientRepository) GetIngredientByID(_ context.Context, id string) (*entities.Ingredient, error) {
	for _, ingredient := range r.ingredients {
		if ingredient.ID.String() == id {
			copied := *ingredient
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeIngredientRepository) GetIngredientByName(_ context.Context, name string) (*entities.Ingredient, error) {
	for _, ingredient := range r.ingredients {
		if strings.EqualFold(ingredient.Name, name) {
			copied := *ingredient
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeIngredientRepository) UpdateIngredient(_ context.Context, ingredient *entities.Ingredient) error {
	for i, existing := range r.ingredients {
		if existing.ID == ingredient.ID {
			copied := *ingredient
			r.ingredients[i] = &copied
			return nil
		}
	}
	return nil
}

func (r *fakeIngredientRepository) DeleteIngredient(_ context.Context, id string) error {
	kept := r.ingredients[:0]
	for _, ingredient := range r.ingredients {
		if ingredient.ID.String() != id {
			kept = append(kept, ingredient)
		}
	}
	r.ingredients = kept
	return nil
}

func (r *fakeIngredientRepository) GetIngredients(_ context.Context) ([]*entities.Ingredient, error) {
	result := make([]*entities.Ingredient, 0, len(r.ingredients))
	for _, ingredient := range r.ingredients {
		copied := *ingredient
		result = append(result, &copied)
	}
	return result, nil
}

type fakeScheduler struct {
	scheduled []string
	cancelled []string
}

func (s *fakeScheduler) ScheduleExpiryReminder(ingredient *entities.Ingredient) {
	s.scheduled = append(s.scheduled, ingredient.Name)
}

func (s *fakeScheduler) CancelReminder(ingredientID string) {
	s.cancelled = append(s.cancelled, ingredientID)
}

func (s *fakeScheduler) CancelAllReminders() {}

func newTestService() (InventoryService, *fakeIngredientRepository, *fakeScheduler) {
	repo := &fakeIngredientRepository{}
	scheduler := &fakeScheduler{}
	return NewInventoryService(repo, scheduler), repo, scheduler
}

func TestAddIngredientMergesByNameCaseInsensitive(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddIngredient(ctx, domain.AddIngredientRequest{
		Name: "Egg", Category: "Protein", Unit: "pcs", Amount: 2,
	})
	require.NoError(t, err)

	res, err := svc.AddIngredient(ctx, domain.AddIngredientRequest{
		Name: "egg", Category: "Protein", Unit: "pcs", Amount: 3,
	})
	require.NoError(t, err)

	require.Len(t, repo.ingredients, 1)
	assert.Equal(t, "Egg", res.Name) // original casing preserved
	assert.Equal(t, 5.0, res.Amount)
}

func TestAddIngredientSumsAllCaseVariants(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	for _, name := range []string{"Milk", "milk", "MILK", "mIlK"} {
		_, err := svc.AddIngredient(ctx, domain.AddIngredientRequest{
			Name: name, Category: "Dairy", Unit: "ml", Amount: 100,
		})
		require.NoError(t, err)
	}

	require.Len(t, repo.ingredients, 1)
	assert.Equal(t, "Milk", repo.ingredients[0].Name)
	assert.Equal(t, 400.0, repo.ingredients[0].Amount)
}

func TestAddIngredientSchedulesReminderForFutureExpiry(t *testing.T) {
	svc, _, scheduler := newTestService()
	ctx := context.Background()

	future := time.Now().AddDate(0, 0, 5).Format("2006-01-02")
	_, err := svc.AddIngredient(ctx, domain.AddIngredientRequest{
		Name: "Salmon Fillet", Category: "Seafood", Unit: "g", Amount: 300, ExpiresAt: future,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Salmon Fillet"}, scheduler.scheduled)
}

func TestAddIngredientRejectsMalformedExpiryDate(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.AddIngredient(context.Background(), domain.AddIngredientRequest{
		Name: "Bread", Category: "Grain", Unit: "pcs", Amount: 1, ExpiresAt: "next tuesday",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidExpiryDate)
}

func TestConsumeSubtractsAndRemovesDrained(t *testing.T) {
	svc, repo, scheduler := newTestService()
	ctx := context.Background()

	_, err := svc.AddIngredient(ctx, domain.AddIngredientRequest{
		Name: "Rice", Category: "Grain", Unit: "g", Amount: 500,
	})
	require.NoError(t, err)
	_, err = svc.AddIngredient(ctx, domain.AddIngredientRequest{
		Name: "Butter", Category: "Dairy", Unit: "g", Amount: 50,
	})
	require.NoError(t, err)

	err = svc.Consume(ctx, []domain.ConsumedItem{
		{Name: "rice", Amount: 200},
		{Name: "butter", Amount: 50},
		{Name: "saffron", Amount: 1}, // never tracked, skipped
	})
	require.NoError(t, err)

	require.Len(t, repo.ingredients, 1)
	assert.Equal(t, "Rice", repo.ingredients[0].Name)
	assert.Equal(t, 300.0, repo.ingredients[0].Amount)
	assert.Len(t, scheduler.cancelled, 1) // drained butter reminder cancelled
}

func TestConsumeMoreThanOwnedRemovesEntry(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddIngredient(ctx, domain.AddIngredientRequest{
		Name: "Flour", Category: "Pantry", Unit: "g", Amount: 100,
	})
	require.NoError(t, err)

	err = svc.Consume(ctx, []domain.ConsumedItem{{Name: "Flour", Amount: 150}})
	require.NoError(t, err)
	assert.Empty(t, repo.ingredients)
}

func TestUpdateIngredientAppliesOnlyGivenFields(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddIngredient(ctx, domain.AddIngredientRequest{
		Name: "Tomato", Category: "Vegetable", Unit: "pcs", Amount: 3,
	})
	require.NoError(t, err)
	id := repo.ingredients[0].ID.String()

	amount := 6.0
	res, err := svc.UpdateIngredient(ctx, id, domain.UpdateIngredientRequest{Amount: &amount})
	require.NoError(t, err)

	assert.Equal(t, 6.0, res.Amount)
	assert.Equal(t, "Tomato", res.Name)
	assert.Equal(t, "Vegetable", res.Category)
}

func TestUpdateIngredientClearingExpiryCancelsReminder(t *testing.T) {
	svc, repo, scheduler := newTestService()
	ctx := context.Background()

	future := time.Now().AddDate(0, 0, 2).Format("2006-01-02")
	_, err := svc.AddIngredient(ctx, domain.AddIngredientRequest{
		Name: "Yogurt", Category: "Dairy", Unit: "g", Amount: 150, ExpiresAt: future,
	})
	require.NoError(t, err)
	id := repo.ingredients[0].ID.String()

	cleared := ""
	_, err = svc.UpdateIngredient(ctx, id, domain.UpdateIngredientRequest{ExpiresAt: &cleared})
	require.NoError(t, err)

	assert.Equal(t, []string{id}, scheduler.cancelled)
	assert.Nil(t, repo.ingredients[0].ExpiresAt)
}

func TestUpdateIngredientUnknownID(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.UpdateIngredient(context.Background(), "7d48ed2f-39f3-4b3f-9a35-0d6b4f0f63a1", domain.UpdateIngredientRequest{})
	assert.ErrorIs(t, err, domain.ErrIngredientNotFound)
}

func TestRemoveIngredientCancelsReminder(t *testing.T) {
	svc, repo, scheduler := newTestService()
	ctx := context.Background()

	_, err := svc.AddIngredient(ctx, domain.AddIngredientRequest{
		Name: "Shrimp", Category: "Seafood", Unit: "g", Amount: 250,
	})
	require.NoError(t, err)
	id := repo.ingredients[0].ID.String()

	require.NoError(t, svc.RemoveIngredient(ctx, id))
	assert.Empty(t, repo.ingredients)
	assert.Equal(t, []string{id}, scheduler.cancelled)
}

func TestGetDashboardStats(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	soon := time.Now().AddDate(0, 0, 2).Format("2006-01-02")
	fresh := time.Now().AddDate(0, 0, 20).Format("2006-01-02")

	for _, req := range []domain.AddIngredientRequest{
		{Name: "Milk", Category: "Dairy", Unit: "ml", Amount: 1000, ExpiresAt: soon},
		{Name: "Pasta", Category: "Grain", Unit: "g", Amount: 500, ExpiresAt: fresh},
		{Name: "Salt", Category: "Pantry", Unit: "g", Amount: 500},
	} {
		_, err := svc.AddIngredient(ctx, req)
		require.NoError(t, err)
	}

	stats, err := svc.GetDashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalItems)
	assert.Equal(t, 1, stats.ExpiringItems)
	assert.Equal(t, 1, stats.FreshItems)
	assert.Equal(t, 1, stats.NoExpiryItems)
}

func TestGetExpiringIngredientsSortedSoonestFirst(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	in3 := time.Now().AddDate(0, 0, 3).Format("2006-01-02")
	in1 := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	in20 := time.Now().AddDate(0, 0, 20).Format("2006-01-02")

	for _, req := range []domain.AddIngredientRequest{
		{Name: "Chicken", Category: "Protein", Unit: "g", Amount: 400, ExpiresAt: in3},
		{Name: "Spinach", Category: "Vegetable", Unit: "g", Amount: 100, ExpiresAt: in1},
		{Name: "Cheese", Category: "Dairy", Unit: "g", Amount: 200, ExpiresAt: in20},
	} {
		_, err := svc.AddIngredient(ctx, req)
		require.NoError(t, err)
	}

	expiring, err := svc.GetExpiringIngredients(ctx)
	require.NoError(t, err)
	require.Len(t, expiring, 2)
	assert.Equal(t, "Spinach", expiring[0].Name)
	assert.Equal(t, "Chicken", expiring[1].Name)
}

package shopping

import (
	"recipefridge/domain"
	"recipefridge/entities"

	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeShoppingRepository struct {
	items       []*entities.ShoppingItem
	ingredients *fakeIngredientRepository
}

func (r *fakeShoppingRepository) AddShoppingItem(_ context.Context, item *entities.ShoppingItem) error {
	copied := *item
	r.items = append(r.items, &copied)
	return nil
}

func (r *fakeShoppingRepository) GetShoppingItemByID(_ context.Context, id string) (*entities.ShoppingItem, error) {
	for _, item := range r.items {
		if item.ID.String() == id {
			copied := *item
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeShoppingRepository) GetShoppingItems(_ context.Context) ([]*entities.ShoppingItem, error) {
	result := make([]*entities.ShoppingItem, 0, len(r.items))
	for _, item := range r.items {
		copied := *item
		result = append(result, &copied)
	}
	return result, nil
}

func (r *fakeShoppingRepository) UpdateShoppingItem(_ context.Context, item *entities.ShoppingItem) error {
	for i, existing := range r.items {
		if existing.ID == item.ID {
			copied := *item
			r.items[i] = &copied
			return nil
		}
	}
	return nil
}

func (r *fakeShoppingRepository) DeleteShoppingItem(_ context.Context, id string) error {
	kept := r.items[:0]
	for _, item := range r.items {
		if item.ID.String() != id {
			kept = append(kept, item)
		}
	}
	r.items = kept
	return nil
}

func (r *fakeShoppingRepository) DeleteCheckedItems(_ context.Context) error {
	kept := r.items[:0]
	for _, item := range r.items {
		if !item.Checked {
			kept = append(kept, item)
		}
	}
	r.items = kept
	return nil
}

func (r *fakeShoppingRepository) PromoteToKitchen(ctx context.Context, itemID string, ingredient *entities.Ingredient, merged bool) error {
	if merged {
		if err := r.ingredients.UpdateIngredient(ctx, ingredient); err != nil {
			return err
		}
	} else {
		if err := r.ingredients.AddIngredient(ctx, ingredient); err != nil {
			return err
		}
	}
	return r.DeleteShoppingItem(ctx, itemID)
}

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

func newTestService() (ShoppingService, *fakeShoppingRepository, *fakeIngredientRepository) {
	ingredients := &fakeIngredientRepository{}
	repo := &fakeShoppingRepository{ingredients: ingredients}
	return NewShoppingService(repo, ingredients), repo, ingredients
}

func TestAddItemKeepsDuplicateNamesSeparate(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, domain.AddShoppingItemRequest{Name: "Milk", Category: "Dairy", Unit: "ml", Amount: 1000})
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, domain.AddShoppingItemRequest{Name: "milk", Category: "Dairy", Unit: "ml", Amount: 500})
	require.NoError(t, err)

	assert.Len(t, repo.items, 2)
}

func TestToggleItemFlipsChecked(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	added, err := svc.AddItem(ctx, domain.AddShoppingItemRequest{Name: "Bread", Category: "Grain", Unit: "pcs", Amount: 1})
	require.NoError(t, err)

	toggled, err := svc.ToggleItem(ctx, added.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Checked)

	toggled, err = svc.ToggleItem(ctx, added.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Checked)
	assert.False(t, repo.items[0].Checked)
}

func TestToggleItemUnknownID(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.ToggleItem(context.Background(), "b6a1f9a3-8f51-4f78-b1a1-2a54ce2f3a11")
	assert.ErrorIs(t, err, domain.ErrShoppingItemNotFound)
}

func TestClearCheckedRemovesOnlyCheckedItems(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	first, err := svc.AddItem(ctx, domain.AddShoppingItemRequest{Name: "Apples", Category: "Fruit", Unit: "pcs", Amount: 6})
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, domain.AddShoppingItemRequest{Name: "Oats", Category: "Grain", Unit: "g", Amount: 500})
	require.NoError(t, err)

	_, err = svc.ToggleItem(ctx, first.ID)
	require.NoError(t, err)

	require.NoError(t, svc.ClearChecked(ctx))
	require.Len(t, repo.items, 1)
	assert.Equal(t, "Oats", repo.items[0].Name)
}

func TestMoveToKitchenCreatesNewIngredient(t *testing.T) {
	svc, repo, ingredients := newTestService()
	ctx := context.Background()

	added, err := svc.AddItem(ctx, domain.AddShoppingItemRequest{Name: "Paprika", Category: "Pantry", Unit: "g", Amount: 40})
	require.NoError(t, err)

	res, err := svc.MoveToKitchen(ctx, added.ID)
	require.NoError(t, err)

	assert.False(t, res.Merged)
	assert.Equal(t, "Paprika", res.Ingredient.Name)
	assert.Equal(t, 40.0, res.Ingredient.Amount)
	assert.Equal(t, "no-expiry", res.Ingredient.ExpiryStatus)
	assert.Empty(t, repo.items)
	require.Len(t, ingredients.ingredients, 1)
}

func TestMoveToKitchenMergesIntoExistingIngredient(t *testing.T) {
	svc, repo, ingredients := newTestService()
	ctx := context.Background()

	require.NoError(t, ingredients.AddIngredient(ctx, &entities.Ingredient{
		ID: uuid.New(), Name: "Olive Oil", Category: "Pantry", Unit: "ml", Amount: 250,
	}))

	added, err := svc.AddItem(ctx, domain.AddShoppingItemRequest{Name: "olive oil", Category: "Pantry", Unit: "ml", Amount: 500})
	require.NoError(t, err)

	res, err := svc.MoveToKitchen(ctx, added.ID)
	require.NoError(t, err)

	assert.True(t, res.Merged)
	assert.Equal(t, "Olive Oil", res.Ingredient.Name) // inventory casing wins
	assert.Equal(t, 750.0, res.Ingredient.Amount)
	assert.Empty(t, repo.items)
	require.Len(t, ingredients.ingredients, 1)
	assert.Equal(t, 750.0, ingredients.ingredients[0].Amount)
}

func TestMoveToKitchenUnknownID(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.MoveToKitchen(context.Background(), "b6a1f9a3-8f51-4f78-b1a1-2a54ce2f3a11")
	assert.ErrorIs(t, err, domain.ErrShoppingItemNotFound)
}

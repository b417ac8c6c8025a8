package recipe

import (
	"recipefridge/entities"

	"context"

	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		AddCookedRecipe(ctx context.Context, record *entities.CookedRecipe) error
		GetCookedRecipes(ctx context.Context) ([]*entities.CookedRecipe, error)
		CountCookedRecipes(ctx context.Context) (int64, error)
		DeleteOldestCookedRecipes(ctx context.Context, n int) error

		AddFavorite(ctx context.Context, favorite *entities.FavoriteRecipe) error
		GetFavoriteByRecipeID(ctx context.Context, recipeID string) (*entities.FavoriteRecipe, error)
		GetFavorites(ctx context.Context) ([]*entities.FavoriteRecipe, error)
		DeleteFavorite(ctx context.Context, recipeID string) error
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) AddCookedRecipe(ctx context.Context, record *entities.CookedRecipe) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *recipeRepository) GetCookedRecipes(ctx context.Context) ([]*entities.CookedRecipe, error) {
	var records []*entities.CookedRecipe
	if err := r.db.WithContext(ctx).Order("cooked_at desc").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *recipeRepository) CountCookedRecipes(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.CookedRecipe{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *recipeRepository) DeleteOldestCookedRecipes(ctx context.Context, n int) error {
	var ids []string
	if err := r.db.WithContext(ctx).
		Model(&entities.CookedRecipe{}).
		Order("cooked_at asc").
		Limit(n).
		Pluck("id", &ids).Error; err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&entities.CookedRecipe{}).Error
}

func (r *recipeRepository) AddFavorite(ctx context.Context, favorite *entities.FavoriteRecipe) error {
	return r.db.WithContext(ctx).Create(favorite).Error
}

func (r *recipeRepository) GetFavoriteByRecipeID(ctx context.Context, recipeID string) (*entities.FavoriteRecipe, error) {
	var favorite entities.FavoriteRecipe
	if err := r.db.WithContext(ctx).Where("recipe_id = ?", recipeID).First(&favorite).Error; err != nil {
		return nil, err
	}
	return &favorite, nil
}

func (r *recipeRepository) GetFavorites(ctx context.Context) ([]*entities.FavoriteRecipe, error) {
	var favorites []*entities.FavoriteRecipe
	if err := r.db.WithContext(ctx).Order("saved_at desc").Find(&favorites).Error; err != nil {
		return nil, err
	}
	return favorites, nil
}

func (r *recipeRepository) DeleteFavorite(ctx context.Context, recipeID string) error {
	return r.db.WithContext(ctx).Where("recipe_id = ?", recipeID).Delete(&entities.FavoriteRecipe{}).Error
}

package shopping

import (
	"recipefridge/entities"

	"context"

	"gorm.io/gorm"
)

type (
	ShoppingRepository interface {
		AddShoppingItem(ctx context.Context, item *entities.ShoppingItem) error
		GetShoppingItemByID(ctx context.Context, id string) (*entities.ShoppingItem, error)
		GetShoppingItems(ctx context.Context) ([]*entities.ShoppingItem, error)
		UpdateShoppingItem(ctx context.Context, item *entities.ShoppingItem) error
		DeleteShoppingItem(ctx context.Context, id string) error
		DeleteCheckedItems(ctx context.Context) error
		PromoteToKitchen(ctx context.Context, itemID string, ingredient *entities.Ingredient, merged bool) error
	}

	shoppingRepository struct {
		db *gorm.DB
	}
)

func NewShoppingRepository(db *gorm.DB) ShoppingRepository {
	return &shoppingRepository{db: db}
}

func (r *shoppingRepository) AddShoppingItem(ctx context.Context, item *entities.ShoppingItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *shoppingRepository) GetShoppingItemByID(ctx context.Context, id string) (*entities.ShoppingItem, error) {
	var item entities.ShoppingItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *shoppingRepository) GetShoppingItems(ctx context.Context) ([]*entities.ShoppingItem, error) {
	var items []*entities.ShoppingItem
	if err := r.db.WithContext(ctx).Order("added_at asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *shoppingRepository) UpdateShoppingItem(ctx context.Context, item *entities.ShoppingItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *shoppingRepository) DeleteShoppingItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.ShoppingItem{}).Error
}

func (r *shoppingRepository) DeleteCheckedItems(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("checked = ?", true).Delete(&entities.ShoppingItem{}).Error
}

// PromoteToKitchen writes the ingredient and removes the shopping item
// in one transaction so a crash cannot leave the item in both lists.
func (r *shoppingRepository) PromoteToKitchen(ctx context.Context, itemID string, ingredient *entities.Ingredient, merged bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if merged {
			if err := tx.Save(ingredient).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Create(ingredient).Error; err != nil {
				return err
			}
		}
		return tx.Where("id = ?", itemID).Delete(&entities.ShoppingItem{}).Error
	})
}

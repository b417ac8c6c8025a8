package shopping

import (
	"recipefridge/domain"
	"recipefridge/entities"
	"recipefridge/pkg/inventory"

	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ShoppingService interface {
		AddItem(ctx context.Context, req domain.AddShoppingItemRequest) (domain.ShoppingItemResponse, error)
		ToggleItem(ctx context.Context, id string) (domain.ShoppingItemResponse, error)
		RemoveItem(ctx context.Context, id string) error
		ClearChecked(ctx context.Context) error
		GetShoppingList(ctx context.Context) ([]domain.ShoppingItemResponse, error)
		MoveToKitchen(ctx context.Context, id string) (domain.MoveToKitchenResponse, error)
	}

	shoppingService struct {
		shoppingRepository   ShoppingRepository
		ingredientRepository inventory.IngredientRepository
	}
)

func NewShoppingService(shoppingRepository ShoppingRepository, ingredientRepository inventory.IngredientRepository) ShoppingService {
	return &shoppingService{
		shoppingRepository:   shoppingRepository,
		ingredientRepository: ingredientRepository,
	}
}

// AddItem always creates a new row. Unlike the kitchen inventory, the
// shopping list keeps duplicate names apart; they only merge when moved
// to the kitchen.
func (s *shoppingService) AddItem(ctx context.Context, req domain.AddShoppingItemRequest) (domain.ShoppingItemResponse, error) {
	item := &entities.ShoppingItem{
		ID:       uuid.New(),
		Name:     req.Name,
		Category: req.Category,
		Unit:     req.Unit,
		Amount:   req.Amount,
		AddedAt:  time.Now(),
	}

	if err := s.shoppingRepository.AddShoppingItem(ctx, item); err != nil {
		return domain.ShoppingItemResponse{}, err
	}
	return toShoppingItemResponse(item), nil
}

func (s *shoppingService) ToggleItem(ctx context.Context, id string) (domain.ShoppingItemResponse, error) {
	item, err := s.shoppingRepository.GetShoppingItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ShoppingItemResponse{}, domain.ErrShoppingItemNotFound
		}
		return domain.ShoppingItemResponse{}, err
	}

	item.Checked = !item.Checked
	if err := s.shoppingRepository.UpdateShoppingItem(ctx, item); err != nil {
		return domain.ShoppingItemResponse{}, err
	}
	return toShoppingItemResponse(item), nil
}

func (s *shoppingService) RemoveItem(ctx context.Context, id string) error {
	return s.shoppingRepository.DeleteShoppingItem(ctx, id)
}

func (s *shoppingService) ClearChecked(ctx context.Context) error {
	return s.shoppingRepository.DeleteCheckedItems(ctx)
}

func (s *shoppingService) GetShoppingList(ctx context.Context) ([]domain.ShoppingItemResponse, error) {
	items, err := s.shoppingRepository.GetShoppingItems(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.ShoppingItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toShoppingItemResponse(item))
	}
	return response, nil
}

// MoveToKitchen promotes a bought item into the kitchen inventory. When
// an ingredient of the same name (case-insensitive) already exists the
// amounts are summed into it, otherwise a new ingredient is created
// with no expiry date. The promotion is atomic: the item never appears
// in both lists.
func (s *shoppingService) MoveToKitchen(ctx context.Context, id string) (domain.MoveToKitchenResponse, error) {
	item, err := s.shoppingRepository.GetShoppingItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MoveToKitchenResponse{}, domain.ErrShoppingItemNotFound
		}
		return domain.MoveToKitchenResponse{}, err
	}

	existing, err := s.ingredientRepository.GetIngredientByName(ctx, item.Name)
	if err == nil {
		existing.Amount += item.Amount
		if err := s.shoppingRepository.PromoteToKitchen(ctx, id, existing, true); err != nil {
			return domain.MoveToKitchenResponse{}, err
		}
		return domain.MoveToKitchenResponse{
			Ingredient: inventory.ToIngredientResponse(existing, time.Now()),
			Merged:     true,
		}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.MoveToKitchenResponse{}, err
	}

	now := time.Now()
	ingredient := &entities.Ingredient{
		ID:       uuid.New(),
		Name:     item.Name,
		Category: item.Category,
		Unit:     item.Unit,
		Amount:   item.Amount,
		AddedAt:  &now,
	}
	if err := s.shoppingRepository.PromoteToKitchen(ctx, id, ingredient, false); err != nil {
		return domain.MoveToKitchenResponse{}, err
	}
	return domain.MoveToKitchenResponse{
		Ingredient: inventory.ToIngredientResponse(ingredient, now),
		Merged:     false,
	}, nil
}

func toShoppingItemResponse(item *entities.ShoppingItem) domain.ShoppingItemResponse {
	return domain.ShoppingItemResponse{
		ID:       item.ID.String(),
		Name:     item.Name,
		Category: item.Category,
		Unit:     item.Unit,
		Amount:   item.Amount,
		Checked:  item.Checked,
		AddedAt:  item.AddedAt,
	}
}

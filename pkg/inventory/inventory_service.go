package inventory

import (
	"recipefridge/domain"
	"recipefridge/entities"
	"recipefridge/pkg/expiry"
	"recipefridge/pkg/notify"

	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	InventoryService interface {
		AddIngredient(ctx context.Context, req domain.AddIngredientRequest) (domain.IngredientResponse, error)
		UpdateIngredient(ctx context.Context, id string, req domain.UpdateIngredientRequest) (domain.IngredientResponse, error)
		RemoveIngredient(ctx context.Context, id string) error
		Consume(ctx context.Context, items []domain.ConsumedItem) error
		GetIngredients(ctx context.Context, status string) ([]domain.IngredientResponse, error)
		GetExpiringIngredients(ctx context.Context) ([]domain.IngredientResponse, error)
		GetDashboardStats(ctx context.Context) (domain.DashboardStatsResponse, error)
	}

	inventoryService struct {
		ingredientRepository IngredientRepository
		scheduler            notify.Scheduler
	}
)

func NewInventoryService(ingredientRepository IngredientRepository, scheduler notify.Scheduler) InventoryService {
	return &inventoryService{
		ingredientRepository: ingredientRepository,
		scheduler:            scheduler,
	}
}

// AddIngredient merges into an existing ingredient of the same name
// (case-insensitive, original casing kept) by summing amounts, or
// inserts a new row. Units are assumed consistent per name and are not
// converted.
func (s *inventoryService) AddIngredient(ctx context.Context, req domain.AddIngredientRequest) (domain.IngredientResponse, error) {
	expiresAt, err := parseExpiryDate(req.ExpiresAt)
	if err != nil {
		return domain.IngredientResponse{}, domain.ErrInvalidExpiryDate
	}

	existing, err := s.ingredientRepository.GetIngredientByName(ctx, req.Name)
	if err == nil {
		existing.Amount += req.Amount
		if err := s.ingredientRepository.UpdateIngredient(ctx, existing); err != nil {
			return domain.IngredientResponse{}, err
		}
		return ToIngredientResponse(existing, time.Now()), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.IngredientResponse{}, err
	}

	now := time.Now()
	ingredient := &entities.Ingredient{
		ID:        uuid.New(),
		Name:      req.Name,
		Category:  req.Category,
		Unit:      req.Unit,
		Amount:    req.Amount,
		AddedAt:   &now,
		ExpiresAt: expiresAt,
	}

	if err := s.ingredientRepository.AddIngredient(ctx, ingredient); err != nil {
		return domain.IngredientResponse{}, err
	}

	if ingredient.ExpiresAt != nil && ingredient.ExpiresAt.After(now) {
		s.scheduler.ScheduleExpiryReminder(ingredient)
	}

	return ToIngredientResponse(ingredient, now), nil
}

// UpdateIngredient applies explicit per-field updates; nil fields stay
// unchanged. An empty expiry string clears the date and cancels the
// reminder.
func (s *inventoryService) UpdateIngredient(ctx context.Context, id string, req domain.UpdateIngredientRequest) (domain.IngredientResponse, error) {
	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.IngredientResponse{}, domain.ErrIngredientNotFound
		}
		return domain.IngredientResponse{}, err
	}

	if req.Name != nil {
		ingredient.Name = *req.Name
	}
	if req.Category != nil {
		ingredient.Category = *req.Category
	}
	if req.Unit != nil {
		ingredient.Unit = *req.Unit
	}
	if req.Amount != nil {
		ingredient.Amount = *req.Amount
	}

	expiryChanged := false
	if req.ExpiresAt != nil {
		expiresAt, err := parseExpiryDate(*req.ExpiresAt)
		if err != nil {
			return domain.IngredientResponse{}, domain.ErrInvalidExpiryDate
		}
		ingredient.ExpiresAt = expiresAt
		expiryChanged = true
	}

	if err := s.ingredientRepository.UpdateIngredient(ctx, ingredient); err != nil {
		return domain.IngredientResponse{}, err
	}

	if expiryChanged {
		if ingredient.ExpiresAt != nil {
			s.scheduler.ScheduleExpiryReminder(ingredient)
		} else {
			s.scheduler.CancelReminder(ingredient.ID.String())
		}
	}

	return ToIngredientResponse(ingredient, time.Now()), nil
}

func (s *inventoryService) RemoveIngredient(ctx context.Context, id string) error {
	if err := s.ingredientRepository.DeleteIngredient(ctx, id); err != nil {
		return err
	}
	s.scheduler.CancelReminder(id)
	return nil
}

// Consume subtracts cooked amounts per ingredient name. Ingredients
// drained to zero or below are removed entirely; names the user never
// tracked are skipped.
func (s *inventoryService) Consume(ctx context.Context, items []domain.ConsumedItem) error {
	for _, item := range items {
		ingredient, err := s.ingredientRepository.GetIngredientByName(ctx, item.Name)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return err
		}

		ingredient.Amount -= item.Amount
		if ingredient.Amount <= 0 {
			if err := s.ingredientRepository.DeleteIngredient(ctx, ingredient.ID.String()); err != nil {
				return err
			}
			s.scheduler.CancelReminder(ingredient.ID.String())
			continue
		}

		if err := s.ingredientRepository.UpdateIngredient(ctx, ingredient); err != nil {
			return err
		}
	}
	return nil
}

func (s *inventoryService) GetIngredients(ctx context.Context, status string) ([]domain.IngredientResponse, error) {
	ingredients, err := s.ingredientRepository.GetIngredients(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	response := make([]domain.IngredientResponse, 0, len(ingredients))
	for _, ingredient := range ingredients {
		item := ToIngredientResponse(ingredient, now)
		if status != "" && status != "all" && item.ExpiryStatus != status {
			continue
		}
		response = append(response, item)
	}
	return response, nil
}

// GetExpiringIngredients lists expiring-soon and expired ingredients,
// soonest first.
func (s *inventoryService) GetExpiringIngredients(ctx context.Context) ([]domain.IngredientResponse, error) {
	ingredients, err := s.ingredientRepository.GetIngredients(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	response := make([]domain.IngredientResponse, 0)
	for _, ingredient := range ingredients {
		status := expiry.StatusFor(ingredient.ExpiresAt, now)
		if status == expiry.StatusExpiringSoon || status == expiry.StatusExpired {
			response = append(response, ToIngredientResponse(ingredient, now))
		}
	}

	sort.SliceStable(response, func(i, j int) bool {
		return *response[i].DaysUntilExpiry < *response[j].DaysUntilExpiry
	})
	return response, nil
}

func (s *inventoryService) GetDashboardStats(ctx context.Context) (domain.DashboardStatsResponse, error) {
	ingredients, err := s.ingredientRepository.GetIngredients(ctx)
	if err != nil {
		return domain.DashboardStatsResponse{}, err
	}

	now := time.Now()
	stats := domain.DashboardStatsResponse{TotalItems: len(ingredients)}
	for _, ingredient := range ingredients {
		switch expiry.StatusFor(ingredient.ExpiresAt, now) {
		case expiry.StatusFresh:
			stats.FreshItems++
		case expiry.StatusExpiringSoon:
			stats.ExpiringItems++
		case expiry.StatusExpired:
			stats.ExpiredItems++
		case expiry.StatusNoExpiry:
			stats.NoExpiryItems++
		}
	}
	return stats, nil
}

func parseExpiryDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	expiresAt, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &expiresAt, nil
}

// ToIngredientResponse derives the expiry status and remaining days
// alongside the stored fields.
func ToIngredientResponse(ingredient *entities.Ingredient, now time.Time) domain.IngredientResponse {
	response := domain.IngredientResponse{
		ID:           ingredient.ID.String(),
		Name:         ingredient.Name,
		Category:     ingredient.Category,
		Unit:         ingredient.Unit,
		Amount:       ingredient.Amount,
		AddedAt:      ingredient.AddedAt,
		ExpiresAt:    ingredient.ExpiresAt,
		ExpiryStatus: string(expiry.StatusFor(ingredient.ExpiresAt, now)),
	}
	if days, ok := expiry.DaysUntil(ingredient.ExpiresAt, now); ok {
		response.DaysUntilExpiry = &days
	}
	return response
}

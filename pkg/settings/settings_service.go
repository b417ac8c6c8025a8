package settings

import (
	"recipefridge/domain"
	"recipefridge/entities"

	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	// SettingsService manages the single app settings row. Reads fall
	// back to defaults when the row does not exist yet; the row is
	// created lazily on the first update.
	SettingsService interface {
		GetSettings(ctx context.Context) (domain.SettingsResponse, error)
		UpdateSettings(ctx context.Context, req domain.UpdateSettingsRequest) (domain.SettingsResponse, error)
		RecipeAPIKey(ctx context.Context) string
	}

	settingsService struct {
		settingsRepository SettingsRepository
	}
)

func NewSettingsService(settingsRepository SettingsRepository) SettingsService {
	return &settingsService{settingsRepository: settingsRepository}
}

func (s *settingsService) GetSettings(ctx context.Context) (domain.SettingsResponse, error) {
	setting, err := s.settingsRepository.GetSettings(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SettingsResponse{}, nil
		}
		return domain.SettingsResponse{}, err
	}
	return domain.SettingsResponse{RecipeAPIKey: setting.RecipeAPIKey}, nil
}

func (s *settingsService) UpdateSettings(ctx context.Context, req domain.UpdateSettingsRequest) (domain.SettingsResponse, error) {
	setting, err := s.settingsRepository.GetSettings(ctx)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SettingsResponse{}, err
		}
		setting = &entities.AppSetting{ID: uuid.New()}
	}

	if req.RecipeAPIKey != nil {
		setting.RecipeAPIKey = *req.RecipeAPIKey
	}

	if err := s.settingsRepository.SaveSettings(ctx, setting); err != nil {
		return domain.SettingsResponse{}, err
	}
	return domain.SettingsResponse{RecipeAPIKey: setting.RecipeAPIKey}, nil
}

// RecipeAPIKey resolves the configured catalog key for outgoing
// requests; an empty value means the caller's default key applies. A
// read failure degrades to the default rather than failing the request.
func (s *settingsService) RecipeAPIKey(ctx context.Context) string {
	setting, err := s.settingsRepository.GetSettings(ctx)
	if err != nil {
		return ""
	}
	return setting.RecipeAPIKey
}

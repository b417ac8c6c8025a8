package settings

import (
	"recipefridge/entities"

	"context"

	"gorm.io/gorm"
)

type (
	SettingsRepository interface {
		GetSettings(ctx context.Context) (*entities.AppSetting, error)
		SaveSettings(ctx context.Context, setting *entities.AppSetting) error
	}

	settingsRepository struct {
		db *gorm.DB
	}
)

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) GetSettings(ctx context.Context) (*entities.AppSetting, error) {
	var setting entities.AppSetting
	if err := r.db.WithContext(ctx).First(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *settingsRepository) SaveSettings(ctx context.Context, setting *entities.AppSetting) error {
	return r.db.WithContext(ctx).Save(setting).Error
}

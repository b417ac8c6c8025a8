package settings

import (
	"recipefridge/domain"
	"recipefridge/entities"

	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeSettingsRepository struct {
	setting *entities.AppSetting
}

func (r *fakeSettingsRepository) GetSettings(_ context.Context) (*entities.AppSetting, error) {
	if r.setting == nil {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *r.setting
	return &copied, nil
}

func (r *fakeSettingsRepository) SaveSettings(_ context.Context, setting *entities.AppSetting) error {
	copied := *setting
	r.setting = &copied
	return nil
}

func TestGetSettingsDefaultsWhenMissing(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepository{})

	res, err := svc.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Empty(t, res.RecipeAPIKey)
}

func TestUpdateSettingsCreatesRowLazily(t *testing.T) {
	repo := &fakeSettingsRepository{}
	svc := NewSettingsService(repo)

	key := "premium123"
	res, err := svc.UpdateSettings(context.Background(), domain.UpdateSettingsRequest{RecipeAPIKey: &key})
	require.NoError(t, err)

	assert.Equal(t, "premium123", res.RecipeAPIKey)
	require.NotNil(t, repo.setting)
	assert.Equal(t, "premium123", repo.setting.RecipeAPIKey)
}

func TestUpdateSettingsNilFieldKeepsValue(t *testing.T) {
	repo := &fakeSettingsRepository{}
	svc := NewSettingsService(repo)

	key := "premium123"
	_, err := svc.UpdateSettings(context.Background(), domain.UpdateSettingsRequest{RecipeAPIKey: &key})
	require.NoError(t, err)

	res, err := svc.UpdateSettings(context.Background(), domain.UpdateSettingsRequest{})
	require.NoError(t, err)
	assert.Equal(t, "premium123", res.RecipeAPIKey)
}

func TestRecipeAPIKeyDegradesToEmpty(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepository{})
	assert.Empty(t, svc.RecipeAPIKey(context.Background()))
}

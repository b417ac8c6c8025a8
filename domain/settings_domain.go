package domain

var (
	MessageSuccessGetSettings    = "settings retrieved successfully"
	MessageSuccessUpdateSettings = "settings updated successfully"

	MessageFailedGetSettings    = "failed to retrieve settings"
	MessageFailedUpdateSettings = "failed to update settings"
)

type (
	UpdateSettingsRequest struct {
		RecipeAPIKey *string `json:"recipe_api_key,omitempty"`
	}

	SettingsResponse struct {
		RecipeAPIKey string `json:"recipe_api_key"`
	}
)

package routes

import (
	"recipefridge/internal/api/handlers"
	"recipefridge/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	IngredientHandler handlers.IngredientHandler
	ShoppingHandler   handlers.ShoppingHandler
	RecipeHandler     handlers.RecipeHandler
	BarcodeHandler    handlers.BarcodeHandler
	SettingsHandler   handlers.SettingsHandler
	Middleware        middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Ingredients()
	c.ShoppingList()
	c.Recipes()
	c.Barcode()
	c.Settings()
	c.GuestRoute()
}

func (c *Config) Ingredients() {
	ingredients := c.App.Group("/api/v1/ingredients")
	{
		ingredients.Get("/dashboard", c.IngredientHandler.GetDashboardStats)
		ingredients.Get("/expiring", c.IngredientHandler.GetExpiringIngredients)
		ingredients.Post("/consume", c.IngredientHandler.ConsumeIngredients)

		ingredients.Post("", c.IngredientHandler.AddIngredient)
		ingredients.Get("", c.IngredientHandler.GetIngredients)
		ingredients.Put("/:id", c.IngredientHandler.UpdateIngredient)
		ingredients.Delete("/:id", c.IngredientHandler.DeleteIngredient)
	}
}

func (c *Config) ShoppingList() {
	shoppingList := c.App.Group("/api/v1/shopping-list")
	{
		shoppingList.Post("", c.ShoppingHandler.AddItem)
		shoppingList.Get("", c.ShoppingHandler.GetShoppingList)
		shoppingList.Delete("/checked", c.ShoppingHandler.ClearChecked)
		shoppingList.Patch("/:id/toggle", c.ShoppingHandler.ToggleItem)
		shoppingList.Post("/:id/move-to-kitchen", c.ShoppingHandler.MoveToKitchen)
		shoppingList.Delete("/:id", c.ShoppingHandler.RemoveItem)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")
	{
		recipes.Get("/discover", c.RecipeHandler.DiscoverRecipes)
		recipes.Post("/discover/refresh", c.RecipeHandler.RefreshDiscovery)
		recipes.Get("/search", c.RecipeHandler.SearchRecipes)
		recipes.Get("/random", c.RecipeHandler.GetRandomRecipe)
		recipes.Get("/categories", c.RecipeHandler.GetCategories)
		recipes.Get("/categories/:category", c.RecipeHandler.GetRecipesByCategory)

		recipes.Post("/cooked", c.RecipeHandler.MarkAsCooked)
		recipes.Get("/history", c.RecipeHandler.GetHistory)

		recipes.Post("/favorites", c.RecipeHandler.AddFavorite)
		recipes.Get("/favorites", c.RecipeHandler.GetFavorites)
		recipes.Delete("/favorites/:id", c.RecipeHandler.RemoveFavorite)

		recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
	}
}

func (c *Config) Barcode() {
	c.App.Get("/api/v1/barcode/:code", c.BarcodeHandler.Lookup)
}

func (c *Config) Settings() {
	settings := c.App.Group("/api/v1/settings")
	{
		settings.Get("", c.SettingsHandler.GetSettings)
		settings.Patch("", c.SettingsHandler.UpdateSettings)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

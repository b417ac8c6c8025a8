package config

import (
	"recipefridge/internal/api/handlers"
	"recipefridge/internal/api/routes"
	"recipefridge/internal/middleware"
	"recipefridge/internal/utils"
	"recipefridge/pkg/barcode"
	"recipefridge/pkg/inventory"
	applogger "recipefridge/pkg/logger"
	"recipefridge/pkg/mealdb"
	"recipefridge/pkg/notify"
	"recipefridge/pkg/recipe"
	"recipefridge/pkg/settings"
	"recipefridge/pkg/shopping"

	"context"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

const (
	defaultMealDBBaseURL        = "https://www.themealdb.com"
	defaultOpenFoodFactsBaseURL = "https://world.openfoodfacts.org"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	appLog := applogger.New("app")

	// Repository
	ingredientRepository := inventory.NewIngredientRepository(db)
	shoppingRepository := shopping.NewShoppingRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	settingsRepository := settings.NewSettingsRepository(db)

	// Service
	settingsService := settings.NewSettingsService(settingsRepository)

	mealDBBaseURL := utils.GetConfig("MEALDB_BASE_URL")
	if mealDBBaseURL == "" {
		mealDBBaseURL = defaultMealDBBaseURL
	}
	mealDBClient := mealdb.NewClient(mealDBBaseURL, settingsService.RecipeAPIKey)

	openFoodFactsBaseURL := utils.GetConfig("OPENFOODFACTS_BASE_URL")
	if openFoodFactsBaseURL == "" {
		openFoodFactsBaseURL = defaultOpenFoodFactsBaseURL
	}
	barcodeService := barcode.NewBarcodeService(openFoodFactsBaseURL, appLog)

	// the scheduler must finish its initial inventory pass before any
	// mutation can request a reminder
	scheduler := notify.NewReminderScheduler(ingredientRepository)
	if err := scheduler.Start(context.Background()); err != nil {
		return nil, err
	}

	inventoryService := inventory.NewInventoryService(ingredientRepository, scheduler)
	shoppingService := shopping.NewShoppingService(shoppingRepository, ingredientRepository)
	recipeService := recipe.NewRecipeService(
		recipeRepository,
		ingredientRepository,
		inventoryService,
		mealDBClient,
		appLog,
	)

	// Handler
	ingredientHandler := handlers.NewIngredientHandler(inventoryService, validator)
	shoppingHandler := handlers.NewShoppingHandler(shoppingService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	barcodeHandler := handlers.NewBarcodeHandler(barcodeService)
	settingsHandler := handlers.NewSettingsHandler(settingsService, validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		IngredientHandler: ingredientHandler,
		ShoppingHandler:   shoppingHandler,
		RecipeHandler:     recipeHandler,
		BarcodeHandler:    barcodeHandler,
		SettingsHandler:   settingsHandler,
		Middleware:        middlewares,
	}
	routesConfig.Setup()
	return app, nil
}

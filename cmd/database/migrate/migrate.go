package migration

import (
	"recipefridge/entities"

	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.Ingredient{}); err != nil {
		log.Fatalf("Error migrating ingredient database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ShoppingItem{}); err != nil {
		log.Fatalf("Error migrating shopping item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.CookedRecipe{}); err != nil {
		log.Fatalf("Error migrating cooked recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FavoriteRecipe{}); err != nil {
		log.Fatalf("Error migrating favorite recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.AppSetting{}); err != nil {
		log.Fatalf("Error migrating app setting database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}

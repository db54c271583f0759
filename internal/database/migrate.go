package database

import (
	"fmt"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"gorm.io/gorm"
)

// Models lists every table owned by the application, parents first
func Models() []interface{} {
	return []interface{}{
		&models.Restaurant{},
		&models.Pizza{},
		&models.RestaurantPizza{},
		&models.User{},
		&models.OAuthClient{},
		&models.OAuthToken{},
	}
}

// Migrate creates or updates the schema
func Migrate(db *gorm.DB) error {
	log.Info("Migrating database schema")
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

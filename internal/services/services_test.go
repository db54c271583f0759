package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/database"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := database.DatabaseConfig{
		Driver:     "sqlite",
		Path:       fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		MaxRetries: 1,
	}
	db, err := database.InitDatabase(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, database.Migrate(db))
	return db
}

type fixtures struct {
	restaurant models.Restaurant
	pizza      models.Pizza
}

func seedFixtures(t *testing.T, db *gorm.DB) fixtures {
	t.Helper()
	f := fixtures{
		restaurant: models.Restaurant{Name: "Karen's Pizza Shack", Address: "address1"},
		pizza:      models.Pizza{Name: "Emma", Ingredients: "Dough, Tomato Sauce, Cheese"},
	}
	require.NoError(t, db.Create(&f.restaurant).Error)
	require.NoError(t, db.Create(&f.pizza).Error)
	return f
}

func ptr[T any](v T) *T {
	return &v
}

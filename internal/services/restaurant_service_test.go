package services

import (
	"context"
	"testing"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllRestaurants(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRestaurantService(db)
	ctx := context.Background()

	t.Run("empty table returns an empty slice", func(t *testing.T) {
		restaurants, err := svc.GetAllRestaurants(ctx)
		require.NoError(t, err)
		assert.NotNil(t, restaurants)
		assert.Empty(t, restaurants)
	})

	t.Run("returns rows ordered by id", func(t *testing.T) {
		require.NoError(t, db.Create(&models.Restaurant{Name: "A", Address: "a"}).Error)
		require.NoError(t, db.Create(&models.Restaurant{Name: "B", Address: "b"}).Error)

		restaurants, err := svc.GetAllRestaurants(ctx)
		require.NoError(t, err)
		require.Len(t, restaurants, 2)
		assert.Equal(t, "A", restaurants[0].Name)
		assert.Equal(t, "B", restaurants[1].Name)
	})
}

func TestGetRestaurantByID(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixtures(t, db)
	svc := NewRestaurantService(db)
	ctx := context.Background()

	rp := models.RestaurantPizza{Price: 7, PizzaID: f.pizza.ID, RestaurantID: f.restaurant.ID}
	require.NoError(t, db.Create(&rp).Error)

	t.Run("preloads menu entries and pizzas", func(t *testing.T) {
		restaurant, err := svc.GetRestaurantByID(ctx, f.restaurant.ID)
		require.NoError(t, err)
		assert.Equal(t, f.restaurant.Name, restaurant.Name)
		require.Len(t, restaurant.RestaurantPizzas, 1)
		assert.Equal(t, 7.0, restaurant.RestaurantPizzas[0].Price)
		assert.Equal(t, "Emma", restaurant.RestaurantPizzas[0].Pizza.Name)
	})

	t.Run("missing restaurant", func(t *testing.T) {
		_, err := svc.GetRestaurantByID(ctx, 9999)
		assert.ErrorIs(t, err, ErrRestaurantNotFound)
	})
}

func TestDeleteRestaurant(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixtures(t, db)
	svc := NewRestaurantService(db)
	ctx := context.Background()

	other := models.Restaurant{Name: "Sanjay's Pizza", Address: "address2"}
	require.NoError(t, db.Create(&other).Error)

	owned := []models.RestaurantPizza{
		{Price: 5, PizzaID: f.pizza.ID, RestaurantID: f.restaurant.ID},
		{Price: 6, PizzaID: f.pizza.ID, RestaurantID: f.restaurant.ID},
	}
	require.NoError(t, db.Create(&owned).Error)
	kept := models.RestaurantPizza{Price: 9, PizzaID: f.pizza.ID, RestaurantID: other.ID}
	require.NoError(t, db.Create(&kept).Error)

	require.NoError(t, svc.DeleteRestaurant(ctx, f.restaurant.ID))

	_, err := svc.GetRestaurantByID(ctx, f.restaurant.ID)
	assert.ErrorIs(t, err, ErrRestaurantNotFound)

	for _, rp := range owned {
		err := db.First(&models.RestaurantPizza{}, rp.ID).Error
		assert.Error(t, err, "restaurant pizza %d should be gone", rp.ID)
	}
	assert.NoError(t, db.First(&models.RestaurantPizza{}, kept.ID).Error)

	var pizzas int64
	db.Model(&models.Pizza{}).Count(&pizzas)
	assert.EqualValues(t, 1, pizzas, "pizzas are not owned by the restaurant")

	t.Run("deleting again reports not found", func(t *testing.T) {
		assert.ErrorIs(t, svc.DeleteRestaurant(ctx, f.restaurant.ID), ErrRestaurantNotFound)
	})
}

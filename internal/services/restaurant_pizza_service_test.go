package services

import (
	"context"
	"errors"
	"testing"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRestaurantPizza(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixtures(t, db)
	svc := NewRestaurantPizzaService(db)
	ctx := context.Background()

	valid := func() models.CreateRestaurantPizzaRequest {
		return models.CreateRestaurantPizzaRequest{
			Price:        ptr(5.0),
			PizzaID:      ptr(f.pizza.ID),
			RestaurantID: ptr(f.restaurant.ID),
		}
	}

	t.Run("creates a row with both parents populated", func(t *testing.T) {
		rp, err := svc.CreateRestaurantPizza(ctx, valid())
		require.NoError(t, err)
		assert.NotZero(t, rp.ID)
		assert.Equal(t, 5.0, rp.Price)
		assert.Equal(t, f.pizza.ID, rp.PizzaID)
		assert.Equal(t, f.restaurant.ID, rp.RestaurantID)
		assert.Equal(t, "Emma", rp.Pizza.Name)
		assert.Equal(t, "Karen's Pizza Shack", rp.Restaurant.Name)
	})

	t.Run("repeating the request creates a new row", func(t *testing.T) {
		first, err := svc.CreateRestaurantPizza(ctx, valid())
		require.NoError(t, err)
		second, err := svc.CreateRestaurantPizza(ctx, valid())
		require.NoError(t, err)
		assert.Greater(t, second.ID, first.ID)
	})

	t.Run("missing fields", func(t *testing.T) {
		for name, mutate := range map[string]func(*models.CreateRestaurantPizzaRequest){
			"price":         func(r *models.CreateRestaurantPizzaRequest) { r.Price = nil },
			"pizza_id":      func(r *models.CreateRestaurantPizzaRequest) { r.PizzaID = nil },
			"restaurant_id": func(r *models.CreateRestaurantPizzaRequest) { r.RestaurantID = nil },
		} {
			req := valid()
			mutate(&req)
			_, err := svc.CreateRestaurantPizza(ctx, req)
			assert.ErrorIs(t, err, ErrValidation, "missing %s", name)
		}
	})

	t.Run("unknown parents", func(t *testing.T) {
		req := valid()
		req.PizzaID = ptr(uint(9999))
		_, err := svc.CreateRestaurantPizza(ctx, req)
		assert.ErrorIs(t, err, ErrPizzaOrRestaurantNotFound)

		req = valid()
		req.RestaurantID = ptr(uint(9999))
		_, err = svc.CreateRestaurantPizza(ctx, req)
		assert.ErrorIs(t, err, ErrPizzaOrRestaurantNotFound)
	})

	t.Run("price out of range is a persistence error and writes nothing", func(t *testing.T) {
		var before int64
		db.Model(&models.RestaurantPizza{}).Count(&before)

		for _, price := range []float64{0, 0.5, 31, -3} {
			req := valid()
			req.Price = ptr(price)
			_, err := svc.CreateRestaurantPizza(ctx, req)

			var perr *PersistenceError
			require.True(t, errors.As(err, &perr), "price %v", price)
			assert.Contains(t, perr.Error(), "must be between 1 and 30")
		}

		var after int64
		db.Model(&models.RestaurantPizza{}).Count(&after)
		assert.Equal(t, before, after)
	})

	t.Run("price bounds are inclusive", func(t *testing.T) {
		for _, price := range []float64{1, 30} {
			req := valid()
			req.Price = ptr(price)
			_, err := svc.CreateRestaurantPizza(ctx, req)
			assert.NoError(t, err, "price %v", price)
		}
	})
}

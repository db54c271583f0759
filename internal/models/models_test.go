package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestCreateRestaurantPizzaRequestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		req     CreateRestaurantPizzaRequest
		wantErr bool
	}{
		{"complete", CreateRestaurantPizzaRequest{Price: ptr(5.0), PizzaID: ptr(uint(1)), RestaurantID: ptr(uint(2))}, false},
		{"zero values are present", CreateRestaurantPizzaRequest{Price: ptr(0.0), PizzaID: ptr(uint(0)), RestaurantID: ptr(uint(0))}, false},
		{"missing price", CreateRestaurantPizzaRequest{PizzaID: ptr(uint(1)), RestaurantID: ptr(uint(2))}, true},
		{"missing pizza", CreateRestaurantPizzaRequest{Price: ptr(5.0), RestaurantID: ptr(uint(2))}, true},
		{"missing restaurant", CreateRestaurantPizzaRequest{Price: ptr(5.0), PizzaID: ptr(uint(1))}, true},
		{"empty", CreateRestaurantPizzaRequest{}, true},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRestaurantPizzaValidate(t *testing.T) {
	for _, price := range []float64{1, 1.5, 29.99, 30} {
		rp := RestaurantPizza{Price: price, PizzaID: 1, RestaurantID: 1}
		assert.NoError(t, rp.Validate(), "price %v", price)
	}

	for _, price := range []float64{0, 0.99, 30.01, -1} {
		rp := RestaurantPizza{Price: price, PizzaID: 1, RestaurantID: 1}
		err := rp.Validate()
		require.Error(t, err, "price %v", price)
		assert.Contains(t, err.Error(), "must be between 1 and 30")
	}

	rp := RestaurantPizza{Price: 5}
	assert.Error(t, rp.Validate())
}

func TestCreateClientRequestValidate(t *testing.T) {
	assert.NoError(t, (&CreateClientRequest{Name: "job"}).Validate())
	assert.NoError(t, (&CreateClientRequest{Name: "job", GrantTypes: "client_credentials"}).Validate())
	assert.Error(t, (&CreateClientRequest{}).Validate())
	assert.Error(t, (&CreateClientRequest{Name: "job", GrantTypes: "authorization_code"}).Validate())
}

func TestRestaurantDetailResponseJSON(t *testing.T) {
	restaurant := Restaurant{
		ID:      1,
		Name:    "Karen's Pizza Shack",
		Address: "address1",
		RestaurantPizzas: []RestaurantPizza{
			{ID: 4, Price: 1, PizzaID: 2, RestaurantID: 1, Pizza: Pizza{ID: 2, Name: "Emma", Ingredients: "Dough"}},
		},
	}

	out, err := json.Marshal(NewRestaurantDetailResponse(restaurant))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 1,
		"name": "Karen's Pizza Shack",
		"address": "address1",
		"restaurant_pizzas": [
			{"id": 4, "price": 1, "pizza_id": 2, "restaurant_id": 1, "pizza": {"id": 2, "name": "Emma", "ingredients": "Dough"}}
		]
	}`, string(out))

	out, err = json.Marshal(NewRestaurantDetailResponse(Restaurant{ID: 2, Name: "Empty"}))
	require.NoError(t, err)
	assert.Contains(t, string(out), `"restaurant_pizzas":[]`)
}

func TestCreatedRestaurantPizzaResponseJSON(t *testing.T) {
	rp := RestaurantPizza{
		ID:           7,
		Price:        5,
		PizzaID:      1,
		RestaurantID: 3,
		Pizza:        Pizza{ID: 1, Name: "Emma", Ingredients: "Dough"},
		Restaurant:   Restaurant{ID: 3, Name: "Kiki's Pizza", Address: "address3"},
	}

	out, err := json.Marshal(NewCreatedRestaurantPizzaResponse(rp))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 7,
		"price": 5,
		"pizza_id": 1,
		"restaurant_id": 3,
		"pizza": {"id": 1, "name": "Emma", "ingredients": "Dough"},
		"restaurant": {"id": 3, "name": "Kiki's Pizza", "address": "address3"}
	}`, string(out))
}

func TestOAuthClientVerifyPassword(t *testing.T) {
	client := &OAuthClient{ID: "c", UserID: 0}
	assert.Equal(t, "", client.GetUserID())
	assert.False(t, client.VerifyPassword("anything"))

	client.UserID = 12
	assert.Equal(t, "12", client.GetUserID())
}

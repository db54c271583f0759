package models

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// CreateRestaurantPizzaRequest is the body accepted by POST /restaurant_pizzas.
// Fields are pointers so that an absent key can be told apart from a zero value.
type CreateRestaurantPizzaRequest struct {
	Price        *float64 `json:"price" example:"5"`
	PizzaID      *uint    `json:"pizza_id" example:"1"`
	RestaurantID *uint    `json:"restaurant_id" example:"1"`
}

// Validate reports an error if any of the three fields is missing
func (req *CreateRestaurantPizzaRequest) Validate() error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Price, validation.NotNil),
		validation.Field(&req.PizzaID, validation.NotNil),
		validation.Field(&req.RestaurantID, validation.NotNil),
	)
}

// CreateClientRequest is the body accepted by POST /api/v1/clients
type CreateClientRequest struct {
	Name       string `json:"name" example:"reporting job"`
	Domain     string `json:"domain" example:"http://localhost"`
	Scopes     string `json:"scopes" example:"read write"`
	GrantTypes string `json:"grant_types" example:"client_credentials"`
}

// Validate requires a name and only accepts the client credentials grant
func (req *CreateClientRequest) Validate() error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.GrantTypes, validation.In("client_credentials")),
	)
}

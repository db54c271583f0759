package models

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"gorm.io/gorm"
)

// Price bounds accepted for a pizza on a restaurant menu
const (
	MinPrice = 1.0
	MaxPrice = 30.0
)

// RestaurantPizza associates a Pizza with a Restaurant at a given price
type RestaurantPizza struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Price        float64 `gorm:"not null" json:"price"`
	PizzaID      uint    `gorm:"not null;index" json:"pizza_id"`
	RestaurantID uint    `gorm:"not null;index" json:"restaurant_id"`

	Pizza      Pizza      `json:"-"`
	Restaurant Restaurant `json:"-"`
}

func (RestaurantPizza) TableName() string {
	return "restaurant_pizzas"
}

// Validate checks the column values of the association
func (rp *RestaurantPizza) Validate() error {
	return validation.ValidateStruct(rp,
		validation.Field(&rp.Price, validation.By(priceInRange)),
		validation.Field(&rp.PizzaID, validation.Required),
		validation.Field(&rp.RestaurantID, validation.Required),
	)
}

// BeforeCreate runs Validate so an invalid row fails inside the insert transaction
func (rp *RestaurantPizza) BeforeCreate(tx *gorm.DB) error {
	return rp.Validate()
}

var errPriceOutOfRange = errors.New("must be between 1 and 30")

// priceInRange is used instead of Min/Max because those skip a zero price
func priceInRange(value interface{}) error {
	price, ok := value.(float64)
	if !ok || price < MinPrice || price > MaxPrice {
		return errPriceOutOfRange
	}
	return nil
}

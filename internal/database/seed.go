package database

import (
	"context"
	"fmt"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var seedRestaurants = []models.Restaurant{
	{Name: "Karen's Pizza Shack", Address: "address1"},
	{Name: "Sanjay's Pizza", Address: "address2"},
	{Name: "Kiki's Pizza", Address: "address3"},
}

var seedPizzas = []models.Pizza{
	{Name: "Emma", Ingredients: "Dough, Tomato Sauce, Cheese"},
	{Name: "Geri", Ingredients: "Dough, Tomato Sauce, Cheese, Pepperoni"},
	{Name: "Melanie", Ingredients: "Dough, Sauce, Ricotta, Red peppers, Mustard"},
}

// seedPrices[i] is the price of seedPizzas[i] at seedRestaurants[i]
var seedPrices = []float64{1, 4, 5}

// Seed inserts sample restaurants, pizzas and menu entries.
// Nothing is written when restaurants or pizzas already exist.
func Seed(ctx context.Context, db *gorm.DB) error {
	var restaurants, pizzas int64
	if err := db.WithContext(ctx).Model(&models.Restaurant{}).Count(&restaurants).Error; err != nil {
		return fmt.Errorf("failed to count restaurants: %w", err)
	}
	if err := db.WithContext(ctx).Model(&models.Pizza{}).Count(&pizzas).Error; err != nil {
		return fmt.Errorf("failed to count pizzas: %w", err)
	}
	if restaurants > 0 || pizzas > 0 {
		log.Info("Database already seeded with initial data")
		return nil
	}

	log.Info("Database is empty, seeding initial data")
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rs := make([]models.Restaurant, len(seedRestaurants))
		copy(rs, seedRestaurants)
		if err := tx.Create(&rs).Error; err != nil {
			return fmt.Errorf("failed to seed restaurants: %w", err)
		}

		ps := make([]models.Pizza, len(seedPizzas))
		copy(ps, seedPizzas)
		if err := tx.Create(&ps).Error; err != nil {
			return fmt.Errorf("failed to seed pizzas: %w", err)
		}

		for i, price := range seedPrices {
			rp := models.RestaurantPizza{
				Price:        price,
				PizzaID:      ps[i].ID,
				RestaurantID: rs[i].ID,
			}
			if err := tx.Omit(clause.Associations).Create(&rp).Error; err != nil {
				return fmt.Errorf("failed to seed restaurant pizzas: %w", err)
			}
		}

		log.WithFields(logrus.Fields{
			"restaurants":       len(rs),
			"pizzas":            len(ps),
			"restaurant_pizzas": len(seedPrices),
		}).Info("Database seeded successfully")
		return nil
	})
}

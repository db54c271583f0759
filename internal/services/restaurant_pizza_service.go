package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RestaurantPizzaService creates menu entries
type RestaurantPizzaService interface {
	// CreateRestaurantPizza validates the parents exist and stores a new entry.
	// The returned value has Pizza and Restaurant populated.
	CreateRestaurantPizza(ctx context.Context, req models.CreateRestaurantPizzaRequest) (models.RestaurantPizza, error)
}

type restaurantPizzaService struct {
	db     *gorm.DB
	pizzas PizzaService
}

// NewRestaurantPizzaService creates a new instance of RestaurantPizzaService
func NewRestaurantPizzaService(db *gorm.DB) RestaurantPizzaService {
	return &restaurantPizzaService{db: db, pizzas: NewPizzaService(db)}
}

// Errors:
//   - ErrValidation when a field is missing
//   - ErrPizzaOrRestaurantNotFound when either parent is missing
//   - *PersistenceError when the insert fails, including a price out of range
func (s *restaurantPizzaService) CreateRestaurantPizza(ctx context.Context, req models.CreateRestaurantPizzaRequest) (models.RestaurantPizza, error) {
	if err := req.Validate(); err != nil {
		return models.RestaurantPizza{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	db := s.db.WithContext(ctx)

	pizza, err := s.pizzas.GetPizzaByID(ctx, *req.PizzaID)
	if err != nil {
		if errors.Is(err, ErrPizzaNotFound) {
			return models.RestaurantPizza{}, ErrPizzaOrRestaurantNotFound
		}
		return models.RestaurantPizza{}, fmt.Errorf("failed to look up pizza: %w", err)
	}

	var restaurant models.Restaurant
	if err := db.First(&restaurant, *req.RestaurantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.RestaurantPizza{}, ErrPizzaOrRestaurantNotFound
		}
		return models.RestaurantPizza{}, fmt.Errorf("failed to look up restaurant: %w", err)
	}

	restaurantPizza := models.RestaurantPizza{
		Price:        *req.Price,
		PizzaID:      pizza.ID,
		RestaurantID: restaurant.ID,
	}
	err = db.Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(&restaurantPizza).Error
	})
	if err != nil {
		return models.RestaurantPizza{}, &PersistenceError{Op: "create restaurant pizza", Err: err}
	}

	restaurantPizza.Pizza = pizza
	restaurantPizza.Restaurant = restaurant
	return restaurantPizza, nil
}

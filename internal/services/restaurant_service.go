package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"gorm.io/gorm"
)

// RestaurantService provides methods to interact with the restaurant table
type RestaurantService interface {
	// GetAllRestaurants retrieves all restaurants without their menus
	GetAllRestaurants(ctx context.Context) ([]models.Restaurant, error)
	// GetRestaurantByID retrieves a restaurant with its menu entries and their pizzas
	GetRestaurantByID(ctx context.Context, id uint) (models.Restaurant, error)
	// DeleteRestaurant deletes a restaurant and its menu entries
	DeleteRestaurant(ctx context.Context, id uint) error
}

type restaurantService struct {
	db *gorm.DB
}

// NewRestaurantService creates a new instance of RestaurantService
func NewRestaurantService(db *gorm.DB) RestaurantService {
	return &restaurantService{db: db}
}

func (s *restaurantService) GetAllRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	restaurants := []models.Restaurant{}
	if err := s.db.WithContext(ctx).Order("id").Find(&restaurants).Error; err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}
	return restaurants, nil
}

func (s *restaurantService) GetRestaurantByID(ctx context.Context, id uint) (models.Restaurant, error) {
	var restaurant models.Restaurant
	err := s.db.WithContext(ctx).
		Preload("RestaurantPizzas", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("RestaurantPizzas.Pizza").
		First(&restaurant, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Restaurant{}, ErrRestaurantNotFound
		}
		return models.Restaurant{}, fmt.Errorf("failed to get restaurant %d: %w", id, err)
	}
	return restaurant, nil
}

// DeleteRestaurant removes the menu entries before the restaurant in one
// transaction. Connections without foreign key enforcement rely on this.
func (s *restaurantService) DeleteRestaurant(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var restaurant models.Restaurant
		if err := tx.Select("id").First(&restaurant, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRestaurantNotFound
			}
			return fmt.Errorf("failed to get restaurant %d: %w", id, err)
		}

		if err := tx.Where("restaurant_id = ?", id).Delete(&models.RestaurantPizza{}).Error; err != nil {
			return &PersistenceError{Op: "delete restaurant pizzas", Err: err}
		}
		if err := tx.Delete(&restaurant).Error; err != nil {
			return &PersistenceError{Op: "delete restaurant", Err: err}
		}
		return nil
	})
}

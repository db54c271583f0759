package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"gorm.io/gorm"
)

// PizzaService provides methods to read pizzas from the database
type PizzaService interface {
	// GetAllPizzas retrieves all pizzas ordered by id
	GetAllPizzas(ctx context.Context) ([]models.Pizza, error)
	// GetPizzaByID retrieves a pizza by its ID
	GetPizzaByID(ctx context.Context, id uint) (models.Pizza, error)
}

// pizzaService is the implementation of the PizzaService interface
type pizzaService struct {
	db *gorm.DB
}

// NewPizzaService creates a new instance of PizzaService
func NewPizzaService(db *gorm.DB) PizzaService {
	return &pizzaService{db: db}
}

func (s *pizzaService) GetAllPizzas(ctx context.Context) ([]models.Pizza, error) {
	pizzas := []models.Pizza{}
	if err := s.db.WithContext(ctx).Order("id").Find(&pizzas).Error; err != nil {
		return nil, fmt.Errorf("failed to list pizzas: %w", err)
	}
	return pizzas, nil
}

func (s *pizzaService) GetPizzaByID(ctx context.Context, id uint) (models.Pizza, error) {
	var pizza models.Pizza
	if err := s.db.WithContext(ctx).First(&pizza, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Pizza{}, ErrPizzaNotFound
		}
		return models.Pizza{}, fmt.Errorf("failed to get pizza %d: %w", id, err)
	}
	return pizza, nil
}

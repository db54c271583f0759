package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"gorm.io/gorm"
)

type ClientService interface {
	CreateClient(ctx context.Context, client *models.OAuthClient) error
	GetClientsByUserID(ctx context.Context, userID uint) ([]models.OAuthClient, error)
	GetClientByID(ctx context.Context, id string) (*models.OAuthClient, error)
	DeleteClient(ctx context.Context, clientID string, userID uint) error
}

type clientService struct {
	db *gorm.DB
}

func NewClientService(db *gorm.DB) ClientService {
	return &clientService{db: db}
}

func (s *clientService) CreateClient(ctx context.Context, client *models.OAuthClient) error {
	if err := s.db.WithContext(ctx).Create(client).Error; err != nil {
		return &PersistenceError{Op: "create client", Err: err}
	}
	return nil
}

func (s *clientService) GetClientsByUserID(ctx context.Context, userID uint) ([]models.OAuthClient, error) {
	clients := []models.OAuthClient{}
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at").Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

func (s *clientService) GetClientByID(ctx context.Context, id string) (*models.OAuthClient, error) {
	var client models.OAuthClient
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return &client, nil
}

func (s *clientService) DeleteClient(ctx context.Context, clientID string, userID uint) error {
	result := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", clientID, userID).Delete(&models.OAuthClient{})
	if result.Error != nil {
		return &PersistenceError{Op: "delete client", Err: result.Error}
	}
	if result.RowsAffected == 0 {
		return ErrClientNotFound
	}
	return nil
}

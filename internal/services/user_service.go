package services

import (
	"context"
	"errors"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"gorm.io/gorm"
)

type UserService interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// GetOrCreateUser returns the user with the given email, creating it with role when absent
	GetOrCreateUser(ctx context.Context, email, name, role string) (*models.User, bool, error)
}

type userService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) UserService {
	return &userService{db: db}
}

func (s *userService) CreateUser(ctx context.Context, user *models.User) error {
	var existing models.User
	if err := s.db.WithContext(ctx).Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return ErrUserAlreadyExists
	}

	return s.db.WithContext(ctx).Create(user).Error
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *userService) GetOrCreateUser(ctx context.Context, email, name, role string) (*models.User, bool, error) {
	user, err := s.GetUserByEmail(ctx, email)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	user = &models.User{Email: email, Name: name, Role: role}
	if err := s.CreateUser(ctx, user); err != nil {
		return nil, false, err
	}
	return user, true, nil
}

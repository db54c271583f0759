package auth

import (
	"context"
	"errors"
	"time"

	internalmodels "github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/go-oauth2/oauth2/v4"
	"github.com/go-oauth2/oauth2/v4/models"
	"gorm.io/gorm"
)

// ErrCodeGrantUnsupported is returned by the code methods of GormTokenStore,
// only the client credentials grant is served.
var ErrCodeGrantUnsupported = errors.New("authorization code grant is not supported")

type GormClientStore struct {
	db *gorm.DB
}

func NewGormClientStore(db *gorm.DB) *GormClientStore {
	return &GormClientStore{db: db}
}

// GetByID returns the stored client, which implements oauth2.ClientPasswordVerifier
func (s *GormClientStore) GetByID(ctx context.Context, id string) (oauth2.ClientInfo, error) {
	var client internalmodels.OAuthClient
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

type GormTokenStore struct {
	db *gorm.DB
}

func NewGormTokenStore(db *gorm.DB) *GormTokenStore {
	return &GormTokenStore{db: db}
}

func (s *GormTokenStore) Create(ctx context.Context, info oauth2.TokenInfo) error {
	token := &internalmodels.OAuthToken{
		ClientID:     info.GetClientID(),
		UserID:       optional(info.GetUserID()),
		AccessToken:  info.GetAccess(),
		RefreshToken: optional(info.GetRefresh()),
		Scopes:       info.GetScope(),
		ExpiresAt:    info.GetAccessCreateAt().Add(info.GetAccessExpiresIn()),
	}

	return s.db.WithContext(ctx).Create(token).Error
}

func (s *GormTokenStore) RemoveByAccess(ctx context.Context, access string) error {
	return s.db.WithContext(ctx).Where("access_token = ?", access).Delete(&internalmodels.OAuthToken{}).Error
}

func (s *GormTokenStore) RemoveByRefresh(ctx context.Context, refresh string) error {
	return s.db.WithContext(ctx).Where("refresh_token = ?", refresh).Delete(&internalmodels.OAuthToken{}).Error
}

func (s *GormTokenStore) GetByAccess(ctx context.Context, access string) (oauth2.TokenInfo, error) {
	var token internalmodels.OAuthToken
	if err := s.db.WithContext(ctx).Where("access_token = ?", access).First(&token).Error; err != nil {
		return nil, err
	}
	return toTokenInfo(token), nil
}

func (s *GormTokenStore) GetByRefresh(ctx context.Context, refresh string) (oauth2.TokenInfo, error) {
	var token internalmodels.OAuthToken
	if err := s.db.WithContext(ctx).Where("refresh_token = ?", refresh).First(&token).Error; err != nil {
		return nil, err
	}
	return toTokenInfo(token), nil
}

func (s *GormTokenStore) GetByCode(ctx context.Context, code string) (oauth2.TokenInfo, error) {
	return nil, ErrCodeGrantUnsupported
}

func (s *GormTokenStore) RemoveByCode(ctx context.Context, code string) error {
	return ErrCodeGrantUnsupported
}

func toTokenInfo(token internalmodels.OAuthToken) *models.Token {
	return &models.Token{
		ClientID:        token.ClientID,
		UserID:          deref(token.UserID),
		Access:          token.AccessToken,
		AccessCreateAt:  token.CreatedAt,
		AccessExpiresIn: token.ExpiresAt.Sub(token.CreatedAt),
		Refresh:         deref(token.RefreshToken),
		Scope:           token.Scopes,
	}
}

// optional maps "" to a NULL column
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// PurgeExpired deletes tokens that expired before now
func (s *GormTokenStore) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	result := s.db.WithContext(ctx).Where("expires_at < ?", now).Delete(&internalmodels.OAuthToken{})
	return result.RowsAffected, result.Error
}

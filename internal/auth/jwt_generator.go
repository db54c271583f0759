package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/go-oauth2/oauth2/v4"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

var errRefreshUnsupported = errors.New("refresh tokens are not issued for client credentials")

// CustomJWTAccessGenerate generates JWT access tokens with custom claims including UserID and Role
type CustomJWTAccessGenerate struct {
	SignedKey    []byte
	SignedMethod jwt.SigningMethod
	DB           *gorm.DB // Database connection to fetch user information
}

// NewCustomJWTAccessGenerate creates a new custom JWT access token generator
func NewCustomJWTAccessGenerate(key []byte, method jwt.SigningMethod, db *gorm.DB) *CustomJWTAccessGenerate {
	return &CustomJWTAccessGenerate{
		SignedKey:    key,
		SignedMethod: method,
		DB:           db,
	}
}

// Token generates a JWT access token with custom claims
// This method is called by the OAuth2 library to generate access tokens
func (g *CustomJWTAccessGenerate) Token(ctx context.Context, data *oauth2.GenerateBasic, isGenRefresh bool) (string, string, error) {
	createdAt := data.TokenInfo.GetAccessCreateAt()
	claims := jwt.MapClaims{
		"aud": data.Client.GetID(),
		"iat": createdAt.Unix(),
		"exp": createdAt.Add(data.TokenInfo.GetAccessExpiresIn()).Unix(),
	}

	// client_credentials has no user in the request, the client's owner is used instead
	userID := data.UserID
	if userID == "" {
		userID = data.Client.GetUserID()
	}

	if userID == "" {
		return "", "", fmt.Errorf("cannot generate token: no user ID available")
	}

	claims["uid"] = userID

	// role comes from the owner at issue time
	role, err := g.getUserRole(ctx, userID)
	if err != nil {
		return "", "", fmt.Errorf("failed to fetch user role: %w", err)
	}
	claims["role"] = role

	if data.TokenInfo.GetScope() != "" {
		claims["scope"] = data.TokenInfo.GetScope()
	}

	access, err := jwt.NewWithClaims(g.SignedMethod, claims).SignedString(g.SignedKey)
	if err != nil {
		return "", "", err
	}
	if isGenRefresh {
		return "", "", errRefreshUnsupported
	}
	return access, "", nil
}

// getUserRole fetches the user's role from the database
func (g *CustomJWTAccessGenerate) getUserRole(ctx context.Context, userIDStr string) (string, error) {
	userID, err := strconv.ParseUint(userIDStr, 10, 32)
	if err != nil {
		return "", fmt.Errorf("invalid user ID format: %w", err)
	}

	var user models.User
	if err := g.DB.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("user with ID %d not found", userID)
		}
		return "", fmt.Errorf("database error: %w", err)
	}

	if user.Role == "" {
		return models.RoleUser, nil
	}

	return user.Role, nil
}

package services

import (
	"context"
	"testing"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientService(t *testing.T) {
	db := setupTestDB(t)
	svc := NewClientService(db)
	users := NewUserService(db)
	ctx := context.Background()

	owner, created, err := users.GetOrCreateUser(ctx, "admin@pizza.com", "admin User", models.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, created)

	again, created, err := users.GetOrCreateUser(ctx, "admin@pizza.com", "ignored", models.RoleUser)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, owner.ID, again.ID)
	assert.Equal(t, models.RoleAdmin, again.Role)

	client := &models.OAuthClient{ID: "client-1", Secret: "hash", Name: "one", UserID: owner.ID}
	require.NoError(t, svc.CreateClient(ctx, client))

	got, err := svc.GetClientByID(ctx, "client-1")
	require.NoError(t, err)
	assert.Equal(t, "one", got.Name)

	list, err := svc.GetClientsByUserID(ctx, owner.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	assert.ErrorIs(t, svc.DeleteClient(ctx, "client-1", owner.ID+1), ErrClientNotFound)
	require.NoError(t, svc.DeleteClient(ctx, "client-1", owner.ID))

	_, err = svc.GetClientByID(ctx, "client-1")
	assert.ErrorIs(t, err, ErrClientNotFound)

	assert.ErrorIs(t, users.CreateUser(ctx, &models.User{Email: "admin@pizza.com"}), ErrUserAlreadyExists)
}

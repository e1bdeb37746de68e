package services

import (
	"testing"

	"hostel-backend/models"
	"hostel-backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginAndValidateToken(t *testing.T) {
	utils.InitJWT("test-secret")
	db := newTestDB(t)
	auth := NewAuthService(db)

	user, err := auth.Register("warden", "secret123", "Warden", models.RoleManager)
	require.NoError(t, err)
	assert.Equal(t, models.RoleManager, user.Role)

	result, err := auth.Login("warden", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)

	claims, err := utils.ValidateToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, models.RoleManager, claims.Role)

	// Username is trimmed before lookup.
	_, err = auth.Login("  warden  ", "secret123")
	assert.NoError(t, err)
}

func TestLoginInvalidCredentials(t *testing.T) {
	utils.InitJWT("test-secret")
	db := newTestDB(t)
	auth := NewAuthService(db)

	_, err := auth.Register("warden", "secret123", "Warden", "")
	require.NoError(t, err)

	_, err = auth.Login("warden", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.Login("nobody", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db)

	user, err := auth.Register("warden", "secret123", "Warden", "")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)

	_, err = auth.Register("warden", "other", "Other", "")
	assert.ErrorIs(t, err, ErrDuplicateUsername)
}

func TestGetUserNotFound(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db)

	_, err := auth.GetByID(424242)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

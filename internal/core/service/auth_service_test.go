package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/nutrilink/nutrition-system/internal/core/domain"
)

const testSecret = "test-secret"

func TestRegister(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(users, testSecret, time.Hour)

	user, err := svc.Register(context.Background(), "Carla Client", "carla@example.com", "s3cret-pass", domain.RoleClient)
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, domain.RoleClient, user.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret-pass")))
	assert.NotEqual(t, "s3cret-pass", user.PasswordHash)
}

func TestRegisterRejectsInvalidRole(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(users, testSecret, time.Hour)

	for _, role := range []string{"", "admin", "superuser"} {
		_, err := svc.Register(context.Background(), "X", "x@example.com", "password1", role)
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials, "role %q must be rejected", role)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(users, testSecret, time.Hour)

	_, err := svc.Register(context.Background(), "A", "dup@example.com", "password1", domain.RoleClient)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "B", "dup@example.com", "password2", domain.RoleNutritionist)
	assert.ErrorIs(t, err, domain.ErrUserExists)
}

func TestLogin(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(users, testSecret, time.Hour)

	registered, err := svc.Register(context.Background(), "Nina Nutri", "nina@example.com", "correct-horse", domain.RoleNutritionist)
	require.NoError(t, err)

	token, user, err := svc.Login(context.Background(), "nina@example.com", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	// the token must carry the full identity triple the middleware demands
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	assert.Equal(t, registered.ID, claims["sub"])
	assert.Equal(t, "nina@example.com", claims["email"])
	assert.Equal(t, domain.RoleNutritionist, claims["role"])
	assert.NotNil(t, claims["exp"])
}

func TestLoginWrongPassword(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(users, testSecret, time.Hour)

	_, err := svc.Register(context.Background(), "Nina Nutri", "nina@example.com", "correct-horse", domain.RoleNutritionist)
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), "nina@example.com", "wrong-horse")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), testSecret, time.Hour)

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever1")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

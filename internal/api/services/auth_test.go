package services

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("creates user and issues token", func(t *testing.T) {
		store := newMemUserStore()
		service := NewAuthService(store, "test-secret")

		user, token, err := service.Register(ctx, RegisterInput{
			Username: "storekeeper",
			Email:    "keeper@example.com",
			Password: "password123",
		})
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.NotEqual(t, "password123", user.Password)

		parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		require.NoError(t, err)
		claims, ok := parsed.Claims.(jwt.MapClaims)
		require.True(t, ok)
		assert.Equal(t, user.ID.String(), claims["id"])
	})

	t.Run("duplicate username", func(t *testing.T) {
		store := newMemUserStore()
		service := NewAuthService(store, "test-secret")

		input := RegisterInput{Username: "storekeeper", Email: "keeper@example.com", Password: "password123"}
		_, _, err := service.Register(ctx, input)
		require.NoError(t, err)

		_, _, err = service.Register(ctx, input)
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("invalid input", func(t *testing.T) {
		service := NewAuthService(newMemUserStore(), "test-secret")

		_, _, err := service.Register(ctx, RegisterInput{Username: "x", Email: "not-an-email", Password: "short"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	store := newMemUserStore()
	service := NewAuthService(store, "test-secret")

	_, _, err := service.Register(ctx, RegisterInput{
		Username: "storekeeper",
		Email:    "keeper@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, token, err := service.Login(ctx, LoginInput{Username: "storekeeper", Password: "password123"})
		require.NoError(t, err)
		assert.Equal(t, "storekeeper", user.Username)
		assert.NotEmpty(t, token)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := service.Login(ctx, LoginInput{Username: "storekeeper", Password: "password456"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, _, err := service.Login(ctx, LoginInput{Username: "somebody", Password: "password123"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

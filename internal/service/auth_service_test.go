package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Emmanuel-365/event-app/internal/domain"
	"github.com/Emmanuel-365/event-app/internal/dto"
	"github.com/Emmanuel-365/event-app/pkg/config"
)

func testJWTConfig() *config.JWTConfig {
	return &config.JWTConfig{
		Secret:         "test-secret",
		AccessTokenTTL: 15 * time.Minute,
		Issuer:         "event-app-test",
	}
}

func TestAuthService_Register(t *testing.T) {
	var created *domain.User
	users := &mockUserRepo{
		CreateFunc: func(ctx context.Context, user *domain.User) error {
			created = user
			return nil
		},
	}
	svc := NewAuthService(users, testJWTConfig(), newTestLogger(t))

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:     "alice@example.com",
		Password:  "motdepasse",
		FirstName: "Alice",
		LastName:  "Mbarga",
		Role:      "VISITOR",
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "VISITOR", resp.User.Role)
	// The stored hash must verify against the original password
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("motdepasse")))
}

func TestAuthService_Register_AdminRoleRejected(t *testing.T) {
	users := &mockUserRepo{
		CreateFunc: func(ctx context.Context, user *domain.User) error { return nil },
	}
	svc := NewAuthService(users, testJWTConfig(), newTestLogger(t))

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email: "x@example.com", Password: "motdepasse",
		FirstName: "X", LastName: "Y", Role: "ADMIN",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("motdepasse"), bcrypt.MinCost)
	require.NoError(t, err)

	user := domain.NewUser("alice@example.com", string(hash), "Alice", "Mbarga", domain.RoleVisitor)
	users := &mockUserRepo{
		GetByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			if email != user.Email {
				return nil, domain.ErrNotFound
			}
			return user, nil
		},
	}
	svc := NewAuthService(users, testJWTConfig(), newTestLogger(t))

	t.Run("valid credentials", func(t *testing.T) {
		resp, err := svc.Login(context.Background(), &dto.LoginRequest{
			Email: "alice@example.com", Password: "motdepasse",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, user.ID, resp.User.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &dto.LoginRequest{
			Email: "alice@example.com", Password: "wrong",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email maps to invalid credentials", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &dto.LoginRequest{
			Email: "nobody@example.com", Password: "motdepasse",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Emmanuel-365/event-app/internal/domain"
	"github.com/Emmanuel-365/event-app/internal/dto"
	"github.com/Emmanuel-365/event-app/internal/repository"
	"github.com/Emmanuel-365/event-app/pkg/config"
	"github.com/Emmanuel-365/event-app/pkg/logger"
	"github.com/Emmanuel-365/event-app/pkg/middleware"
)

// AuthService handles registration, login and token issuance
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	GetProfile(ctx context.Context, userID string) (*domain.User, error)
}

type authService struct {
	users  repository.UserRepository
	cfg    *config.JWTConfig
	logger *logger.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(users repository.UserRepository, cfg *config.JWTConfig, log *logger.Logger) AuthService {
	return &authService{users: users, cfg: cfg, logger: log}
}

// Register creates an account and returns an access token.
// Admin accounts cannot be self-registered.
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	role := domain.Role(req.Role)
	if !role.IsValid() || role == domain.RoleAdmin {
		return nil, domain.ErrValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.NewUser(req.Email, string(hash), req.FirstName, req.LastName, role)
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered",
		zap.String("user_id", user.ID),
		zap.String("role", user.Role.String()),
	)
	return s.issueToken(user)
}

// Login authenticates a user and returns an access token
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		// Do not reveal whether the email exists
		return nil, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return s.issueToken(user)
}

// GetProfile returns the account of the given user
func (s *authService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}

func (s *authService) issueToken(user *domain.User) (*dto.AuthResponse, error) {
	expiresAt := time.Now().Add(s.cfg.AccessTokenTTL)

	claims := &middleware.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.Issuer,
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &dto.AuthResponse{
		AccessToken: signed,
		ExpiresAt:   expiresAt,
		User:        dto.ToUserResponse(user),
	}, nil
}

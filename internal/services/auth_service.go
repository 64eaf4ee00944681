package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/atelierweb/sitecms/internal/auth"
	"github.com/atelierweb/sitecms/internal/models"
	"github.com/atelierweb/sitecms/internal/repositories"
)

// ErrInvalidCredentials is returned for unknown usernames and wrong passwords alike
var ErrInvalidCredentials = errors.New("invalid credentials")

// AdminUserRepository is the interface that wraps methods for admin account data access
type AdminUserRepository interface {
	// GetByUsername retrieves an admin user by username.
	//
	// Returns repositories.ErrAdminUserNotFound when the username does not exist.
	GetByUsername(ctx context.Context, username string) (*models.AdminUser, error)
	// GetByID retrieves an admin user by id.
	GetByID(ctx context.Context, id int) (*models.AdminUser, error)
}

// authService implements admin login
type authService struct {
	repo   AdminUserRepository
	tokens *auth.TokenGenerator
}

// NewAuthService creates a new auth service
func NewAuthService(repo AdminUserRepository, tokens *auth.TokenGenerator) *authService {
	return &authService{
		repo:   repo,
		tokens: tokens,
	}
}

// Login verifies credentials and issues a token pair. Unknown usernames and
// wrong passwords produce the same error so callers cannot probe accounts.
func (s *authService) Login(ctx context.Context, username, password string) (*models.LoginResponse, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.repo.GetByUsername(ctx, username)
	if errors.Is(err, repositories.ErrAdminUserNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up admin user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, refreshToken, err := s.tokens.GenerateTokens(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}

	return &models.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// Refresh validates a refresh token and issues a fresh pair for the same
// account. A token for a deleted account is treated as invalid.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*models.LoginResponse, error) {
	userID, err := s.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	user, err := s.repo.GetByID(ctx, userID)
	if errors.Is(err, repositories.ErrAdminUserNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up admin user: %w", err)
	}

	accessToken, newRefreshToken, err := s.tokens.GenerateTokens(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}

	return &models.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
		User:         user,
	}, nil
}

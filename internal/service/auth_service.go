package service

import (
	"context"
	"log/slog"

	"taskboard/internal/auth"
	"taskboard/internal/models"
)

// AuthService handles user registration and login.
type AuthService struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	logger        *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator auth.Authenticator, jwtManager *auth.JWTManager, logger *slog.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		logger:        logger,
	}
}

// Register creates a new user account with a hashed password.
// Fails with auth.ErrEmailExists if the email is already registered and
// auth.ErrWeakPassword if the password is too short. The returned user's
// hash is excluded from serialization, so handlers can return it directly.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	s.logger.Info("Register request", "email", email)

	user, err := s.authenticator.Register(ctx, name, email, password)
	if err != nil {
		s.logger.Warn("Registration failed", "email", email, "error", err)
		return nil, err
	}

	s.logger.Info("User registered", "user_id", user.ID, "email", user.Email)
	return user, nil
}

// Login authenticates a user and returns the user together with a signed
// session token. Unknown email and wrong password both fail with
// auth.ErrInvalidCredentials; the caller learns nothing about which check
// failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	s.logger.Info("Login request", "email", email)

	user, err := s.authenticator.Authenticate(ctx, email, password)
	if err != nil {
		s.logger.Warn("Login failed", "email", email)
		return nil, "", auth.ErrInvalidCredentials
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		s.logger.Error("Failed to generate token", "user_id", user.ID, "error", err)
		return nil, "", err
	}

	s.logger.Info("User logged in", "user_id", user.ID, "email", user.Email)
	return user, token, nil
}

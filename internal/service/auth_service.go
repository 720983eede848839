package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/spec-kit/toy-store/internal/auth"
	"github.com/spec-kit/toy-store/internal/config"
	"github.com/spec-kit/toy-store/internal/domain"
	"github.com/spec-kit/toy-store/internal/repository"
	apperrors "github.com/spec-kit/toy-store/pkg/util"
)

// Unknown email and wrong password return the same external message to
// avoid account enumeration; logs carry the real reason.
const loginFailedMessage = "invalid email or password"

// AuthService coordinates registration and login flows.
type AuthService struct {
	users    repository.UserRepository
	tokenMgr *auth.TokenManager
	logger   *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, users repository.UserRepository, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:    users,
		tokenMgr: auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		logger:   logger,
	}
}

// Register creates a new identity. The credential is hashed before anything
// is persisted; a duplicate email surfaces as a Conflict.
func (s *AuthService) Register(ctx context.Context, in domain.UserInput) (*domain.User, error) {
	if violations := in.Validate(); len(violations) > 0 {
		return nil, apperrors.NewValidationError("invalid user payload", map[string]any{"violations": violations})
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
	}
	if err := s.users.Insert(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperrors.NewConflict("email already in system", nil)
		}
		return nil, err
	}
	s.logger.Info("user registered", zap.String("user_id", user.ID))
	return user, nil
}

// Login authenticates an identity and issues a token.
func (s *AuthService) Login(ctx context.Context, in domain.LoginInput) (string, error) {
	if violations := in.Validate(); len(violations) > 0 {
		return "", apperrors.NewValidationError("invalid login payload", map[string]any{"violations": violations})
	}

	user, err := s.users.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Info("login failed", zap.String("reason", "unknown_email"))
			return "", apperrors.NewUnauthorized(loginFailedMessage)
		}
		return "", err
	}
	if !auth.VerifyPassword(in.Password, user.PasswordHash) {
		s.logger.Info("login failed", zap.String("reason", "bad_password"), zap.String("user_id", user.ID))
		return "", apperrors.NewUnauthorized(loginFailedMessage)
	}

	token, _, err := s.tokenMgr.Issue(user.ID, user.Role)
	if err != nil {
		return "", err
	}
	return token, nil
}

// UserInfo returns the identity for the verified caller, credential omitted
// by the domain model's serialization.
func (s *AuthService) UserInfo(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("user", nil)
		}
		return nil, err
	}
	return user, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

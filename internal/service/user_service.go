package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/eventplan-api/internal/domain"
	"github.com/phrazzld/eventplan-api/internal/platform/logger"
	"github.com/phrazzld/eventplan-api/internal/service/auth"
	"github.com/phrazzld/eventplan-api/internal/store"
)

// UserService provides registration and credential checks.
type UserService interface {
	// Register hashes password and stores a new user.
	// Returns a domain.ValidationError for missing fields and
	// store.ErrEmailExists when the email is taken.
	Register(ctx context.Context, name, email, password string) (*domain.User, error)

	// Authenticate returns the user owning email if password matches.
	// Unknown email and wrong password both return auth.ErrInvalidCredentials.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	userStore store.UserStore
	hasher    auth.PasswordHasher
	logger    *slog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userStore store.UserStore, hasher auth.PasswordHasher, logger *slog.Logger) *UserServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserServiceImpl{
		userStore: userStore,
		hasher:    hasher,
		logger:    logger.With("component", "user_service"),
	}
}

var _ UserService = (*UserServiceImpl)(nil)

// Register implements UserService.
func (s *UserServiceImpl) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	switch {
	case strings.TrimSpace(name) == "":
		return nil, domain.NewValidationError("name", "is required", nil)
	case strings.TrimSpace(email) == "":
		return nil, domain.NewValidationError("email", "is required", nil)
	case strings.TrimSpace(password) == "":
		return nil, domain.NewValidationError("password", "is required", nil)
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return nil, err
		}
		s.logger.Error("failed to hash password", logger.Err(err))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := domain.NewUser(name, email, hashed)
	if err != nil {
		return nil, err
	}

	if err := s.userStore.Create(ctx, user); err != nil {
		if store.IsDuplicateError(err) {
			s.logger.Debug("attempted to register existing email")
		} else {
			s.logger.Error("failed to save user", logger.Err(err))
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user registered", "user_id", user.ID)
	return user, nil
}

// Authenticate implements UserService.
func (s *UserServiceImpl) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	if strings.TrimSpace(email) == "" {
		return nil, domain.NewValidationError("email", "is required", nil)
	}
	if strings.TrimSpace(password) == "" {
		return nil, domain.NewValidationError("password", "is required", nil)
	}

	user, err := s.userStore.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("login for unknown email")
			return nil, auth.ErrInvalidCredentials
		}
		s.logger.Error("failed to retrieve user by email", logger.Err(err))
		return nil, fmt.Errorf("failed to retrieve user by email: %w", err)
	}

	if err := s.hasher.Compare(user.HashedPassword, password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			s.logger.Debug("login with wrong password", "user_id", user.ID)
			return nil, auth.ErrInvalidCredentials
		}
		s.logger.Error("failed to verify password", logger.Err(err), "user_id", user.ID)
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}

	return user, nil
}

package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	Register(ctx context.Context, email, password string) (int, error)
	Authenticate(ctx context.Context, email, password string) (User, error)
}

type Service struct {
	repo      Repository
	validator Validator
	log       *slog.Logger
}

func NewService(repo Repository, validator Validator, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		log:       log.With("component", "user_service"),
	}
}

// Register creates an account with a bcrypt-hashed password. Emails are
// stored lower-cased.
func (s *Service) Register(ctx context.Context, email, password string) (int, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if err := s.validator.ValidateRegister(email, password); err != nil {
		s.log.Debug("registration validation failed", "email", email, "error", err)
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	id, err := s.repo.Create(ctx, email, string(hash))
	if err != nil {
		if !errors.Is(err, ErrEmailTaken) {
			s.log.Error("failed to create user", "email", email, "error", err)
		}
		return 0, err
	}
	return id, nil
}

// Authenticate verifies credentials. Suspended accounts are rejected
// with ErrSuspended so the caller can surface a distinct reason; any
// other failure is the indistinct ErrInvalidAuth.
func (s *Service) Authenticate(ctx context.Context, email, password string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return User{}, ErrInvalidAuth
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return User{}, ErrInvalidAuth
	}

	if u.Suspended {
		s.log.Info("suspended account attempted login", "user_id", u.ID)
		return User{}, ErrSuspended
	}

	return u, nil
}

package admin

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/exp/slog"

	"vokabular/internal/domain/user"
)

type Servicer interface {
	Index(ctx context.Context) ([]user.User, Stats, error)
	Suspend(ctx context.Context, actorID, targetID int) error
	Unsuspend(ctx context.Context, actorID, targetID int) error
	Promote(ctx context.Context, actorID, targetID int) error
	Demote(ctx context.Context, actorID, targetID int) error
	ChangeEmail(ctx context.Context, actorID, targetID int, newEmail string) error
	Delete(ctx context.Context, actorID, targetID int) error
}

// Service implements account management. Every self-targeting
// destructive or privilege-reducing action is rejected before any
// mutation happens.
type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "admin_service"),
	}
}

// Index returns all users plus aggregate stats for the admin page.
func (s *Service) Index(ctx context.Context) ([]user.User, Stats, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		s.log.Error("failed to list users", "error", err)
		return nil, Stats{}, fmt.Errorf("list users: %w", err)
	}
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		s.log.Error("failed to load user stats", "error", err)
		return nil, Stats{}, fmt.Errorf("user stats: %w", err)
	}
	return users, stats, nil
}

func (s *Service) Suspend(ctx context.Context, actorID, targetID int) error {
	if actorID == targetID {
		return ErrSelfSuspend
	}
	return s.repo.SetSuspended(ctx, targetID, true)
}

// Unsuspend carries no self-guard: lifting a suspension reduces no
// privilege, and a suspended admin could not be logged in anyway.
func (s *Service) Unsuspend(ctx context.Context, actorID, targetID int) error {
	return s.repo.SetSuspended(ctx, targetID, false)
}

func (s *Service) Promote(ctx context.Context, actorID, targetID int) error {
	if actorID == targetID {
		return ErrAlreadyAdmin
	}
	return s.repo.SetAdmin(ctx, targetID, true)
}

func (s *Service) Demote(ctx context.Context, actorID, targetID int) error {
	if actorID == targetID {
		return ErrSelfDemote
	}
	return s.repo.SetAdmin(ctx, targetID, false)
}

// ChangeEmail assigns a new address to the target account. It fails
// before mutating when the address is empty, the target is the actor,
// or another user already holds the address.
func (s *Service) ChangeEmail(ctx context.Context, actorID, targetID int, newEmail string) error {
	newEmail = strings.ToLower(strings.TrimSpace(newEmail))
	if newEmail == "" {
		return ErrEmptyEmail
	}
	if actorID == targetID {
		return ErrSelfEmailChange
	}

	taken, err := s.repo.EmailInUse(ctx, newEmail, targetID)
	if err != nil {
		s.log.Error("failed to check email uniqueness", "email", newEmail, "error", err)
		return fmt.Errorf("check email: %w", err)
	}
	if taken {
		return user.ErrEmailTaken
	}

	if err := s.repo.UpdateEmail(ctx, targetID, newEmail); err != nil {
		return err
	}
	s.log.Info("email changed by admin", "actor_id", actorID, "user_id", targetID)
	return nil
}

func (s *Service) Delete(ctx context.Context, actorID, targetID int) error {
	if actorID == targetID {
		return ErrSelfDelete
	}
	if err := s.repo.Delete(ctx, targetID); err != nil {
		return err
	}
	s.log.Info("user deleted by admin", "actor_id", actorID, "user_id", targetID)
	return nil
}

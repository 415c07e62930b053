package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"vokabular/internal/domain/admin"
	"vokabular/internal/domain/user"
)

type AdminRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewAdminRepository(pool *pgxpool.Pool, log *slog.Logger) *AdminRepository {
	return &AdminRepository{
		pool: pool,
		log:  log.With("component", "admin_repository"),
	}
}

func (r *AdminRepository) ListUsers(ctx context.Context) ([]user.User, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, email, password_hash, admin, suspended, created_at, updated_at
		 FROM users
		 ORDER BY admin DESC, created_at DESC`)
	if err != nil {
		r.log.Error("failed to list users", "error", err)
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		var u user.User
		if err := rows.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Admin, &u.Suspended,
			&u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

func (r *AdminRepository) Stats(ctx context.Context) (admin.Stats, error) {
	var s admin.Stats
	err := r.pool.QueryRow(ctx,
		`SELECT count(*),
		        count(*) FILTER (WHERE admin),
		        count(*) FILTER (WHERE suspended),
		        count(*) FILTER (WHERE NOT suspended)
		 FROM users`).
		Scan(&s.TotalUsers, &s.AdminUsers, &s.SuspendedUsers, &s.ActiveUsers)
	if err != nil {
		r.log.Error("failed to load user stats", "error", err)
		return admin.Stats{}, fmt.Errorf("user stats: %w", err)
	}
	return s, nil
}

func (r *AdminRepository) SetSuspended(ctx context.Context, id int, suspended bool) error {
	return r.setFlag(ctx, `UPDATE users SET suspended = $1, updated_at = NOW() WHERE id = $2`, suspended, id)
}

func (r *AdminRepository) SetAdmin(ctx context.Context, id int, adminFlag bool) error {
	return r.setFlag(ctx, `UPDATE users SET admin = $1, updated_at = NOW() WHERE id = $2`, adminFlag, id)
}

func (r *AdminRepository) setFlag(ctx context.Context, query string, value bool, id int) error {
	result, err := r.pool.Exec(ctx, query, value, id)
	if err != nil {
		r.log.Error("failed to update user flag", "user_id", id, "error", err)
		return fmt.Errorf("update user: %w", err)
	}
	if result.RowsAffected() == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (r *AdminRepository) EmailInUse(ctx context.Context, email string, excludeID int) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1 AND id <> $2)`,
		email, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check email: %w", err)
	}
	return exists, nil
}

func (r *AdminRepository) UpdateEmail(ctx context.Context, id int, email string) error {
	result, err := r.pool.Exec(ctx,
		`UPDATE users SET email = $1, updated_at = NOW() WHERE id = $2`, email, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return user.ErrEmailTaken
		}
		r.log.Error("failed to update email", "user_id", id, "error", err)
		return fmt.Errorf("update email: %w", err)
	}
	if result.RowsAffected() == 0 {
		return user.ErrNotFound
	}
	return nil
}

// Delete removes the account; vocabularies and sessions go with it via
// ON DELETE CASCADE.
func (r *AdminRepository) Delete(ctx context.Context, id int) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		r.log.Error("failed to delete user", "user_id", id, "error", err)
		return fmt.Errorf("delete user: %w", err)
	}
	if result.RowsAffected() == 0 {
		return user.ErrNotFound
	}
	return nil
}

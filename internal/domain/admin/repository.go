package admin

import (
	"context"

	"vokabular/internal/domain/user"
)

// Stats summarizes the user base for the admin index page.
type Stats struct {
	TotalUsers     int `json:"total_users"`
	AdminUsers     int `json:"admin_users"`
	SuspendedUsers int `json:"suspended_users"`
	ActiveUsers    int `json:"active_users"`
}

type Repository interface {
	// ListUsers returns all accounts, admins first, newest first.
	ListUsers(ctx context.Context) ([]user.User, error)
	Stats(ctx context.Context) (Stats, error)
	// SetSuspended and SetAdmin toggle account flags; both return
	// user.ErrNotFound for an unknown id.
	SetSuspended(ctx context.Context, id int, suspended bool) error
	SetAdmin(ctx context.Context, id int, admin bool) error
	// EmailInUse reports whether another user than excludeID holds the
	// address.
	EmailInUse(ctx context.Context, email string, excludeID int) (bool, error)
	UpdateEmail(ctx context.Context, id int, email string) error
	// Delete removes the account; the user's vocabularies cascade.
	Delete(ctx context.Context, id int) error
}

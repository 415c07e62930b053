package user

import "context"

type Repository interface {
	// Create inserts a new user and returns its id. An email already
	// held by another user yields ErrEmailTaken.
	Create(ctx context.Context, email, passwordHash string) (int, error)
	// FindByEmail returns the user with the given email, or ErrNotFound.
	FindByEmail(ctx context.Context, email string) (User, error)
	// FindByID returns the user with the given id, or ErrNotFound.
	FindByID(ctx context.Context, id int) (User, error)
}

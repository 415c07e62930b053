package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"vokabular/internal/domain/session"
	"vokabular/internal/domain/user"
)

type Auth struct {
	session session.Servicer
	users   user.Repository
	log     *slog.Logger
}

func New(session session.Servicer, users user.Repository, log *slog.Logger) *Auth {
	return &Auth{
		session: session,
		users:   users,
		log:     log.With("component", "auth_middleware"),
	}
}

type contextKey string

const userIDKey contextKey = "userID"

// Middleware validates the bearer token and puts the user id into the
// request context.
func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		header := ctx.Header("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			a.reject(ctx, http.StatusUnauthorized, "Unauthorized")
			return
		}

		userID, err := a.session.Validate(ctx.Context(), strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			a.log.Debug("session validation failed", "error", err)
			a.reject(ctx, http.StatusUnauthorized, "Unauthorized")
			return
		}

		newCtx := context.WithValue(ctx.Context(), userIDKey, userID)
		next(huma.WithContext(ctx, newCtx))
	}
}

// AdminOnly gates the management surface. It runs after Middleware and
// rejects callers whose account lacks the admin flag or has been
// suspended since login.
func (a *Auth) AdminOnly() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		userID, ok := GetUserID(ctx.Context())
		if !ok {
			a.reject(ctx, http.StatusUnauthorized, "Unauthorized")
			return
		}

		u, err := a.users.FindByID(ctx.Context(), userID)
		if err != nil {
			a.log.Error("failed to load user for admin check", "user_id", userID, "error", err)
			a.reject(ctx, http.StatusUnauthorized, "Unauthorized")
			return
		}
		if !u.Admin || u.Suspended {
			a.reject(ctx, http.StatusForbidden, "Access denied. Administrators only.")
			return
		}

		next(ctx)
	}
}

func (a *Auth) reject(ctx huma.Context, status int, message string) {
	ctx.SetStatus(status)
	ctx.SetHeader("Content-Type", "application/json")
	if err := json.NewEncoder(ctx.BodyWriter()).Encode(map[string]string{"error": message}); err != nil {
		a.log.Error("failed to write rejection body", "error", err)
	}
}

// GetUserID returns the authenticated user's id from the context.
func GetUserID(ctx context.Context) (int, bool) {
	userID, ok := ctx.Value(userIDKey).(int)
	return userID, ok
}

// WithUserID is a test helper for handler tests that bypass the
// middleware.
func WithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

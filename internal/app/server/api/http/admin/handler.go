package admin

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"vokabular/internal/app/server/api/http/middleware/auth"
	"vokabular/internal/domain/admin"
	"vokabular/internal/domain/changelog"
	"vokabular/internal/domain/user"
)

type Handler struct {
	service    admin.Servicer
	changelog  changelog.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service admin.Servicer, changelog changelog.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		changelog:  changelog,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.usersOp(), h.users)
	huma.Register(api, h.activityLogOp(), h.activityLog)
	huma.Register(api, h.suspendOp(), h.suspend)
	huma.Register(api, h.unsuspendOp(), h.unsuspend)
	huma.Register(api, h.promoteOp(), h.promote)
	huma.Register(api, h.demoteOp(), h.demote)
	huma.Register(api, h.changeEmailOp(), h.changeEmail)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) users(ctx context.Context, _ *struct{}) (*usersOutput, error) {
	if _, ok := auth.GetUserID(ctx); !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	users, stats, err := h.service.Index(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("failed to load users")
	}
	return &usersOutput{Body: UsersResponse{Users: users, Stats: stats}}, nil
}

func (h *Handler) activityLog(ctx context.Context, _ *struct{}) (*activityLogOutput, error) {
	if _, ok := auth.GetUserID(ctx); !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	entries, err := h.changelog.ActivityLog(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("failed to load activity log")
	}
	return &activityLogOutput{Body: ActivityLogResponse{Entries: entries}}, nil
}

func (h *Handler) suspend(ctx context.Context, input *userActionInput) (*actionOutput, error) {
	return h.runAction(ctx, input.ID, "user suspended", h.service.Suspend)
}

func (h *Handler) unsuspend(ctx context.Context, input *userActionInput) (*actionOutput, error) {
	return h.runAction(ctx, input.ID, "user unsuspended", h.service.Unsuspend)
}

func (h *Handler) promote(ctx context.Context, input *userActionInput) (*actionOutput, error) {
	return h.runAction(ctx, input.ID, "user promoted to administrator", h.service.Promote)
}

func (h *Handler) demote(ctx context.Context, input *userActionInput) (*actionOutput, error) {
	return h.runAction(ctx, input.ID, "admin rights removed", h.service.Demote)
}

func (h *Handler) delete(ctx context.Context, input *userActionInput) (*actionOutput, error) {
	return h.runAction(ctx, input.ID, "user deleted", h.service.Delete)
}

func (h *Handler) changeEmail(ctx context.Context, input *changeEmailInput) (*actionOutput, error) {
	actorID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.service.ChangeEmail(ctx, actorID, input.ID, input.Body.NewEmail); err != nil {
		return nil, h.mapError(err)
	}
	return &actionOutput{Body: ActionResponse{Status: "Ok", Message: "email changed"}}, nil
}

func (h *Handler) runAction(ctx context.Context, targetID int, message string,
	action func(ctx context.Context, actorID, targetID int) error) (*actionOutput, error) {

	actorID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := action(ctx, actorID, targetID); err != nil {
		return nil, h.mapError(err)
	}
	return &actionOutput{Body: ActionResponse{Status: "Ok", Message: message}}, nil
}

func (h *Handler) mapError(err error) error {
	var selfErr *admin.SelfActionError
	switch {
	case errors.As(err, &selfErr):
		return huma.Error403Forbidden(selfErr.Reason)
	case errors.Is(err, admin.ErrEmptyEmail):
		return huma.Error400BadRequest("email must not be empty")
	case errors.Is(err, user.ErrEmailTaken):
		return huma.Error409Conflict("this email address is already in use")
	case errors.Is(err, user.ErrNotFound):
		return huma.Error404NotFound("user not found")
	}
	h.log.Error("admin action failed", "error", err)
	return huma.Error500InternalServerError("action failed")
}

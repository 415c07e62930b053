package translate

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"vokabular/internal/app/server/api/http/middleware/auth"
	"vokabular/internal/domain/translation"
)

type Handler struct {
	service    translation.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service translation.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.translateOp(), h.translate)
}

func (h *Handler) translate(ctx context.Context, input *translateInput) (*translateOutput, error) {
	if _, ok := auth.GetUserID(ctx); !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	result, err := h.service.Translate(ctx, input.Body.Text, input.Body.SourceLang, "")
	if err != nil {
		if errors.Is(err, translation.ErrEmptyText) {
			return nil, huma.Error400BadRequest("text is required")
		}
		// Provider detail never reaches the caller.
		return nil, huma.Error500InternalServerError("translation failed")
	}

	return &translateOutput{Body: result}, nil
}

package vocabulary

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"vokabular/internal/app/server/api/http/middleware/auth"
	"vokabular/internal/domain/vocabulary"
)

type Handler struct {
	service    vocabulary.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service vocabulary.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
	huma.Register(api, h.overviewOp(), h.overview)
	huma.Register(api, h.sessionOp(), h.session)
	huma.Register(api, h.advanceOp(), h.advance)
}

func (h *Handler) create(ctx context.Context, input *createInput) (*createOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	id, err := h.service.Create(ctx, userID,
		input.Body.SourceText, input.Body.TargetText, input.Body.SourceLanguage)
	if err != nil {
		if errors.Is(err, vocabulary.ErrDuplicate) {
			return &createOutput{
				Status: http.StatusUnprocessableEntity,
				Body: CreateResponse{
					Success: false,
					Message: "this vocabulary has already been saved",
				},
			}, nil
		}
		if errors.Is(err, vocabulary.ErrInvalidInput) {
			return nil, huma.Error400BadRequest(err.Error())
		}
		return nil, huma.Error500InternalServerError("failed to save vocabulary")
	}

	return &createOutput{
		Status: http.StatusOK,
		Body: CreateResponse{
			Success:      true,
			Message:      "vocabulary saved",
			VocabularyID: id,
		},
	}, nil
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	resp, err := h.service.List(ctx, userID)
	if err != nil {
		return nil, huma.Error500InternalServerError("failed to list vocabularies")
	}
	return &listOutput{Body: resp}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*statusOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	err := h.service.Update(ctx, userID, input.ID,
		input.Body.SourceText, input.Body.TargetText, vocabulary.Status(input.Body.Status))
	if err != nil {
		switch {
		case errors.Is(err, vocabulary.ErrNotFound):
			return nil, huma.Error404NotFound("vocabulary not found")
		case errors.Is(err, vocabulary.ErrInvalidInput):
			return nil, huma.Error400BadRequest(err.Error())
		}
		return nil, huma.Error500InternalServerError("failed to update vocabulary")
	}

	return &statusOutput{Body: StatusResponse{Status: "Ok"}}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*statusOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.service.Delete(ctx, userID, input.ID); err != nil {
		if errors.Is(err, vocabulary.ErrNotFound) {
			return nil, huma.Error404NotFound("vocabulary not found")
		}
		return nil, huma.Error500InternalServerError("failed to delete vocabulary")
	}

	return &statusOutput{Body: StatusResponse{Status: "Ok"}}, nil
}

func (h *Handler) overview(ctx context.Context, _ *struct{}) (*overviewOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	resp, err := h.service.Overview(ctx, userID)
	if err != nil {
		return nil, huma.Error500InternalServerError("failed to load learning overview")
	}
	return &overviewOutput{Body: resp}, nil
}

func (h *Handler) session(ctx context.Context, input *sessionInput) (*sessionOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	cards, err := h.service.StartSession(ctx, userID, input.Language)
	if err != nil {
		switch {
		case errors.Is(err, vocabulary.ErrUnsupportedLanguage):
			return nil, huma.Error400BadRequest("unsupported language")
		case errors.Is(err, vocabulary.ErrNothingToLearn):
			// An empty queue is a signal, not a failure.
			return &sessionOutput{
				Body: SessionResponse{
					Language:     input.Language,
					LanguageName: vocabulary.LanguageNames[input.Language],
					Empty:        true,
					Message:      "nothing to learn for this language",
					Vocabularies: []vocabulary.Vocabulary{},
				},
			}, nil
		}
		return nil, huma.Error500InternalServerError("failed to start session")
	}

	return &sessionOutput{
		Body: SessionResponse{
			Language:     input.Language,
			LanguageName: vocabulary.LanguageNames[input.Language],
			Vocabularies: cards,
		},
	}, nil
}

func (h *Handler) advance(ctx context.Context, input *advanceInput) (*advanceOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	status, err := h.service.AdvanceCard(ctx, userID, input.Body.ID, input.Body.Correct)
	if err != nil {
		if errors.Is(err, vocabulary.ErrNotFound) {
			return nil, huma.Error404NotFound("vocabulary not found")
		}
		h.log.Error("failed to advance learning status", "vocabulary_id", input.Body.ID, "error", err)
		return nil, huma.Error500InternalServerError("failed to update learning status")
	}

	return &advanceOutput{
		Body: AdvanceResponse{
			Status:     string(status),
			StatusName: status.GermanName(),
		},
	}, nil
}

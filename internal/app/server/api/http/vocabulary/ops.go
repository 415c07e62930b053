package vocabulary

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

var bearerSecurity = []map[string][]string{{"bearer": {}}}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "vocabularies-create",
		Method:      http.MethodPost,
		Path:        "/vocabularies",
		Summary:     "Save a new flashcard",
		Description: "Saving the same source text and language twice is reported as already saved, not stored again.",
		Tags:        []string{"vocabularies"},
		Security:    bearerSecurity,
		Middlewares: h.middleware,
	}
}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "vocabularies-list",
		Method:      http.MethodGet,
		Path:        "/vocabularies",
		Summary:     "List the user's flashcards grouped by language",
		Tags:        []string{"vocabularies"},
		Security:    bearerSecurity,
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "vocabularies-update",
		Method:      http.MethodPatch,
		Path:        "/vocabularies/{id}",
		Summary:     "Edit a flashcard",
		Tags:        []string{"vocabularies"},
		Security:    bearerSecurity,
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "vocabularies-delete",
		Method:      http.MethodDelete,
		Path:        "/vocabularies/{id}",
		Summary:     "Delete a flashcard",
		Tags:        []string{"vocabularies"},
		Security:    bearerSecurity,
		Middlewares: h.middleware,
	}
}

func (h *Handler) overviewOp() huma.Operation {
	return huma.Operation{
		OperationID: "vocabularies-learn-overview",
		Method:      http.MethodGet,
		Path:        "/vocabularies/learn",
		Summary:     "Learning progress per language",
		Tags:        []string{"learning"},
		Security:    bearerSecurity,
		Middlewares: h.middleware,
	}
}

func (h *Handler) sessionOp() huma.Operation {
	return huma.Operation{
		OperationID: "vocabularies-learn-session",
		Method:      http.MethodGet,
		Path:        "/vocabularies/learn/{language}",
		Summary:     "Start a practice session",
		Description: "Returns up to 20 open or learning flashcards of the language in random order.",
		Tags:        []string{"learning"},
		Security:    bearerSecurity,
		Middlewares: h.middleware,
	}
}

func (h *Handler) advanceOp() huma.Operation {
	return huma.Operation{
		OperationID: "vocabularies-update-learning-status",
		Method:      http.MethodPatch,
		Path:        "/vocabularies/update_learning_status",
		Summary:     "Report a practice answer",
		Description: "Moves the flashcard forward on a correct answer and resets it to open on a wrong one.",
		Tags:        []string{"learning"},
		Security:    bearerSecurity,
		Middlewares: h.middleware,
	}
}

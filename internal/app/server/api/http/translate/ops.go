package translate

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) translateOp() huma.Operation {
	return huma.Operation{
		OperationID: "translate",
		Method:      http.MethodPost,
		Path:        "/translate",
		Summary:     "Translate text into German",
		Description: "Sends the text to the translation provider. When no source language is given the provider detects it.",
		Tags:        []string{"translation"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

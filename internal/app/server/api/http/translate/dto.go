package translate

import "vokabular/internal/domain/translation"

type translateInput struct {
	Body TranslateRequest
}

type TranslateRequest struct {
	Text       string `json:"text" doc:"Text to translate" maxLength:"1000"`
	SourceLang string `json:"source_lang,omitempty" doc:"2-letter source language, empty for auto-detection" maxLength:"2"`
}

type translateOutput struct {
	Body translation.Result
}

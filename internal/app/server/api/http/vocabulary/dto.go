package vocabulary

import "vokabular/internal/domain/vocabulary"

type CreateRequest struct {
	SourceText     string `json:"source_text" doc:"Text in the foreign language" maxLength:"1000"`
	TargetText     string `json:"target_text" doc:"German translation" maxLength:"1000"`
	SourceLanguage string `json:"source_language" doc:"2-letter source language code" maxLength:"2"`
}

type createInput struct {
	Body CreateRequest
}

type createOutput struct {
	Status int
	Body   CreateResponse
}

type CreateResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	VocabularyID int    `json:"vocabulary_id,omitempty"`
}

type listOutput struct {
	Body vocabulary.ListResponse
}

type UpdateRequest struct {
	SourceText string `json:"source_text" maxLength:"1000"`
	TargetText string `json:"target_text" maxLength:"1000"`
	Status     string `json:"status" doc:"One of open, learning, learned" enum:"open,learning,learned"`
}

type updateInput struct {
	ID   int `path:"id" doc:"Vocabulary ID"`
	Body UpdateRequest
}

type deleteInput struct {
	ID int `path:"id" doc:"Vocabulary ID"`
}

type statusOutput struct {
	Body StatusResponse
}

type StatusResponse struct {
	Status string `json:"status"`
}

type overviewOutput struct {
	Body vocabulary.OverviewResponse
}

type sessionInput struct {
	Language string `path:"language" doc:"2-letter source language code" maxLength:"5"`
}

type sessionOutput struct {
	Body SessionResponse
}

type SessionResponse struct {
	Language     string                  `json:"language"`
	LanguageName string                  `json:"language_name,omitempty"`
	Empty        bool                    `json:"empty"`
	Message      string                  `json:"message,omitempty"`
	Vocabularies []vocabulary.Vocabulary `json:"vocabularies"`
}

type AdvanceRequest struct {
	ID      int  `json:"id" doc:"Vocabulary ID"`
	Correct bool `json:"correct" doc:"Whether the answer was correct"`
}

type advanceInput struct {
	Body AdvanceRequest
}

type advanceOutput struct {
	Body AdvanceResponse
}

type AdvanceResponse struct {
	Status     string `json:"status"`
	StatusName string `json:"status_name"`
}

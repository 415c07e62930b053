package vocabulary

import "time"

// Vocabulary is one saved flashcard: a source/target text pair with a
// learning status, owned by exactly one user.
type Vocabulary struct {
	ID             int       `json:"id"`
	UserID         int       `json:"-"`
	SourceText     string    `json:"source_text"`
	TargetText     string    `json:"target_text"`
	SourceLanguage string    `json:"source_language"`
	Status         Status    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// StatusCounts is the learning progress of one language.
type StatusCounts struct {
	Total    int `json:"total"`
	Open     int `json:"open"`
	Learning int `json:"learning"`
	Learned  int `json:"learned"`
	ToLearn  int `json:"to_learn"`
}

// LanguageGroup is the vocabulary list of one source language, sorted
// status-priority first, most recently updated second.
type LanguageGroup struct {
	Language     string       `json:"language"`
	LanguageName string       `json:"language_name"`
	Vocabularies []Vocabulary `json:"vocabularies"`
}

type ListResponse struct {
	Languages []LanguageGroup `json:"languages"`
}

// OverviewEntry is the per-language progress shown on the learn page.
type OverviewEntry struct {
	Language     string       `json:"language"`
	LanguageName string       `json:"language_name"`
	Counts       StatusCounts `json:"counts"`
}

type OverviewResponse struct {
	Languages []OverviewEntry `json:"languages"`
}

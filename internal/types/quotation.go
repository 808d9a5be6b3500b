// Package types provides type definitions for structured data used throughout the quote-harvester system.
package types

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Language is an ISO-639-1 style language code for quotation text.
type Language string

const (
	// LanguageEnglish is the code for English quotations.
	LanguageEnglish Language = "en"
	// LanguageRussian is the code for Russian quotations.
	LanguageRussian Language = "ru"
)

// Supported reports whether the language is part of the ingestion pool.
func (l Language) Supported() bool {
	return l == LanguageEnglish || l == LanguageRussian
}

// Counterpart returns the translation target for a source language.
// The pool is a fixed bidirectional pair, so every supported language
// has exactly one counterpart.
func (l Language) Counterpart() (Language, bool) {
	switch l {
	case LanguageEnglish:
		return LanguageRussian, true
	case LanguageRussian:
		return LanguageEnglish, true
	default:
		return "", false
	}
}

// Candidate is an unvalidated quotation produced by a source adapter.
// It exists only in memory; it is either rejected or handed to the sink.
type Candidate struct {
	Text      string   `json:"text" validate:"required"`
	Language  Language `json:"language" validate:"required"`
	Author    string   `json:"author,omitempty"`
	SourceURL string   `json:"source_url,omitempty" validate:"omitempty,url"`
}

var candidateValidator = validator.New()

// Validate validates the Candidate's field shape using the validator.
// Content heuristics (length, character classes) live in the validate package.
func (c *Candidate) Validate() error {
	return candidateValidator.Struct(c)
}

// Quotation is a persisted, validated, optionally translated quotation row.
// Nullable columns are pointers; TextTranslated and LanguageTranslated are
// either both set or both nil.
type Quotation struct {
	ID                 int64      `json:"id"`
	TextOriginal       string     `json:"text_original"`
	LanguageOriginal   Language   `json:"language_original"`
	TextTranslated     *string    `json:"text_translated,omitempty"`
	LanguageTranslated *Language  `json:"language_translated,omitempty"`
	Author             *string    `json:"author,omitempty"`
	SourceURL          *string    `json:"source_url,omitempty"`
	IsValidated        bool       `json:"is_validated"`
	CreatedAt          time.Time  `json:"created_at"`
}

// FromCandidate builds an unpersisted Quotation from an accepted candidate.
// The text is trimmed and its internal whitespace collapsed here so the
// store-level uniqueness guarantee does not depend on every adapter having
// normalized its output. Empty optional fields become NULL columns.
func FromCandidate(c Candidate) *Quotation {
	q := &Quotation{
		TextOriginal:     strings.Join(strings.Fields(c.Text), " "),
		LanguageOriginal: c.Language,
		IsValidated:      true,
	}
	if c.Author != "" {
		author := c.Author
		q.Author = &author
	}
	if c.SourceURL != "" {
		sourceURL := c.SourceURL
		q.SourceURL = &sourceURL
	}
	return q
}

// SetTranslation records a successful translation on the quotation,
// keeping the text/language pair consistent.
func (q *Quotation) SetTranslation(text string, lang Language) {
	q.TextTranslated = &text
	q.LanguageTranslated = &lang
}

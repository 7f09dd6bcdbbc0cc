package resolver

import (
	"github.com/kelimeci/kelimeci-backend/internal/domain"
)

// ResolveInput holds parameters for sense resolution: a sentence and the
// byte span of the target word inside it.
type ResolveInput struct {
	Sentence       string
	WordStartIndex int
	WordLength     int
}

// Validate validates the resolve input.
func (i ResolveInput) Validate() error {
	var errs []domain.FieldError

	if i.Sentence == "" {
		errs = append(errs, domain.FieldError{Field: "sentence", Message: "required"})
	}
	if i.WordStartIndex < 0 {
		errs = append(errs, domain.FieldError{Field: "word_start_index", Message: "must be non-negative"})
	}
	if i.WordLength < 1 {
		errs = append(errs, domain.FieldError{Field: "word_length", Message: "must be at least 1"})
	}
	if i.WordStartIndex >= 0 && i.WordLength >= 1 && i.WordStartIndex+i.WordLength > len(i.Sentence) {
		errs = append(errs, domain.FieldError{Field: "word_length", Message: "span exceeds sentence"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Target returns the word the span points at. Call Validate first.
func (i ResolveInput) Target() string {
	return i.Sentence[i.WordStartIndex : i.WordStartIndex+i.WordLength]
}

package wordlist

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/kelimeci/kelimeci-backend/internal/domain"
	"github.com/kelimeci/kelimeci-backend/internal/service/resolver"
)

// maxNameLength bounds list names at the service edge; the column is TEXT.
const maxNameLength = 255

// CreateListInput holds parameters for creating a word list.
type CreateListInput struct {
	UserID uuid.UUID
	Name   string
}

// Validate validates the create-list input.
func (i CreateListInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == (uuid.UUID{}) {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(name) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: fmt.Sprintf("must be at most %d characters", maxNameLength)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AddWordInput identifies one word occurrence in a sentence to resolve and
// attach to a list.
type AddWordInput struct {
	UserID         uuid.UUID
	ListID         uuid.UUID
	Sentence       string
	WordStartIndex int
	WordLength     int
}

// Validate validates the add-word input. Span bounds are checked by the
// resolver input.
func (i AddWordInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == (uuid.UUID{}) {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if i.ListID == (uuid.UUID{}) {
		errs = append(errs, domain.FieldError{Field: "list_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateList creates an empty word list for the user.
func (s *Service) CreateList(ctx context.Context, input CreateListInput) (*domain.WordList, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	list, err := s.lists.Create(ctx, input.UserID, strings.TrimSpace(input.Name))
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "word list created",
		slog.String("word_list_id", list.ID.String()))

	return list, nil
}

// ListForUser returns all of the user's word lists, without senses.
func (s *Service) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.WordList, error) {
	if userID == (uuid.UUID{}) {
		return nil, domain.NewValidationError("user_id", "required")
	}
	return s.lists.ListByUserID(ctx, userID)
}

// GetList returns one of the user's lists together with its senses.
// Returns domain.ErrNotFound for lists the user does not own.
func (s *Service) GetList(ctx context.Context, userID, listID uuid.UUID) (*domain.WordList, error) {
	if userID == (uuid.UUID{}) {
		return nil, domain.NewValidationError("user_id", "required")
	}
	if listID == (uuid.UUID{}) {
		return nil, domain.NewValidationError("list_id", "required")
	}

	list, err := s.lists.GetByIDForUser(ctx, userID, listID)
	if err != nil {
		return nil, err
	}

	list.Senses, err = s.lists.ListSenses(ctx, list.ID)
	if err != nil {
		return nil, err
	}

	return list, nil
}

// AddWord resolves the marked word occurrence into a sense and attaches it
// to the list. Ownership is checked before the resolution pipeline runs;
// attaching a sense the list already holds is a no-op.
func (s *Service) AddWord(ctx context.Context, input AddWordInput) (*domain.Sense, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	list, err := s.lists.GetByIDForUser(ctx, input.UserID, input.ListID)
	if err != nil {
		return nil, err
	}

	sense, err := s.resolver.Resolve(ctx, resolver.ResolveInput{
		Sentence:       input.Sentence,
		WordStartIndex: input.WordStartIndex,
		WordLength:     input.WordLength,
	})
	if err != nil {
		return nil, fmt.Errorf("resolve word: %w", err)
	}

	if err := s.lists.AddSense(ctx, list.ID, sense.ID); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "word added to list",
		slog.String("word_list_id", list.ID.String()),
		slog.String("sense_id", sense.ID.String()))

	return sense, nil
}

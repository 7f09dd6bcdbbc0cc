// Package wordlist implements word-list management: creating lists, reading
// them back with their senses, and growing them one word at a time through
// the sense resolver.
package wordlist

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kelimeci/kelimeci-backend/internal/domain"
	"github.com/kelimeci/kelimeci-backend/internal/service/resolver"
)

// listRepo defines the word-list repository interface needed by the service.
type listRepo interface {
	Create(ctx context.Context, userID uuid.UUID, name string) (*domain.WordList, error)
	GetByIDForUser(ctx context.Context, userID, listID uuid.UUID) (*domain.WordList, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]domain.WordList, error)
	ListSenses(ctx context.Context, listID uuid.UUID) ([]domain.Sense, error)
	AddSense(ctx context.Context, listID, senseID uuid.UUID) error
}

// senseResolver defines the resolution pipeline interface needed by the
// service: one word in one sentence in, one deduplicated sense out.
type senseResolver interface {
	Resolve(ctx context.Context, input resolver.ResolveInput) (*domain.Sense, error)
}

// Service implements word-list management.
type Service struct {
	log      *slog.Logger
	lists    listRepo
	resolver senseResolver
}

// NewService creates a new word-list service instance.
func NewService(logger *slog.Logger, lists listRepo, res senseResolver) *Service {
	return &Service{
		log:      logger.With("service", "wordlist"),
		lists:    lists,
		resolver: res,
	}
}

// Package resolver implements word-sense resolution: a word in its sentence
// context is analyzed, embedded, matched against existing catalog meanings,
// and either reused or persisted as a new sense. Analyzer-suggested synonyms
// are resolved recursively with a bounded depth.
package resolver

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kelimeci/kelimeci-backend/internal/domain"
)

// analyzer defines the lexical analyzer interface needed by the resolver.
type analyzer interface {
	Analyze(ctx context.Context, sentence, target string) (*domain.WordAnalysis, error)
}

// semanticService defines the embedding and similarity-scoring interface
// needed by the resolver.
type semanticService interface {
	Vectorize(ctx context.Context, text string) (domain.Vector, error)
	CrossEncode(ctx context.Context, sentenceA, sentenceB string) (float64, error)
}

// wordRepo defines the word repository interface needed by the resolver.
type wordRepo interface {
	GetByWriting(ctx context.Context, writing string) (*domain.Word, error)
	Create(ctx context.Context, writing string) (*domain.Word, error)
}

// meaningRepo defines the meaning repository interface needed by the resolver.
type meaningRepo interface {
	Create(ctx context.Context, m *domain.Meaning) (*domain.Meaning, error)
	FindNearest(ctx context.Context, vec domain.Vector, k int) ([]domain.Meaning, error)
}

// senseRepo defines the sense repository interface needed by the resolver.
type senseRepo interface {
	GetByWordAndMeaning(ctx context.Context, wordID, meaningID uuid.UUID, pos domain.PartOfSpeech) (*domain.Sense, error)
	Create(ctx context.Context, s *domain.Sense) (*domain.Sense, error)
}

// txManager defines the transaction manager interface needed by the resolver.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements the word-sense resolution pipeline.
type Service struct {
	log      *slog.Logger
	analyzer analyzer
	semantic semanticService
	words    wordRepo
	meanings meaningRepo
	senses   senseRepo
	tx       txManager

	lemmaLocks *keyedMutex
}

// NewService creates a new resolver service instance.
func NewService(
	logger *slog.Logger,
	analyzer analyzer,
	semantic semanticService,
	words wordRepo,
	meanings meaningRepo,
	senses senseRepo,
	tx txManager,
) *Service {
	return &Service{
		log:        logger.With("service", "resolver"),
		analyzer:   analyzer,
		semantic:   semantic,
		words:      words,
		meanings:   meanings,
		senses:     senses,
		tx:         tx,
		lemmaLocks: newKeyedMutex(),
	}
}

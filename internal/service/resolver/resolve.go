package resolver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/kelimeci/kelimeci-backend/internal/domain"
)

const (
	// maxRecursionDepth bounds how far synonym resolution may recurse.
	maxRecursionDepth = 2

	// nearestCandidates is how many nearest meanings are re-ranked by the
	// cross-encoder before deciding to reuse or create.
	nearestCandidates = 5

	// synonymThreshold is the minimum cross-encoder score at which a
	// candidate meaning counts as equivalent and is reused.
	synonymThreshold = 0.65

	// maxConcurrentSynonyms caps the synonym fan-out per analysis.
	maxConcurrentSynonyms = 4
)

// Resolve runs the full pipeline for the word the input span points at and
// returns its catalog sense, reused or newly created. When the sense is
// newly created, synonym branches run after it is settled; their failures
// are logged, not returned. A reused sense returns without touching its
// synonyms.
func (s *Service) Resolve(ctx context.Context, input ResolveInput) (*domain.Sense, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return s.resolve(ctx, input.Sentence, input.Target(), 0)
}

func (s *Service) resolve(ctx context.Context, sentence, target string, depth int) (*domain.Sense, error) {
	analysis, err := s.analyzer.Analyze(ctx, sentence, target)
	if err != nil {
		return nil, err
	}

	sense, reused, err := s.resolveAnalysis(ctx, analysis)
	if err != nil {
		return nil, err
	}

	// A reused sense had its synonym tree expanded when it was first
	// created; duplicates return as-is.
	if !reused && depth < maxRecursionDepth && len(analysis.Synonyms) > 0 {
		s.resolveSynonyms(ctx, analysis.Synonyms, depth)
	}

	return sense, nil
}

// resolveAnalysis deduplicates one analysis against the catalog, serialized
// per lemma. A duplicate insert from a racing writer with a different lemma
// is resolved by re-reading once.
func (s *Service) resolveAnalysis(ctx context.Context, analysis *domain.WordAnalysis) (*domain.Sense, bool, error) {
	unlock := s.lemmaLocks.Lock(analysis.Lemma)
	defer unlock()

	sense, reused, err := s.resolveOnce(ctx, analysis)
	if errors.Is(err, domain.ErrAlreadyExists) {
		s.log.DebugContext(ctx, "lost sense race, re-reading",
			slog.String("lemma", analysis.Lemma))
		return s.resolveOnce(ctx, analysis)
	}
	return sense, reused, err
}

// resolveOnce reports whether the returned sense was reused from the
// catalog rather than created.
func (s *Service) resolveOnce(ctx context.Context, analysis *domain.WordAnalysis) (*domain.Sense, bool, error) {
	canonical := analysis.CanonicalText()

	vec, err := s.semantic.Vectorize(ctx, canonical)
	if err != nil {
		return nil, false, err
	}

	meaning, err := s.findEquivalentMeaning(ctx, canonical, vec)
	if err != nil {
		return nil, false, err
	}
	meaningReused := meaning != nil

	word, err := s.words.GetByWriting(ctx, analysis.Lemma)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, false, err
	}
	wordReused := word != nil

	if meaningReused && wordReused {
		existing, err := s.senses.GetByWordAndMeaning(ctx, word.ID, meaning.ID, analysis.PartOfSpeech)
		if err == nil {
			s.log.InfoContext(ctx, "sense reused",
				slog.String("lemma", analysis.Lemma),
				slog.String("sense_id", existing.ID.String()))
			return existing, true, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, false, err
		}
	}

	var created *domain.Sense
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if !meaningReused {
			m, err := s.meanings.Create(ctx, &domain.Meaning{
				DescriptionEn: analysis.MeaningEn,
				DescriptionTr: analysis.MeaningTr,
				Embedding:     vec,
			})
			if err != nil {
				return fmt.Errorf("create meaning: %w", err)
			}
			meaning = m
		}

		if !wordReused {
			w, err := s.words.Create(ctx, analysis.Lemma)
			if err != nil {
				return fmt.Errorf("create word: %w", err)
			}
			word = w
		}

		sense, err := s.senses.Create(ctx, &domain.Sense{
			WordID:       word.ID,
			MeaningID:    meaning.ID,
			PartOfSpeech: analysis.PartOfSpeech,
			Example: &domain.ExampleSentence{
				SentenceEn: analysis.ExampleEn,
				SentenceTr: analysis.ExampleTr,
			},
		})
		if err != nil {
			return fmt.Errorf("create sense: %w", err)
		}

		sense.Word = word
		sense.Meaning = meaning
		created = sense
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	s.log.InfoContext(ctx, "sense created",
		slog.String("lemma", analysis.Lemma),
		slog.String("sense_id", created.ID.String()),
		slog.Bool("word_reused", wordReused),
		slog.Bool("meaning_reused", meaningReused))

	return created, false, nil
}

// findEquivalentMeaning re-ranks the nearest catalog meanings with the
// cross-encoder and returns the first one at or above the reuse threshold,
// or nil when no candidate qualifies.
func (s *Service) findEquivalentMeaning(ctx context.Context, canonical string, vec domain.Vector) (*domain.Meaning, error) {
	candidates, err := s.meanings.FindNearest(ctx, vec, nearestCandidates)
	if err != nil {
		return nil, err
	}

	for _, candidate := range candidates {
		score, err := s.semantic.CrossEncode(ctx, canonical, candidate.DescriptionEn)
		if err != nil {
			return nil, err
		}
		if score >= synonymThreshold {
			return &candidate, nil
		}
	}

	return nil, nil
}

// resolveSynonyms resolves each synonym candidate as its own branch. A
// failed or skipped branch never affects its siblings or the caller.
func (s *Service) resolveSynonyms(ctx context.Context, synonyms []domain.SynonymCandidate, depth int) {
	var g errgroup.Group
	g.SetLimit(maxConcurrentSynonyms)

	for _, syn := range synonyms {
		g.Go(func() error {
			s.resolveSynonym(ctx, syn, depth)
			return nil
		})
	}

	g.Wait() //nolint:errcheck // branches never return errors
}

func (s *Service) resolveSynonym(ctx context.Context, syn domain.SynonymCandidate, depth int) {
	idx := strings.Index(strings.ToLower(syn.ExampleSentence), strings.ToLower(syn.Word))
	if idx == -1 {
		s.log.DebugContext(ctx, "synonym not present in its sentence, skipped",
			slog.String("synonym", syn.Word))
		return
	}

	if _, err := s.resolve(ctx, syn.ExampleSentence, syn.ExampleSentence[idx:idx+len(syn.Word)], depth+1); err != nil {
		s.log.WarnContext(ctx, "synonym branch failed",
			slog.String("synonym", syn.Word),
			slog.Int("depth", depth+1),
			slog.String("error", err.Error()))
	}
}

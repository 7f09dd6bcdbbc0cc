package quiz

import (
	"context"
	"fmt"
	"regexp"

	"github.com/google/uuid"

	"github.com/kelimeci/kelimeci-backend/internal/domain"
)

const (
	// optionCount is the full option slate of a multiple-choice question.
	optionCount = 4

	// matchingPairGoal is how many pairs a synonym-matching question aims for.
	matchingPairGoal = 4

	// distractorFetchCap bounds the candidate rows fetched per question.
	distractorFetchCap = 32

	blankMarker = "_____"
)

// buildMultipleChoice builds a question whose correct options are true
// synonyms of the target (same meaning, different word). Returns nil when
// the target has no synonyms; the caller falls back to fill-in-the-blank.
func (s *Service) buildMultipleChoice(ctx context.Context, target domain.Sense) (*domain.Question, error) {
	siblings, err := s.senses.ListByMeaningID(ctx, target.MeaningID)
	if err != nil {
		return nil, err
	}

	var synonyms []domain.Sense
	for _, sibling := range siblings {
		if sibling.WordID != target.WordID {
			synonyms = append(synonyms, sibling)
		}
	}
	if len(synonyms) == 0 {
		return nil, nil
	}

	s.rnd.Shuffle(len(synonyms), func(i, j int) {
		synonyms[i], synonyms[j] = synonyms[j], synonyms[i]
	})

	correctCount := 1 + s.rnd.Intn(2)
	if correctCount > len(synonyms) {
		correctCount = len(synonyms)
	}

	options := make([]domain.Sense, 0, optionCount)
	answers := make([]domain.Answer, 0, correctCount)
	for _, synonym := range synonyms[:correctCount] {
		options = append(options, synonym)
		answers = append(answers, domain.Answer{Words: []domain.Word{*synonym.Word}})
	}

	distractors, err := s.senses.ListCandidates(ctx, target.MeaningID, target.Word.Writing, distractorFetchCap)
	if err != nil {
		return nil, err
	}
	s.rnd.Shuffle(len(distractors), func(i, j int) {
		distractors[i], distractors[j] = distractors[j], distractors[i]
	})
	for _, distractor := range distractors {
		if len(options) == optionCount {
			break
		}
		options = append(options, distractor)
	}

	s.rnd.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return &domain.Question{
		Type:     domain.QuestionTypeMultipleChoice,
		Sentence: "Select the word(s) matching: " + target.Word.Writing,
		Options:  options,
		Answers:  answers,
	}, nil
}

// buildFillInBlank blanks every whole-word occurrence of the target word in
// its stored example sentence. This generator always succeeds and doubles
// as the fallback for the other two.
func buildFillInBlank(target domain.Sense) (*domain.Question, error) {
	pattern, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(target.Word.Writing) + `\b`)
	if err != nil {
		return nil, fmt.Errorf("build blank pattern for %q: %w", target.Word.Writing, err)
	}

	return &domain.Question{
		Type:     domain.QuestionTypeFillInBlank,
		Sentence: pattern.ReplaceAllString(target.Example.SentenceEn, blankMarker),
		Options:  []domain.Sense{target},
		Answers:  []domain.Answer{{Words: []domain.Word{*target.Word}}},
	}, nil
}

// buildSynonymMatching draws unused senses from the shuffled pool and pairs
// each with its first in-pool true synonym, until matchingPairGoal pairs are
// found or the pool is exhausted. Returns nil when no pair exists.
func (s *Service) buildSynonymMatching(pool []domain.Sense) *domain.Question {
	shuffled := make([]domain.Sense, len(pool))
	copy(shuffled, pool)
	s.rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	used := make(map[uuid.UUID]bool)

	var (
		options []domain.Sense
		answers []domain.Answer
	)
	for _, left := range shuffled {
		if len(answers) == matchingPairGoal {
			break
		}
		if used[left.ID] {
			continue
		}

		partner, ok := findPoolSynonym(shuffled, left, used)
		if !ok {
			continue
		}

		used[left.ID] = true
		used[partner.ID] = true
		options = append(options, left, partner)
		answers = append(answers, domain.Answer{
			Words: []domain.Word{*left.Word, *partner.Word},
		})
	}

	if len(answers) == 0 {
		return nil
	}

	return &domain.Question{
		Type:     domain.QuestionTypeSynonymMatching,
		Sentence: "Match the pairs.",
		Options:  options,
		Answers:  answers,
	}
}

func findPoolSynonym(pool []domain.Sense, target domain.Sense, used map[uuid.UUID]bool) (domain.Sense, bool) {
	for _, candidate := range pool {
		if candidate.ID == target.ID || used[candidate.ID] {
			continue
		}
		if candidate.MeaningID == target.MeaningID && candidate.WordID != target.WordID {
			return candidate, true
		}
	}
	return domain.Sense{}, false
}

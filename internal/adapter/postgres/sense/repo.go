// Package sense implements the Sense repository using PostgreSQL.
// Senses are read joined with their word, meaning, and example sentence;
// nested meanings omit the embedding (only the resolver's nearest-neighbour
// search needs it, and that goes through the meaning repository).
package sense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/kelimeci/kelimeci-backend/internal/adapter/postgres"
	"github.com/kelimeci/kelimeci-backend/internal/domain"
)

// Repo provides sense persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new sense repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const joinedSelect = `
SELECT s.id, s.word_id, s.meaning_id, s.part_of_speech, s.created_at,
       w.writing,
       m.description_en, m.description_tr,
       es.id, es.sentence_en, es.sentence_tr
FROM senses s
JOIN words w ON w.id = s.word_id
JOIN meanings m ON m.id = s.meaning_id
JOIN example_sentences es ON es.id = s.example_sentence_id`

const getByIDSQL = joinedSelect + `
WHERE s.id = $1`

const getByWordAndMeaningSQL = joinedSelect + `
WHERE s.word_id = $1 AND s.meaning_id = $2 AND s.part_of_speech = $3`

const listByMeaningIDSQL = joinedSelect + `
WHERE s.meaning_id = $1
ORDER BY s.created_at`

// listCandidatesSQL feeds multiple-choice distractor selection: every sense
// that shares neither the target's meaning nor its word writing.
const listCandidatesSQL = joinedSelect + `
WHERE s.meaning_id != $1 AND w.writing != $2
ORDER BY s.created_at
LIMIT $3`

const insertExampleSQL = `
INSERT INTO example_sentences (id, sentence_en, sentence_tr)
VALUES ($1, $2, $3)`

const insertSenseSQL = `
INSERT INTO senses (id, word_id, meaning_id, part_of_speech, example_sentence_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a sense joined with word, meaning, and example.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Sense, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	s, err := scanSenseRow(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "sense", id)
	}

	return s, nil
}

// GetByWordAndMeaning returns the sense linking the given word and meaning
// with the given part of speech, or domain.ErrNotFound. The triple is unique,
// so at most one row matches.
func (r *Repo) GetByWordAndMeaning(ctx context.Context, wordID, meaningID uuid.UUID, pos domain.PartOfSpeech) (*domain.Sense, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	s, err := scanSenseRow(querier.QueryRow(ctx, getByWordAndMeaningSQL, wordID, meaningID, pos))
	if err != nil {
		return nil, postgres.MapError(err, "sense", wordID)
	}

	return s, nil
}

// ListByMeaningID returns every sense sharing a meaning (true synonyms plus
// the sense itself), oldest first.
func (r *Repo) ListByMeaningID(ctx context.Context, meaningID uuid.UUID) ([]domain.Sense, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := querier.Query(ctx, listByMeaningIDSQL, meaningID)
	if err != nil {
		return nil, fmt.Errorf("list senses by meaning: %w", err)
	}
	defer rows.Close()

	return scanSenses(rows)
}

// ListCandidates returns up to limit distractor candidates: senses whose
// meaning differs from excludeMeaningID and whose word writing differs from
// excludeWriting.
func (r *Repo) ListCandidates(ctx context.Context, excludeMeaningID uuid.UUID, excludeWriting string, limit int) ([]domain.Sense, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := querier.Query(ctx, listCandidatesSQL, excludeMeaningID, excludeWriting, limit)
	if err != nil {
		return nil, fmt.Errorf("list distractor candidates: %w", err)
	}
	defer rows.Close()

	return scanSenses(rows)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create persists a sense together with its example sentence pair.
// The caller supplies WordID, MeaningID, PartOfSpeech, and Example sentences;
// run inside a transaction when atomicity with other writes is required.
// Returns domain.ErrAlreadyExists if the (word, meaning, part of speech)
// triple is already taken.
func (r *Repo) Create(ctx context.Context, s *domain.Sense) (*domain.Sense, error) {
	if s.Example == nil {
		return nil, fmt.Errorf("sense: %w", domain.NewValidationError("example", "required"))
	}

	querier := postgres.QuerierFromCtx(ctx, r.db)

	created := *s
	created.ID = uuid.New()
	created.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)

	example := *s.Example
	example.ID = uuid.New()
	created.Example = &example

	if _, err := querier.Exec(ctx, insertExampleSQL,
		example.ID, example.SentenceEn, example.SentenceTr); err != nil {
		return nil, postgres.MapError(err, "example_sentence", example.ID)
	}

	if _, err := querier.Exec(ctx, insertSenseSQL,
		created.ID, created.WordID, created.MeaningID,
		created.PartOfSpeech, example.ID, created.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "sense", created.ID)
	}

	return &created, nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

func scanSenses(rows pgx.Rows) ([]domain.Sense, error) {
	var senses []domain.Sense
	for rows.Next() {
		s, err := scanSenseRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sense: %w", err)
		}
		senses = append(senses, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if senses == nil {
		senses = []domain.Sense{}
	}
	return senses, nil
}

func scanSenseRow(row pgx.Row) (*domain.Sense, error) {
	var (
		s       domain.Sense
		word    domain.Word
		meaning domain.Meaning
		example domain.ExampleSentence
	)

	if err := row.Scan(
		&s.ID, &s.WordID, &s.MeaningID, &s.PartOfSpeech, &s.CreatedAt,
		&word.Writing,
		&meaning.DescriptionEn, &meaning.DescriptionTr,
		&example.ID, &example.SentenceEn, &example.SentenceTr,
	); err != nil {
		return nil, err
	}

	word.ID = s.WordID
	meaning.ID = s.MeaningID
	s.Word = &word
	s.Meaning = &meaning
	s.Example = &example

	return &s, nil
}

// Package wordlist implements the WordList repository using PostgreSQL.
package wordlist

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/kelimeci/kelimeci-backend/internal/adapter/postgres"
	"github.com/kelimeci/kelimeci-backend/internal/domain"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides word-list persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new word-list repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const getByIDForUserSQL = `
SELECT id, user_id, name, created_at
FROM word_lists
WHERE id = $1 AND user_id = $2`

const listSensesSQL = `
SELECT s.id, s.word_id, s.meaning_id, s.part_of_speech, s.created_at,
       w.writing,
       m.description_en, m.description_tr,
       es.id, es.sentence_en, es.sentence_tr
FROM word_list_senses wls
JOIN senses s ON s.id = wls.sense_id
JOIN words w ON w.id = s.word_id
JOIN meanings m ON m.id = s.meaning_id
JOIN example_sentences es ON es.id = s.example_sentence_id
WHERE wls.word_list_id = $1
ORDER BY s.created_at`

// addSenseSQL is idempotent: attaching an already-attached sense is a no-op.
const addSenseSQL = `
INSERT INTO word_list_senses (word_list_id, sense_id)
VALUES ($1, $2)
ON CONFLICT DO NOTHING`

// Create inserts a new word list for the user.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, name string) (*domain.WordList, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	list := domain.WordList{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	query, args, err := qb.
		Insert("word_lists").
		Columns("id", "user_id", "name", "created_at").
		Values(list.ID, list.UserID, list.Name, list.CreatedAt).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build word_list insert: %w", err)
	}

	if _, err := querier.Exec(ctx, query, args...); err != nil {
		return nil, postgres.MapError(err, "word_list", list.ID)
	}

	return &list, nil
}

// GetByIDForUser returns a list owned by the user, without senses.
// Returns domain.ErrNotFound if absent or owned by someone else.
func (r *Repo) GetByIDForUser(ctx context.Context, userID, listID uuid.UUID) (*domain.WordList, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	var list domain.WordList
	row := querier.QueryRow(ctx, getByIDForUserSQL, listID, userID)
	if err := row.Scan(&list.ID, &list.UserID, &list.Name, &list.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "word_list", listID)
	}

	return &list, nil
}

// ListByUserID returns all lists owned by the user, without senses.
func (r *Repo) ListByUserID(ctx context.Context, userID uuid.UUID) ([]domain.WordList, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := qb.
		Select("id", "user_id", "name", "created_at").
		From("word_lists").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build word_lists query: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list word_lists: %w", err)
	}
	defer rows.Close()

	var lists []domain.WordList
	if err := pgxscan.ScanAll(&lists, rows); err != nil {
		return nil, fmt.Errorf("scan word_lists: %w", err)
	}

	if lists == nil {
		lists = []domain.WordList{}
	}
	return lists, nil
}

// ListSenses returns the senses attached to a list, joined with word,
// meaning, and example sentence.
func (r *Repo) ListSenses(ctx context.Context, listID uuid.UUID) ([]domain.Sense, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := querier.Query(ctx, listSensesSQL, listID)
	if err != nil {
		return nil, fmt.Errorf("list senses for word_list: %w", err)
	}
	defer rows.Close()

	var senses []domain.Sense
	for rows.Next() {
		s, err := scanSenseRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sense: %w", err)
		}
		senses = append(senses, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list senses for word_list: %w", err)
	}

	if senses == nil {
		senses = []domain.Sense{}
	}
	return senses, nil
}

// AddSense attaches a sense to a list. Attaching twice is a no-op.
func (r *Repo) AddSense(ctx context.Context, listID, senseID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := querier.Exec(ctx, addSenseSQL, listID, senseID); err != nil {
		return postgres.MapError(err, "word_list_sense", listID)
	}

	return nil
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

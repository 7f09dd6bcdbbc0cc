// Package word implements the Word repository using PostgreSQL.
// Words are unique by writing; creation surfaces domain.ErrAlreadyExists
// on a concurrent duplicate so the resolver can re-read and reuse.
package word

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/kelimeci/kelimeci-backend/internal/adapter/postgres"
	"github.com/kelimeci/kelimeci-backend/internal/domain"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides word persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new word repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const getByWritingSQL = `
SELECT id, writing, created_at
FROM words
WHERE writing = $1`

// GetByWriting returns the word with the exact given writing.
// Returns domain.ErrNotFound if absent.
func (r *Repo) GetByWriting(ctx context.Context, writing string) (*domain.Word, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	var w domain.Word
	row := querier.QueryRow(ctx, getByWritingSQL, writing)
	if err := row.Scan(&w.ID, &w.Writing, &w.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "word", writing)
	}

	return &w, nil
}

// ListByWritings returns catalog words whose writing matches any of the
// given normalized writings. Missing writings are silently absent from the
// result (the evaluator only links words that exist).
func (r *Repo) ListByWritings(ctx context.Context, writings []string) ([]domain.Word, error) {
	if len(writings) == 0 {
		return []domain.Word{}, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := qb.
		Select("id", "writing", "created_at").
		From("words").
		Where(sq.Eq{"writing": writings}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build words query: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list words by writings: %w", err)
	}
	defer rows.Close()

	var words []domain.Word
	if err := pgxscan.ScanAll(&words, rows); err != nil {
		return nil, fmt.Errorf("scan words: %w", err)
	}

	if words == nil {
		words = []domain.Word{}
	}
	return words, nil
}

// Create inserts a new word. The writing must already be normalized.
// Returns domain.ErrAlreadyExists on a uniqueness violation.
func (r *Repo) Create(ctx context.Context, writing string) (*domain.Word, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	w := domain.Word{
		ID:        uuid.New(),
		Writing:   writing,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	query, args, err := qb.
		Insert("words").
		Columns("id", "writing", "created_at").
		Values(w.ID, w.Writing, w.CreatedAt).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build word insert: %w", err)
	}

	if _, err := querier.Exec(ctx, query, args...); err != nil {
		return nil, postgres.MapError(err, "word", writing)
	}

	return &w, nil
}

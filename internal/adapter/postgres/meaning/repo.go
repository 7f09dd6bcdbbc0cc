// Package meaning implements the Meaning repository using PostgreSQL with
// the pgvector extension. Embeddings are written as $n::vector literals and
// read back as ::text, matching the column's vector type.
package meaning

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/kelimeci/kelimeci-backend/internal/adapter/postgres"
	"github.com/kelimeci/kelimeci-backend/internal/domain"
)

// Repo provides meaning persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new meaning repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const insertSQL = `
INSERT INTO meanings (id, description_en, description_tr, embedding, created_at)
VALUES ($1, $2, $3, $4::vector, $5)`

const getByIDSQL = `
SELECT id, description_en, description_tr, embedding::text, created_at
FROM meanings
WHERE id = $1`

// findNearestSQL orders by vector distance; the <-> operator returns
// ascending distance, so the closest meaning comes first.
const findNearestSQL = `
SELECT id, description_en, description_tr, embedding::text, created_at
FROM meanings
ORDER BY embedding <-> $1::vector
LIMIT $2`

// Create inserts a new meaning with its embedding.
func (r *Repo) Create(ctx context.Context, m *domain.Meaning) (*domain.Meaning, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	created := *m
	created.ID = uuid.New()
	created.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)

	_, err := querier.Exec(ctx, insertSQL,
		created.ID, created.DescriptionEn, created.DescriptionTr,
		created.Embedding.String(), created.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "meaning", created.ID)
	}

	return &created, nil
}

// GetByID returns a meaning by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Meaning, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	m, err := scanMeaning(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "meaning", id)
	}

	return m, nil
}

// FindNearest returns the k meanings whose embeddings are closest to the
// given vector, nearest first.
func (r *Repo) FindNearest(ctx context.Context, vec domain.Vector, k int) ([]domain.Meaning, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := querier.Query(ctx, findNearestSQL, vec.String(), k)
	if err != nil {
		return nil, fmt.Errorf("find nearest meanings: %w", err)
	}
	defer rows.Close()

	var meanings []domain.Meaning
	for rows.Next() {
		m, err := scanMeaning(rows)
		if err != nil {
			return nil, fmt.Errorf("scan meaning: %w", err)
		}
		meanings = append(meanings, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("find nearest meanings: %w", err)
	}

	if meanings == nil {
		meanings = []domain.Meaning{}
	}
	return meanings, nil
}

func scanMeaning(row pgx.Row) (*domain.Meaning, error) {
	var (
		m   domain.Meaning
		raw string
	)
	if err := row.Scan(&m.ID, &m.DescriptionEn, &m.DescriptionTr, &raw, &m.CreatedAt); err != nil {
		return nil, err
	}

	vec, err := domain.ParseVector(raw)
	if err != nil {
		return nil, err
	}
	m.Embedding = vec

	return &m, nil
}

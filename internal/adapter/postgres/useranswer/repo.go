// Package useranswer implements the answer-history store using PostgreSQL.
// History is append-only; records are only ever read back for quiz scoring.
package useranswer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kelimeci/kelimeci-backend/internal/adapter/postgres"
	"github.com/kelimeci/kelimeci-backend/internal/domain"
)

// Repo provides answer-history persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user-answer repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const insertSQL = `
INSERT INTO user_answers (id, question_id, user_id, is_correct, answered_at)
VALUES ($1, $2, $3, $4, $5)`

const insertWordSQL = `
INSERT INTO user_answer_words (user_answer_id, word_id)
VALUES ($1, $2)`

// listByUserSQL projects each past submission together with the option
// senses of the question it answered — everything quiz scoring needs,
// pre-filtered by user in SQL.
const listByUserSQL = `
SELECT ua.id, ua.question_id, ua.is_correct, array_agg(qo.sense_id)::text[]
FROM user_answers ua
JOIN question_options qo ON qo.question_id = ua.question_id
WHERE ua.user_id = $1
GROUP BY ua.id, ua.question_id, ua.is_correct
ORDER BY ua.answered_at`

// Create appends one submission record with the words the learner selected.
func (r *Repo) Create(ctx context.Context, ua *domain.UserAnswer) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	ua.ID = uuid.New()
	ua.AnsweredAt = time.Now().UTC().Truncate(time.Microsecond)

	if _, err := querier.Exec(ctx, insertSQL,
		ua.ID, ua.QuestionID, ua.UserID, ua.IsCorrect, ua.AnsweredAt); err != nil {
		return postgres.MapError(err, "user_answer", ua.ID)
	}

	for _, w := range ua.Words {
		if _, err := querier.Exec(ctx, insertWordSQL, ua.ID, w.ID); err != nil {
			return postgres.MapError(err, "user_answer_word", ua.ID)
		}
	}

	return nil
}

// ListByUserID returns the user's full answer history as scoring records.
func (r *Repo) ListByUserID(ctx context.Context, userID uuid.UUID) ([]domain.AnswerRecord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := querier.Query(ctx, listByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list user answers: %w", err)
	}
	defer rows.Close()

	var records []domain.AnswerRecord
	for rows.Next() {
		var (
			id     uuid.UUID
			rec    domain.AnswerRecord
			rawIDs []string
		)
		if err := rows.Scan(&id, &rec.QuestionID, &rec.IsCorrect, &rawIDs); err != nil {
			return nil, fmt.Errorf("scan user answer: %w", err)
		}

		rec.OptionSenseIDs = make([]uuid.UUID, 0, len(rawIDs))
		for _, raw := range rawIDs {
			senseID, err := uuid.Parse(raw)
			if err != nil {
				return nil, fmt.Errorf("parse option sense id %q: %w", raw, err)
			}
			rec.OptionSenseIDs = append(rec.OptionSenseIDs, senseID)
		}

		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list user answers: %w", err)
	}

	if records == nil {
		records = []domain.AnswerRecord{}
	}
	return records, nil
}

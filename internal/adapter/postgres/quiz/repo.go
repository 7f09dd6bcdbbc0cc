// Package quiz implements the Quiz/Question/Answer repository using
// PostgreSQL. The quiz engine calls the Create* methods inside one
// transaction so a quiz is either fully persisted or not at all.
package quiz

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kelimeci/kelimeci-backend/internal/adapter/postgres"
	"github.com/kelimeci/kelimeci-backend/internal/domain"
)

// Repo provides quiz persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new quiz repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const insertQuizSQL = `
INSERT INTO quizzes (id, word_list_id, user_id, created_at)
VALUES ($1, $2, $3, $4)`

const insertQuestionSQL = `
INSERT INTO questions (id, quiz_id, question_type, sentence, position)
VALUES ($1, $2, $3, $4, $5)`

const insertOptionSQL = `
INSERT INTO question_options (question_id, sense_id, position)
VALUES ($1, $2, $3)`

const insertAnswerSQL = `
INSERT INTO answers (id, question_id)
VALUES ($1, $2)`

const insertAnswerWordSQL = `
INSERT INTO answer_words (answer_id, word_id)
VALUES ($1, $2)`

const getQuestionSQL = `
SELECT id, quiz_id, question_type, sentence, position
FROM questions
WHERE id = $1`

const getAnswerWordsSQL = `
SELECT a.id, w.id, w.writing, w.created_at
FROM answers a
JOIN answer_words aw ON aw.answer_id = a.id
JOIN words w ON w.id = aw.word_id
WHERE a.question_id = $1
ORDER BY a.id`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// CreateQuiz inserts the quiz row and assigns its ID and timestamp.
func (r *Repo) CreateQuiz(ctx context.Context, q *domain.Quiz) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	q.ID = uuid.New()
	q.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)

	if _, err := querier.Exec(ctx, insertQuizSQL, q.ID, q.WordListID, q.UserID, q.CreatedAt); err != nil {
		return postgres.MapError(err, "quiz", q.ID)
	}

	return nil
}

// CreateQuestion inserts a question and its option links, assigning its ID.
func (r *Repo) CreateQuestion(ctx context.Context, q *domain.Question) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	q.ID = uuid.New()

	if _, err := querier.Exec(ctx, insertQuestionSQL,
		q.ID, q.QuizID, q.Type, q.Sentence, q.Position); err != nil {
		return postgres.MapError(err, "question", q.ID)
	}

	for i, opt := range q.Options {
		if _, err := querier.Exec(ctx, insertOptionSQL, q.ID, opt.ID, i); err != nil {
			return postgres.MapError(err, "question_option", q.ID)
		}
	}

	return nil
}

// CreateAnswer inserts one answer group and its word links, assigning its ID.
func (r *Repo) CreateAnswer(ctx context.Context, a *domain.Answer) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	a.ID = uuid.New()

	if _, err := querier.Exec(ctx, insertAnswerSQL, a.ID, a.QuestionID); err != nil {
		return postgres.MapError(err, "answer", a.ID)
	}

	for _, w := range a.Words {
		if _, err := querier.Exec(ctx, insertAnswerWordSQL, a.ID, w.ID); err != nil {
			return postgres.MapError(err, "answer_word", a.ID)
		}
	}

	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetQuestionWithAnswers returns a question together with all its answer
// groups and their words, as the evaluator needs it. Options are not loaded.
func (r *Repo) GetQuestionWithAnswers(ctx context.Context, questionID uuid.UUID) (*domain.Question, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	var q domain.Question
	row := querier.QueryRow(ctx, getQuestionSQL, questionID)
	if err := row.Scan(&q.ID, &q.QuizID, &q.Type, &q.Sentence, &q.Position); err != nil {
		return nil, postgres.MapError(err, "question", questionID)
	}

	rows, err := querier.Query(ctx, getAnswerWordsSQL, questionID)
	if err != nil {
		return nil, fmt.Errorf("get answers for question: %w", err)
	}
	defer rows.Close()

	byAnswer := make(map[uuid.UUID]int)
	for rows.Next() {
		var (
			answerID uuid.UUID
			w        domain.Word
		)
		if err := rows.Scan(&answerID, &w.ID, &w.Writing, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan answer word: %w", err)
		}

		idx, ok := byAnswer[answerID]
		if !ok {
			q.Answers = append(q.Answers, domain.Answer{ID: answerID, QuestionID: q.ID})
			idx = len(q.Answers) - 1
			byAnswer[answerID] = idx
		}
		q.Answers[idx].Words = append(q.Answers[idx].Words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get answers for question: %w", err)
	}

	return &q, nil
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// Quiz is generated from one word-list snapshot. Immutable once created.
type Quiz struct {
	ID         uuid.UUID
	WordListID uuid.UUID
	UserID     uuid.UUID
	CreatedAt  time.Time

	Questions []Question
}

// Question is one quiz item: a display sentence, the option senses the
// learner picks among, and the answer groups that count as fully correct.
type Question struct {
	ID       uuid.UUID
	QuizID   uuid.UUID
	Type     QuestionType
	Sentence string
	Position int

	Options []Sense
	Answers []Answer
}

// Answer is one correct combination: a non-empty set of words that together
// satisfy the question. Questions may carry several answer groups.
type Answer struct {
	ID         uuid.UUID
	QuestionID uuid.UUID

	Words []Word
}

// UserAnswer is an append-only record of one submission.
type UserAnswer struct {
	ID         uuid.UUID
	QuestionID uuid.UUID
	UserID     uuid.UUID
	IsCorrect  bool
	AnsweredAt time.Time

	Words []Word
}

// AnswerRecord is the history-store projection the quiz engine scores from:
// one past submission plus the option senses of the question it answered.
type AnswerRecord struct {
	QuestionID     uuid.UUID
	IsCorrect      bool
	OptionSenseIDs []uuid.UUID
}

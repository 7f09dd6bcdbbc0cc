package quiz

import (
	"github.com/google/uuid"

	"github.com/kelimeci/kelimeci-backend/internal/domain"
)

// QuizResult is the generation outcome. Empty is the explicit
// not-enough-content sentinel for lists below the minimum size.
type QuizResult struct {
	Empty bool
	Quiz  *QuizView
}

// QuizView is the client-facing quiz projection. Options carry word
// writings only; correct-answer sets never leave the server.
type QuizView struct {
	ID        uuid.UUID      `json:"id"`
	Questions []QuestionView `json:"questions"`
}

// QuestionView is the client-facing question projection.
type QuestionView struct {
	ID       uuid.UUID           `json:"id"`
	Type     domain.QuestionType `json:"type"`
	Sentence string              `json:"sentence"`
	Options  []string            `json:"options"`
}

func newQuizView(quiz *domain.Quiz) *QuizView {
	view := &QuizView{
		ID:        quiz.ID,
		Questions: make([]QuestionView, 0, len(quiz.Questions)),
	}

	for _, q := range quiz.Questions {
		qv := QuestionView{
			ID:       q.ID,
			Type:     q.Type,
			Sentence: q.Sentence,
			Options:  make([]string, 0, len(q.Options)),
		}
		for _, opt := range q.Options {
			qv.Options = append(qv.Options, opt.Word.Writing)
		}
		view.Questions = append(view.Questions, qv)
	}

	return view
}

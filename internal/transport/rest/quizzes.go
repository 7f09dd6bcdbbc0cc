package rest

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/kelimeci/kelimeci-backend/internal/service/quiz"
)

// quizService defines the quiz operation the handler exposes.
type quizService interface {
	Generate(ctx context.Context, input quiz.GenerateInput) (*quiz.QuizResult, error)
}

// QuizHandler serves the quiz endpoints.
type QuizHandler struct {
	svc quizService
}

// NewQuizHandler creates a QuizHandler.
func NewQuizHandler(svc quizService) *QuizHandler {
	return &QuizHandler{svc: svc}
}

type generateQuizRequest struct {
	WordListID uuid.UUID `json:"word_list_id"`
}

type generateQuizResponse struct {
	Empty bool           `json:"empty"`
	Quiz  *quiz.QuizView `json:"quiz,omitempty"`
}

// Generate handles POST /v1/quizzes. A list too small for a quiz is not an
// error: the response carries empty=true and no quiz.
func (h *QuizHandler) Generate(w http.ResponseWriter, r *http.Request) {
	userID, ok := userFromRequest(w, r)
	if !ok {
		return
	}

	var req generateQuizRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.svc.Generate(r.Context(), quiz.GenerateInput{
		UserID:     userID,
		WordListID: req.WordListID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	status := http.StatusCreated
	if result.Empty {
		status = http.StatusOK
	}
	writeJSON(w, status, generateQuizResponse{Empty: result.Empty, Quiz: result.Quiz})
}

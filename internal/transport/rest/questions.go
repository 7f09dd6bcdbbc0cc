package rest

import (
	"context"
	"net/http"

	"github.com/kelimeci/kelimeci-backend/internal/service/question"
)

// questionService defines the evaluation operation the handler exposes.
type questionService interface {
	Evaluate(ctx context.Context, input question.EvaluateInput) (*question.Result, error)
}

// QuestionHandler serves the answer-submission endpoint.
type QuestionHandler struct {
	svc questionService
}

// NewQuestionHandler creates a QuestionHandler.
func NewQuestionHandler(svc questionService) *QuestionHandler {
	return &QuestionHandler{svc: svc}
}

type submitAnswerRequest struct {
	Writings []string `json:"writings"`
}

// SubmitAnswer handles POST /v1/questions/{id}/answer.
func (h *QuestionHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	userID, ok := userFromRequest(w, r)
	if !ok {
		return
	}
	questionID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req submitAnswerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.svc.Evaluate(r.Context(), question.EvaluateInput{
		QuestionID: questionID,
		UserID:     userID,
		Writings:   req.Writings,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

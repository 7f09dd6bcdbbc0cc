package rest

import (
	"log/slog"
	"net/http"

	"github.com/kelimeci/kelimeci-backend/internal/config"
	"github.com/kelimeci/kelimeci-backend/internal/transport/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	WordLists *WordListHandler
	Quizzes   *QuizHandler
	Questions *QuestionHandler
	Health    *HealthHandler
}

// NewRouter mounts all endpoints behind the shared middleware chain.
func NewRouter(logger *slog.Logger, corsCfg config.CORSConfig, h Handlers) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /v1/word-lists", h.WordLists.Create)
	mux.HandleFunc("GET /v1/word-lists", h.WordLists.List)
	mux.HandleFunc("GET /v1/word-lists/{id}", h.WordLists.Get)
	mux.HandleFunc("POST /v1/word-lists/{id}/words", h.WordLists.AddWord)
	mux.HandleFunc("POST /v1/quizzes", h.Quizzes.Generate)
	mux.HandleFunc("POST /v1/questions/{id}/answer", h.Questions.SubmitAnswer)
	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /healthz", h.Health.Live)

	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(corsCfg),
		middleware.Identity,
	)

	return chain(mux)
}

package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/kelimeci/kelimeci-backend/internal/domain"
	"github.com/kelimeci/kelimeci-backend/internal/service/wordlist"
)

// wordListService defines the word-list operations the handler exposes.
type wordListService interface {
	CreateList(ctx context.Context, input wordlist.CreateListInput) (*domain.WordList, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.WordList, error)
	GetList(ctx context.Context, userID, listID uuid.UUID) (*domain.WordList, error)
	AddWord(ctx context.Context, input wordlist.AddWordInput) (*domain.Sense, error)
}

// WordListHandler serves the word-list endpoints.
type WordListHandler struct {
	svc wordListService
}

// NewWordListHandler creates a WordListHandler.
func NewWordListHandler(svc wordListService) *WordListHandler {
	return &WordListHandler{svc: svc}
}

type createListRequest struct {
	Name string `json:"name"`
}

type addWordRequest struct {
	Sentence       string `json:"sentence"`
	WordStartIndex int    `json:"word_start_index"`
	WordLength     int    `json:"word_length"`
}

type wordListResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	CreatedAt time.Time       `json:"created_at"`
	Senses    []senseResponse `json:"senses,omitempty"`
}

type senseResponse struct {
	ID           uuid.UUID `json:"id"`
	Writing      string    `json:"writing"`
	PartOfSpeech string    `json:"part_of_speech"`
	MeaningEn    string    `json:"meaning_en"`
	MeaningTr    string    `json:"meaning_tr,omitempty"`
	ExampleEn    string    `json:"example_en,omitempty"`
	ExampleTr    string    `json:"example_tr,omitempty"`
}

func newWordListResponse(list *domain.WordList) wordListResponse {
	resp := wordListResponse{
		ID:        list.ID,
		Name:      list.Name,
		CreatedAt: list.CreatedAt,
	}
	for _, s := range list.Senses {
		resp.Senses = append(resp.Senses, newSenseResponse(&s))
	}
	return resp
}

func newSenseResponse(s *domain.Sense) senseResponse {
	resp := senseResponse{
		ID:           s.ID,
		PartOfSpeech: string(s.PartOfSpeech),
	}
	if s.Word != nil {
		resp.Writing = s.Word.Writing
	}
	if s.Meaning != nil {
		resp.MeaningEn = s.Meaning.DescriptionEn
		resp.MeaningTr = s.Meaning.DescriptionTr
	}
	if s.Example != nil {
		resp.ExampleEn = s.Example.SentenceEn
		resp.ExampleTr = s.Example.SentenceTr
	}
	return resp
}

// Create handles POST /v1/word-lists.
func (h *WordListHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := userFromRequest(w, r)
	if !ok {
		return
	}

	var req createListRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	list, err := h.svc.CreateList(r.Context(), wordlist.CreateListInput{
		UserID: userID,
		Name:   req.Name,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, newWordListResponse(list))
}

// List handles GET /v1/word-lists.
func (h *WordListHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := userFromRequest(w, r)
	if !ok {
		return
	}

	lists, err := h.svc.ListForUser(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]wordListResponse, 0, len(lists))
	for i := range lists {
		resp = append(resp, newWordListResponse(&lists[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /v1/word-lists/{id}.
func (h *WordListHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := userFromRequest(w, r)
	if !ok {
		return
	}
	listID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	list, err := h.svc.GetList(r.Context(), userID, listID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newWordListResponse(list))
}

// AddWord handles POST /v1/word-lists/{id}/words.
func (h *WordListHandler) AddWord(w http.ResponseWriter, r *http.Request) {
	userID, ok := userFromRequest(w, r)
	if !ok {
		return
	}
	listID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req addWordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	sense, err := h.svc.AddWord(r.Context(), wordlist.AddWordInput{
		UserID:         userID,
		ListID:         listID,
		Sentence:       req.Sentence,
		WordStartIndex: req.WordStartIndex,
		WordLength:     req.WordLength,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, newSenseResponse(sense))
}

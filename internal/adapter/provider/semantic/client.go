// Package semantic calls the embedding sidecar: /vectorize turns text into
// an embedding, /cross-encode scores the semantic similarity of two texts.
package semantic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/kelimeci/kelimeci-backend/internal/config"
	"github.com/kelimeci/kelimeci-backend/internal/domain"
)

// Client talks to the semantic sidecar over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// New creates a Client from service configuration.
func New(cfg config.ServicesConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.SemanticURL, "/"),
		httpClient: &http.Client{Timeout: cfg.SemanticTimeout},
		log:        logger.With("adapter", "semantic"),
	}
}

type vectorizeRequest struct {
	Text string `json:"text"`
}

type vectorizeResponse struct {
	Vector []float32 `json:"vector"`
}

type crossEncodeRequest struct {
	SentenceA string `json:"sentence_a"`
	SentenceB string `json:"sentence_b"`
}

type crossEncodeResponse struct {
	Score float64 `json:"score"`
}

// Vectorize returns the embedding of the given text.
func (c *Client) Vectorize(ctx context.Context, text string) (domain.Vector, error) {
	var out vectorizeResponse
	if err := c.post(ctx, "/vectorize", vectorizeRequest{Text: text}, &out); err != nil {
		return nil, err
	}
	if len(out.Vector) == 0 {
		return nil, fmt.Errorf("semantic: %w: empty vector", domain.ErrExternalService)
	}
	return domain.Vector(out.Vector), nil
}

// CrossEncode scores how close two texts are in meaning.
func (c *Client) CrossEncode(ctx context.Context, sentenceA, sentenceB string) (float64, error) {
	var out crossEncodeResponse
	if err := c.post(ctx, "/cross-encode", crossEncodeRequest{SentenceA: sentenceA, SentenceB: sentenceB}, &out); err != nil {
		return 0, err
	}
	return out.Score, nil
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("semantic: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("semantic: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.doWithRetry(ctx, req, body)
	if err != nil {
		c.log.ErrorContext(ctx, "semantic request failed",
			slog.String("path", path), slog.String("error", err.Error()))
		return fmt.Errorf("semantic: %w: %w", domain.ErrExternalService, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("semantic: %w: unexpected status %d on %s",
			domain.ErrExternalService, resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("semantic: %w: decode response: %w", domain.ErrExternalService, err)
	}

	return nil
}

// doWithRetry executes the request with a single retry on 5xx or network
// errors. The body reader is rebuilt for the second attempt.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, body []byte) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	c.log.WarnContext(ctx, "semantic retry",
		slog.String("path", req.URL.Path), slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(500 * time.Millisecond)

	retry := req.Clone(ctx)
	retry.Body = io.NopCloser(bytes.NewReader(body))
	return c.httpClient.Do(retry)
}

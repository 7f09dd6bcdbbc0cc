// Package analyzer calls an Ollama-compatible generation endpoint to
// analyze a word in its sentence context. The model is prompted to return
// raw JSON; anything outside the outermost braces is discarded before
// decoding, since smaller models like to wrap output in prose.
package analyzer

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

const promptTemplate = `### SYSTEM INSTRUCTION
You are an expert lexicographer and translator.
Your task is to analyze a specific word within a given sentence context.

### OUTPUT FORMAT
Return raw JSON only. Do not use Markdown formatting (no ` + "```json" + ` code blocks).
Do not include any conversational text.

The JSON must follow this exact schema:
{
  "word": "The lemma (base form) of the target word (e.g., 'running' -> 'run')",
  "partOfSpeech": "The Part of Speech (noun, verb, adjective, etc.) in this specific context",
  "meaningEN": "A concise English definition fitting this specific context",
  "meaningTR": "The Turkish translation of the word in this specific context",
  "synonyms": [
    { "word": "synonym1", "exampleSentence": "A new sentence using synonym1" },
    { "word": "synonym2", "exampleSentence": "A new sentence using synonym2" }
  ],
  "exampleSentence": "A new example sentence (English) using the target word in the same context",
  "exampleSentenceTR": "Turkish translation of the exampleSentence"
}

### ONE-SHOT EXAMPLE
Input Sentence: "The bank of the river was muddy after the rain."
Target Word: "bank"
Output:
{
  "word": "bank",
  "partOfSpeech": "noun",
  "meaningEN": "The land alongside or sloping down to a river or lake",
  "meaningTR": "Nehir kıyısı",
  "synonyms": [
    { "word": "shore", "exampleSentence": "We walked along the shore." },
    { "word": "edge", "exampleSentence": "He stood at the water's edge." }
  ],
  "exampleSentence": "They sat on the grassy bank watching the water flow.",
  "exampleSentenceTR": "Suyun akışını izleyerek çimle kaplı kıyıda oturdular."
}

### USER INPUT
Input Sentence: "%s"
Target Word: "%s"

### RESPONSE
`

// Client analyzes words via an Ollama-compatible /api/generate endpoint.
type Client struct {
	baseURL    string
	model      string
	httpClient *http.Client
	log        *slog.Logger
}

// New creates a Client from service configuration.
func New(cfg config.ServicesConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.AnalyzerURL, "/"),
		model:      cfg.AnalyzerModel,
		httpClient: &http.Client{Timeout: cfg.AnalyzerTimeout},
		log:        logger.With("adapter", "analyzer"),
	}
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
}

type analysisPayload struct {
	Word         string `json:"word"`
	PartOfSpeech string `json:"partOfSpeech"`
	MeaningEN    string `json:"meaningEN"`
	MeaningTR    string `json:"meaningTR"`
	Synonyms     []struct {
		Word            string `json:"word"`
		ExampleSentence string `json:"exampleSentence"`
	} `json:"synonyms"`
	ExampleSentence   string `json:"exampleSentence"`
	ExampleSentenceTR string `json:"exampleSentenceTR"`
}

// Analyze asks the model to analyze the target word in its sentence.
// Transport and server failures come back wrapped in
// domain.ErrExternalService, a malformed model payload in domain.ErrAnalysis.
func (c *Client) Analyze(ctx context.Context, sentence, target string) (*domain.WordAnalysis, error) {
	prompt := fmt.Sprintf(promptTemplate, sentence, target)

	body, err := json.Marshal(generateRequest{Model: c.model, Prompt: prompt, Stream: false})
	if err != nil {
		return nil, fmt.Errorf("analyzer: encode request: %w", err)
	}

	c.log.DebugContext(ctx, "analyzer request", slog.String("target", target))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("analyzer: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.doWithRetry(ctx, req, body)
	if err != nil {
		c.log.ErrorContext(ctx, "analyzer request failed",
			slog.String("target", target), slog.String("error", err.Error()))
		return nil, fmt.Errorf("analyzer: %w: %w", domain.ErrExternalService, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("analyzer: %w: unexpected status %d", domain.ErrExternalService, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("analyzer: %w: read body: %w", domain.ErrExternalService, err)
	}

	var gen generateResponse
	if err := json.Unmarshal(raw, &gen); err != nil {
		return nil, fmt.Errorf("analyzer: %w: decode envelope: %w", domain.ErrExternalService, err)
	}

	analysis, err := parseAnalysis(gen.Response)
	if err != nil {
		c.log.WarnContext(ctx, "analyzer returned malformed payload",
			slog.String("target", target), slog.String("error", err.Error()))
		return nil, err
	}

	c.log.DebugContext(ctx, "analyzer response",
		slog.String("target", target),
		slog.String("lemma", analysis.Lemma),
		slog.Int("synonyms", len(analysis.Synonyms)),
	)

	return analysis, nil
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
	c.log.WarnContext(ctx, "analyzer retry", slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(500 * time.Millisecond)

	retry := req.Clone(ctx)
	retry.Body = io.NopCloser(bytes.NewReader(body))
	return c.httpClient.Do(retry)
}

// parseAnalysis extracts the JSON object from the model output and maps it
// to a domain analysis. An unrecognized part of speech falls back to "other".
func parseAnalysis(response string) (*domain.WordAnalysis, error) {
	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("%w: no JSON object in model output", domain.ErrAnalysis)
	}

	var payload analysisPayload
	if err := json.Unmarshal([]byte(response[start:end+1]), &payload); err != nil {
		return nil, fmt.Errorf("%w: decode model output: %w", domain.ErrAnalysis, err)
	}

	if strings.TrimSpace(payload.Word) == "" {
		return nil, fmt.Errorf("%w: missing lemma", domain.ErrAnalysis)
	}
	if strings.TrimSpace(payload.MeaningEN) == "" {
		return nil, fmt.Errorf("%w: missing English meaning", domain.ErrAnalysis)
	}

	pos := domain.PartOfSpeech(strings.ToLower(strings.TrimSpace(payload.PartOfSpeech)))
	if !pos.IsValid() {
		pos = domain.PartOfSpeechOther
	}

	analysis := &domain.WordAnalysis{
		Lemma:        domain.NormalizeWriting(payload.Word),
		PartOfSpeech: pos,
		MeaningEn:    strings.TrimSpace(payload.MeaningEN),
		MeaningTr:    strings.TrimSpace(payload.MeaningTR),
		ExampleEn:    strings.TrimSpace(payload.ExampleSentence),
		ExampleTr:    strings.TrimSpace(payload.ExampleSentenceTR),
	}

	for _, s := range payload.Synonyms {
		if strings.TrimSpace(s.Word) == "" || strings.TrimSpace(s.ExampleSentence) == "" {
			continue
		}
		analysis.Synonyms = append(analysis.Synonyms, domain.SynonymCandidate{
			Word:            strings.TrimSpace(s.Word),
			ExampleSentence: strings.TrimSpace(s.ExampleSentence),
		})
	}

	return analysis, nil
}

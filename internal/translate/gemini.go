package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/crystalplaza/go-menu/internal/catalog"
	"github.com/crystalplaza/go-menu/internal/logging"
	"github.com/crystalplaza/go-menu/pkg/interfaces"
)

const (
	// DefaultModel matches the model used by the original deployment.
	DefaultModel = "gemini-3-flash-preview"

	// DefaultEndpoint is the Generative Language API base URL.
	DefaultEndpoint = "https://generativelanguage.googleapis.com/v1beta"

	defaultTimeout = 30 * time.Second
)

// GeminiClient translates menu text through the Gemini generateContent API
// using a structured-output JSON schema so the response parses directly into
// the four language slots.
type GeminiClient struct {
	apiKey     string
	model      string
	endpoint   string
	httpClient *http.Client
	logger     interfaces.Logger
}

// GeminiOption configures the client at construction time.
type GeminiOption func(*GeminiClient)

// WithModel overrides the Gemini model identifier.
func WithModel(model string) GeminiOption {
	return func(c *GeminiClient) {
		if model != "" {
			c.model = model
		}
	}
}

// WithEndpoint overrides the API base URL. Tests point this at a local server.
func WithEndpoint(endpoint string) GeminiOption {
	return func(c *GeminiClient) {
		if endpoint != "" {
			c.endpoint = strings.TrimRight(endpoint, "/")
		}
	}
}

// WithHTTPClient overrides the HTTP client used for API calls.
func WithHTTPClient(client *http.Client) GeminiOption {
	return func(c *GeminiClient) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithLogger injects the gateway logger. Defaults to a no-op logger.
func WithLogger(logger interfaces.Logger) GeminiOption {
	return func(c *GeminiClient) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewGeminiClient constructs a Gemini-backed translator. The API key may be
// empty; every Translate call then degrades to ErrTranslationUnavailable so
// saves proceed without translations.
func NewGeminiClient(apiKey string, opts ...GeminiOption) *GeminiClient {
	c := &GeminiClient{
		apiKey:     strings.TrimSpace(apiKey),
		model:      DefaultModel,
		endpoint:   DefaultEndpoint,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     logging.NoOp(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type generateContentRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	ResponseMimeType string         `json:"responseMimeType"`
	ResponseSchema   map[string]any `json:"responseSchema"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Translate sends the canonical text and decodes the structured response.
// Any failure mode collapses into ErrTranslationUnavailable; the caller is
// expected to save without translations rather than abort.
func (c *GeminiClient) Translate(ctx context.Context, text string) (catalog.MultilingualText, error) {
	if !Translatable(text) {
		return catalog.MultilingualText{}, ErrSourceTooShort
	}
	if c.apiKey == "" {
		c.logger.Warn("translate.gemini.missing_credential")
		return catalog.MultilingualText{}, fmt.Errorf("%w: missing API key", ErrTranslationUnavailable)
	}

	payload, err := json.Marshal(generateContentRequest{
		Contents: []geminiContent{{
			Parts: []geminiPart{{Text: buildPrompt(text)}},
		}},
		GenerationConfig: geminiGenerationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   responseSchema(),
		},
	})
	if err != nil {
		return catalog.MultilingualText{}, fmt.Errorf("%w: encode request: %v", ErrTranslationUnavailable, err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.endpoint, url.PathEscape(c.model), url.QueryEscape(c.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return catalog.MultilingualText{}, fmt.Errorf("%w: build request: %v", ErrTranslationUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("translate.gemini.transport_error", "error", err)
		return catalog.MultilingualText{}, fmt.Errorf("%w: %v", ErrTranslationUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("translate.gemini.http_error", "status", resp.StatusCode)
		return catalog.MultilingualText{}, fmt.Errorf("%w: unexpected status %d", ErrTranslationUnavailable, resp.StatusCode)
	}

	var decoded generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return catalog.MultilingualText{}, fmt.Errorf("%w: decode response: %v", ErrTranslationUnavailable, err)
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return catalog.MultilingualText{}, fmt.Errorf("%w: empty response", ErrTranslationUnavailable)
	}

	body := strings.TrimSpace(decoded.Candidates[0].Content.Parts[0].Text)
	if body == "" {
		return catalog.MultilingualText{}, fmt.Errorf("%w: empty candidate text", ErrTranslationUnavailable)
	}

	var result catalog.MultilingualText
	if err := json.Unmarshal([]byte(body), &result); err != nil {
		return catalog.MultilingualText{}, fmt.Errorf("%w: malformed payload: %v", ErrTranslationUnavailable, err)
	}

	// The service is trusted for translated slots only. Pin the canonical
	// slot to the exact input so a paraphrased echo never leaks through.
	result.EN = text

	c.logger.Debug("translate.gemini.ok", "source_len", len(text))
	return result, nil
}

func buildPrompt(text string) string {
	return fmt.Sprintf(`You are a professional translator for a luxury hotel menu.
Translate the following English text into Arabic (ar), Russian (ru), and Chinese (zh).
Maintain the culinary context and tone.

Input text: %q`, text)
}

func responseSchema() map[string]any {
	return map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"en": map[string]any{"type": "STRING", "description": "The original English text"},
			"ar": map[string]any{"type": "STRING", "description": "Arabic translation"},
			"ru": map[string]any{"type": "STRING", "description": "Russian translation"},
			"zh": map[string]any{"type": "STRING", "description": "Simplified Chinese translation"},
		},
		"required": []string{"en", "ar", "ru", "zh"},
	}
}

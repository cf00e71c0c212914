package gemini

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

	"github.com/bizpulse/bizpulse_backend/internal/core/domain"
	portssvc "github.com/bizpulse/bizpulse_backend/internal/core/ports/services"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-2.5-flash"

	analysisTemperature = 0.5
	alertsTemperature   = 0.8
)

// Client talks to the Gemini generateContent REST API and decodes the
// structured JSON responses into domain types.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option customizes the client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint, mainly for tests.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(url, "/")
	}
}

// WithModel overrides the default model name.
func WithModel(model string) Option {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a Gemini client. An empty apiKey yields a client that
// reports itself unconfigured and fails all generation calls.
func NewClient(apiKey string, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		model:      defaultModel,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ portssvc.AnalysisProvider = (*Client)(nil)

func (c *Client) IsConfigured() bool {
	return c.apiKey != ""
}

// generateContent request/response shapes, trimmed to the fields used.

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string          `json:"responseMimeType"`
	ResponseSchema   json.RawMessage `json:"responseSchema"`
	Temperature      float64         `json:"temperature"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// generate posts one prompt and decodes the JSON text of the first
// candidate into out.
func (c *Client) generate(ctx context.Context, prompt string, schema json.RawMessage, temperature float64, out any) error {
	if !c.IsConfigured() {
		return fmt.Errorf("gemini api key not configured")
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   schema,
			Temperature:      temperature,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var decoded generateResponse
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if decoded.Error != nil {
			return fmt.Errorf("gemini api error %d: %s", decoded.Error.Code, decoded.Error.Message)
		}
		return fmt.Errorf("gemini api returned status %d", resp.StatusCode)
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("gemini response contained no candidates")
	}

	text := strings.TrimSpace(decoded.Candidates[0].Content.Parts[0].Text)
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return fmt.Errorf("failed to parse generated json: %w", err)
	}
	c.logger.Debug("Gemini generation succeeded", slog.String("model", c.model), slog.Int("response_bytes", len(text)))
	return nil
}

func (c *Client) GenerateAnalysis(ctx context.Context, products []domain.Product, sales []domain.Sale, expenses []domain.Expense, customers []domain.Customer, assumptions domain.ForecastAssumptions) (*domain.AIAnalysis, error) {
	prompt, err := analysisPrompt(products, sales, expenses, customers, assumptions)
	if err != nil {
		return nil, err
	}

	var analysis domain.AIAnalysis
	if err := c.generate(ctx, prompt, analysisSchema, analysisTemperature, &analysis); err != nil {
		return nil, fmt.Errorf("analysis generation failed: %w", err)
	}
	return &analysis, nil
}

func (c *Client) GenerateAlerts(ctx context.Context, window portssvc.AlertWindow) ([]domain.AlertDraft, error) {
	prompt, err := alertsPrompt(window)
	if err != nil {
		return nil, err
	}

	var drafts []domain.AlertDraft
	if err := c.generate(ctx, prompt, alertsSchema, alertsTemperature, &drafts); err != nil {
		return nil, fmt.Errorf("alert generation failed: %w", err)
	}
	return drafts, nil
}

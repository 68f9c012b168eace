package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/sitegenie/sitegenie/internal/config"
	"github.com/sitegenie/sitegenie/internal/pkg/apperr"
	"go.uber.org/zap"
)

// ContentClient is the HTTP client for the AI text-completion provider.
type ContentClient struct {
	BaseURL    string
	APIKey     string
	Model      string
	HTTPClient *http.Client
	Logger     *zap.Logger
}

func NewContentClient(cfg *config.Config, log *zap.Logger) *ContentClient {
	timeout := cfg.AI.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &ContentClient{
		BaseURL: strings.TrimSuffix(cfg.AI.BaseURL, "/"),
		APIKey:  cfg.AI.APIKey,
		Model:   cfg.AI.Model,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
		Logger: log,
	}
}

// CompletionRequest represents the request for a text completion
type CompletionRequest struct {
	Model  string `json:"model,omitempty"`
	Prompt string `json:"prompt"`
}

// CompletionResponse represents the provider's answer. Either Text or the
// first choice carries the content.
type CompletionResponse struct {
	Text    string `json:"text"`
	Choices []struct {
		Text string `json:"text"`
	} `json:"choices"`
}

func (r *CompletionResponse) Content() string {
	if r.Text != "" {
		return r.Text
	}
	for _, c := range r.Choices {
		if c.Text != "" {
			return c.Text
		}
	}
	return ""
}

// Generate calls POST {BaseURL}/v1/completions. Provider failures come back
// as *apperr.Error of kind Upstream carrying the provider status (0 if the
// provider could not be reached).
func (c *ContentClient) Generate(ctx context.Context, prompt string) (string, error) {
	if c.BaseURL == "" {
		return "", apperr.Upstream("content provider is not configured", 0, nil)
	}
	endpoint := c.BaseURL + "/v1/completions"

	body, err := sonic.Marshal(CompletionRequest{Model: c.Model, Prompt: prompt})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return "", apperr.Upstream("content provider unreachable", 0, fmt.Errorf("do request: %w", err))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apperr.Upstream("content provider response unreadable", resp.StatusCode, fmt.Errorf("read response body: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		c.Logger.Error("completion request failed",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(respBody)))
		return "", apperr.Upstream("content provider failed", resp.StatusCode,
			fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody)))
	}

	var result CompletionResponse
	if err := sonic.Unmarshal(respBody, &result); err != nil {
		return "", apperr.Upstream("content provider returned invalid JSON", 0, fmt.Errorf("unmarshal response: %w", err))
	}

	text := strings.TrimSpace(result.Content())
	if text == "" {
		return "", apperr.Upstream("content provider returned no content", 0, nil)
	}
	return text, nil
}

// Package ai calls an external OpenAI-compatible chat completion endpoint to
// translate natural language into a single shell command candidate.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/linara-sh/linara/internal/domain"
	"github.com/linara-sh/linara/internal/ports"
)

// Client implements ports.InferenceProvider with a single HTTP attempt per
// call; timeouts and transport failures are never retried. The credential is
// resolved once at startup and handed to the constructor; the client never
// reads ambient process state.
type Client struct {
	settings   domain.InferenceSettings
	credential string
	timeout    time.Duration
	httpClient *http.Client
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// NewClient builds a client from settings resolved at startup. Zero-valued
// settings fall back to the package defaults.
func NewClient(settings domain.InferenceSettings, credential string) *Client {
	if settings.MaxTokens == 0 {
		settings.MaxTokens = domain.DefaultMaxTokens
	}
	if settings.Temperature == 0 {
		settings.Temperature = domain.DefaultTemperature
	}
	timeout := domain.DefaultInferenceTimeout
	if settings.TimeoutSeconds > 0 {
		timeout = time.Duration(settings.TimeoutSeconds) * time.Second
	}
	transportTimeout := domain.DefaultTransportTimeout
	if settings.TransportTimeoutSeconds > 0 {
		transportTimeout = time.Duration(settings.TransportTimeoutSeconds) * time.Second
	}
	return &Client{
		settings:   settings,
		credential: credential,
		timeout:    timeout,
		httpClient: &http.Client{Timeout: transportTimeout},
	}
}

// Name implements ports.InferenceProvider.
func (c *Client) Name() string {
	return "openrouter"
}

// Model implements ports.InferenceProvider.
func (c *Client) Model() string {
	return c.settings.ModelID
}

// Complete implements ports.InferenceProvider. It returns the raw candidate
// command from the first completion choice, trimmed and with code fences
// stripped, not yet validated.
func (c *Client) Complete(ctx context.Context, naturalInput string) (string, error) {
	if c.credential == "" {
		return "", fmt.Errorf("%w: %s not set", domain.ErrConfiguration, c.settings.AuthEnvVar)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := json.Marshal(chatRequest{
		Model: c.settings.ModelID,
		Messages: []chatMessage{
			{Role: "user", Content: buildPrompt(naturalInput)},
		},
		MaxTokens:   c.settings.MaxTokens,
		Temperature: c.settings.Temperature,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.settings.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.credential)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read response: %v", domain.ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: status %d: %s", domain.ErrUpstream, resp.StatusCode, strings.TrimSpace(string(data)))
	}

	var parsed chatResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", domain.ErrUpstream, err)
	}
	if len(parsed.Choices) == 0 {
		return "", nil
	}

	return stripFences(parsed.Choices[0].Message.Content), nil
}

// stripFences trims whitespace and surrounding markdown fence markers.
func stripFences(content string) string {
	cleaned := strings.TrimSpace(content)
	cleaned = strings.TrimPrefix(cleaned, "```bash")
	cleaned = strings.TrimPrefix(cleaned, "```sh")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}

var _ ports.InferenceProvider = (*Client)(nil)

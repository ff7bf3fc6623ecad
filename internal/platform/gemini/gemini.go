package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/genai"
)

// Client wraps the Gemini API for best-effort text generation. Callers that
// can tolerate absence should use Summarize, which never returns an error.
type Client struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

func New(ctx context.Context, apiKey, model string, timeout time.Duration) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &Client{client: client, model: model, timeout: timeout}, nil
}

func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	result, err := c.client.Models.GenerateContent(
		timeoutCtx,
		c.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{Temperature: genai.Ptr(float32(0.4))},
	)
	if err != nil {
		return "", err
	}
	text := result.Text()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("empty completion")
	}
	return text, nil
}

// Summarize maps every failure to absence so numeric results are never
// blocked on the external call.
func (c *Client) Summarize(ctx context.Context, prompt string) (string, bool) {
	if c == nil {
		return "", false
	}
	text, err := c.Generate(ctx, prompt)
	if err != nil {
		slog.Warn("gemini summary failed", "err", err)
		return "", false
	}
	return text, true
}

// Package gemini adapts Google's Gemini API to ports.TextGenerator.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/manicuristapro/salon-system/internal/core/ports"
	"github.com/manicuristapro/salon-system/internal/pkg/metrics"
)

const (
	DefaultModel       = "gemini-2.5-flash"
	defaultTemperature = 0.7
	defaultTimeout     = 30 * time.Second
)

var ErrMissingAPIKey = errors.New("gemini: api key is required")

// Config holds the Gemini client settings.
type Config struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Client implements ports.TextGenerator.
type Client struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// New creates a Gemini client. It returns ErrMissingAPIKey when no key is set.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create client: %w", err)
	}
	return &Client{client: client, model: model, timeout: timeout}, nil
}

// Generate sends a single prompt and returns the generated text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	resp, err := c.newModel("").GenerateContent(ctx, genai.Text(prompt))
	text, err := responseText(resp, err)
	observe("generate", start, err)
	return text, err
}

// Chat continues a conversation. The last history entry is sent as the new
// message and the earlier ones become the chat history.
func (c *Client) Chat(ctx context.Context, system string, history []ports.ChatMessage) (string, error) {
	if len(history) == 0 {
		return "", errors.New("gemini: chat requires at least one message")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	cs := c.newModel(system).StartChat()
	cs.History = toContents(history[:len(history)-1])

	start := time.Now()
	resp, err := cs.SendMessage(ctx, genai.Text(history[len(history)-1].Text))
	text, err := responseText(resp, err)
	observe("chat", start, err)
	return text, err
}

// Close releases resources held by the Gemini client.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

func (c *Client) newModel(system string) *genai.GenerativeModel {
	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(defaultTemperature)
	if strings.TrimSpace(system) != "" {
		model.SystemInstruction = genai.NewUserContent(genai.Text(system))
	}
	return model
}

// toContents maps chat turns to Gemini roles, skipping blank messages.
func toContents(history []ports.ChatMessage) []*genai.Content {
	out := make([]*genai.Content, 0, len(history))
	for _, m := range history {
		text := strings.TrimSpace(m.Text)
		if text == "" {
			continue
		}
		role := "user"
		if m.Sender == ports.SenderAssistant {
			role = "model"
		}
		out = append(out, &genai.Content{Role: role, Parts: []genai.Part{genai.Text(text)}})
	}
	return out
}

func responseText(resp *genai.GenerateContentResponse, err error) (string, error) {
	if err != nil {
		return "", fmt.Errorf("gemini: request failed: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return "", errors.New("gemini: no candidates returned")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", errors.New("gemini: empty content returned")
	}

	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return strings.TrimSpace(b.String()), nil
}

func observe(call string, start time.Time, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	metrics.TextGenerationTotal.WithLabelValues(call, result).Inc()
	metrics.TextGenerationDuration.WithLabelValues(call).Observe(time.Since(start).Seconds())
}

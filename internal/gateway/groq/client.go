/*
Package groq implements the stateless relay to the Groq chat-completions API.

The relay forwards an ordered sequence of conversation turns with fixed model
parameters and hands the upstream response body back verbatim. It keeps no state
and has no side effects beyond the outbound call, so retrying at the caller is
always safe.
*/
package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"pingroom/internal/pkg/logx"
)

const (
	// DefaultAPIURL is the Groq chat-completions endpoint.
	DefaultAPIURL = "https://api.groq.com/openai/v1/chat/completions"

	// DefaultModel is the model identifier sent with every completion request.
	DefaultModel = "llama3-8b-8192"

	// Temperature is the fixed sampling temperature for all requests.
	Temperature = 0.7

	// MaxTokens is the fixed completion length cap for all requests.
	MaxTokens = 1024

	// NoResponseFallback is the content used when a completion carries no usable choice.
	NoResponseFallback = "No response from bot."

	// maxResponseBytes caps how much of an upstream response body is read.
	maxResponseBytes = 4 << 20
)

// Turn is a single conversation turn in a completion request.
type Turn struct {
	// Role is one of "user", "assistant", or "system".
	Role string `json:"role"`

	// Content is the turn's text.
	Content string `json:"content"`
}

// completionRequest is the upstream request payload.
type completionRequest struct {
	Model       string  `json:"model"`
	Messages    []Turn  `json:"messages"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
}

// Completion is the recognized-success shape of an upstream response.
// Anything that does not carry at least one choice is treated as unrecognized.
type Completion struct {
	Choices []Choice `json:"choices"`
}

// Choice is a single completion candidate.
type Choice struct {
	Message ChoiceMessage `json:"message"`
}

// ChoiceMessage is the assistant message inside a choice.
type ChoiceMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client relays conversation turns to the chat-completions endpoint.
type Client struct {
	httpClient *http.Client
	apiURL     string
	apiKey     string
	model      string
	logger     zerolog.Logger
}

// NewClient constructs a relay client. The API key is injected configuration; it is
// never logged and must never appear in source.
func NewClient(apiURL, apiKey, model string, timeout time.Duration) *Client {
	clientLogger := logx.Logger().With().Str("component", "groq").Logger()

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		apiURL:     apiURL,
		apiKey:     apiKey,
		model:      model,
		logger:     clientLogger,
	}
}

// Complete forwards the turns with the fixed model parameters and returns the raw
// upstream JSON body. The upstream status code is deliberately not inspected: any
// response whose body is valid JSON passes through unmodified, and only transport,
// read, or parse failures produce an error.
func (c *Client) Complete(ctx context.Context, turns []Turn) ([]byte, error) {
	payload := completionRequest{
		Model:       c.model,
		Messages:    turns,
		Temperature: Temperature,
		MaxTokens:   MaxTokens,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build completion request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("completion request failed: %w", err)
	}
	defer res.Body.Close()

	responseBody, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read completion response: %w", err)
	}

	if !json.Valid(responseBody) {
		return nil, fmt.Errorf("upstream returned a non-JSON response (status %d)", res.StatusCode)
	}

	if res.StatusCode != http.StatusOK {
		c.logger.Warn().
			Int("status", res.StatusCode).
			Msg("Upstream completion returned a non-200 status. Body passed through.")
	}

	return responseBody, nil
}

// ParseCompletion decodes an upstream body into the recognized-success shape.
// Bodies without at least one choice are rejected as unrecognized rather than
// silently defaulted.
func ParseCompletion(body []byte) (*Completion, error) {
	var completion Completion

	if err := json.Unmarshal(body, &completion); err != nil {
		return nil, fmt.Errorf("failed to decode completion body: %w", err)
	}

	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("completion body carries no choices")
	}

	return &completion, nil
}

// FirstChoiceContent extracts the first choice's content from an upstream body,
// falling back to NoResponseFallback when the body is unrecognized or the content
// field is empty.
func FirstChoiceContent(body []byte) string {
	completion, err := ParseCompletion(body)
	if err != nil {
		return NoResponseFallback
	}

	content := completion.Choices[0].Message.Content
	if content == "" {
		return NoResponseFallback
	}

	return content
}

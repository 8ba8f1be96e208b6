// Package llm wraps the Anthropic Messages API for exercise enrichment.
//
// The engine treats the LLM as an external capability with three states:
// available, rate_limited, unavailable. Any non-available outcome routes the
// calling stage to its heuristic fallback; errors from this package are
// therefore classified, never fatal.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// Availability classifies the LLM capability state after a call.
type Availability string

// Availability states.
const (
	Available   Availability = "available"
	RateLimited Availability = "rate_limited"
	Unavailable Availability = "unavailable"
)

// Sentinel errors for availability classification.
var (
	// ErrRateLimited indicates the API rejected the call with 429.
	ErrRateLimited = errors.New("llm rate limited")

	// ErrUnavailable indicates the API could not serve the call
	// (network fault, 5xx, auth failure, malformed response).
	ErrUnavailable = errors.New("llm unavailable")
)

// MessagesClient is the subset of the SDK message service used here.
// Narrow on purpose so tests can substitute a fake.
type MessagesClient interface {
	New(ctx context.Context, params anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

// Client issues completion requests against a fixed model.
type Client struct {
	messages  MessagesClient
	model     anthropic.Model
	maxTokens int64
}

// NewFromAPIKey constructs a client backed by the real Anthropic API.
func NewFromAPIKey(apiKey, model string, maxTokens int64) *Client {
	sdkClient := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &Client{
		messages:  &sdkClient.Messages,
		model:     anthropic.Model(model),
		maxTokens: maxTokens,
	}
}

// NewFromMessages constructs a client over an existing messages client
// (useful for testing).
func NewFromMessages(messages MessagesClient, model string, maxTokens int64) *Client {
	return &Client{
		messages:  messages,
		model:     anthropic.Model(model),
		maxTokens: maxTokens,
	}
}

// Complete sends one user prompt with an optional system prompt and returns
// the concatenated text blocks of the response.
func (c *Client) Complete(ctx context.Context, system, prompt string) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	msg, err := c.messages.New(ctx, params)
	if err != nil {
		return "", classifyError(err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("%w: empty completion", ErrUnavailable)
	}
	return text, nil
}

// Classify maps an error from this package to an Availability state.
func Classify(err error) Availability {
	switch {
	case err == nil:
		return Available
	case errors.Is(err, ErrRateLimited):
		return RateLimited
	default:
		return Unavailable
	}
}

// classifyError folds SDK and transport errors into the package sentinels,
// keeping the original error in the chain for logging.
func classifyError(err error) error {
	var apierr *anthropic.Error
	if errors.As(err, &apierr) {
		if apierr.StatusCode == 429 {
			return fmt.Errorf("%w: %v", ErrRateLimited, err)
		}
		return fmt.Errorf("%w: api status %d: %v", ErrUnavailable, apierr.StatusCode, err)
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

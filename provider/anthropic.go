package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const anthropicMaxTokens = 1024

// AnthropicCompleter implements Completer with the official Anthropic SDK.
type AnthropicCompleter struct {
	client  *anthropic.Client
	model   anthropic.Model
	baseURL string
}

// NewAnthropicCompleter creates a completer for the Anthropic API.
//
// Defaults: base URL "https://api.anthropic.com", model claude-sonnet-4-5.
func NewAnthropicCompleter(baseURL, apiKey, model string) (*AnthropicCompleter, error) {
	if baseURL == "" {
		baseURL = "https://api.anthropic.com"
	}
	if apiKey == "" {
		return nil, fmt.Errorf("Anthropic API key is required")
	}

	anthropicModel := anthropic.ModelClaudeSonnet4_5_20250929
	if model != "" {
		anthropicModel = anthropic.Model(model)
	}

	client := anthropic.NewClient(
		option.WithBaseURL(baseURL),
		option.WithAPIKey(apiKey),
	)

	return &AnthropicCompleter{
		client:  &client,
		model:   anthropicModel,
		baseURL: baseURL,
	}, nil
}

func (c *AnthropicCompleter) Name() string {
	return "anthropic/" + string(c.model)
}

func (c *AnthropicCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: anthropicMaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic completion failed: %w", err)
	}

	var reply strings.Builder
	for _, block := range msg.Content {
		switch b := block.AsAny().(type) {
		case anthropic.TextBlock:
			reply.WriteString(b.Text)
		}
	}
	return reply.String(), nil
}

// Ping sends a one-token request; Anthropic has no health endpoint.
func (c *AnthropicCompleter) Ping(ctx context.Context) error {
	_, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: 1,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock("ping")),
		},
	})
	if err != nil {
		return fmt.Errorf("Anthropic ping failed: %w", err)
	}
	return nil
}

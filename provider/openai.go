package provider

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// OpenAICompleter implements Completer with the official OpenAI Go SDK.
// OpenRouter is OpenAI-compatible and uses the same type with another base URL.
type OpenAICompleter struct {
	client  openai.Client
	model   string
	vendor  string
	baseURL string
}

// NewOpenAICompleter creates a completer for the OpenAI API.
//
// Defaults: base URL "https://api.openai.com/v1", model "gpt-4o-mini".
func NewOpenAICompleter(baseURL, apiKey, model string) (*OpenAICompleter, error) {
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	if model == "" {
		model = "gpt-4o-mini"
	}
	return newOpenAICompatible("openai", baseURL, apiKey, model)
}

// NewOpenRouterCompleter creates a completer for OpenRouter.
//
// Defaults: base URL "https://openrouter.ai/api/v1", model "meta-llama/llama-3.2-90b-instruct".
func NewOpenRouterCompleter(baseURL, apiKey, model string) (*OpenAICompleter, error) {
	if baseURL == "" {
		baseURL = "https://openrouter.ai/api/v1"
	}
	if model == "" {
		model = "meta-llama/llama-3.2-90b-instruct"
	}
	return newOpenAICompatible("openrouter", baseURL, apiKey, model)
}

func newOpenAICompatible(vendor, baseURL, apiKey, model string) (*OpenAICompleter, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%s API key is required", vendor)
	}

	client := openai.NewClient(
		option.WithBaseURL(baseURL),
		option.WithAPIKey(apiKey),
	)

	return &OpenAICompleter{
		client:  client,
		model:   model,
		vendor:  vendor,
		baseURL: baseURL,
	}, nil
}

func (c *OpenAICompleter) Name() string {
	return c.vendor + "/" + c.model
}

func (c *OpenAICompleter) Complete(ctx context.Context, prompt string) (string, error) {
	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Model: openai.ChatModel(c.model),
	})
	if err != nil {
		return "", fmt.Errorf("%s completion failed: %w", c.vendor, err)
	}

	if len(completion.Choices) == 0 {
		return "", nil
	}
	return completion.Choices[0].Message.Content, nil
}

// Ping lists models to check the API is reachable and the key accepted.
func (c *OpenAICompleter) Ping(ctx context.Context) error {
	if _, err := c.client.Models.List(ctx); err != nil {
		return fmt.Errorf("%s ping failed: %w", c.vendor, err)
	}
	return nil
}

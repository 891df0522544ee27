package provider

import (
	"context"

	"aidj/ollama"
)

// OllamaCompleter implements Completer using a local Ollama server.
type OllamaCompleter struct {
	client *ollama.Client
}

func NewOllamaCompleter(baseURL, model string) (*OllamaCompleter, error) {
	client, err := ollama.NewClient(baseURL, model)
	if err != nil {
		return nil, err
	}
	return &OllamaCompleter{client: client}, nil
}

func (c *OllamaCompleter) Name() string {
	return "ollama/" + c.client.GetModel()
}

func (c *OllamaCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	return c.client.Generate(ctx, prompt)
}

func (c *OllamaCompleter) Ping(ctx context.Context) error {
	return c.client.Ping(ctx)
}

package provider

import (
	"fmt"

	"aidj/model"
)

// NewBackend creates a backend based on configuration.
//
// Supported types:
//   - BackendTypeHTTP: career service at BaseURL
//   - BackendTypeOllama, BackendTypeOpenAI, BackendTypeOpenRouter,
//     BackendTypeAnthropic: DirectBackend over DocumentsDir
//
// Unknown types return an error wrapping ErrUnsupported.
func NewBackend(cfg Config) (model.Backend, error) {
	if cfg.Type == BackendTypeHTTP {
		return NewHTTPBackend(cfg.BaseURL, cfg.Timeout)
	}

	completer, err := NewCompleter(cfg)
	if err != nil {
		return nil, err
	}
	return NewDirectBackend(completer, NewKnowledgeBase(cfg.DocumentsDir), cfg.Subject), nil
}

// NewCompleter creates the LLM client for a direct backend type.
func NewCompleter(cfg Config) (Completer, error) {
	switch cfg.Type {
	case BackendTypeOllama:
		return NewOllamaCompleter(cfg.BaseURL, cfg.Model)
	case BackendTypeOpenAI:
		return NewOpenAICompleter(cfg.BaseURL, cfg.APIKey, cfg.Model)
	case BackendTypeOpenRouter:
		return NewOpenRouterCompleter(cfg.BaseURL, cfg.APIKey, cfg.Model)
	case BackendTypeAnthropic:
		return NewAnthropicCompleter(cfg.BaseURL, cfg.APIKey, cfg.Model)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, cfg.Type)
	}
}

// Package provider implements model.Backend.
//
// Two kinds of backend exist:
//
//   - HTTPBackend talks JSON to a career service exposing /api/chat,
//     /api/ingest, /api/status, /api/db-status and /api/doc-count.
//   - DirectBackend answers the same calls in-process. It retrieves
//     passages from a local KnowledgeBase and asks an LLM (Ollama, OpenAI,
//     OpenRouter or Anthropic) through a Completer.
//
// # Usage
//
//	b, err := provider.NewBackend(provider.Config{
//	    Type:         provider.BackendTypeOllama,
//	    Model:        "llama3.1",
//	    DocumentsDir: "~/career",
//	    Subject:      "Diego Beuk",
//	})
//	if err != nil {
//	    // handle error
//	}
//	reply, err := b.Chat(ctx, "What did Diego build in Go?")
package provider

import (
	"context"
	"errors"
	"time"
)

// Note: the Backend interface lives in the model package (model/backend.go)
// to avoid import cycles. This package implements model.Backend.

var ErrUnsupported = errors.New("unsupported backend type")

// BackendType identifies the backend implementation.
type BackendType string

const (
	BackendTypeHTTP       BackendType = "http"
	BackendTypeOllama     BackendType = "ollama"
	BackendTypeOpenAI     BackendType = "openai"
	BackendTypeOpenRouter BackendType = "openrouter"
	BackendTypeAnthropic  BackendType = "anthropic"
)

// Config holds backend-specific configuration.
type Config struct {
	Type    BackendType
	BaseURL string // empty uses the vendor default for direct backends
	Model   string
	APIKey  string // unused for http and ollama
	Timeout time.Duration

	DocumentsDir string // direct backends only
	Subject      string // whose career the persona prompt describes
}

// Completer produces a single completion for a prompt.
type Completer interface {
	Name() string
	Complete(ctx context.Context, prompt string) (string, error)
	Ping(ctx context.Context) error
}

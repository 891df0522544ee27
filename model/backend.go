package model

import (
	"context"
	"errors"
	"strings"
)

var ErrNoBackend = errors.New("no backend configured")

// Backend is the conversational service behind the session.
//
// Defined here rather than in the provider package so that provider
// implementations can import model without a cycle.
type Backend interface {
	// Name identifies the backend in the status bar and logs.
	Name() string

	// Chat sends one message and returns the reply.
	Chat(ctx context.Context, message string) (ChatReply, error)

	// Ingest (re)loads the documents the backend answers from.
	Ingest(ctx context.Context) (IngestReply, error)

	// Status returns nil when the backend is reachable.
	Status(ctx context.Context) error

	// DBStatus returns nil when the document store is ready.
	DBStatus(ctx context.Context) error

	DocCount(ctx context.Context) (DocCountReply, error)
}

// ChatReply mirrors {"response": "..."}; Response is nil when the field is absent.
type ChatReply struct {
	Response *string `json:"response,omitempty"`
}

// TextOr returns the reply text, or fallback when it is missing or blank.
func (r ChatReply) TextOr(fallback string) string {
	if r.Response == nil || strings.TrimSpace(*r.Response) == "" {
		return fallback
	}
	return *r.Response
}

type IngestReply struct {
	Message            *string `json:"message,omitempty"`
	DocumentsProcessed *int    `json:"documents_processed,omitempty"`
}

func (r IngestReply) MessageOr(fallback string) string {
	if r.Message == nil || strings.TrimSpace(*r.Message) == "" {
		return fallback
	}
	return *r.Message
}

type DocCountReply struct {
	Count *int `json:"count,omitempty"`
}

// Value returns the count, or 0 when absent.
func (r DocCountReply) Value() int {
	if r.Count == nil {
		return 0
	}
	return *r.Count
}

// StringPtr and IntPtr build optional reply fields.
func StringPtr(s string) *string { return &s }

func IntPtr(n int) *int { return &n }

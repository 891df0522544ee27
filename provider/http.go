package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"aidj/config"
	"aidj/model"
)

const sessionHeader = "X-Session-ID"

// HTTPBackend implements model.Backend against the career service JSON API.
type HTTPBackend struct {
	baseURL   string
	client    *http.Client
	sessionID string
}

// NewHTTPBackend creates a backend rooted at baseURL, e.g. "http://localhost:8000".
// timeout bounds each request; 0 leaves it to the caller's context.
func NewHTTPBackend(baseURL string, timeout time.Duration) (*HTTPBackend, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("backend URL is required")
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid backend URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid backend URL %q: scheme must be http or https", baseURL)
	}

	return &HTTPBackend{
		baseURL:   strings.TrimRight(baseURL, "/"),
		client:    &http.Client{Timeout: timeout},
		sessionID: uuid.NewString(),
	}, nil
}

func (b *HTTPBackend) Name() string {
	return b.baseURL
}

// SessionID is sent with every request so the server can group a session's calls.
func (b *HTTPBackend) SessionID() string {
	return b.sessionID
}

type chatRequest struct {
	Message string `json:"message"`
}

func (b *HTTPBackend) Chat(ctx context.Context, message string) (model.ChatReply, error) {
	var reply model.ChatReply
	err := b.do(ctx, http.MethodPost, "/api/chat", chatRequest{Message: message}, &reply)
	return reply, err
}

func (b *HTTPBackend) Ingest(ctx context.Context) (model.IngestReply, error) {
	var reply model.IngestReply
	err := b.do(ctx, http.MethodPost, "/api/ingest", nil, &reply)
	return reply, err
}

func (b *HTTPBackend) Status(ctx context.Context) error {
	return b.do(ctx, http.MethodGet, "/api/status", nil, nil)
}

func (b *HTTPBackend) DBStatus(ctx context.Context) error {
	return b.do(ctx, http.MethodGet, "/api/db-status", nil, nil)
}

func (b *HTTPBackend) DocCount(ctx context.Context) (model.DocCountReply, error) {
	var reply model.DocCountReply
	err := b.do(ctx, http.MethodGet, "/api/doc-count", nil, &reply)
	return reply, err
}

// do sends one request. Any status outside 2xx is an error. out may be nil
// when only the status matters.
func (b *HTTPBackend) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode %s request: %w", path, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, b.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if method == http.MethodPost {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(sessionHeader, b.sessionID)

	start := time.Now()
	resp, err := b.client.Do(req)
	if err != nil {
		if config.DebugLog != nil {
			config.DebugLog.Printf("[HTTP] %s %s failed after %v: %v", method, path, time.Since(start), err)
		}
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if config.DebugLog != nil {
		config.DebugLog.Printf("[HTTP] %s %s -> %d (%v)", method, path, resp.StatusCode, time.Since(start))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return fmt.Errorf("%s %s: unexpected status %s", method, path, resp.Status)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

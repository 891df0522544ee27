package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// newTestServer serves the career API with canned replies per path.
func newTestServer(t *testing.T, handlers map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	for path, h := range handlers {
		mux.HandleFunc(path, h)
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestBackend(t *testing.T, url string) *HTTPBackend {
	t.Helper()
	b, err := NewHTTPBackend(url+"/", 2*time.Second)
	if err != nil {
		t.Fatalf("NewHTTPBackend: %v", err)
	}
	return b
}

func TestHTTPBackendChat(t *testing.T) {
	var gotBody chatRequest
	var gotSession, gotContentType string

	srv := newTestServer(t, map[string]http.HandlerFunc{
		"/api/chat": func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("method = %s, want POST", r.Method)
			}
			gotSession = r.Header.Get(sessionHeader)
			gotContentType = r.Header.Get("Content-Type")
			if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
				t.Errorf("bad request body: %v", err)
			}
			w.Write([]byte(`{"response": "Diego writes Go."}`))
		},
	})
	b := newTestBackend(t, srv.URL)

	reply, err := b.Chat(context.Background(), "What does Diego write?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := reply.TextOr("fallback"); got != "Diego writes Go." {
		t.Errorf("reply = %q", got)
	}
	if gotBody.Message != "What does Diego write?" {
		t.Errorf("request message = %q", gotBody.Message)
	}
	if gotSession == "" || gotSession != b.SessionID() {
		t.Errorf("session header = %q, want %q", gotSession, b.SessionID())
	}
	if gotContentType != "application/json" {
		t.Errorf("content type = %q", gotContentType)
	}
}

func TestHTTPBackendOptionalFields(t *testing.T) {
	srv := newTestServer(t, map[string]http.HandlerFunc{
		"/api/chat":      func(w http.ResponseWriter, r *http.Request) { w.Write([]byte(`{}`)) },
		"/api/ingest":    func(w http.ResponseWriter, r *http.Request) { w.Write([]byte(`{"documents_processed": 0}`)) },
		"/api/doc-count": func(w http.ResponseWriter, r *http.Request) { w.Write([]byte(`{"status": "ok"}`)) },
	})
	b := newTestBackend(t, srv.URL)
	ctx := context.Background()

	chat, err := b.Chat(ctx, "hi")
	if err != nil {
		t.Fatalf("chat: %v", err)
	}
	if chat.Response != nil {
		t.Errorf("absent response decoded as %q", *chat.Response)
	}

	ingest, err := b.Ingest(ctx)
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if ingest.Message != nil || ingest.DocumentsProcessed == nil || *ingest.DocumentsProcessed != 0 {
		t.Errorf("ingest reply = %+v", ingest)
	}

	count, err := b.DocCount(ctx)
	if err != nil {
		t.Fatalf("doc-count: %v", err)
	}
	if count.Count != nil || count.Value() != 0 {
		t.Errorf("doc-count reply = %+v", count)
	}
}

func TestHTTPBackendStatusEndpoints(t *testing.T) {
	srv := newTestServer(t, map[string]http.HandlerFunc{
		"/api/status": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status": "ok", "backend": true}`))
		},
		"/api/db-status": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status": "error", "database": false}`))
		},
		"/api/doc-count": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"count": 12}`))
		},
	})
	b := newTestBackend(t, srv.URL)
	ctx := context.Background()

	if err := b.Status(ctx); err != nil {
		t.Errorf("Status: %v", err)
	}
	if err := b.DBStatus(ctx); err == nil {
		t.Error("DBStatus should fail on 503")
	}
	count, err := b.DocCount(ctx)
	if err != nil || count.Value() != 12 {
		t.Errorf("DocCount = %+v, %v", count, err)
	}
}

func TestHTTPBackendErrors(t *testing.T) {
	srv := newTestServer(t, map[string]http.HandlerFunc{
		"/api/chat": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"detail": "Chatbot not initialized"}`))
		},
		"/api/ingest": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html>not json</html>`))
		},
	})
	b := newTestBackend(t, srv.URL)
	ctx := context.Background()

	if _, err := b.Chat(ctx, "hi"); err == nil {
		t.Error("Chat should fail on 500")
	}
	if _, err := b.Ingest(ctx); err == nil {
		t.Error("Ingest should fail on malformed JSON")
	}
	if err := b.Status(ctx); err == nil {
		t.Error("Status should fail on 404")
	}
}

func TestHTTPBackendUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	b := newTestBackend(t, url)
	if err := b.Status(context.Background()); err == nil {
		t.Error("Status should fail when the server is down")
	}
}

func TestHTTPBackendHonoursContext(t *testing.T) {
	srv := newTestServer(t, map[string]http.HandlerFunc{
		"/api/chat": func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(5 * time.Second):
			}
		},
	})
	b := newTestBackend(t, srv.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	if _, err := b.Chat(ctx, "slow"); err == nil {
		t.Error("expected a timeout error")
	}
	if time.Since(start) > 2*time.Second {
		t.Error("request ignored the context deadline")
	}
}

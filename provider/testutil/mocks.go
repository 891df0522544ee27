package testutil

import (
	"context"
	"sync"

	"aidj/model"
)

// MockBackend implements model.Backend for testing
type MockBackend struct {
	// Configurable responses
	ChatFunc     func(ctx context.Context, message string) (model.ChatReply, error)
	IngestFunc   func(ctx context.Context) (model.IngestReply, error)
	StatusFunc   func(ctx context.Context) error
	DBStatusFunc func(ctx context.Context) error
	DocCountFunc func(ctx context.Context) (model.DocCountReply, error)

	mu    sync.Mutex
	calls []string
	chats []string
}

// NewMockBackend creates a mock backend where every call succeeds
func NewMockBackend() *MockBackend {
	mock := &MockBackend{}
	mock.ChatFunc = func(ctx context.Context, message string) (model.ChatReply, error) {
		return model.ChatReply{Response: model.StringPtr("Mock response")}, nil
	}
	mock.IngestFunc = func(ctx context.Context) (model.IngestReply, error) {
		return model.IngestReply{Message: model.StringPtr("Successfully ingested 3 document chunks"), DocumentsProcessed: model.IntPtr(3)}, nil
	}
	mock.StatusFunc = func(ctx context.Context) error { return nil }
	mock.DBStatusFunc = func(ctx context.Context) error { return nil }
	mock.DocCountFunc = func(ctx context.Context) (model.DocCountReply, error) {
		return model.DocCountReply{Count: model.IntPtr(3)}, nil
	}
	return mock
}

// NewFailingBackend creates a mock backend where every call returns err
func NewFailingBackend(err error) *MockBackend {
	return &MockBackend{
		ChatFunc:     func(ctx context.Context, message string) (model.ChatReply, error) { return model.ChatReply{}, err },
		IngestFunc:   func(ctx context.Context) (model.IngestReply, error) { return model.IngestReply{}, err },
		StatusFunc:   func(ctx context.Context) error { return err },
		DBStatusFunc: func(ctx context.Context) error { return err },
		DocCountFunc: func(ctx context.Context) (model.DocCountReply, error) { return model.DocCountReply{}, err },
	}
}

func (m *MockBackend) record(call string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, call)
}

// Calls returns the names of the methods invoked so far
func (m *MockBackend) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.calls))
	copy(out, m.calls)
	return out
}

// ChatMessages returns every message passed to Chat
func (m *MockBackend) ChatMessages() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.chats))
	copy(out, m.chats)
	return out
}

func (m *MockBackend) Name() string {
	return "mock"
}

func (m *MockBackend) Chat(ctx context.Context, message string) (model.ChatReply, error) {
	m.record("Chat")
	m.mu.Lock()
	m.chats = append(m.chats, message)
	m.mu.Unlock()
	return m.ChatFunc(ctx, message)
}

func (m *MockBackend) Ingest(ctx context.Context) (model.IngestReply, error) {
	m.record("Ingest")
	return m.IngestFunc(ctx)
}

func (m *MockBackend) Status(ctx context.Context) error {
	m.record("Status")
	return m.StatusFunc(ctx)
}

func (m *MockBackend) DBStatus(ctx context.Context) error {
	m.record("DBStatus")
	return m.DBStatusFunc(ctx)
}

func (m *MockBackend) DocCount(ctx context.Context) (model.DocCountReply, error) {
	m.record("DocCount")
	return m.DocCountFunc(ctx)
}

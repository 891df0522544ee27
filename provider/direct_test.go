package provider

import (
	"context"
	"errors"
	"strings"
	"testing"

	"aidj/provider/testutil"
)

type fakeCompleter struct {
	reply   string
	err     error
	pingErr error
	prompts []string
}

func (f *fakeCompleter) Name() string { return "fake/model" }

func (f *fakeCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

func (f *fakeCompleter) Ping(ctx context.Context) error { return f.pingErr }

func TestDirectBackendChat(t *testing.T) {
	dir := testutil.WriteDocuments(t, testutil.CareerDocuments())
	completer := &fakeCompleter{reply: "Diego led the billing migration."}
	b := NewDirectBackend(completer, NewKnowledgeBase(dir), "Diego Beuk")
	ctx := context.Background()

	if _, err := b.Ingest(ctx); err != nil {
		t.Fatalf("Ingest: %v", err)
	}

	reply, err := b.Chat(ctx, "What did he do at Northwind?")
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if got := reply.TextOr(""); got != "Diego led the billing migration." {
		t.Errorf("reply = %q", got)
	}

	prompt := completer.prompts[0]
	for _, want := range []string{
		"You are Diego Beuk's Career Scout & Talent Curator.",
		"The question: What did he do at Northwind?",
		"billing platform",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestDirectBackendBlankSubject(t *testing.T) {
	tests := []struct {
		name    string
		subject string
	}{
		{name: "empty", subject: ""},
		{name: "spaces", subject: "   "},
		{name: "tabs and newlines", subject: "\t\n "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			completer := &fakeCompleter{reply: "ok"}
			b := NewDirectBackend(completer, NewKnowledgeBase(""), tt.subject)

			if _, err := b.Chat(context.Background(), "Who is this?"); err != nil {
				t.Fatalf("Chat: %v", err)
			}
			if !strings.Contains(completer.prompts[0], "You are Diego Beuk's Career Scout") {
				t.Errorf("prompt does not use the default subject:\n%s", completer.prompts[0])
			}
		})
	}

	if prompt := PersonaPrompt("  ", "hi", nil); !strings.Contains(prompt, "represent Diego with") {
		t.Errorf("PersonaPrompt with a blank subject = %q", prompt)
	}
}

func TestDirectBackendChatError(t *testing.T) {
	completer := &fakeCompleter{err: errors.New("model not found")}
	b := NewDirectBackend(completer, NewKnowledgeBase(""), "")

	if _, err := b.Chat(context.Background(), "hi"); err == nil {
		t.Error("expected completer error to propagate")
	}
}

func TestDirectBackendIngest(t *testing.T) {
	ctx := context.Background()

	t.Run("documents", func(t *testing.T) {
		dir := testutil.WriteDocuments(t, testutil.CareerDocuments())
		b := NewDirectBackend(&fakeCompleter{}, NewKnowledgeBase(dir), "")

		reply, err := b.Ingest(ctx)
		if err != nil {
			t.Fatalf("Ingest: %v", err)
		}
		n := b.KnowledgeBase().Count()
		if got := reply.MessageOr(""); !strings.HasPrefix(got, "Successfully ingested ") || !strings.HasSuffix(got, " document chunks") {
			t.Errorf("message = %q", got)
		}
		if reply.DocumentsProcessed == nil || *reply.DocumentsProcessed != n {
			t.Errorf("documents_processed = %v, want %d", reply.DocumentsProcessed, n)
		}

		count, err := b.DocCount(ctx)
		if err != nil || count.Value() != n {
			t.Errorf("DocCount = %+v, %v", count, err)
		}
		if err := b.DBStatus(ctx); err != nil {
			t.Errorf("DBStatus: %v", err)
		}
	})

	t.Run("empty directory", func(t *testing.T) {
		dir := testutil.WriteDocuments(t, map[string]string{"resume.pdf": "binary"})
		b := NewDirectBackend(&fakeCompleter{}, NewKnowledgeBase(dir), "")

		reply, err := b.Ingest(ctx)
		if err != nil {
			t.Fatalf("Ingest: %v", err)
		}
		if got := reply.MessageOr(""); got != "No documents found in data directory. Supported formats: MD, TXT" {
			t.Errorf("message = %q", got)
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		b := NewDirectBackend(&fakeCompleter{}, NewKnowledgeBase(t.TempDir()+"/nope"), "")

		if _, err := b.Ingest(ctx); err == nil {
			t.Error("expected error for missing directory")
		}
		if err := b.DBStatus(ctx); err == nil {
			t.Error("DBStatus should fail before a successful ingest")
		}
		if _, err := b.DocCount(ctx); err == nil {
			t.Error("DocCount should fail before a successful ingest")
		}
	})
}

func TestDirectBackendStatus(t *testing.T) {
	completer := &fakeCompleter{pingErr: errors.New("connection refused")}
	b := NewDirectBackend(completer, NewKnowledgeBase(""), "")

	if err := b.Status(context.Background()); err == nil {
		t.Error("Status should report the ping failure")
	}
	completer.pingErr = nil
	if err := b.Status(context.Background()); err != nil {
		t.Errorf("Status: %v", err)
	}
}

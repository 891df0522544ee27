package provider

import (
	"context"
	"fmt"
	"strings"

	"aidj/config"
	"aidj/model"
)

// DirectBackend implements model.Backend without a career service: it
// retrieves passages from a KnowledgeBase and asks a Completer.
type DirectBackend struct {
	completer Completer
	kb        *KnowledgeBase
	subject   string
	retrieve  int
}

func NewDirectBackend(completer Completer, kb *KnowledgeBase, subject string) *DirectBackend {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		subject = model.DefaultSubject
	}
	return &DirectBackend{
		completer: completer,
		kb:        kb,
		subject:   subject,
		retrieve:  DefaultRetrieve,
	}
}

func (b *DirectBackend) Name() string {
	return b.completer.Name()
}

func (b *DirectBackend) KnowledgeBase() *KnowledgeBase {
	return b.kb
}

func (b *DirectBackend) Chat(ctx context.Context, message string) (model.ChatReply, error) {
	passages := b.kb.Search(message, b.retrieve)
	prompt := PersonaPrompt(b.subject, message, passages)

	if config.DebugLog != nil {
		config.DebugLog.Printf("[Direct] Chat via %s with %d passages (%d prompt bytes)", b.completer.Name(), len(passages), len(prompt))
	}

	text, err := b.completer.Complete(ctx, prompt)
	if err != nil {
		return model.ChatReply{}, err
	}
	return model.ChatReply{Response: &text}, nil
}

func (b *DirectBackend) Ingest(ctx context.Context) (model.IngestReply, error) {
	chunks, docs, err := b.kb.Load(ctx)
	if err != nil {
		return model.IngestReply{}, err
	}

	if docs == 0 {
		return model.IngestReply{
			Message:            model.StringPtr("No documents found in data directory. Supported formats: MD, TXT"),
			DocumentsProcessed: model.IntPtr(0),
		}, nil
	}

	return model.IngestReply{
		Message:            model.StringPtr(fmt.Sprintf("Successfully ingested %d document chunks", chunks)),
		DocumentsProcessed: model.IntPtr(chunks),
	}, nil
}

func (b *DirectBackend) Status(ctx context.Context) error {
	return b.completer.Ping(ctx)
}

func (b *DirectBackend) DBStatus(ctx context.Context) error {
	return b.kb.Ready()
}

func (b *DirectBackend) DocCount(ctx context.Context) (model.DocCountReply, error) {
	if err := b.kb.Ready(); err != nil {
		return model.DocCountReply{}, err
	}
	return model.DocCountReply{Count: model.IntPtr(b.kb.Count())}, nil
}

// PersonaPrompt builds the retrieval-augmented prompt for one question.
// A blank subject falls back to model.DefaultSubject.
func PersonaPrompt(subject, question string, passages []Chunk) string {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		subject = model.DefaultSubject
	}
	first := model.Prompts{Subject: subject}.FirstName()

	var knowledge strings.Builder
	for _, p := range passages {
		knowledge.WriteString(p.Text)
		knowledge.WriteString("\n\n")
	}

	return fmt.Sprintf(`You are %[1]s's Career Scout & Talent Curator. Your role is to represent %[2]s with authenticity and strategic storytelling, showcasing his career, achievements, and skills in a way that inspires confidence, curiosity, and opportunity.

Your style is: Innovative, engaging, dynamic, informative, playful, personable, approachable, data-informed, and persuasive. You blend career marketing and technical insight.

Always represent %[2]s positively but objectively - no exaggerations, only confident truths. Use vivid, natural, and straight to the point language to highlight achievements and growth. Promote employability by aligning %[2]s's experiences with employer needs and market trends.

Answer based solely on the knowledge provided below. Don't mention that you're using provided knowledge.

The question: %[3]s

The knowledge about %[1]s: %[4]s`, subject, first, question, knowledge.String())
}

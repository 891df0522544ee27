package model_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"aidj/model"
	"aidj/provider/testutil"
)

func dispatch(t *testing.T, d *model.Dispatcher, line string) model.Result {
	t.Helper()
	res, err := d.Dispatch(context.Background(), model.ParseCommand(line))
	if err != nil {
		t.Fatalf("Dispatch(%q) returned error: %v", line, err)
	}
	return res
}

func TestDispatchUsageHintsSkipBackend(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{line: "amplify", want: model.UsageAmplify},
		{line: "career-mix-analysis", want: model.UsageCareerMix},
		{line: "chat", want: model.UsageChat},
		{line: "CHAT   ", want: model.UsageChat},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			backend := testutil.NewMockBackend()
			d := &model.Dispatcher{Backend: backend}

			res := dispatch(t, d, tt.line)
			if res.Text != tt.want {
				t.Errorf("Text = %q, want %q", res.Text, tt.want)
			}
			if calls := backend.Calls(); len(calls) != 0 {
				t.Errorf("backend was called: %v", calls)
			}
		})
	}
}

func TestDispatchFailureMessages(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{line: "ingest", want: model.FailedIngest},
		{line: "spin-profile", want: model.FailedSpinProfile},
		{line: "amplify Python", want: model.FailedAmplify},
		{line: "career-mix-analysis Product Manager", want: model.FailedCareerMix},
		{line: "chat hello", want: model.FailedChat},
		{line: "dance please", want: model.UnknownCommand("dance")},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			d := &model.Dispatcher{Backend: testutil.NewFailingBackend(errors.New("dial tcp: connection refused"))}

			res := dispatch(t, d, tt.line)
			if res.Text != tt.want {
				t.Errorf("Text = %q, want %q", res.Text, tt.want)
			}
		})
	}
}

func TestDispatchWithoutBackend(t *testing.T) {
	d := &model.Dispatcher{}

	if res := dispatch(t, d, "chat hi"); res.Text != model.FailedChat {
		t.Errorf("chat: %q", res.Text)
	}
	if res := dispatch(t, d, "status"); !strings.Contains(res.Text, "Disconnected") {
		t.Errorf("status: %q", res.Text)
	}
}

func TestDispatchPrompts(t *testing.T) {
	backend := testutil.NewMockBackend()
	d := &model.Dispatcher{Backend: backend, Prompts: model.Prompts{Subject: "Ada Lovelace"}}

	dispatch(t, d, "spin-profile")
	dispatch(t, d, "amplify  machine   learning")
	dispatch(t, d, "career-mix-analysis Software Engineer")
	dispatch(t, d, "chat what   languages?")
	dispatch(t, d, "Tell me about   Ada")

	want := []string{
		"Generate a recruiter-ready summary of Ada Lovelace's profile - short, catchy, and impactful. Focus on his key strengths, achievements, and what makes him stand out to employers.",
		"Expand on Ada's machine learning skills with measurable examples and impact statements. Show specific achievements and how this skill has contributed to his professional growth.",
		"Compare Ada's experiences and skills with the Software Engineer role. Identify his strengths, potential gaps, and how his unique background could be an advantage for this position.",
		"what languages?",
		"Tell me about   Ada",
	}

	got := backend.ChatMessages()
	if len(got) != len(want) {
		t.Fatalf("got %d chat calls, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("chat #%d:\n got %q\nwant %q", i, got[i], want[i])
		}
	}
}

func TestDispatchReplyFallbacks(t *testing.T) {
	tests := []struct {
		name     string
		reply    *string
		want     string
		markdown bool
	}{
		{name: "text", reply: model.StringPtr("Diego ships."), want: "Diego ships.", markdown: true},
		{name: "missing field", reply: nil, want: model.FallbackNoResponse},
		{name: "empty string", reply: model.StringPtr(""), want: model.FallbackNoResponse},
		{name: "whitespace only", reply: model.StringPtr(" \n "), want: model.FallbackNoResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := testutil.NewMockBackend()
			backend.ChatFunc = func(ctx context.Context, message string) (model.ChatReply, error) {
				return model.ChatReply{Response: tt.reply}, nil
			}
			d := &model.Dispatcher{Backend: backend}

			res := dispatch(t, d, "chat hi")
			if res.Text != tt.want {
				t.Errorf("Text = %q, want %q", res.Text, tt.want)
			}
			if res.Markdown != tt.markdown {
				t.Errorf("Markdown = %v, want %v", res.Markdown, tt.markdown)
			}
		})
	}
}

func TestDispatchIngest(t *testing.T) {
	backend := testutil.NewMockBackend()
	d := &model.Dispatcher{Backend: backend}

	if res := dispatch(t, d, "ingest"); res.Text != "Successfully ingested 3 document chunks" {
		t.Errorf("Text = %q", res.Text)
	}

	backend.IngestFunc = func(ctx context.Context) (model.IngestReply, error) {
		return model.IngestReply{}, nil
	}
	if res := dispatch(t, d, "ingest"); res.Text != model.FallbackIngested {
		t.Errorf("Text = %q, want fallback", res.Text)
	}
}

func TestDispatchLocalCommands(t *testing.T) {
	backend := testutil.NewMockBackend()
	d := &model.Dispatcher{Backend: backend, Prompts: model.Prompts{Subject: "Diego Beuk"}}

	if res := dispatch(t, d, "help"); res.Text != d.Prompts.Help() || res.Effect != model.EffectNone {
		t.Errorf("help = %+v", res)
	}
	if res := dispatch(t, d, "clear"); res.Text != "" || res.Effect != model.EffectClear {
		t.Errorf("clear = %+v", res)
	}
	if res := dispatch(t, d, "exit"); res.Text != "" || res.Effect != model.EffectExit {
		t.Errorf("exit = %+v", res)
	}
	if calls := backend.Calls(); len(calls) != 0 {
		t.Errorf("local commands called the backend: %v", calls)
	}
}

func TestDispatchTimeout(t *testing.T) {
	backend := testutil.NewMockBackend()
	backend.ChatFunc = func(ctx context.Context, message string) (model.ChatReply, error) {
		<-ctx.Done()
		return model.ChatReply{}, ctx.Err()
	}
	d := &model.Dispatcher{Backend: backend, Timeout: 20 * time.Millisecond}

	start := time.Now()
	res := dispatch(t, d, "chat are you there?")
	if res.Text != model.FailedChat {
		t.Errorf("Text = %q, want %q", res.Text, model.FailedChat)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("dispatch took %v, timeout not applied", elapsed)
	}
}

package model

import (
	"context"
	"fmt"
	"time"

	"aidj/config"
)

// Fixed replies. Remote failures are reported with these instead of the
// underlying error.
const (
	FallbackNoResponse = "No response received"
	FallbackIngested   = "Documents ingested successfully!"

	FailedIngest      = "Error ingesting documents. Make sure the backend is running."
	FailedSpinProfile = "Error generating profile. Make sure the backend is running."
	FailedAmplify     = "Error amplifying skill. Make sure the backend is running."
	FailedCareerMix   = "Error analyzing career mix. Make sure the backend is running."
	FailedChat        = "Error chatting with AI DJ. Make sure the backend is running."

	UsageAmplify   = "Usage: amplify <skill>\nExample: amplify Python\nExample: amplify leadership"
	UsageCareerMix = "Usage: career-mix-analysis <job role>\nExample: career-mix-analysis Software Engineer\nExample: career-mix-analysis Product Manager"
	UsageChat      = "Usage: chat <message>\nOr just type your message directly!"
)

// UnknownCommand is the reply when free text could not be delivered.
func UnknownCommand(word string) string {
	return fmt.Sprintf("Unknown command: %s. Type \"help\" for available commands, or try chatting naturally!", word)
}

type Effect int

const (
	EffectNone Effect = iota
	EffectClear
	EffectExit
)

// Result is the outcome of one dispatch. Text may be empty, in which case
// nothing is added to the timeline. Markdown is set when Text is a reply
// written by the backend rather than a canned string.
type Result struct {
	Kind     CommandKind
	Text     string
	Effect   Effect
	Markdown bool
}

// Dispatcher resolves commands to local handlers or backend calls.
type Dispatcher struct {
	Backend Backend
	Prompts Prompts
	Timeout time.Duration // per dispatch, 0 for none
}

// Dispatch runs cmd. Backend failures are folded into Result.Text; the
// error return is only for commands the dispatcher does not know.
func (d *Dispatcher) Dispatch(ctx context.Context, cmd Command) (Result, error) {
	if d.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.Timeout)
		defer cancel()
	}

	res := Result{Kind: cmd.Kind}

	switch cmd.Kind {
	case CommandHelp:
		res.Text = d.Prompts.Help()

	case CommandIngest:
		res.Text = d.ingest(ctx)

	case CommandSpinProfile:
		res.Text, res.Markdown = d.chat(ctx, d.Prompts.SpinProfile(), FailedSpinProfile)

	case CommandAmplify:
		if len(cmd.Args) == 0 {
			res.Text = UsageAmplify
			break
		}
		res.Text, res.Markdown = d.chat(ctx, d.Prompts.Amplify(cmd.ArgText()), FailedAmplify)

	case CommandCareerMix:
		if len(cmd.Args) == 0 {
			res.Text = UsageCareerMix
			break
		}
		res.Text, res.Markdown = d.chat(ctx, d.Prompts.CareerMix(cmd.ArgText()), FailedCareerMix)

	case CommandChat:
		if len(cmd.Args) == 0 {
			res.Text = UsageChat
			break
		}
		res.Text, res.Markdown = d.chat(ctx, cmd.ArgText(), FailedChat)

	case CommandClear:
		res.Effect = EffectClear

	case CommandStatus:
		res.Text = CheckStatus(ctx, d.Backend).String()

	case CommandExit:
		res.Effect = EffectExit

	case CommandFreeText:
		res.Text, res.Markdown = d.chat(ctx, cmd.Raw, UnknownCommand(cmd.Word))

	default:
		return res, fmt.Errorf("unhandled command kind %d", cmd.Kind)
	}

	return res, nil
}

// chat reports whether the text came from the backend.
func (d *Dispatcher) chat(ctx context.Context, message, failure string) (string, bool) {
	if d.Backend == nil {
		return failure, false
	}

	reply, err := d.Backend.Chat(ctx, message)
	if err != nil {
		if config.DebugLog != nil {
			config.DebugLog.Printf("[Dispatch] Chat via %s failed: %v", d.Backend.Name(), err)
		}
		return failure, false
	}

	text := reply.TextOr(FallbackNoResponse)
	return text, text != FallbackNoResponse
}

func (d *Dispatcher) ingest(ctx context.Context) string {
	if d.Backend == nil {
		return FailedIngest
	}

	reply, err := d.Backend.Ingest(ctx)
	if err != nil {
		if config.DebugLog != nil {
			config.DebugLog.Printf("[Dispatch] Ingest via %s failed: %v", d.Backend.Name(), err)
		}
		return FailedIngest
	}

	return reply.MessageOr(FallbackIngested)
}

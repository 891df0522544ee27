package model

import (
	"errors"
	"strings"

	"aidj/config"
)

var (
	ErrEmptyInput = errors.New("empty input")
	ErrBusy       = errors.New("a command is still running")
)

// Session owns the timeline, input line, command history and busy flag.
// It is not safe for concurrent use; the UI update loop is its only caller.
type Session struct {
	timeline *Timeline
	history  *History
	input    string
	busy     bool
}

// NewSession starts a session with welcome as its first system message.
func NewSession(welcome string) *Session {
	s := &Session{
		timeline: NewTimeline(),
		history:  NewHistory(),
	}
	if welcome != "" {
		s.timeline.Append(KindSystem, welcome)
	}
	return s
}

// Submit accepts raw input, echoes it to the timeline and records it in
// history. The caller dispatches the returned command and reports back
// through Complete.
func (s *Session) Submit(raw string) (Command, error) {
	line := strings.TrimSpace(raw)
	if line == "" {
		return Command{}, ErrEmptyInput
	}
	if s.busy {
		return Command{}, ErrBusy
	}

	s.timeline.Append(KindCommand, line)
	s.history.Push(line)
	s.input = ""
	s.busy = true

	cmd := ParseCommand(line)
	if config.DebugLog != nil {
		config.DebugLog.Printf("[Session] Submitted %q as %s", line, cmd.Kind)
	}
	return cmd, nil
}

// Complete applies a dispatch outcome. Blank results add nothing; err is
// shown as an error response. The busy flag is always cleared.
func (s *Session) Complete(res Result, err error) {
	defer func() { s.busy = false }()

	if res.Effect == EffectClear {
		s.timeline.Reset()
	}

	if err != nil {
		s.timeline.Append(KindResponse, "Error: "+err.Error())
		return
	}

	if strings.TrimSpace(res.Text) != "" {
		s.timeline.Append(KindResponse, res.Text)
	}
}

// Older loads the previous history entry into the input line.
func (s *Session) Older() bool {
	line, ok := s.history.Older()
	if ok {
		s.input = line
	}
	return ok
}

// Newer loads the next history entry, or clears the input when leaving history.
func (s *Session) Newer() bool {
	line, ok := s.history.Newer()
	if ok {
		s.input = line
	}
	return ok
}

func (s *Session) Input() string {
	return s.input
}

func (s *Session) SetInput(text string) {
	s.input = text
}

func (s *Session) Busy() bool {
	return s.busy
}

func (s *Session) Messages() []Message {
	return s.timeline.Messages()
}

func (s *Session) Timeline() *Timeline {
	return s.timeline
}

func (s *Session) History() *History {
	return s.history
}

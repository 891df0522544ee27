package model

import (
	tea "github.com/charmbracelet/bubbletea"

	"aidj/config"
)

// Model holds the core application data and business logic state
type Model struct {
	// Core dependencies
	Config     *config.Config
	Backend    Backend
	Dispatcher *Dispatcher
	Prompts    Prompts

	// Application data
	Session *Session

	// Runtime state (not UI)
	DispatchSeq int
	Quitting    bool

	// Application metadata
	Version string
	License string
}

// NewModel creates a new Model with the given configuration. backend may be
// nil; every remote command then reports its failure message.
func NewModel(cfg *config.Config, backend Backend, version, license string) *Model {
	prompts := Prompts{Subject: cfg.ProfileName}

	m := &Model{
		Config:  cfg,
		Backend: backend,
		Dispatcher: &Dispatcher{
			Backend: backend,
			Prompts: prompts,
			Timeout: cfg.RequestTimeout,
		},
		Prompts: prompts,
		Session: NewSession(prompts.Welcome()),
		Version: version,
		License: license,
	}

	if config.DebugLog != nil {
		name := "none"
		if backend != nil {
			name = backend.Name()
		}
		config.DebugLog.Printf("[Model] NewModel: backend=%s profile=%q timeout=%v", name, prompts.Subject, cfg.RequestTimeout)
	}

	return m
}

// Submit hands the current input to the session and returns the command
// that dispatches it.
func (m *Model) Submit(raw string) (tea.Cmd, error) {
	cmd, err := m.Session.Submit(raw)
	if err != nil {
		return nil, err
	}
	m.DispatchSeq++
	return DispatchCmd(m.Dispatcher, cmd, m.DispatchSeq), nil
}

// Complete applies a finished dispatch. Results from a superseded sequence
// number are dropped without touching busy: Submit only hands out a new
// sequence number while idle, so the dispatch numbered DispatchSeq is still
// in flight and clears busy when it lands. Allowing overlapping dispatches
// means revisiting this.
// It reports whether the session asked to exit.
func (m *Model) Complete(msg DispatchDoneMsg) (exit bool) {
	if msg.Seq != m.DispatchSeq {
		if config.DebugLog != nil {
			config.DebugLog.Printf("[Model] Dropping stale dispatch result seq=%d (current %d)", msg.Seq, m.DispatchSeq)
		}
		return false
	}
	m.Session.Complete(msg.Result, msg.Err)
	if msg.Result.Effect == EffectExit {
		m.Quitting = true
		return true
	}
	return false
}

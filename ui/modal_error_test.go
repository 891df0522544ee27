package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func sizedErrorModal(m ErrorModal, w, h int) ErrorModal {
	out, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return out.(ErrorModal)
}

func TestErrorModalView(t *testing.T) {
	m := sizedErrorModal(
		NewErrorModal("Configuration Error", "invalid fps: -1").WithHint("  Check settings.toml  "),
		100, 30)

	view := m.View()
	for _, want := range []string{errorModalBrand, "Configuration Error", "invalid fps: -1", "Check settings.toml", "Leave AI DJ"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestErrorModalWithoutHint(t *testing.T) {
	m := NewErrorModal("Backend Error", "refused")
	if m.hint != "" {
		t.Errorf("hint = %q, want empty", m.hint)
	}
	if got := len(m.sections(40)); got != len(m.WithHint("retry").sections(40))-2 {
		t.Errorf("hint should add exactly two lines, got %d base lines", got)
	}
}

func TestErrorModalTooSmall(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{name: "before layout"},
		{name: "narrow", w: 19, h: 30},
		{name: "short", w: 80, h: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewErrorModal("Backend Error", "refused")
			if tt.w > 0 {
				m = sizedErrorModal(m, tt.w, tt.h)
			}
			if got := m.View(); got != errorModalTooSmall {
				t.Errorf("View() = %q, want %q", got, errorModalTooSmall)
			}
		})
	}
}

func TestErrorModalQuitKeys(t *testing.T) {
	keys := []tea.KeyMsg{
		{Type: tea.KeyEnter},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyRunes, Runes: []rune("q")},
	}

	for _, key := range keys {
		_, cmd := NewErrorModal("t", "m").Update(key)
		if cmd == nil {
			t.Errorf("%s returned no command", key.String())
			continue
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s should quit", key.String())
		}
	}

	if _, cmd := NewErrorModal("t", "m").Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}); cmd != nil {
		t.Error("other keys should not quit")
	}
}

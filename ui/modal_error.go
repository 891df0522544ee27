package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	errorModalBrand    = "AI DJ could not start"
	errorModalMaxWidth = 60
	errorModalTooSmall = "Terminal too small"
)

// ErrorModal is a standalone program shown when the session cannot start,
// for example on an invalid settings.toml or an unreachable backend.
type ErrorModal struct {
	title   string
	message string
	hint    string
	width   int
	height  int
}

func NewErrorModal(title, message string) ErrorModal {
	return ErrorModal{
		title:   title,
		message: message,
	}
}

// WithHint adds a dimmed line under the message telling the user what to fix.
func (m ErrorModal) WithHint(hint string) ErrorModal {
	m.hint = strings.TrimSpace(hint)
	return m
}

func (m ErrorModal) Init() tea.Cmd {
	return nil
}

func (m ErrorModal) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc", "q", "ctrl+c":
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m ErrorModal) View() string {
	if m.width < 20 || m.height < 10 {
		return errorModalTooSmall
	}

	boxWidth := min(errorModalMaxWidth, m.width-10)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(dangerColor).
		Padding(0, 1).
		Render(strings.Join(m.sections(boxWidth-4), "\n"))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// sections lays out the box body top to bottom for an inner width.
func (m ErrorModal) sections(width int) []string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	rule := DimStyle.Render(strings.Repeat("─", width))

	out := []string{
		center.Render(SystemStyle.Render(errorModalBrand)),
		center.Render(ErrorStyle.Render(m.title)),
		rule,
		"",
	}
	for _, line := range strings.Split(m.message, "\n") {
		out = append(out, center.Render(line))
	}
	out = append(out, "")

	if m.hint != "" {
		out = append(out, center.Render(DimStyle.Render(m.hint)), "")
	}

	out = append(out, rule, center.Render(FormatFooter("Enter/Esc/q", "Leave AI DJ")))
	return out
}

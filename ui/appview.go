package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"aidj/ascii"
	"aidj/config"
	"aidj/model"
)

const (
	headerLoadingTitle = "🎭 AI DJ - Career Navigator & Talent Curator"
	headerTitle        = "Career Navigator & Talent Curator"
	headerArtError     = "Error loading ASCII art"
	processingText     = "Processing..."
)

// AppView is the terminal session screen: animated header, scrollable
// timeline, one input line and a status bar.
type AppView struct {
	dataModel *model.Model

	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model

	header       ascii.Animator
	framesLoaded bool
	framesErr    error

	// Markdown responses keyed by message ID, rendered for renderWidth
	markdownIDs map[int]bool
	rendered    map[int]string
	rendering   map[int]bool
	renderWidth int

	completion completionState

	flash    string
	flashSeq int

	width    int
	height   int
	ready    bool
	showHelp bool
}

func NewAppView(cfg *config.Config, backend model.Backend, version, license string) AppView {
	input := textinput.New()
	input.Prompt = promptText()
	input.Placeholder = ""
	input.CharLimit = 2000
	input.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SystemStyle

	return AppView{
		dataModel:   model.NewModel(cfg, backend, version, license),
		input:       input,
		spinner:     s,
		header:      ascii.New(ascii.WithScrollMode(cfg.ScrollMode), ascii.WithFPS(cfg.FPS)),
		markdownIDs: make(map[int]bool),
		rendered:    make(map[int]string),
		rendering:   make(map[int]bool),
	}
}

func (a AppView) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		ascii.LoadCmd(a.dataModel.Config.FramesPath),
	)
}

func (a AppView) View() string {
	if !a.ready {
		return "Loading AI DJ..."
	}

	if a.showHelp {
		return a.renderHelpModal(a.width, a.height)
	}

	separator := BorderStyle.Render(separatorLine(a.width))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		a.renderHeader(),
		separator,
		a.viewport.View(),
		separator,
		a.input.View(),
		a.renderStatusBar(),
	)
}

// renderHeader shows the title until frames arrive, then the animation.
func (a AppView) renderHeader() string {
	switch {
	case !a.framesLoaded:
		return TitleStyle.Render(headerLoadingTitle)
	case a.framesErr != nil:
		return lipgloss.JoinVertical(
			lipgloss.Left,
			ErrorStyle.Render(headerArtError),
			TitleStyle.Render(headerTitle),
		)
	}

	art := ArtStyle.Render(ascii.Fit(a.header.View(), a.width))
	return lipgloss.JoinVertical(lipgloss.Left, art, TitleStyle.Render(headerTitle))
}

func (a AppView) renderStatusBar() string {
	kb := a.dataModel.Config.Keybindings

	left := StatusStyle.Render(a.backendName())
	if a.flash != "" {
		left = FlashStyle.Render(a.flash)
	}

	footer := FormatFooter(
		"Enter", "Send",
		"Tab", "Complete",
		kb.DisplayActionKey("help"), "Help",
		kb.DisplayActionKey("quit"), "Quit",
	)

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(footer)
	if gap < 1 {
		return footer
	}
	return left + strings.Repeat(" ", gap) + footer
}

func (a AppView) backendName() string {
	if a.dataModel.Backend == nil {
		return "no backend " + a.dataModel.Version
	}
	return a.dataModel.Backend.Name() + " " + a.dataModel.Version
}

// resize lays out the viewport below the header. Header height changes
// when frames load.
func (a *AppView) resize() {
	if a.width == 0 {
		return
	}

	// separators, input line and status bar
	chrome := lipgloss.Height(a.renderHeader()) + 4
	h := a.height - chrome
	if h < 1 {
		h = 1
	}

	if !a.ready {
		a.viewport = viewport.New(a.width, h)
		a.ready = true
	} else {
		a.viewport.Width = a.width
		a.viewport.Height = h
	}

	a.input.Width = a.width - lipgloss.Width(a.input.Prompt) - 1
	if a.input.Width < 10 {
		a.input.Width = 10
	}
}

func separatorLine(width int) string {
	if width <= 0 {
		return ""
	}
	return strings.Repeat("─", width)
}

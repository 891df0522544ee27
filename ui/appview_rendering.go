package ui

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	markdown "github.com/MichaelMure/go-term-markdown"
	tea "github.com/charmbracelet/bubbletea"
	gomarkdown "github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/parser"
	"github.com/muesli/reflow/wordwrap"

	"aidj/config"
	"aidj/model"
)

var (
	inlineCodeRegex = regexp.MustCompile(`(?s)\x1b\[44;3m(.*?)\x1b\[0m`)
	mdLinkRegex     = regexp.MustCompile(`\[([^\]]+)\]\((https?://[^\)]+)\)`)
	urlRegex        = regexp.MustCompile(`(https?://[^\s]+)`)
)

const (
	timestampLayout = "15:04:05"
	systemLabel     = "AI DJ System:"
	codeBlockBar    = "┃"

	// narrowest line the markdown renderer is asked to fill
	minMarkdownWidth = 20
)

func (a *AppView) updateViewportContent(gotoBottom bool) {
	if !a.ready {
		return
	}

	var content strings.Builder

	for _, msg := range a.dataModel.Session.Messages() {
		content.WriteString(a.formatMessage(msg))
	}

	if a.dataModel.Session.Busy() {
		content.WriteString(fmt.Sprintf("%s %s %s\n",
			SystemStyle.Render(systemLabel),
			processingText,
			a.spinner.View(),
		))
	}

	a.viewport.SetContent(content.String())
	if gotoBottom {
		a.viewport.GotoBottom()
	}
}

func (a AppView) formatMessage(msg model.Message) string {
	timestamp := DimStyle.Render(msg.CreatedAt.Format("[" + timestampLayout + "]"))
	width := a.viewport.Width

	if msg.Kind == model.KindCommand {
		return formatCommandMessage(timestamp, msg.Content, width)
	}

	body, ok := a.rendered[msg.ID]
	if !ok {
		body = wordwrap.String(msg.Content, width)
	}

	return fmt.Sprintf("%s %s\n%s\n\n", SystemStyle.Render(systemLabel), timestamp, body)
}

// formatCommandMessage echoes a submitted line after the shell prompt.
func formatCommandMessage(timestamp, content string, width int) string {
	prompt := strings.TrimSuffix(promptText(), " ")
	line := wordwrap.String(prompt+" "+content, width)
	return fmt.Sprintf("%s %s\n\n", line, timestamp)
}

// timelineText is the plain transcript used for copying.
func timelineText(messages []model.Message) string {
	var b strings.Builder
	for _, msg := range messages {
		label := systemLabel
		if msg.Kind == model.KindCommand {
			label = "user@aidj:~$"
		}
		b.WriteString(fmt.Sprintf("[%s] %s %s\n\n",
			msg.CreatedAt.Format(timestampLayout),
			label,
			msg.Content))
	}
	return b.String()
}

func postProcessMarkdown(rendered string, width int) string {
	// inline code: blue background to red text
	rendered = fixInlineCode(rendered)

	rendered = colorURLs(rendered)

	rendered = frameCodeBlocks(rendered, width)

	return rendered
}

// preprocessLinks reduces [text](url) to the bare url.
func preprocessLinks(content string) string {
	return mdLinkRegex.ReplaceAllString(content, "$2")
}

func fixInlineCode(s string) string {
	return inlineCodeRegex.ReplaceAllString(s, "\x1b[31m$1\x1b[0m")
}

func colorURLs(s string) string {
	redColor := "\x1b[31m"
	reset := "\x1b[0m"

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		// Code blocks keep their highlighting
		if !strings.Contains(line, codeBlockBar) {
			lines[i] = urlRegex.ReplaceAllString(line, redColor+"$1"+reset)
		}
	}

	return strings.Join(lines, "\n")
}

// frameCodeBlocks swaps the renderer's left bar on code lines for a
// horizontal rule above and below the block.
func frameCodeBlocks(s string, width int) string {
	lines := strings.Split(s, "\n")
	var result []string
	inCodeBlock := false

	darkGray := "\x1b[90m"
	reset := "\x1b[0m"

	ruleWidth := width - 4
	if ruleWidth < 8 {
		ruleWidth = 8
	}
	closing := darkGray + strings.Repeat("━", ruleWidth) + reset

	for _, line := range lines {
		if strings.Contains(line, codeBlockBar) {
			if !inCodeBlock {
				inCodeBlock = true

				label := "[code]"
				leftLen := (ruleWidth - len(label)) / 2
				rightLen := ruleWidth - len(label) - leftLen
				result = append(result, "",
					darkGray+strings.Repeat("━", leftLen)+reset+label+darkGray+strings.Repeat("━", rightLen)+reset,
					"")
			}
			result = append(result, stripCodeBlockPrefix(line))
			continue
		}

		if inCodeBlock {
			result = append(result, "", closing, "")
			inCodeBlock = false
		}
		result = append(result, line)
	}

	if inCodeBlock {
		result = append(result, "", closing, "")
	}

	return strings.Join(result, "\n")
}

func stripCodeBlockPrefix(line string) string {
	idx := strings.Index(line, codeBlockBar)
	if idx < 0 {
		return line
	}
	after := idx + len(codeBlockBar)
	if after < len(line) && line[after] == ' ' {
		after++
	}
	return line[after:]
}

// renderPending starts a render for every markdown response that has no
// output for the current width yet.
func (a *AppView) renderPending() tea.Cmd {
	if a.renderWidth <= 0 {
		return nil
	}

	var cmds []tea.Cmd
	for _, msg := range a.dataModel.Session.Messages() {
		if !a.markdownIDs[msg.ID] || a.rendering[msg.ID] {
			continue
		}
		if _, done := a.rendered[msg.ID]; done {
			continue
		}
		a.rendering[msg.ID] = true
		cmds = append(cmds, renderMarkdownAsync(msg.ID, msg.Content, a.renderWidth))
	}

	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// markdownLineWidth leaves a small right margin inside the viewport.
func markdownLineWidth(viewportWidth int) int {
	if w := viewportWidth - 4; w > minMarkdownWidth {
		return w
	}
	return minMarkdownWidth
}

func renderMarkdownAsync(id int, content string, width int) tea.Cmd {
	return func() tea.Msg {
		if config.DebugLog != nil {
			config.DebugLog.Printf("[Render] Markdown for message %d - length: %d chars", id, len(content))
		}
		startTime := time.Now()

		content = preprocessLinks(content)

		// Autolink off keeps URLs as plain text for the terminal to detect
		ext := markdown.Extensions() &^ parser.Autolink
		p := parser.NewWithExtensions(ext)
		r := markdown.NewRenderer(markdownLineWidth(width), 0)
		doc := p.Parse([]byte(content))
		rendered := gomarkdown.Render(doc, r)

		processed := strings.TrimRight(postProcessMarkdown(string(rendered), width), "\n")

		if config.DebugLog != nil {
			config.DebugLog.Printf("[Render] Message %d rendered in %v", id, time.Since(startTime))
		}

		return model.MarkdownRenderedMsg{
			MessageID: id,
			Width:     width,
			Rendered:  processed,
		}
	}
}

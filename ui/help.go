package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func (a AppView) renderHelpModal(width, height int) string {
	kb := a.dataModel.Config.Keybindings

	green := lipgloss.NewStyle().
		Bold(true).
		Foreground(successColor)

	title := green.Render("AI DJ - Keyboard Shortcuts")

	blue := lipgloss.NewStyle().Foreground(accentColor)

	session := lipgloss.JoinVertical(
		lipgloss.Left,
		blue.Render("## Session"),
		fmt.Sprintf("• %-13s Run command", kb.DisplayActionKey("submit")),
		fmt.Sprintf("• %-13s Complete command", kb.DisplayActionKey("complete")),
		fmt.Sprintf("• %-13s Older history", kb.DisplayActionKey("history_older")),
		fmt.Sprintf("• %-13s Newer history", kb.DisplayActionKey("history_newer")),
		fmt.Sprintf("• %-13s Clear input", kb.DisplayActionKey("clear_input")),
		fmt.Sprintf("• %-13s Toggle this help", kb.DisplayActionKey("help")),
		fmt.Sprintf("• %-13s Quit", kb.DisplayActionKey("quit")),
	)

	timeline := lipgloss.JoinVertical(
		lipgloss.Left,
		blue.Render("## Timeline"),
		fmt.Sprintf("• %-13s Page up", kb.DisplayActionKey("scroll_up")),
		fmt.Sprintf("• %-13s Page down", kb.DisplayActionKey("scroll_down")),
		fmt.Sprintf("• %-13s Jump to top", kb.DisplayActionKey("scroll_to_top")),
		fmt.Sprintf("• %-13s Jump to bottom", kb.DisplayActionKey("scroll_to_end")),
		fmt.Sprintf("• %-13s Copy last reply", kb.DisplayActionKey("copy_last_reply")),
		fmt.Sprintf("• %-13s Copy timeline", kb.DisplayActionKey("copy_timeline")),
	)

	tips := lipgloss.JoinVertical(
		lipgloss.Left,
		blue.Render("## Tips"),
		"• Type \"help\" for the command list",
		"• Anything else is sent as chat",
	)

	column1 := lipgloss.JoinVertical(lipgloss.Left, session, "", tips)

	columnStyle := lipgloss.NewStyle().Width(40).PaddingLeft(4)

	twoColumns := lipgloss.JoinHorizontal(
		lipgloss.Top,
		columnStyle.Render(column1),
		"  ",
		columnStyle.Render(timeline),
	)

	footer := lipgloss.NewStyle().
		Foreground(dimColor).
		Render(fmt.Sprintf("Press %s or Esc to close this help", kb.DisplayActionKey("help")))

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		title,
		"",
		twoColumns,
		"",
		footer,
	)

	helpBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(1, 2)

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		helpBox.Render(content),
	)
}

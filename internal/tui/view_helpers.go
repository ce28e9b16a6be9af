package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderPage frames body under title with the page hotkeys and the global
// quit hint below.
func renderPage(title, body, hotKeys string) string {
	if strings.TrimSpace(body) == "" {
		body = "-"
	}

	help := "ctrl+c: quit"
	if hotKeys != "" {
		help = hotKeys + " │ " + help
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		frameStyle.Render(body),
		helpStyle.Render(help),
	)
}

// writeFeedback appends the status and error lines shared by every form.
func writeFeedback(b *strings.Builder, status, errMsg string) {
	if status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(status))
		b.WriteString("\n")
	}
	if errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + errMsg))
		b.WriteString("\n")
	}
}

// fitText shortens v to width runes, marking the cut with "...".
func fitText(v string, width int) string {
	runes := []rune(v)
	if width <= 0 || len(runes) <= width {
		return v
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}

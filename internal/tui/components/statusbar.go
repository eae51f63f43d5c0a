package components

import (
	"strings"

	"github.com/theirongolddev/presupuesto/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// StatusNotice is the latest message shown in the status bar.
type StatusNotice struct {
	Text string
	Warn bool
}

// RenderStatusBar renders the bottom status bar: key hints, the latest notice
// and a right-aligned indicator such as save progress.
func RenderStatusBar(width int, notice StatusNotice, right string) string {
	t := theme.Active

	base := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)
	keyStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface)
	noticeStyle := lipgloss.NewStyle().
		Foreground(t.Done).
		Background(t.Surface)
	if notice.Warn {
		noticeStyle = noticeStyle.Foreground(t.Pending)
	}

	left := base.Render(" ") + keyStyle.Render("[?]") + base.Render("ayuda ") +
		keyStyle.Render("[q]") + base.Render("salir")
	if notice.Text != "" {
		left += base.Render("  ") + noticeStyle.Render(firstLine(notice.Text))
	}
	rightPart := base.Render(right + " ")

	padding := width - lipgloss.Width(left) - lipgloss.Width(rightPart)
	if padding < 0 {
		padding = 0
	}

	return lipgloss.NewStyle().
		Background(t.Surface).
		Width(width).
		MaxWidth(width).
		Render(left + base.Render(strings.Repeat(" ", padding)) + rightPart)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " …"
	}
	return s
}

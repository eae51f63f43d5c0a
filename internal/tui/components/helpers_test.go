package components

import (
	"regexp"

	"github.com/charmbracelet/lipgloss"
)

var ansiRe = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiRe.ReplaceAllString(s, "")
}

func lipglossWidth(s string) int {
	return lipgloss.Width(s)
}

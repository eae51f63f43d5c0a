package components

import (
	"strings"

	"github.com/theirongolddev/presupuesto/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name   string
	Key    rune
	KeyPos int // rune position of the shortcut letter in the name (-1 if not in name)
}

// Tabs defines the form sections, in store.Tabs order.
var Tabs = []Tab{
	{Name: "Nómina", Key: 'n', KeyPos: 0},
	{Name: "Gastos", Key: 'g', KeyPos: 0},
	{Name: "Flujo Presupuestal", Key: 'f', KeyPos: 0},
	{Name: "Resumen", Key: 'r', KeyPos: 0},
}

func renderTab(tab Tab, active bool) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.SurfaceHover).
		Bold(true).
		Padding(0, 1)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true).
		Underline(true)

	dimKeyStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	pad := inactiveStyle.Render(" ")

	if active {
		return activeStyle.Render(tab.Name)
	}

	name := []rune(tab.Name)
	if tab.KeyPos >= 0 && tab.KeyPos < len(name) {
		return pad +
			inactiveStyle.Render(string(name[:tab.KeyPos])) +
			keyStyle.Render(string(name[tab.KeyPos])) +
			inactiveStyle.Render(string(name[tab.KeyPos+1:])) +
			pad
	}
	return pad + inactiveStyle.Render(tab.Name) +
		dimKeyStyle.Render("[") + keyStyle.Render(string(tab.Key)) + dimKeyStyle.Render("]") +
		pad
}

// TabVisualWidth is the rendered width of a tab, matching RenderTabBar.
func TabVisualWidth(tab Tab, active bool) int {
	return lipgloss.Width(renderTab(tab, active))
}

// RenderTabBar renders the tab bar with the given active index.
func RenderTabBar(activeIdx int, width int) string {
	t := theme.Active

	sepStyle := lipgloss.NewStyle().
		Foreground(t.Border).
		Background(t.Surface)

	parts := make([]string, 0, len(Tabs))
	for i, tab := range Tabs {
		parts = append(parts, renderTab(tab, i == activeIdx))
	}

	row := strings.Join(parts, sepStyle.Render("│"))
	return lipgloss.NewStyle().
		Background(t.Surface).
		Width(width).
		Render(row)
}

// RenderSubTabs renders a row of secondary section names with one selected.
func RenderSubTabs(names []string, activeIdx int, width int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Bold(true).
		Padding(0, 1)
	inactiveStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Padding(0, 1)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	parts := make([]string, 0, len(names))
	for i, n := range names {
		if i == activeIdx {
			parts = append(parts, activeStyle.Render(n))
		} else {
			parts = append(parts, inactiveStyle.Render(n))
		}
	}
	return lipgloss.NewStyle().
		Background(t.Surface).
		Width(width).
		Render(strings.Join(parts, spaceStyle.Render(" ")))
}

// TabIdxByKey returns the tab index for a given key press, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}

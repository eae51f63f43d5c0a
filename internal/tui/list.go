package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/presupuesto/internal/cli"
	"github.com/theirongolddev/presupuesto/internal/tui/components"
	"github.com/theirongolddev/presupuesto/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// renderList draws a section as a card with a header row, the rows around
// the cursor and a total footer.
func (a App) renderList(id sectionID, cw, visible int) string {
	t := theme.Active
	sec := a.sections[id]
	rows := sec.cells(a.session)
	inner := components.CardInnerWidth(cw)

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	title := fmt.Sprintf("%s (%d)", sec.title, len(rows))
	if len(rows) == 0 {
		body := mutedStyle.Render("Sin registros. [a] agregar")
		return components.ContentCard(title, body, cw)
	}

	widths := columnWidths(sec.headers, rows, inner)

	var b strings.Builder
	b.WriteString(headerStyle.Render(formatRow(sec.headers, widths, sec.textCols, inner)))
	b.WriteString("\n")

	if visible < 3 {
		visible = 3
	}
	cursor := a.cursor[id]
	offset := 0
	if cursor >= visible {
		offset = cursor - visible + 1
	}
	end := offset + visible
	if end > len(rows) {
		end = len(rows)
	}

	for i := offset; i < end; i++ {
		line := formatRow(rows[i], widths, sec.textCols, inner)
		if i == cursor {
			b.WriteString(selectedStyle.Render(line))
		} else {
			b.WriteString(rowStyle.Render(line))
		}
		b.WriteString("\n")
	}

	footer := fmt.Sprintf("Total: %s", cli.FormatMoney(sec.total(a.session)))
	if len(rows) > visible {
		footer = fmt.Sprintf("%d-%d de %d · %s", offset+1, end, len(rows), footer)
	}
	b.WriteString(mutedStyle.Render(footer))

	return components.ContentCard(title, b.String(), cw)
}

// columnWidths fits each column to its widest cell, then shrinks the widest
// columns until the row fits in inner.
func columnWidths(headers []string, rows [][]string, inner int) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, r := range rows {
		for i, c := range r {
			if w := lipgloss.Width(c); i < len(widths) && w > widths[i] {
				widths[i] = w
			}
		}
	}

	gaps := 2 * (len(widths) - 1)
	for {
		sum := gaps
		widest := 0
		for i, w := range widths {
			sum += w
			if w > widths[widest] {
				widest = i
			}
		}
		if sum <= inner || widths[widest] <= 4 {
			break
		}
		widths[widest]--
	}
	return widths
}

// formatRow pads cells to widths. The first textCols columns are
// left-aligned and the rest right-aligned.
func formatRow(cells []string, widths []int, textCols, inner int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		c := ""
		if i < len(cells) {
			c = truncStr(cells[i], w)
		}
		pad := strings.Repeat(" ", max(w-lipgloss.Width(c), 0))
		if i < textCols {
			parts[i] = c + pad
		} else {
			parts[i] = pad + c
		}
	}
	line := strings.Join(parts, "  ")
	if w := lipgloss.Width(line); w < inner {
		line += strings.Repeat(" ", inner-w)
	}
	return line
}

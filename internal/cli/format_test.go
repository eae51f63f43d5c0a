package cli

import (
	"strings"
	"testing"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1056000, "$1,056,000"},
		{0, "$0"},
		{-9000, "-$9,000"},
		{1234.5, "$1,234.5"},
		{0.1 + 0.2, "$0.3"},
		{999.999, "$1,000"},
	}
	for _, tt := range tests {
		if got := FormatMoney(tt.in); got != tt.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	if got := FormatNumber(1234567); got != "1,234,567" {
		t.Fatalf("FormatNumber = %q, want 1,234,567", got)
	}
	if got := FormatNumber(-1000); got != "-1,000" {
		t.Fatalf("FormatNumber = %q, want -1,000", got)
	}
}

func TestFormatPercentAndWeeks(t *testing.T) {
	if got := FormatPercent(141500.0 / 1750000 * 100); got != "8.1%" {
		t.Fatalf("FormatPercent = %q, want 8.1%%", got)
	}
	if got := FormatWeeks(12); got != "12 semanas" {
		t.Fatalf("FormatWeeks(12) = %q", got)
	}
	if got := FormatWeeks(1); got != "1 semana" {
		t.Fatalf("FormatWeeks(1) = %q", got)
	}
	if got := FormatQuantity(2.5); got != "2.5" {
		t.Fatalf("FormatQuantity = %q", got)
	}
}

func TestRenderTableAlignsAccentedText(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Rol", "Costo Total"},
		Rows: [][]string{
			{"Comunicación", "$12,500"},
			{"Hotel", "$160,000"},
		},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("table has %d lines, want 6:\n%s", len(lines), out)
	}
	width := len([]rune(stripANSI(lines[0])))
	for i, l := range lines {
		if got := len([]rune(stripANSI(l))); got != width {
			t.Fatalf("line %d width = %d, want %d:\n%s", i, got, width, out)
		}
	}
}

func TestRenderProgressBar(t *testing.T) {
	got := stripANSI(RenderProgressBar(75, 8))
	if got != "[██████░░] 75%" {
		t.Fatalf("RenderProgressBar = %q", got)
	}
	if got := stripANSI(RenderProgressBar(150, 4)); got != "[████] 100%" {
		t.Fatalf("clamped bar = %q", got)
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	inEsc := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEsc = true
		case inEsc && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'):
			inEsc = false
		case !inEsc:
			b.WriteRune(r)
		}
	}
	return b.String()
}

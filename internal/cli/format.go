// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
)

// FormatMoney formats an amount with a dollar sign and thousands separators.
// e.g., 1056000 -> "$1,056,000", -9000 -> "-$9,000", 1234.5 -> "$1,234.5"
func FormatMoney(v float64) string {
	if v < 0 {
		return "-$" + FormatAmount(-v)
	}
	return "$" + FormatAmount(v)
}

// FormatAmount adds comma separators and keeps at most two decimals.
func FormatAmount(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return humanize.CommafWithDigits(math.Round(v*100)/100, 2)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	return humanize.Comma(n)
}

// FormatQuantity prints a quantity without trailing zeros.
func FormatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatPercent formats a percentage with one decimal.
// e.g., 8.0857 -> "8.1%"
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatWeeks formats a week count.
func FormatWeeks(w float64) string {
	if w == 1 {
		return "1 semana"
	}
	return FormatQuantity(w) + " semanas"
}

// OrDash returns "—" for empty strings.
func OrDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

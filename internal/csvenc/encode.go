// Package csvenc encodes uniform label/value rows as CSV text.
//
// The output is fixed: the header is the first row's labels joined verbatim,
// values are quoted only when they contain a comma or a double quote, rows are
// joined by "\n" and there is no trailing newline.
package csvenc

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MIMEType is the content type of every encoded blob.
const MIMEType = "text/csv;charset=utf-8;"

var (
	// ErrNothingToEncode is returned for empty input. It is a warning, not a failure.
	ErrNothingToEncode = errors.New("nothing to export")
	// ErrShapeMismatch is returned when a row's labels differ from the first row's.
	ErrShapeMismatch = errors.New("row labels differ from header")
)

// Field is one labelled cell.
type Field struct {
	Label string
	Value any
}

// Row is an ordered list of cells. Every row passed to one Encode call must
// carry the same labels in the same order.
type Row []Field

// Labels returns the row's labels in order.
func (r Row) Labels() []string {
	out := make([]string, len(r))
	for i, f := range r {
		out[i] = f.Label
	}
	return out
}

// Blob is encoded CSV text with its content type.
type Blob struct {
	Data     []byte
	MIMEType string
}

func (b Blob) String() string { return string(b.Data) }

// Encode renders rows as a CSV blob.
func Encode(rows []Row) (Blob, error) {
	if len(rows) == 0 {
		return Blob{}, ErrNothingToEncode
	}
	header := rows[0].Labels()

	var sb strings.Builder
	sb.WriteString(strings.Join(header, ","))
	for n, row := range rows {
		if !sameLabels(header, row) {
			return Blob{}, fmt.Errorf("row %d: %w", n+1, ErrShapeMismatch)
		}
		sb.WriteByte('\n')
		for i, f := range row {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(FormatValue(f.Value))
		}
	}
	return Blob{Data: []byte(sb.String()), MIMEType: MIMEType}, nil
}

// FormatValue stringifies one cell value.
func FormatValue(v any) string {
	switch x := v.(type) {
	case string:
		return quote(x)
	case float64:
		return formatFloat(x, 64)
	case float32:
		return formatFloat(float64(x), 32)
	case int:
		return strconv.Itoa(x)
	case int8, int16, int32, int64:
		return fmt.Sprint(x)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(x)
	case nil:
		return ""
	default:
		return fmt.Sprint(x)
	}
}

// formatFloat prints the shortest round-trip form. Magnitudes of 1e21 and up
// or below 1e-6 use an exponent ("1e+21", "1.5e-7"), negative zero prints as
// "0" and infinities as "Infinity".
func formatFloat(x float64, bitSize int) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	case x == 0:
		return "0"
	}
	if abs := math.Abs(x); abs >= 1e21 || abs < 1e-6 {
		mant, exp, _ := strings.Cut(strconv.FormatFloat(x, 'e', -1, bitSize), "e")
		return mant + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
	}
	return strconv.FormatFloat(x, 'f', -1, bitSize)
}

func quote(s string) string {
	if !strings.ContainsAny(s, `,"`) {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func sameLabels(header []string, row Row) bool {
	if len(header) != len(row) {
		return false
	}
	for i, f := range row {
		if f.Label != header[i] {
			return false
		}
	}
	return true
}

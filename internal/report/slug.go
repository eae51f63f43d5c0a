package report

import (
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// RE2's \s is ASCII only; the extra classes cover no-break and other Unicode spaces.
var whitespaceRun = regexp.MustCompile(`[\s\v\p{Zs}\x{FEFF}\x{2028}\x{2029}]+`)

// Slugify lower-cases name and replaces every whitespace run with "-".
// Accents are kept; the name is only normalized to NFC.
func Slugify(name string) string {
	slug := whitespaceRun.ReplaceAllString(norm.NFC.String(name), "-")
	return cases.Lower(language.Spanish).String(slug)
}

// SummaryFilename is the export filename for a project's summary.
func SummaryFilename(projectName string) string {
	return "resumen-" + Slugify(projectName) + ".csv"
}

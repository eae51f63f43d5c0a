// Package theme defines color themes for the presupuesto budget form.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme maps the budget form's roles onto colors. Layout roles paint the
// chrome; the budget roles colour figures by what they mean.
type Theme struct {
	Name string

	Background    lipgloss.Color
	Surface       lipgloss.Color // cards, bars and list rows
	SurfaceHover  lipgloss.Color // selected row, active tab
	SurfaceBright lipgloss.Color // blurred form buttons
	Border        lipgloss.Color
	BorderAccent  lipgloss.Color // open form, focused field
	TextDim       lipgloss.Color
	TextMuted     lipgloss.Color
	TextPrimary   lipgloss.Color
	Accent        lipgloss.Color
	AccentBright  lipgloss.Color

	Profit  lipgloss.Color // non-negative balance, positive share
	Loss    lipgloss.Color // costs above the sale price, validation errors
	Warning lipgloss.Color // alerts that need attention
	Pending lipgloss.Color // sections still missing rows, failed sinks
	Done    lipgloss.Color // completed sections, saved notices
	Chart   lipgloss.Color // weekly billing bars
	Key     lipgloss.Color // key names in the help screen
}

// palette is the raw swatch a theme is built from.
type palette struct {
	bg, surface, hover, bright string
	border                     string
	dim, muted, text           string
	accent, accentBright       string
	green, greenBright         string
	yellow, orange, red        string
	blue, cyan                 string
}

func fromPalette(name string, p palette) Theme {
	c := func(s string) lipgloss.Color { return lipgloss.Color(s) }
	return Theme{
		Name:          name,
		Background:    c(p.bg),
		Surface:       c(p.surface),
		SurfaceHover:  c(p.hover),
		SurfaceBright: c(p.bright),
		Border:        c(p.border),
		BorderAccent:  c(p.accent),
		TextDim:       c(p.dim),
		TextMuted:     c(p.muted),
		TextPrimary:   c(p.text),
		Accent:        c(p.accent),
		AccentBright:  c(p.accentBright),
		Profit:        c(p.greenBright),
		Loss:          c(p.red),
		Warning:       c(p.yellow),
		Pending:       c(p.orange),
		Done:          c(p.green),
		Chart:         c(p.blue),
		Key:           c(p.cyan),
	}
}

// Active is the currently selected theme.
var Active = FlexokiDark

// FlexokiDark is the default: warm paper tones on a dark ground.
var FlexokiDark = fromPalette("flexoki-dark", palette{
	bg:           "#100F0F",
	surface:      "#1C1B1A",
	hover:        "#282726",
	bright:       "#343331",
	border:       "#403E3C",
	dim:          "#575653",
	muted:        "#878580",
	text:         "#FFFCF0",
	accent:       "#3AA99F",
	accentBright: "#5BC8BE",
	green:        "#879A39",
	greenBright:  "#A3B859",
	yellow:       "#D0A215",
	orange:       "#DA702C",
	red:          "#D14D41",
	blue:         "#4385BE",
	cyan:         "#24837B",
})

// CatppuccinMocha is a soft pastel theme.
var CatppuccinMocha = fromPalette("catppuccin-mocha", palette{
	bg:           "#1E1E2E",
	surface:      "#313244",
	hover:        "#45475A",
	bright:       "#585B70",
	border:       "#585B70",
	dim:          "#6C7086",
	muted:        "#A6ADC8",
	text:         "#CDD6F4",
	accent:       "#89B4FA",
	accentBright: "#B4D0FB",
	green:        "#A6E3A1",
	greenBright:  "#C6F6C1",
	yellow:       "#F9E2AF",
	orange:       "#FAB387",
	red:          "#F38BA8",
	blue:         "#74C7EC",
	cyan:         "#94E2D5",
})

// TokyoNight is a cool blue and purple theme.
var TokyoNight = fromPalette("tokyo-night", palette{
	bg:           "#1A1B26",
	surface:      "#24283B",
	hover:        "#343A52",
	bright:       "#414868",
	border:       "#565F89",
	dim:          "#565F89",
	muted:        "#A9B1D6",
	text:         "#C0CAF5",
	accent:       "#7AA2F7",
	accentBright: "#A9C1FF",
	green:        "#9ECE6A",
	greenBright:  "#B9E87A",
	yellow:       "#E0AF68",
	orange:       "#FF9E64",
	red:          "#F7768E",
	blue:         "#BB9AF7",
	cyan:         "#7DCFFF",
})

// Terminal sticks to the 16 ANSI colors.
var Terminal = fromPalette("terminal", palette{
	bg:           "0",
	surface:      "0",
	hover:        "8",
	bright:       "8",
	border:       "8",
	dim:          "8",
	muted:        "7",
	text:         "15",
	accent:       "6",
	accentBright: "14",
	green:        "2",
	greenBright:  "10",
	yellow:       "11",
	orange:       "3",
	red:          "1",
	blue:         "4",
	cyan:         "6",
})

// All available themes, in the order the setup wizard lists them.
var All = []Theme{FlexokiDark, CatppuccinMocha, TokyoNight, Terminal}

// ByName returns a theme by its name, defaulting to FlexokiDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return FlexokiDark
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}

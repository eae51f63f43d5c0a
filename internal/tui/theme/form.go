package theme

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Form maps the theme's color roles onto a huh form theme.
func (t Theme) Form() *huh.Theme {
	h := huh.ThemeBase()

	h.Focused.Base = h.Focused.Base.BorderForeground(t.BorderAccent)
	h.Focused.Card = h.Focused.Base
	h.Focused.Title = h.Focused.Title.Foreground(t.Accent).Bold(true)
	h.Focused.NoteTitle = h.Focused.NoteTitle.Foreground(t.Accent).Bold(true).MarginBottom(1)
	h.Focused.Description = h.Focused.Description.Foreground(t.TextMuted)
	h.Focused.ErrorIndicator = h.Focused.ErrorIndicator.Foreground(t.Loss)
	h.Focused.ErrorMessage = h.Focused.ErrorMessage.Foreground(t.Loss)
	h.Focused.SelectSelector = h.Focused.SelectSelector.Foreground(t.AccentBright)
	h.Focused.NextIndicator = h.Focused.NextIndicator.Foreground(t.AccentBright)
	h.Focused.PrevIndicator = h.Focused.PrevIndicator.Foreground(t.AccentBright)
	h.Focused.Option = h.Focused.Option.Foreground(t.TextPrimary)
	h.Focused.SelectedOption = h.Focused.SelectedOption.Foreground(t.Done)
	h.Focused.FocusedButton = h.Focused.FocusedButton.Foreground(t.Background).Background(t.Accent)
	h.Focused.Next = h.Focused.FocusedButton
	h.Focused.BlurredButton = h.Focused.BlurredButton.Foreground(t.TextMuted).Background(t.SurfaceBright)
	h.Focused.TextInput.Cursor = h.Focused.TextInput.Cursor.Foreground(t.AccentBright)
	h.Focused.TextInput.Placeholder = h.Focused.TextInput.Placeholder.Foreground(t.TextDim)
	h.Focused.TextInput.Prompt = h.Focused.TextInput.Prompt.Foreground(t.Accent)
	h.Focused.TextInput.Text = h.Focused.TextInput.Text.Foreground(t.TextPrimary)

	h.Blurred = h.Focused
	h.Blurred.Base = h.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	h.Blurred.Card = h.Blurred.Base
	h.Blurred.NextIndicator = lipgloss.NewStyle()
	h.Blurred.PrevIndicator = lipgloss.NewStyle()

	h.Group.Title = h.Focused.Title
	h.Group.Description = h.Focused.Description
	return h
}

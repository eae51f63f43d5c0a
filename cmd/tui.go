package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/theirongolddev/presupuesto/internal/sink"
	"github.com/theirongolddev/presupuesto/internal/tui"
	"github.com/theirongolddev/presupuesto/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var flagLogFile string

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive budget form",
	RunE:  runTUI,
}

func init() {
	tuiCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file while the form is open")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}

	// The alt screen owns the terminal; logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer func() { _ = f.Close() }()
		logOut = f
	}
	setupLogging(logOut)

	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	opts := tui.Options{
		Summary:       summaryOptions(),
		ExportDir:     exportDir(),
		Registry:      sink.NewRegistry(),
		SaveDelay:     cfg.SaveDelay(),
		AlertDuration: cfg.AlertDuration(),
		Logger:        slog.Default(),
	}
	if cfg.ClipboardEnabled() {
		opts.Clipboard = sink.SystemClipboard{}
	}

	app := tui.NewApp(s, opts)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}

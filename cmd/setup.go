package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/presupuesto/internal/config"
	"github.com/theirongolddev/presupuesto/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

// setupValues backs the wizard fields; numbers are edited as text.
type setupValues struct {
	exportDir  string
	draft      string
	clipboard  bool
	serveAddr  string
	commission string
	theme      string
}

func runSetup(_ *cobra.Command, _ []string) error {
	vals := setupValues{
		exportDir:  cfg.General.ExportDir,
		draft:      cfg.General.Draft,
		clipboard:  cfg.ClipboardEnabled(),
		serveAddr:  cfg.Share.ServeAddr,
		commission: strconv.FormatFloat(cfg.FixedCommission(), 'f', -1, 64),
		theme:      theme.ByName(cfg.Appearance.Theme).Name,
	}

	form := newSetupForm(&vals).WithTheme(theme.ByName(vals.theme).Form())
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup canceled; nothing saved.")
			return nil
		}
		return err
	}

	next, err := vals.apply(cfg)
	if err != nil {
		return err
	}
	if err := config.Save(next); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `presupuesto setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}

func newSetupForm(v *setupValues) *huh.Form {
	themes := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themes = append(themes, huh.NewOption(t.Name, t.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to presupuesto!").
				Description("A few settings for exports, sharing and the summary."),
			huh.NewInput().
				Title("Export directory").
				Value(&v.exportDir),
			huh.NewInput().
				Title("Draft to open by default").
				Description("A YAML draft; leave empty for the starter budget.").
				Value(&v.draft),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Copy share links to the clipboard?").
				Value(&v.clipboard),
			huh.NewInput().
				Title("Share server address").
				Value(&v.serveAddr),
			huh.NewInput().
				Title("Fixed commission").
				Description("Added to total costs in the project summary.").
				Value(&v.commission).
				Validate(validateAmount),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themes...).
				Value(&v.theme),
		),
	)
}

func validateAmount(s string) error {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || f < 0 {
		return errors.New("enter a non-negative number")
	}
	return nil
}

// apply copies the wizard answers onto base.
func (v setupValues) apply(base config.Config) (config.Config, error) {
	commission, err := strconv.ParseFloat(strings.TrimSpace(v.commission), 64)
	if err != nil {
		return base, fmt.Errorf("fixed commission %q: %w", v.commission, err)
	}
	clipboard := v.clipboard

	base.General.ExportDir = strings.TrimSpace(v.exportDir)
	if base.General.ExportDir == "" {
		base.General.ExportDir = "."
	}
	base.General.Draft = strings.TrimSpace(v.draft)
	base.Share.Clipboard = &clipboard
	base.Share.ServeAddr = strings.TrimSpace(v.serveAddr)
	base.Summary.FixedCommission = &commission
	base.Appearance.Theme = v.theme
	return base, nil
}

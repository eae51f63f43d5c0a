// Package cmd implements the presupuesto CLI commands.
package cmd

import (
	"fmt"

	"github.com/theirongolddev/presupuesto/internal/cli"
	"github.com/theirongolddev/presupuesto/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Export directory: %s\n", cfg.General.ExportDir)
	if cfg.General.Draft != "" {
		fmt.Printf("    Draft:            %s\n", cfg.General.Draft)
	} else {
		fmt.Println("    Draft:            none (starter budget)")
	}
	fmt.Println()

	fmt.Println("  [Share]")
	fmt.Printf("    Clipboard:    %v\n", cfg.ClipboardEnabled())
	fmt.Printf("    Serve addr:   %s\n", cfg.Share.ServeAddr)
	fmt.Println()

	fmt.Println("  [Summary]")
	fmt.Printf("    Fixed commission: %s\n", cli.FormatMoney(cfg.FixedCommission()))
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [TUI]")
	fmt.Printf("    Save delay:     %s\n", cfg.SaveDelay())
	fmt.Printf("    Alert duration: %s\n", cfg.AlertDuration())
	fmt.Println()

	fmt.Println("  Run `presupuesto setup` to reconfigure.")
	return nil
}

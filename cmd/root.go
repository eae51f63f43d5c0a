package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/theirongolddev/presupuesto/internal/config"
	"github.com/theirongolddev/presupuesto/internal/draft"
	"github.com/theirongolddev/presupuesto/internal/pipeline"
	"github.com/theirongolddev/presupuesto/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDraft     string
	flagExportDir string
	flagEmpty     bool
	flagQuiet     bool
	flagVerbose   bool
)

// cfg is loaded once per invocation in PersistentPreRunE.
var cfg = config.DefaultConfig()

var rootCmd = &cobra.Command{
	Use:   "presupuesto",
	Short: "Project budget planner",
	Long: "Plan a consulting project budget: personnel, expenses, flights, per diems,\n" +
		"insurance and billing blocks, with CSV export and share.",
	SilenceUsage:      true,
	PersistentPreRunE: preRun,
	RunE:              runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "  Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDraft, "draft", "f", "", "YAML draft to load instead of the starter budget")
	rootCmd.PersistentFlags().StringVarP(&flagExportDir, "export-dir", "o", "", "Directory for exported files")
	rootCmd.PersistentFlags().BoolVar(&flagEmpty, "empty", false, "Start from an empty budget")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Only log errors")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug output")
}

func preRun(_ *cobra.Command, _ []string) error {
	setupLogging(os.Stderr)

	loaded, err := config.Load()
	if err != nil {
		slog.Warn("config not loaded, using defaults", "path", config.ConfigPath(), "err", err)
	}
	cfg = loaded
	return nil
}

func setupLogging(w io.Writer) {
	level := slog.LevelInfo
	switch {
	case flagQuiet:
		level = slog.LevelError
	case flagVerbose:
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

// loadSession is the shared session path used by all commands: a draft if
// one is given, otherwise the starter budget.
func loadSession() (*store.Session, error) {
	path := flagDraft
	if path == "" {
		path = cfg.General.Draft
	}
	if path == "" {
		if flagEmpty {
			return store.NewSession(), nil
		}
		return store.NewSeededSession(), nil
	}

	s, warnings, err := draft.Load(path)
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		slog.Warn("skipped draft row", "section", w.Section, "index", w.Index, "err", w.Err)
	}
	slog.Debug("draft loaded", "path", path,
		"personnel", s.Personnel.Len(),
		"expenses", s.Expenses.Len(),
		"blocks", s.BudgetBlocks.Len(),
	)
	return s, nil
}

func summaryOptions() pipeline.SummaryOptions {
	return pipeline.SummaryOptions{FixedCommission: cfg.FixedCommission()}
}

func exportDir() string {
	if flagExportDir != "" {
		return flagExportDir
	}
	return cfg.General.ExportDir
}

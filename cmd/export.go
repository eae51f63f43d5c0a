package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/theirongolddev/presupuesto/internal/cli"
	"github.com/theirongolddev/presupuesto/internal/csvenc"
	"github.com/theirongolddev/presupuesto/internal/report"
	"github.com/theirongolddev/presupuesto/internal/sink"
	"github.com/theirongolddev/presupuesto/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagExportStdout bool
	flagExportXLSX   string
	flagExportTab    string
)

var exportCmd = &cobra.Command{
	Use:   "export [kind]",
	Short: "Export budget data as CSV",
	Long: "Kinds: current-tab, " + kindList() + ".\n" +
		"With no kind, the current tab is exported. --xlsx writes every kind into one workbook.",
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().BoolVar(&flagExportStdout, "stdout", false, "Print the CSV instead of writing a file")
	exportCmd.Flags().StringVar(&flagExportXLSX, "xlsx", "", "Write every section to this .xlsx workbook")
	exportCmd.Flags().StringVar(&flagExportTab, "tab", "", "Current tab to resolve current-tab against (personnel, expenses, budget-flow, summary)")
	rootCmd.AddCommand(exportCmd)
}

func kindList() string {
	names := make([]string, len(report.Kinds))
	for i, k := range report.Kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

func runExport(_ *cobra.Command, args []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}
	if flagExportTab != "" {
		tab, err := store.ParseTab(flagExportTab)
		if err != nil {
			slog.Warn("unknown tab, nothing exported", "tab", flagExportTab, "err", err)
			return nil
		}
		s.CurrentTab = tab
	}
	opts := summaryOptions()

	if flagExportXLSX != "" {
		if err := sink.WriteWorkbook(flagExportXLSX, report.BuildAll(s, opts)); err != nil {
			if errors.Is(err, csvenc.ErrNothingToEncode) {
				fmt.Fprintln(os.Stderr, "  "+cli.RenderMuted("No hay datos para exportar"))
				return nil
			}
			return err
		}
		slog.Info("workbook written", "path", flagExportXLSX)
		fmt.Printf("  Exportado: %s\n", flagExportXLSX)
		return nil
	}

	name := string(report.KindCurrentTab)
	if len(args) == 1 {
		name = args[0]
	}
	kind, err := report.ParseKind(name)
	if err != nil {
		// Unknown kinds are ignored, not fatal.
		slog.Warn("unknown export kind, nothing exported", "kind", name)
		return nil
	}
	ex, err := report.Build(kind, s, opts)
	if err != nil {
		slog.Warn("nothing exported", "kind", kind, "tab", s.CurrentTab, "err", err)
		return nil
	}

	if flagExportStdout {
		blob, err := ex.Encode()
		if errors.Is(err, csvenc.ErrNothingToEncode) {
			fmt.Fprintln(os.Stderr, "  "+cli.RenderMuted("No hay datos para exportar"))
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Println(blob.String())
		return nil
	}

	exporter := &sink.Exporter{
		Files:    sink.FileExporter{Dir: exportDir()},
		Notifier: sink.WriterNotifier{W: os.Stderr},
	}
	exporter.ExportReport(ex)
	return nil
}

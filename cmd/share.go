package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/theirongolddev/presupuesto/internal/cli"
	"github.com/theirongolddev/presupuesto/internal/csvenc"
	"github.com/theirongolddev/presupuesto/internal/report"
	"github.com/theirongolddev/presupuesto/internal/shareserver"
	"github.com/theirongolddev/presupuesto/internal/sink"
	"github.com/theirongolddev/presupuesto/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagShareServe bool
	flagShareAddr  string
)

var shareCmd = &cobra.Command{
	Use:   "share [tab]",
	Short: "Share a tab as CSV and copy its link to the clipboard",
	Long: "Tabs: personnel, expenses, budget-flow, summary. With no tab, the current one is shared.\n" +
		"--serve keeps a local HTTP server running so the link can be downloaded.",
	Args: cobra.MaximumNArgs(1),
	RunE: runShare,
}

func init() {
	shareCmd.Flags().BoolVar(&flagShareServe, "serve", false, "Serve the shared CSV over HTTP until interrupted")
	shareCmd.Flags().StringVar(&flagShareAddr, "addr", "", "HTTP listen address for --serve (default from config)")
	rootCmd.AddCommand(shareCmd)
}

func runShare(_ *cobra.Command, args []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}
	tab, ok := shareTab(s, args)
	if !ok {
		return nil
	}

	ex, err := report.BuildShare(tab, s, summaryOptions())
	if err != nil {
		return err
	}
	blob, err := ex.Encode()
	if errors.Is(err, csvenc.ErrNothingToEncode) {
		fmt.Fprintln(os.Stderr, "  "+cli.RenderMuted("No hay datos para compartir"))
		return nil
	}
	if err != nil {
		return err
	}

	registry := sink.NewRegistry()
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var svcErr chan error
	if flagShareServe {
		addr := flagShareAddr
		if addr == "" {
			addr = cfg.Share.ServeAddr
		}
		svc := shareserver.New(shareserver.Config{Addr: addr}, registry, slog.Default())
		svcErr = make(chan error, 1)
		go func() { svcErr <- svc.Run(ctx) }()
		select {
		case <-svc.Ready():
		case err := <-svcErr:
			return err
		}
	}

	sharer := &sink.Sharer{
		Registry: registry,
		Notifier: sink.WriterNotifier{W: os.Stderr},
	}
	if cfg.ClipboardEnabled() {
		sharer.Clipboard = sink.SystemClipboard{}
	}

	done := make(chan sink.ShareResult, 1)
	ref := sharer.Share(ex.Filename, blob, func(r sink.ShareResult) { done <- r })
	<-done
	fmt.Printf("  %s\n", ref)

	if !flagShareServe {
		return nil
	}
	fmt.Println("  Serving until interrupted (Ctrl+C).")
	if err := <-svcErr; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// shareTab picks the tab named in args, or the session's current one. An
// unknown name is logged and nothing is shared.
func shareTab(s *store.Session, args []string) (store.Tab, bool) {
	if len(args) == 0 {
		return s.CurrentTab, true
	}
	tab, err := store.ParseTab(args[0])
	if err != nil {
		slog.Warn("unknown share tab, nothing shared", "tab", args[0], "err", err)
		return "", false
	}
	return tab, true
}

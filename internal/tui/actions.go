package tui

import (
	"errors"
	"log/slog"
	"time"

	"github.com/theirongolddev/presupuesto/internal/csvenc"
	"github.com/theirongolddev/presupuesto/internal/report"
	"github.com/theirongolddev/presupuesto/internal/sink"

	tea "github.com/charmbracelet/bubbletea"
)

// NoticeMsg carries a sink notice into the update loop.
type NoticeMsg sink.Notice

// SaveDoneMsg ends the simulated save.
type SaveDoneMsg struct{}

// alertDoneMsg hides the "Continuar" confirmation. seq drops stale timers.
type alertDoneMsg struct{ seq int }

// eventNotifier forwards notices to the program. Sends never block; a full
// buffer drops the notice, which is logged anyway by the sink.
type eventNotifier chan tea.Msg

func (c eventNotifier) Notify(n sink.Notice) {
	select {
	case c <- NoticeMsg(n):
	default:
	}
}

// waitForEvent blocks until the next notice arrives from a sink.
func waitForEvent(ch chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}

// exportCurrent writes the active tab's CSV. Failures are reported through
// the notifier and never stop the form.
func (a *App) exportCurrent() {
	a.syncTab()
	ex, err := report.Build(report.KindCurrentTab, a.session, a.opts.Summary)
	if err != nil {
		a.logger.Warn("nothing exported", "tab", a.session.CurrentTab, "err", err)
		a.setNotice("No hay datos para exportar", true)
		return
	}
	a.exporter.ExportReport(ex)
}

// shareCurrent registers the active tab's CSV and copies its reference.
func (a *App) shareCurrent() {
	a.syncTab()
	ex, err := report.BuildShare(a.session.CurrentTab, a.session, a.opts.Summary)
	if err != nil {
		a.logger.Warn("nothing shared", "tab", a.session.CurrentTab, "err", err)
		return
	}
	blob, err := ex.Encode()
	if errors.Is(err, csvenc.ErrNothingToEncode) {
		a.setNotice("No hay datos de "+a.session.CurrentTab.DisplayName()+" para compartir", true)
		return
	}
	if err != nil {
		a.logger.Error("encoding share", "tab", a.session.CurrentTab, "err", err)
		a.setNotice(err.Error(), true)
		return
	}
	a.sharer.Share(ex.Filename, blob, nil)
}

func (a *App) startSave() tea.Cmd {
	if a.saving {
		return nil
	}
	a.saving = true
	a.logger.Debug("save started", "delay", a.opts.SaveDelay)
	return tea.Batch(
		a.spinner.Tick,
		tea.Tick(a.opts.SaveDelay, func(time.Time) tea.Msg { return SaveDoneMsg{} }),
	)
}

// continueBudget shows the success alert. It is only available once the
// company name is filled in.
func (a *App) continueBudget() tea.Cmd {
	if a.session.Project.CompanyName == "" {
		a.setNotice("Complete el nombre de la empresa para continuar", true)
		return nil
	}
	a.alertSeq++
	a.alertVisible = true
	seq := a.alertSeq
	a.logger.Info("budget confirmed", "project", a.session.Project.ProjectName)
	return tea.Tick(a.opts.AlertDuration, func(time.Time) tea.Msg { return alertDoneMsg{seq: seq} })
}

func (a *App) setNotice(text string, warn bool) {
	a.notice.Text = text
	a.notice.Warn = warn
}

func noticeFromSink(n NoticeMsg) (string, bool) {
	return n.Message, n.Level >= slog.LevelWarn
}

// Package tui provides the interactive Bubble Tea budget form.
package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/theirongolddev/presupuesto/internal/pipeline"
	"github.com/theirongolddev/presupuesto/internal/sink"
	"github.com/theirongolddev/presupuesto/internal/store"
	"github.com/theirongolddev/presupuesto/internal/tui/components"
	"github.com/theirongolddev/presupuesto/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Options wires the app to its sinks and timings.
type Options struct {
	Summary   pipeline.SummaryOptions
	ExportDir string
	// Clipboard receives share references; nil shows them in the status bar.
	Clipboard     sink.Clipboard
	Registry      *sink.Registry
	SaveDelay     time.Duration
	AlertDuration time.Duration
	Logger        *slog.Logger
}

// App is the root Bubble Tea model. It owns the session exclusively.
type App struct {
	session  *store.Session
	opts     Options
	logger   *slog.Logger
	sections map[sectionID]*section
	exporter *sink.Exporter
	sharer   *sink.Sharer
	events   chan tea.Msg

	// UI state
	width     int
	height    int
	activeTab int
	subTab    int // index into expenseSections
	cursor    [secBudgetBlocks + 1]int
	showHelp  bool

	// Open huh form, if any
	form *huh.Form
	edit *editState

	notice components.StatusNotice
	// fallback holds data that could not be delivered, shown until dismissed.
	fallback string

	saving       bool
	spinner      spinner.Model
	alertVisible bool
	alertSeq     int
}

const (
	minTerminalWidth = 80
	maxContentWidth  = 160
	minContentHeight = 5

	eventBuffer = 16
)

// NewApp creates the form over session.
func NewApp(session *store.Session, opts Options) App {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Registry == nil {
		opts.Registry = sink.NewRegistry()
	}
	// Zero is a configured value; negative selects the default.
	if opts.Summary.FixedCommission < 0 {
		opts.Summary.FixedCommission = pipeline.DefaultFixedCommission
	}
	if opts.SaveDelay < 0 {
		opts.SaveDelay = time.Second
	}
	if opts.AlertDuration < 0 {
		opts.AlertDuration = 3 * time.Second
	}

	events := make(chan tea.Msg, eventBuffer)
	notifier := eventNotifier(events)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	a := App{
		session:  session,
		opts:     opts,
		logger:   opts.Logger,
		sections: newSections(),
		exporter: &sink.Exporter{
			Files:    sink.FileExporter{Dir: opts.ExportDir},
			Notifier: notifier,
			Logger:   opts.Logger,
		},
		sharer: &sink.Sharer{
			Registry:  opts.Registry,
			Clipboard: opts.Clipboard,
			Notifier:  notifier,
			Logger:    opts.Logger,
		},
		events:  events,
		spinner: sp,
	}
	a.activeTab = tabIndex(session.CurrentTab)
	return a
}

func tabIndex(tab store.Tab) int {
	for i, t := range store.Tabs {
		if t == tab {
			return i
		}
	}
	return 0
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion,
		waitForEvent(a.events),
	)
}

// syncTab records the visible tab on the session, which export resolves against.
func (a *App) syncTab() {
	a.session.CurrentTab = store.Tabs[a.activeTab]
}

// currentSection is the editable list on screen, if the tab has one.
func (a App) currentSection() (sectionID, bool) {
	switch store.Tabs[a.activeTab] {
	case store.TabPersonnel:
		return secPersonnel, true
	case store.TabExpenses:
		return expenseSections[a.subTab], true
	case store.TabBudgetFlow:
		return secBudgetBlocks, true
	}
	return 0, false
}

// selectedID is the record under the cursor in the current section.
func (a App) selectedID() (sectionID, int, bool) {
	id, ok := a.currentSection()
	if !ok {
		return 0, 0, false
	}
	ids := a.sections[id].ids(a.session)
	c := a.cursor[id]
	if c < 0 || c >= len(ids) {
		return id, 0, false
	}
	return id, ids[c], true
}

func (a *App) clampCursor(id sectionID) {
	n := len(a.sections[id].ids(a.session))
	if a.cursor[id] >= n {
		a.cursor[id] = n - 1
	}
	if a.cursor[id] < 0 {
		a.cursor[id] = 0
	}
}

func (a *App) moveCursor(delta int) {
	id, ok := a.currentSection()
	if !ok {
		return
	}
	a.cursor[id] += delta
	a.clampCursor(id)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(a.formWidth())
		}
		return a, nil

	case NoticeMsg:
		text, warn := noticeFromSink(msg)
		a.setNotice(text, warn)
		if msg.Body != "" {
			a.fallback = msg.Message + "\n\n" + msg.Body
		}
		return a, waitForEvent(a.events)

	case SaveDoneMsg:
		a.saving = false
		a.setNotice("Guardado", false)
		return a, nil

	case alertDoneMsg:
		if msg.seq == a.alertSeq {
			a.alertVisible = false
		}
		return a, nil

	case spinner.TickMsg:
		if !a.saving {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case tea.MouseMsg:
		if a.form != nil || a.showHelp || a.fallback != "" {
			return a, nil
		}
		return a.updateMouse(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.form != nil {
			if msg.String() == "esc" {
				a.closeForm()
				return a, nil
			}
			return a.updateForm(msg)
		}
		return a.updateKey(msg)
	}

	// Cursor blinks and other internal messages belong to the open form.
	if a.form != nil {
		return a.updateForm(msg)
	}
	return a, nil
}

func (a App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		a.moveCursor(-1)
	case tea.MouseButtonWheelDown:
		a.moveCursor(1)
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionRelease && msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 && tab < len(components.Tabs) {
				a.activeTab = tab
				a.syncTab()
			}
		}
	}
	return a, nil
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if a.fallback != "" {
		a.fallback = ""
		return a, nil
	}
	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	switch key {
	case "q":
		return a, tea.Quit

	case "left", "shift+tab":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		a.syncTab()
	case "right", "tab":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		a.syncTab()
	case "n", "g", "f", "r":
		if i := components.TabIdxByKey(rune(key[0])); i >= 0 {
			a.activeTab = i
			a.syncTab()
		}
	case "[":
		if store.Tabs[a.activeTab] == store.TabExpenses {
			a.subTab = (a.subTab - 1 + len(expenseSections)) % len(expenseSections)
		}
	case "]":
		if store.Tabs[a.activeTab] == store.TabExpenses {
			a.subTab = (a.subTab + 1) % len(expenseSections)
		}

	case "j", "down":
		a.moveCursor(1)
	case "k", "up":
		a.moveCursor(-1)
	case "home":
		a.moveCursor(-1 << 20)
	case "end":
		a.moveCursor(1 << 20)

	case "a":
		if id, ok := a.currentSection(); ok {
			sec := a.sections[id]
			return a.openForm(newAddState(id, sec), "Agregar · "+sec.title)
		}
	case "e", "enter":
		if id, rowID, ok := a.selectedID(); ok {
			sec := a.sections[id]
			return a.openForm(newEditState(id, sec, a.session, rowID), fmt.Sprintf("Editar · %s #%d", sec.title, rowID))
		}
	case "d", "delete":
		if id, rowID, ok := a.selectedID(); ok {
			st := &editState{mode: formDelete, sec: id, id: rowID}
			a.edit = st
			a.form = newDeleteForm(st, fmt.Sprintf("%s #%d", a.sections[id].title, rowID)).
				WithTheme(theme.Active.Form()).
				WithWidth(a.formWidth())
			return a, a.form.Init()
		}
	case "p":
		return a.openForm(newProjectState(a.session.Project), "Datos Generales del Proyecto")

	case "x":
		a.exportCurrent()
	case "s":
		a.shareCurrent()
	case "ctrl+s":
		return a, a.startSave()
	case "c":
		return a, a.continueBudget()
	}
	return a, nil
}

func (a App) openForm(st *editState, title string) (tea.Model, tea.Cmd) {
	a.edit = st
	a.form = newFieldsForm(title, st).
		WithTheme(theme.Active.Form()).
		WithWidth(a.formWidth())
	return a, a.form.Init()
}

func (a *App) closeForm() {
	a.form = nil
	a.edit = nil
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		text, err := a.edit.apply(a.session, a.sections)
		if err != nil {
			a.logger.Warn("form not applied", "err", err)
			a.setNotice(err.Error(), true)
		} else if text != "" {
			a.setNotice(text, false)
		}
		if a.edit.mode == formAdd {
			// New rows land at the end of the list.
			a.cursor[a.edit.sec] = len(a.sections[a.edit.sec].ids(a.session)) - 1
		}
		if a.edit.mode != formProject {
			a.clampCursor(a.edit.sec)
		}
		a.closeForm()
		return a, nil
	case huh.StateAborted:
		a.closeForm()
		return a, nil
	}
	return a, cmd
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) formWidth() int {
	w := a.contentWidth() - 8
	if w > 72 {
		w = 72
	}
	if w < 30 {
		w = 30
	}
	return w
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.form != nil {
		return a.viewForm()
	}
	if a.fallback != "" {
		return a.viewFallback()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  presupuesto needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) overlay(body string) string {
	t := theme.Active
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3).
		Render(body)
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewForm() string {
	hint := lipgloss.NewStyle().Foreground(theme.Active.TextDim).Render("esc cancela")
	return a.overlay(a.form.View() + "\n" + hint)
}

func (a App) viewFallback() string {
	t := theme.Active
	body := truncateHeight(a.fallback, a.height-8)
	dim := lipgloss.NewStyle().Foreground(t.TextDim)
	return a.overlay(lipgloss.NewStyle().Foreground(t.TextPrimary).Render(body) +
		"\n\n" + dim.Render("Presione cualquier tecla para cerrar"))
}

func (a App) viewHelp() string {
	t := theme.Active

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Key).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Atajos de teclado"))
	b.WriteString("\n\n")

	groups := []struct {
		title    string
		bindings []struct{ key, desc string }
	}{
		{"Navegación", []struct{ key, desc string }{
			{"n g f r", "Ir a pestaña"},
			{"← →", "Pestaña anterior / siguiente"},
			{"[ ]", "Sección de gastos"},
			{"j k", "Mover en la lista"},
		}},
		{"Registros", []struct{ key, desc string }{
			{"a", "Agregar"},
			{"e Enter", "Editar"},
			{"d", "Eliminar"},
			{"p", "Datos del proyecto"},
		}},
		{"Acciones", []struct{ key, desc string }{
			{"x", "Exportar pestaña (CSV)"},
			{"s", "Compartir pestaña"},
			{"^s", "Guardar"},
			{"c", "Continuar"},
			{"?", "Ayuda"},
			{"q", "Salir"},
		}},
	}
	for i, g := range groups {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(sectionStyle.Render(g.title))
		b.WriteString("\n")
		for _, bind := range g.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Presione cualquier tecla para cerrar"))

	return a.overlay(b.String())
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Header: tab bar + project line
	header := components.RenderTabBar(a.activeTab, w) + "\n" + a.renderProjectLine(w)

	// 2. Status bar
	right := fmt.Sprintf("Progreso %d%%", a.completion())
	if a.saving {
		right = a.spinner.View() + " Guardando..."
	}
	statusBar := components.RenderStatusBar(w, a.notice, right)

	// 3. Content zone height
	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	// 4. Alerts, then tab content
	var parts []string
	if a.alertVisible {
		parts = append(parts, components.Alert(
			"Presupuesto guardado exitosamente. Los datos han sido procesados correctamente.", false, cw))
	}
	if a.session.Project.CompanyName == "" {
		parts = append(parts, components.Alert(
			"Por favor complete el nombre de la empresa para continuar con el presupuesto. [p]", true, cw))
	}
	switch store.Tabs[a.activeTab] {
	case store.TabPersonnel:
		parts = append(parts, a.renderPersonnelTab(cw))
	case store.TabExpenses:
		parts = append(parts, a.renderExpensesTab(cw))
	case store.TabBudgetFlow:
		parts = append(parts, a.renderBudgetFlowTab(cw))
	case store.TabSummary:
		parts = append(parts, a.renderSummaryTab(cw))
	}
	content := strings.Join(parts, "\n")

	// 5. Truncate + pad to exactly contentH lines
	content = padHeight(truncateHeight(content, contentH), contentH)

	// 6. Fill each line to full width with background
	content = fillLinesWithBackground(content, cw, t.Background)

	// 7. Center when the terminal is wider than the content
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) completion() int {
	snap := a.session.Snapshot()
	return pipeline.CompletionPercentage(snap.Project, snap.Personnel, snap.Expenses)
}

func (a App) renderProjectLine(w int) string {
	t := theme.Active
	p := a.session.Project

	base := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	accent := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)

	name := p.ProjectName
	if name == "" {
		name = "Sin nombre"
	}
	company := p.CompanyName
	if company == "" {
		company = "empresa sin definir"
	}

	left := base.Render(" ◈ ") + accent.Render(truncStr(name, w/3)) + base.Render(" · "+truncStr(company, w/4))
	bar := components.ProgressBar(float64(a.completion())/100, 20) + base.Render(" ")
	pad := w - lipgloss.Width(left) - lipgloss.Width(bar)
	if pad < 1 {
		pad = 1
	}
	return left + base.Render(strings.Repeat(" ", pad)) + bar
}

// ─── Helpers ────────────────────────────────────────────────────

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)

		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Separator is one column between tabs.
		if i < len(components.Tabs)-1 {
			pos++
		}
	}
	return -1
}

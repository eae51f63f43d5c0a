package tui

import (
	"errors"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/theirongolddev/presupuesto/internal/csvenc"
	"github.com/theirongolddev/presupuesto/internal/pipeline"
	"github.com/theirongolddev/presupuesto/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) App {
	t.Helper()
	a := NewApp(store.NewSeededSession(), Options{ExportDir: t.TempDir()})
	a.width, a.height = 120, 40
	return a
}

func press(t *testing.T, a App, keys ...string) App {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "ctrl+s":
			msg = tea.KeyMsg{Type: tea.KeyCtrlS}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m, _ := a.Update(msg)
		a = m.(App)
	}
	return a
}

func nextEvent(t *testing.T, a App) NoticeMsg {
	t.Helper()
	select {
	case msg := <-a.events:
		n, ok := msg.(NoticeMsg)
		require.True(t, ok, "unexpected event %T", msg)
		return n
	case <-time.After(2 * time.Second):
		t.Fatal("no notice delivered")
	}
	return NoticeMsg{}
}

func TestNewAppOpensOnSessionTab(t *testing.T) {
	s := store.NewSeededSession()
	s.CurrentTab = store.TabBudgetFlow
	a := NewApp(s, Options{SaveDelay: -1, AlertDuration: -1,
		Summary: pipeline.SummaryOptions{FixedCommission: -1}})
	assert.Equal(t, 2, a.activeTab)
	assert.Equal(t, time.Second, a.opts.SaveDelay)
	assert.Equal(t, 3*time.Second, a.opts.AlertDuration)
	assert.InDelta(t, 9000, a.opts.Summary.FixedCommission, 0)
}

func TestNewAppKeepsZeroSettings(t *testing.T) {
	a := NewApp(store.NewSeededSession(), Options{})
	assert.Equal(t, time.Duration(0), a.opts.SaveDelay)
	assert.Equal(t, time.Duration(0), a.opts.AlertDuration)
	assert.InDelta(t, 0, a.opts.Summary.FixedCommission, 0)
}

func TestTabKeysUpdateCurrentTab(t *testing.T) {
	a := newTestApp(t)

	a = press(t, a, "g")
	assert.Equal(t, store.TabExpenses, a.session.CurrentTab)

	a = press(t, a, "]", "]")
	id, ok := a.currentSection()
	require.True(t, ok)
	assert.Equal(t, secPerDiems, id)

	a = press(t, a, "r")
	assert.Equal(t, store.TabSummary, a.session.CurrentTab)
	_, ok = a.currentSection()
	assert.False(t, ok)
}

func TestCursorStaysInsideList(t *testing.T) {
	a := newTestApp(t)
	a = press(t, a, "j", "j", "j", "j", "j")
	assert.Equal(t, 2, a.cursor[secPersonnel])
	a = press(t, a, "k", "k", "k", "k")
	assert.Equal(t, 0, a.cursor[secPersonnel])
}

func TestAddFormOpensAndEscCloses(t *testing.T) {
	a := newTestApp(t)
	a = press(t, a, "g", "]", "a")
	require.NotNil(t, a.form)
	assert.Equal(t, formAdd, a.edit.mode)
	assert.Equal(t, secFlights, a.edit.sec)
	assert.Contains(t, a.View(), "Origen")

	a = press(t, a, "esc")
	assert.Nil(t, a.form)
	assert.Nil(t, a.edit)
	assert.Equal(t, 1, a.session.Flights.Len())
}

func TestApplyAddEditDelete(t *testing.T) {
	a := newTestApp(t)
	s := a.session

	st := newAddState(secPersonnel, a.sections[secPersonnel])
	copy(st.values, []string{"Arquitecto", "40000", "", "10"})
	text, err := st.apply(s, a.sections)
	require.NoError(t, err)
	assert.Equal(t, "Nómina: registro #4 agregado", text)
	p, ok := s.Personnel.Get(4)
	require.True(t, ok)
	assert.InDelta(t, 40000, p.Salary, 0)
	assert.InDelta(t, 10, p.Commission, 0)

	st = newEditState(secPersonnel, a.sections[secPersonnel], s, 4)
	st.values[2] = "8"
	text, err = st.apply(s, a.sections)
	require.NoError(t, err)
	assert.Equal(t, "Nómina: registro #4 actualizado", text)
	p, _ = s.Personnel.Get(4)
	assert.InDelta(t, 8, p.Weeks, 0)

	st = newEditState(secPersonnel, a.sections[secPersonnel], s, 4)
	text, err = st.apply(s, a.sections)
	require.NoError(t, err)
	assert.Equal(t, "Sin cambios", text)

	st = &editState{mode: formDelete, sec: secPersonnel, id: 4}
	text, err = st.apply(s, a.sections)
	require.NoError(t, err)
	assert.Empty(t, text, "unconfirmed delete does nothing")
	assert.Equal(t, 4, s.Personnel.Len())

	st.confirm = true
	text, err = st.apply(s, a.sections)
	require.NoError(t, err)
	assert.Equal(t, "Nómina: registro #4 eliminado", text)
	assert.Equal(t, 3, s.Personnel.Len())
}

func TestApplyAddRejectsMissingRequiredField(t *testing.T) {
	a := newTestApp(t)
	st := newAddState(secFlights, a.sections[secFlights])
	copy(st.values, []string{"Consultor", "Ciudad A", "", "2", "5000"})

	_, err := st.apply(a.session, a.sections)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "destination")
	assert.Equal(t, 1, a.session.Flights.Len())
}

func TestApplyEditRecomputesDerivedTotal(t *testing.T) {
	a := newTestApp(t)
	st := newEditState(secExpenses, a.sections[secExpenses], a.session, 1)
	st.values[4] = "" // quantity emptied counts as zero
	_, err := st.apply(a.session, a.sections)
	require.NoError(t, err)

	e, ok := a.session.Expenses.Get(1)
	require.True(t, ok)
	assert.InDelta(t, 0, e.Quantity, 0)
	assert.InDelta(t, 0, e.Total, 0)
}

func TestApplyProjectForm(t *testing.T) {
	a := newTestApp(t)
	st := newProjectState(a.session.Project)
	st.values[0] = "ACME"
	text, err := st.apply(a.session, a.sections)
	require.NoError(t, err)
	assert.Equal(t, "Datos del proyecto actualizados", text)
	assert.Equal(t, "ACME", a.session.Project.CompanyName)
	assert.Equal(t, "Juan Pérez", a.session.Project.Manager)
}

func TestValidateField(t *testing.T) {
	assert.NoError(t, validateField(field{kind: fieldNumber})(""))
	assert.NoError(t, validateField(field{kind: fieldNumber})("12.5"))
	assert.Error(t, validateField(field{kind: fieldNumber})("doce"))
	assert.NoError(t, validateField(field{kind: fieldDate})("2025-06-01"))
	assert.Error(t, validateField(field{kind: fieldDate})("01/06/2025"))
	assert.NoError(t, validateField(field{kind: fieldText})("lo que sea"))
}

func TestContinueNeedsCompanyName(t *testing.T) {
	a := newTestApp(t)
	assert.Contains(t, a.View(), "Por favor complete el nombre de la empresa")

	a = press(t, a, "c")
	assert.False(t, a.alertVisible)
	assert.True(t, a.notice.Warn)

	a.session.Project.CompanyName = "ACME"
	a = press(t, a, "c")
	require.True(t, a.alertVisible)
	assert.Contains(t, a.View(), "Presupuesto guardado exitosamente")

	stale := alertDoneMsg{seq: a.alertSeq - 1}
	m, _ := a.Update(stale)
	a = m.(App)
	assert.True(t, a.alertVisible)

	m, _ = a.Update(alertDoneMsg{seq: a.alertSeq})
	a = m.(App)
	assert.False(t, a.alertVisible)
}

func TestSaveShowsProgressUntilDone(t *testing.T) {
	a := newTestApp(t)
	a = press(t, a, "ctrl+s")
	require.True(t, a.saving)
	assert.Contains(t, a.View(), "Guardando...")
	assert.Nil(t, a.startSave(), "a second save while saving is ignored")

	m, _ := a.Update(SaveDoneMsg{})
	a = m.(App)
	assert.False(t, a.saving)
	assert.Equal(t, "Guardado", a.notice.Text)
}

func TestExportWritesCurrentTab(t *testing.T) {
	a := newTestApp(t)
	a = press(t, a, "x")

	n := nextEvent(t, a)
	require.True(t, strings.HasPrefix(n.Message, "Exportado: "), n.Message)
	path := strings.TrimPrefix(n.Message, "Exportado: ")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Consultor Sr")

	m, _ := a.Update(n)
	a = m.(App)
	assert.Equal(t, n.Message, a.notice.Text)
	assert.False(t, a.notice.Warn)
}

type failingWriter struct{}

func (failingWriter) Export(string, csvenc.Blob) (string, error) {
	return "", errors.New("disk full")
}

func TestExportFailureShowsData(t *testing.T) {
	a := newTestApp(t)
	a.exporter.Files = failingWriter{}
	a.exportCurrent()

	n := nextEvent(t, a)
	assert.NotEmpty(t, n.Body)
	m, _ := a.Update(n)
	a = m.(App)
	require.NotEmpty(t, a.fallback)
	assert.True(t, a.notice.Warn)
	assert.Contains(t, a.View(), "Consultor Sr")

	a = press(t, a, "q")
	assert.Empty(t, a.fallback, "first key only dismisses the data view")
}

func TestExportEmptyTabWarns(t *testing.T) {
	a := NewApp(store.NewSession(), Options{ExportDir: t.TempDir()})
	a.exportCurrent()
	n := nextEvent(t, a)
	assert.Equal(t, "No hay datos para exportar", n.Message)
}

type recordingClipboard struct {
	mu   sync.Mutex
	text string
}

func (c *recordingClipboard) WriteAll(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.text = text
	return nil
}

func TestShareCopiesReference(t *testing.T) {
	clip := &recordingClipboard{}
	a := NewApp(store.NewSeededSession(), Options{Clipboard: clip})
	a.shareCurrent()

	n := nextEvent(t, a)
	assert.Equal(t, "🔗 Link de archivo CSV copiado al portapapeles", n.Message)
	assert.Equal(t, 1, a.opts.Registry.Len())

	clip.mu.Lock()
	defer clip.mu.Unlock()
	_, ok := a.opts.Registry.Resolve(clip.text)
	assert.True(t, ok)
}

func TestShareWithoutClipboardShowsReference(t *testing.T) {
	a := NewApp(store.NewSeededSession(), Options{})
	a.shareCurrent()
	n := nextEvent(t, a)
	assert.True(t, strings.HasPrefix(n.Message, "🔗 Link generado: "), n.Message)
}

func TestMouseClickSelectsTab(t *testing.T) {
	a := newTestApp(t)
	x := tabWidthForTest(0) + 1 + tabWidthForTest(1) + 2
	m, _ := a.Update(tea.MouseMsg{X: x, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	a = m.(App)
	assert.Equal(t, store.TabBudgetFlow, a.session.CurrentTab)
}

func TestViewRendersEveryTab(t *testing.T) {
	a := newTestApp(t)
	a.session.Project.CompanyName = "ACME"
	want := map[string]string{
		"n": "Consultor Sr",
		"g": "Transporte",
		"f": "Capacitación y Soporte",
		"r": "Desglose de Costos",
	}
	for k, text := range want {
		a = press(t, a, k)
		assert.Contains(t, a.View(), text, "tab %s", k)
	}

	a.width = 60
	assert.Contains(t, a.View(), "Terminal too narrow")
}

package draft

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/presupuesto/internal/model"
	"github.com/theirongolddev/presupuesto/internal/store"
)

func TestLoad(t *testing.T) {
	s, warnings, err := Load(filepath.Join("testdata", "budget.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "ACME Servicios", s.Project.CompanyName)
	assert.Equal(t, 16.0, s.Project.Duration)
	assert.Equal(t, store.TabExpenses, s.CurrentTab)

	assert.Equal(t, 2, s.Personnel.Len())
	assert.Equal(t, 1, s.Expenses.Len())
	assert.Equal(t, 1, s.Flights.Len())
	assert.Equal(t, 1, s.PerDiems.Len())
	assert.Equal(t, 1, s.Insurance.Len())
	assert.Equal(t, 1, s.BudgetBlocks.Len())

	require.Len(t, warnings, 3)
	sections := []string{warnings[0].Section, warnings[1].Section, warnings[2].Section}
	assert.Equal(t, []string{"personnel", "expenses", "budget_blocks"}, sections)
	assert.Equal(t, 2, warnings[0].Index)

	var verr *model.ValidationError
	require.True(t, errors.As(warnings[2], &verr))
	assert.Equal(t, "startDate", verr.Field)
}

func TestDecodeDerivesTotals(t *testing.T) {
	s, _, err := Decode(strings.NewReader(`
expenses:
  - type: Hospedaje
    detail: Hotel
    unit_cost: 8000
    quantity: 20
flights:
  - role: Consultor Jr
    origin: A
    destination: B
    frequency: 3
    authorized_amount: 1000
`))
	require.NoError(t, err)

	e, ok := s.Expenses.Get(1)
	require.True(t, ok)
	assert.Equal(t, 160000.0, e.Total)

	f, ok := s.Flights.Get(1)
	require.True(t, ok)
	assert.Equal(t, 3000.0, f.TotalAmount)
	assert.Equal(t, store.TabPersonnel, s.CurrentTab)
}

func TestDecodeEmpty(t *testing.T) {
	s, warnings, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Zero(t, s.Personnel.Len())
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	_, _, err := Decode(strings.NewReader("personal:\n  - role: x\n"))
	assert.Error(t, err)
}

func TestDecodeRejectsUnknownTab(t *testing.T) {
	_, _, err := Decode(strings.NewReader("current_tab: gantt\n"))
	assert.ErrorContains(t, err, "gantt")
}

func TestLoadMissingFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

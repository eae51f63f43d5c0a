package report

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/presupuesto/internal/csvenc"
	"github.com/theirongolddev/presupuesto/internal/model"
	"github.com/theirongolddev/presupuesto/internal/pipeline"
	"github.com/theirongolddev/presupuesto/internal/store"
)

var opts = pipeline.SummaryOptions{FixedCommission: pipeline.DefaultFixedCommission}

func golden(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Implementación Módulo Finanzas": "implementación-módulo-finanzas",
		"  ERP \t Fase   2 ":             "-erp-fase-2-",
		"":                               "",
		"Año\u00a0Fiscal":                "año-fiscal",
	}
	for in, want := range tests {
		assert.Equal(t, want, Slugify(in), "Slugify(%q)", in)
	}
	assert.Equal(t, "resumen-implementación-módulo-finanzas.csv", SummaryFilename("Implementación Módulo Finanzas"))
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind(" Per-Diems ")
	require.NoError(t, err)
	assert.Equal(t, KindPerDiems, k)

	k, err = ParseKind("current-tab")
	require.NoError(t, err)
	assert.Equal(t, KindCurrentTab, k)

	_, err = ParseKind("payroll")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestBuildFilenames(t *testing.T) {
	s := store.NewSeededSession()
	want := map[Kind]string{
		KindPersonnel:  "nomina-proyecto.csv",
		KindExpenses:   "gastos-proyecto.csv",
		KindFlights:    "vuelos-proyecto.csv",
		KindPerDiems:   "per-diems-proyecto.csv",
		KindInsurance:  "seguros-proyecto.csv",
		KindBudgetFlow: "flujo-presupuestal.csv",
		KindSummary:    "resumen-implementación-módulo-finanzas.csv",
	}
	for kind, name := range want {
		e, err := Build(kind, s, opts)
		require.NoError(t, err, kind)
		assert.Equal(t, name, e.Filename, kind)
		assert.NotEmpty(t, e.Rows, kind)
	}
}

func TestBuildCurrentTab(t *testing.T) {
	s := store.NewSeededSession()
	s.CurrentTab = store.TabBudgetFlow

	e, err := Build(KindCurrentTab, s, opts)
	require.NoError(t, err)
	assert.Equal(t, KindBudgetFlow, e.Kind)

	s.CurrentTab = "nowhere"
	_, err = Build(KindCurrentTab, s, opts)
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestBuildUnknownKindLeavesSession(t *testing.T) {
	s := store.NewSeededSession()
	before := s.Snapshot()
	_, err := Build("gantt", s, opts)
	assert.ErrorIs(t, err, ErrUnknownKind)
	assert.Equal(t, before, s.Snapshot())
}

func TestBuildEmptyCollection(t *testing.T) {
	e, err := Build(KindPersonnel, store.NewSession(), opts)
	require.NoError(t, err)
	_, err = e.Encode()
	assert.ErrorIs(t, err, csvenc.ErrNothingToEncode)
}

func TestZeroedNegativeTotalExportsAsZero(t *testing.T) {
	s := store.NewSeededSession()
	require.NoError(t, s.Expenses.Update(1, "unitCost", -5))
	require.NoError(t, s.Expenses.Update(1, "quantity", 0))

	e, err := Build(KindExpenses, s, opts)
	require.NoError(t, err)
	blob, err := e.Encode()
	require.NoError(t, err)
	assert.Contains(t, blob.String(), "\nTransporte,Avión / Taxi / Uber,Viaje,-5,0,0\n")
}

func TestSummaryExportAlwaysHasRows(t *testing.T) {
	e, err := Build(KindSummary, store.NewSession(), opts)
	require.NoError(t, err)
	assert.Equal(t, "resumen-.csv", e.Filename)

	blob, err := e.Encode()
	require.NoError(t, err)
	assert.Equal(t, "Concepto,Monto,Porcentaje\nNómina Total,0,N/A\nGastos Total,0,N/A\nTotal Proyecto,0,100%", blob.String())
}

func TestPersonnelExportGolden(t *testing.T) {
	s := store.NewSession()
	_, err := s.Personnel.Add(model.Personnel{Role: "Consultor Sr", Salary: 55000, Weeks: 12})
	require.NoError(t, err)
	_, err = s.Personnel.Add(model.Personnel{Role: "Analista Jr, Finanzas", Salary: 30000, Weeks: 12, Commission: 10})
	require.NoError(t, err)

	e, err := Build(KindPersonnel, s, opts)
	require.NoError(t, err)
	blob, err := e.Encode()
	require.NoError(t, err)
	golden(t).Assert(t, "personnel", blob.Data)
}

func TestSeededExportsGolden(t *testing.T) {
	s := store.NewSeededSession()
	for _, kind := range []Kind{KindExpenses, KindBudgetFlow, KindSummary} {
		e, err := Build(kind, s, opts)
		require.NoError(t, err)
		blob, err := e.Encode()
		require.NoError(t, err)
		golden(t).Assert(t, "seeded-"+string(kind), blob.Data)
	}
}

func TestBuildShareSummary(t *testing.T) {
	s := store.NewSession()
	e, err := BuildShare(store.TabSummary, s, opts)
	require.NoError(t, err)
	assert.Equal(t, "resumen-proyecto.csv", e.Filename)
	require.Len(t, e.Rows, 1)

	blob, err := e.Encode()
	require.NoError(t, err)
	assert.Equal(t,
		"Nombre del Proyecto,Gerente,Duración (semanas),Total Nómina,Total Gastos,Facturación Total,Utilidad Estimada,Margen Estimado (%)\n"+
			"Sin nombre,Sin asignar,0,0,0,0,-9000,0",
		blob.String())
}

func TestBuildShareUsesTabKind(t *testing.T) {
	s := store.NewSeededSession()
	e, err := BuildShare(store.TabExpenses, s, opts)
	require.NoError(t, err)
	assert.Equal(t, "gastos-proyecto.csv", e.Filename)

	_, err = BuildShare("nowhere", s, opts)
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestBuildAll(t *testing.T) {
	all := BuildAll(store.NewSeededSession(), opts)
	require.Len(t, all, len(Kinds))
	for i, e := range all {
		assert.Equal(t, Kinds[i], e.Kind)
	}
}

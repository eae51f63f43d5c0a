package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTabIdxByKey(t *testing.T) {
	assert.Equal(t, 0, TabIdxByKey('n'))
	assert.Equal(t, 1, TabIdxByKey('g'))
	assert.Equal(t, 2, TabIdxByKey('f'))
	assert.Equal(t, 3, TabIdxByKey('r'))
	assert.Equal(t, -1, TabIdxByKey('z'))
}

func TestRenderTabBarFitsWidth(t *testing.T) {
	bar := RenderTabBar(2, 100)
	assert.Equal(t, 100, lipglossWidth(bar))
	assert.Contains(t, stripANSI(bar), "Flujo Presupuestal")

	total := len(Tabs) - 1 // separators
	for i, tab := range Tabs {
		total += TabVisualWidth(tab, i == 2)
	}
	assert.LessOrEqual(t, total, 100)
}

func TestRenderSubTabsShowsEveryName(t *testing.T) {
	out := stripANSI(RenderSubTabs([]string{"Gastos Generales", "Vuelos", "Per Diems", "Seguros"}, 1, 80))
	for _, n := range []string{"Gastos Generales", "Vuelos", "Per Diems", "Seguros"} {
		assert.Contains(t, out, n)
	}
}

func TestAsciiLabelStripsAccents(t *testing.T) {
	assert.Equal(t, "Nomina", asciiLabel("Nómina"))
	assert.Equal(t, "Bloque 1", asciiLabel("Bloque 1"))
	assert.Equal(t, "?", asciiLabel("→"))
}

func TestBarChartFallsBackToSparkline(t *testing.T) {
	bars := []Bar{{Label: "Bloque 1", Value: 10}, {Label: "Bloque 2", Value: 20}}
	assert.Equal(t, 2, lipglossWidth(stripANSI(BarChart(bars, "#ffffff", 10, 2))))
	assert.Empty(t, BarChart(nil, "#ffffff", 40, 8))

	chart := BarChart(bars, "#ffffff", 40, 8)
	assert.Greater(t, strings.Count(chart, "\n"), 3)
}

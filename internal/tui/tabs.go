package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/presupuesto/internal/cli"
	"github.com/theirongolddev/presupuesto/internal/pipeline"
	"github.com/theirongolddev/presupuesto/internal/tui/components"
	"github.com/theirongolddev/presupuesto/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// listRows is how many rows a list card shows before it scrolls.
func (a App) listRows(reserved int) int {
	return a.height - reserved
}

func (a App) renderPersonnelTab(cw int) string {
	rows := a.session.Personnel.List()
	var weeks, commission float64
	for _, p := range rows {
		weeks += p.Weeks
		commission += p.Salary * p.Weeks * p.Commission / 100
	}

	metrics := []components.Metric{
		{Label: "Equipo", Value: cli.FormatNumber(int64(len(rows))), Note: "personas"},
		{Label: "Semanas asignadas", Value: cli.FormatQuantity(weeks), Note: "total"},
		{Label: "Comisiones", Value: cli.FormatMoney(commission), Note: "incluidas"},
		{Label: "Costo de Nómina", Value: cli.FormatMoney(pipeline.PersonnelTotal(rows)), Tone: "accent"},
	}

	var b strings.Builder
	b.WriteString(components.MetricCardRow(metrics, cw))
	b.WriteString("\n")
	b.WriteString(a.renderList(secPersonnel, cw, a.listRows(18)))
	return b.String()
}

func (a App) renderExpensesTab(cw int) string {
	snap := a.session.Snapshot()

	names := make([]string, len(expenseSections))
	for i, id := range expenseSections {
		names[i] = a.sections[id].title
	}

	metrics := []components.Metric{
		{Label: "Gastos Generales", Value: cli.FormatMoney(pipeline.ExpensesTotal(snap.Expenses))},
		{Label: "Vuelos", Value: cli.FormatMoney(pipeline.FlightsTotal(snap.Flights))},
		{Label: "Per Diems", Value: cli.FormatMoney(pipeline.PerDiemTotal(snap.PerDiems))},
		{Label: "Seguros", Value: cli.FormatMoney(pipeline.InsuranceTotal(snap.Insurance))},
		{
			Label: "Total Gastos",
			Value: cli.FormatMoney(pipeline.GrandTotal(snap.Expenses, snap.Flights, snap.PerDiems, snap.Insurance)),
			Tone:  "accent",
		},
	}

	var b strings.Builder
	b.WriteString(components.RenderSubTabs(names, a.subTab, cw))
	b.WriteString("\n")
	b.WriteString(components.MetricCardRow(metrics, cw))
	b.WriteString("\n")
	b.WriteString(a.renderList(expenseSections[a.subTab], cw, a.listRows(19)))
	return b.String()
}

func (a App) renderBudgetFlowTab(cw int) string {
	t := theme.Active
	blocks := a.session.BudgetBlocks.List()
	weekly, accumulated := pipeline.BillingTotals(blocks)

	var weeks float64
	for _, bl := range blocks {
		weeks += bl.Weeks
	}

	metrics := []components.Metric{
		{Label: "Bloques", Value: cli.FormatNumber(int64(len(blocks))), Note: cli.FormatWeeks(weeks)},
		{Label: "Facturación Semanal", Value: cli.FormatMoney(weekly), Note: "suma de bloques"},
		{Label: "Facturación Acumulada", Value: cli.FormatMoney(accumulated), Tone: "accent"},
	}

	var b strings.Builder
	b.WriteString(components.MetricCardRow(metrics, cw))
	b.WriteString("\n")

	chartH := 0
	if len(blocks) > 0 && a.height >= 36 {
		chartH = 8
	}
	b.WriteString(a.renderList(secBudgetBlocks, cw, a.listRows(17+chartH)))

	if chartH > 0 {
		bars := make([]components.Bar, len(blocks))
		for i, bl := range blocks {
			label := bl.Name
			if label == "" {
				label = fmt.Sprintf("B%d", i+1)
			}
			bars[i] = components.Bar{Label: label, Value: bl.WeeklyBilling}
		}
		b.WriteString("\n")
		b.WriteString(components.ContentCard(
			"Facturación semanal por bloque",
			components.BarChart(bars, t.Chart, components.CardInnerWidth(cw), chartH),
			cw,
		))
	}
	return b.String()
}

func (a App) renderSummaryTab(cw int) string {
	t := theme.Active
	snap := a.session.Snapshot()
	sum := pipeline.Summarize(snap, a.opts.Summary)

	profitTone := "good"
	if sum.EstimatedProfit < 0 {
		profitTone = "bad"
	}
	metrics := []components.Metric{
		{Label: "Costos Totales", Value: cli.FormatMoney(sum.TotalCosts), Note: "incluye comisiones"},
		{Label: "Ingresos", Value: cli.FormatMoney(sum.TotalRevenue), Note: "facturación acumulada"},
		{Label: "Utilidad Estimada", Value: cli.FormatMoney(sum.EstimatedProfit), Tone: profitTone},
		{Label: "Margen", Value: cli.FormatPercent(sum.ProfitMargin), Tone: profitTone},
	}

	var b strings.Builder
	b.WriteString(components.MetricCardRow(metrics, cw))
	b.WriteString("\n")

	halves := components.LayoutRow(cw, 2)

	// Left: cost breakdown
	leftInner := components.CardInnerWidth(halves[0])
	labelW := 0
	amounts := make([]string, len(sum.CostBreakdown))
	amountW := 0
	for i, line := range sum.CostBreakdown {
		labelW = max(labelW, lipgloss.Width(line.Category))
		amounts[i] = cli.FormatMoney(line.Amount)
		amountW = max(amountW, lipgloss.Width(amounts[i]))
	}
	// label, bar, "100.0%" and amount, each separated by one space
	barW := leftInner - labelW - amountW - 6 - 4
	if barW < 4 {
		barW = 4
	}
	var left strings.Builder
	for i, line := range sum.CostBreakdown {
		amount := strings.Repeat(" ", amountW-lipgloss.Width(amounts[i])) + amounts[i]
		left.WriteString(components.ShareBar(line.Category, line.SharePct/100, amount, labelW, barW))
		if i < len(sum.CostBreakdown)-1 {
			left.WriteString("\n")
		}
	}

	// Right: project data
	p := snap.Project
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)
	rightInner := components.CardInnerWidth(halves[1])
	kv := []struct{ k, v string }{
		{"Empresa", cli.OrDash(p.CompanyName)},
		{"Proyecto", cli.OrDash(p.ProjectName)},
		{"Duración", cli.FormatWeeks(p.Duration)},
		{"Gerente", cli.OrDash(p.Manager)},
		{"Inicio", cli.OrDash(p.StartDate)},
		{"Fin", cli.OrDash(p.EndDate)},
	}
	var right strings.Builder
	for i, row := range kv {
		right.WriteString(labelStyle.Render(fmt.Sprintf("%-10s", row.k)))
		right.WriteString(spaceStyle.Render(" "))
		right.WriteString(valueStyle.Render(truncStr(row.v, rightInner-11)))
		if i < len(kv)-1 {
			right.WriteString("\n")
		}
	}

	b.WriteString(components.CardRow([]string{
		components.ContentCard("Desglose de Costos", left.String(), halves[0]),
		components.ContentCard("Datos Generales del Proyecto", right.String(), halves[1]),
	}))
	b.WriteString("\n")

	team := fmt.Sprintf("Equipo: %d · Facturación semanal: %s · Avance del formulario: %d%%",
		sum.TeamSize, cli.FormatMoney(sum.WeeklyBilling), sum.Completion)
	b.WriteString(lipgloss.NewStyle().Foreground(t.TextDim).Render(" " + team))
	return b.String()
}

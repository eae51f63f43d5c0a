package report

import (
	"github.com/theirongolddev/presupuesto/internal/csvenc"
	"github.com/theirongolddev/presupuesto/internal/model"
	"github.com/theirongolddev/presupuesto/internal/pipeline"
)

// PersonnelRows shapes personnel for export.
func PersonnelRows(rows []model.Personnel) []csvenc.Row {
	out := make([]csvenc.Row, 0, len(rows))
	for _, p := range rows {
		out = append(out, csvenc.Row{
			{Label: "Rol", Value: p.Role},
			{Label: "Salario Base", Value: p.Salary},
			{Label: "Semanas Asignadas", Value: p.Weeks},
			{Label: "Comisión (%)", Value: p.Commission},
			{Label: "Costo Total", Value: p.TotalCost()},
		})
	}
	return out
}

// ExpenseRows shapes general expenses for export.
func ExpenseRows(rows []model.Expense) []csvenc.Row {
	out := make([]csvenc.Row, 0, len(rows))
	for _, e := range rows {
		out = append(out, csvenc.Row{
			{Label: "Tipo", Value: e.Type},
			{Label: "Detalle", Value: e.Detail},
			{Label: "Unidad", Value: e.Unit},
			{Label: "Costo Unitario", Value: e.UnitCost},
			{Label: "Cantidad", Value: e.Quantity},
			{Label: "Total Estimado", Value: e.Total},
		})
	}
	return out
}

// FlightRows shapes flights for export.
func FlightRows(rows []model.Flight) []csvenc.Row {
	out := make([]csvenc.Row, 0, len(rows))
	for _, f := range rows {
		out = append(out, csvenc.Row{
			{Label: "Rol", Value: f.Role},
			{Label: "Origen", Value: f.Origin},
			{Label: "Destino", Value: f.Destination},
			{Label: "Frecuencia", Value: f.Frequency},
			{Label: "Monto Autorizado", Value: f.AuthorizedAmount},
			{Label: "Monto Total", Value: f.TotalAmount},
		})
	}
	return out
}

// PerDiemRows shapes per diems for export.
func PerDiemRows(rows []model.PerDiem) []csvenc.Row {
	out := make([]csvenc.Row, 0, len(rows))
	for _, p := range rows {
		out = append(out, csvenc.Row{
			{Label: "Rol", Value: p.Role},
			{Label: "Monto Semanal", Value: p.WeeklyAmount},
			{Label: "Semanas", Value: p.Weeks},
			{Label: "Costo Total", Value: p.TotalCost},
		})
	}
	return out
}

// InsuranceRows shapes insurance for export.
func InsuranceRows(rows []model.Insurance) []csvenc.Row {
	out := make([]csvenc.Row, 0, len(rows))
	for _, s := range rows {
		out = append(out, csvenc.Row{
			{Label: "Tipo", Value: s.Type},
			{Label: "Rol", Value: s.Role},
			{Label: "Monto", Value: s.Amount},
		})
	}
	return out
}

// BudgetFlowRows shapes budget blocks for export.
func BudgetFlowRows(rows []model.BudgetBlock) []csvenc.Row {
	out := make([]csvenc.Row, 0, len(rows))
	for _, b := range rows {
		out = append(out, csvenc.Row{
			{Label: "Nombre del Bloque", Value: b.Name},
			{Label: "Semanas", Value: b.Weeks},
			{Label: "Fecha Inicio", Value: b.StartDate},
			{Label: "Facturación Semanal", Value: b.WeeklyBilling},
			{Label: "Facturación Acumulada", Value: b.MonthlyAccumulated},
			{Label: "Margen Estimado (%)", Value: b.EstimatedMargin},
		})
	}
	return out
}

// SummaryRows is the three-line summary export: payroll, expenses and their sum.
// It is always non-empty.
func SummaryRows(personnel []model.Personnel, expenses []model.Expense) []csvenc.Row {
	pt := pipeline.PersonnelTotal(personnel)
	et := pipeline.ExpensesTotal(expenses)
	line := func(concept string, amount float64, pct string) csvenc.Row {
		return csvenc.Row{
			{Label: "Concepto", Value: concept},
			{Label: "Monto", Value: amount},
			{Label: "Porcentaje", Value: pct},
		}
	}
	return []csvenc.Row{
		line("Nómina Total", pt, "N/A"),
		line("Gastos Total", et, "N/A"),
		line("Total Proyecto", pt+et, "100%"),
	}
}

// ShareSummaryRow is the single-row project digest shared from the summary tab.
func ShareSummaryRow(project model.ProjectData, sum pipeline.ProjectSummary) []csvenc.Row {
	name := project.ProjectName
	if name == "" {
		name = "Sin nombre"
	}
	manager := project.Manager
	if manager == "" {
		manager = "Sin asignar"
	}
	return []csvenc.Row{{
		{Label: "Nombre del Proyecto", Value: name},
		{Label: "Gerente", Value: manager},
		{Label: "Duración (semanas)", Value: project.Duration},
		{Label: "Total Nómina", Value: sum.PersonnelTotal},
		{Label: "Total Gastos", Value: sum.ExpensesTotal},
		{Label: "Facturación Total", Value: sum.TotalRevenue},
		{Label: "Utilidad Estimada", Value: sum.EstimatedProfit},
		{Label: "Margen Estimado (%)", Value: sum.ProfitMargin},
	}}
}

package pipeline

import (
	"github.com/theirongolddev/presupuesto/internal/store"
)

// DefaultFixedCommission is the commissions line used when none is configured.
const DefaultFixedCommission = 9000

// SummaryOptions tunes the project summary.
type SummaryOptions struct {
	// FixedCommission is added to the project costs as its own line.
	FixedCommission float64
}

// CostLine is one category of the project cost breakdown.
type CostLine struct {
	Category string
	Amount   float64
	// SharePct is Amount as a percentage of the total costs, 0 when costs are 0.
	SharePct float64
}

// ProjectSummary holds project-level totals.
type ProjectSummary struct {
	PersonnelTotal  float64
	ExpensesTotal   float64
	FlightsTotal    float64
	PerDiemTotal    float64
	InsuranceTotal  float64
	CommissionTotal float64

	TotalCosts      float64
	TotalRevenue    float64
	EstimatedProfit float64
	// ProfitMargin is profit as a percentage of revenue, 0 without revenue.
	ProfitMargin float64

	WeeklyBilling float64
	TeamSize      int
	Completion    int

	CostBreakdown []CostLine
}

// Summarize computes the project summary from a session snapshot. Revenue is
// the accumulated billing of every budget block.
func Summarize(snap store.Snapshot, opts SummaryOptions) ProjectSummary {
	s := ProjectSummary{
		PersonnelTotal:  PersonnelTotal(snap.Personnel),
		ExpensesTotal:   ExpensesTotal(snap.Expenses),
		FlightsTotal:    FlightsTotal(snap.Flights),
		PerDiemTotal:    PerDiemTotal(snap.PerDiems),
		InsuranceTotal:  InsuranceTotal(snap.Insurance),
		CommissionTotal: opts.FixedCommission,
		TeamSize:        len(snap.Personnel),
		Completion:      CompletionPercentage(snap.Project, snap.Personnel, snap.Expenses),
	}
	s.WeeklyBilling, s.TotalRevenue = BillingTotals(snap.BudgetBlocks)

	s.TotalCosts = s.PersonnelTotal + s.ExpensesTotal + s.FlightsTotal +
		s.PerDiemTotal + s.InsuranceTotal + s.CommissionTotal
	s.EstimatedProfit = s.TotalRevenue - s.TotalCosts
	if s.TotalRevenue > 0 {
		s.ProfitMargin = s.EstimatedProfit / s.TotalRevenue * 100
	}

	s.CostBreakdown = []CostLine{
		{Category: "Nómina", Amount: s.PersonnelTotal},
		{Category: "Gastos Generales", Amount: s.ExpensesTotal},
		{Category: "Vuelos", Amount: s.FlightsTotal},
		{Category: "Per Diems", Amount: s.PerDiemTotal},
		{Category: "Seguros", Amount: s.InsuranceTotal},
		{Category: "Comisiones", Amount: s.CommissionTotal},
	}
	if s.TotalCosts > 0 {
		for i := range s.CostBreakdown {
			s.CostBreakdown[i].SharePct = s.CostBreakdown[i].Amount / s.TotalCosts * 100
		}
	}
	return s
}

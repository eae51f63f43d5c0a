// Package pipeline derives totals, completion and the project summary from
// record snapshots. Every function is pure and never mutates its input.
package pipeline

import (
	"math"
	"strings"
	"time"

	"github.com/theirongolddev/presupuesto/internal/model"
)

// PersonnelTotal sums salary x weeks x (1 + commission%) over every row.
func PersonnelTotal(rows []model.Personnel) float64 {
	var total float64
	for i := range rows {
		total += rows[i].TotalCost()
	}
	return total
}

// ExpensesTotal sums the stored expense totals.
func ExpensesTotal(rows []model.Expense) float64 {
	var total float64
	for _, e := range rows {
		total += e.Total
	}
	return total
}

// FlightsTotal sums the stored flight totals.
func FlightsTotal(rows []model.Flight) float64 {
	var total float64
	for _, f := range rows {
		total += f.TotalAmount
	}
	return total
}

// PerDiemTotal sums the stored per diem totals.
func PerDiemTotal(rows []model.PerDiem) float64 {
	var total float64
	for _, p := range rows {
		total += p.TotalCost
	}
	return total
}

// InsuranceTotal sums insurance amounts.
func InsuranceTotal(rows []model.Insurance) float64 {
	var total float64
	for _, s := range rows {
		total += s.Amount
	}
	return total
}

// GrandTotal is the expenses tab total: general expenses, flights, per diems
// and insurance. Personnel and commissions are not part of it.
func GrandTotal(expenses []model.Expense, flights []model.Flight, perDiems []model.PerDiem, insurance []model.Insurance) float64 {
	return ExpensesTotal(expenses) + FlightsTotal(flights) + PerDiemTotal(perDiems) + InsuranceTotal(insurance)
}

// CompletionPercentage counts four sections as filled: the project header
// (company, project and manager), personnel, expenses, and the summary which
// always counts. The result is round(100 * filled / 4).
func CompletionPercentage(project model.ProjectData, personnel []model.Personnel, expenses []model.Expense) int {
	filled := 1
	if project.HeaderComplete() {
		filled++
	}
	if len(personnel) > 0 {
		filled++
	}
	if len(expenses) > 0 {
		filled++
	}
	return int(math.Round(100 * float64(filled) / 4))
}

// BillingTotals returns the summed weekly and accumulated billing of the blocks.
func BillingTotals(blocks []model.BudgetBlock) (weekly, accumulated float64) {
	for _, b := range blocks {
		weekly += b.WeeklyBilling
		accumulated += b.MonthlyAccumulated
	}
	return weekly, accumulated
}

// BlockPeriod is one budget block placed on the calendar.
type BlockPeriod struct {
	Name      string
	Start     time.Time
	End       time.Time
	Weeks     float64
	Billing   float64
	MarginPct float64
	// Dated is false when the block's start date does not parse.
	Dated bool
}

// Schedule lays the blocks out in input order with their period ends.
func Schedule(blocks []model.BudgetBlock) []BlockPeriod {
	out := make([]BlockPeriod, 0, len(blocks))
	for _, b := range blocks {
		p := BlockPeriod{
			Name:      b.Name,
			Weeks:     b.Weeks,
			Billing:   b.MonthlyAccumulated,
			MarginPct: b.EstimatedMargin,
		}
		if start, err := time.Parse(model.DateLayout, b.StartDate); err == nil {
			p.Start = start
			p.End, p.Dated = b.PeriodEnd()
		}
		out = append(out, p)
	}
	return out
}

// FilterPersonnelByRole returns rows whose role contains the substring,
// ignoring case. An empty filter returns every row.
func FilterPersonnelByRole(rows []model.Personnel, role string) []model.Personnel {
	if role == "" {
		return rows
	}
	var out []model.Personnel
	for _, p := range rows {
		if containsIgnoreCase(p.Role, role) {
			out = append(out, p)
		}
	}
	return out
}

func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

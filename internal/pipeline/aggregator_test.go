package pipeline

import (
	"math"
	"testing"

	"github.com/theirongolddev/presupuesto/internal/model"
	"github.com/theirongolddev/presupuesto/internal/store"
)

func TestPersonnelTotal(t *testing.T) {
	rows := []model.Personnel{
		{Role: "Consultor Sr", Salary: 55000, Weeks: 12, Commission: 0},
		{Role: "Analista Jr", Salary: 30000, Weeks: 12, Commission: 10},
	}
	if got := rows[0].TotalCost(); got != 660000 {
		t.Fatalf("row 0 total = %v, want 660000", got)
	}
	if got := rows[1].TotalCost(); got != 396000 {
		t.Fatalf("row 1 total = %v, want 396000", got)
	}
	if got := PersonnelTotal(rows); got != 1056000 {
		t.Fatalf("PersonnelTotal = %v, want 1056000", got)
	}
	if got := PersonnelTotal(nil); got != 0 {
		t.Fatalf("PersonnelTotal(nil) = %v, want 0", got)
	}
}

func TestGrandTotal(t *testing.T) {
	snap := store.NewSeededSession().Snapshot()

	got := GrandTotal(snap.Expenses, snap.Flights, snap.PerDiems, snap.Insurance)
	want := 232500.0 + 10000 + 12000 + 25000
	if got != want {
		t.Fatalf("GrandTotal = %v, want %v", got, want)
	}
}

func TestCompletionPercentage(t *testing.T) {
	personnel := []model.Personnel{{Role: "Consultor Sr", Salary: 1, Weeks: 1}}
	expenses := []model.Expense{{Type: "Transporte", Detail: "Taxi", UnitCost: 1}}
	header := model.ProjectData{CompanyName: "ACME", ProjectName: "ERP", Manager: "Ana"}

	tests := []struct {
		name      string
		project   model.ProjectData
		personnel []model.Personnel
		expenses  []model.Expense
		want      int
	}{
		{"empty", model.ProjectData{}, nil, nil, 25},
		{"no company name", model.ProjectData{ProjectName: "ERP", Manager: "Ana"}, personnel, expenses, 75},
		{"header only", header, nil, nil, 50},
		{"everything", header, personnel, expenses, 100},
		{"whitespace manager still counts", model.ProjectData{CompanyName: "ACME", ProjectName: "ERP", Manager: "  "}, personnel, nil, 75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompletionPercentage(tt.project, tt.personnel, tt.expenses); got != tt.want {
				t.Fatalf("CompletionPercentage = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBillingTotals(t *testing.T) {
	snap := store.NewSeededSession().Snapshot()

	weekly, accumulated := BillingTotals(snap.BudgetBlocks)
	if weekly != 437500 {
		t.Fatalf("weekly = %v, want 437500", weekly)
	}
	if accumulated != 1750000 {
		t.Fatalf("accumulated = %v, want 1750000", accumulated)
	}
}

func TestSchedule(t *testing.T) {
	blocks := []model.BudgetBlock{
		{Name: "Fase 1", Weeks: 2, StartDate: "2025-01-01", MonthlyAccumulated: 100},
		{Name: "Fase 2", Weeks: 1, StartDate: "pronto"},
	}
	got := Schedule(blocks)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if !got[0].Dated || got[0].End.Format(model.DateLayout) != "2025-01-15" {
		t.Fatalf("block 0 end = %v (dated %v), want 2025-01-15", got[0].End, got[0].Dated)
	}
	if got[1].Dated {
		t.Fatal("block 1 should not be dated")
	}
}

func TestSummarize(t *testing.T) {
	snap := store.NewSeededSession().Snapshot()
	s := Summarize(snap, SummaryOptions{FixedCommission: DefaultFixedCommission})

	if s.PersonnelTotal != 1320000 {
		t.Fatalf("PersonnelTotal = %v, want 1320000", s.PersonnelTotal)
	}
	if s.TotalCosts != 1608500 {
		t.Fatalf("TotalCosts = %v, want 1608500", s.TotalCosts)
	}
	if s.TotalRevenue != 1750000 {
		t.Fatalf("TotalRevenue = %v, want 1750000", s.TotalRevenue)
	}
	if s.EstimatedProfit != 141500 {
		t.Fatalf("EstimatedProfit = %v, want 141500", s.EstimatedProfit)
	}
	if math.Abs(s.ProfitMargin-141500.0/1750000*100) > 1e-9 {
		t.Fatalf("ProfitMargin = %v", s.ProfitMargin)
	}
	if s.TeamSize != 3 || s.Completion != 75 {
		t.Fatalf("TeamSize/Completion = %d/%d, want 3/75", s.TeamSize, s.Completion)
	}

	if len(s.CostBreakdown) != 6 {
		t.Fatalf("breakdown lines = %d, want 6", len(s.CostBreakdown))
	}
	var share float64
	for _, l := range s.CostBreakdown {
		share += l.SharePct
	}
	if math.Abs(share-100) > 1e-9 {
		t.Fatalf("shares sum to %v, want 100", share)
	}
	if s.CostBreakdown[5].Category != "Comisiones" || s.CostBreakdown[5].Amount != 9000 {
		t.Fatalf("commission line = %+v", s.CostBreakdown[5])
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(store.NewSession().Snapshot(), SummaryOptions{})
	if s.TotalCosts != 0 || s.ProfitMargin != 0 {
		t.Fatalf("empty summary = %+v", s)
	}
	for _, l := range s.CostBreakdown {
		if l.SharePct != 0 {
			t.Fatalf("share for %s = %v, want 0", l.Category, l.SharePct)
		}
	}
}

func TestSummarizeDoesNotMutate(t *testing.T) {
	snap := store.NewSeededSession().Snapshot()
	before := snap.Expenses[0]
	_ = Summarize(snap, SummaryOptions{})
	if snap.Expenses[0] != before {
		t.Fatal("Summarize mutated its input")
	}
}

func TestFilterPersonnelByRole(t *testing.T) {
	rows := store.NewSeededSession().Snapshot().Personnel
	got := FilterPersonnelByRole(rows, "jr")
	if len(got) != 1 || got[0].Role != "Analista Jr" {
		t.Fatalf("filter jr = %+v", got)
	}
	if len(FilterPersonnelByRole(rows, "")) != 3 {
		t.Fatal("empty filter should return every row")
	}
}

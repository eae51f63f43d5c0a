package pipeline

import (
	"fmt"
	"testing"

	"github.com/theirongolddev/presupuesto/internal/model"
	"github.com/theirongolddev/presupuesto/internal/store"
)

func BenchmarkSummarize(b *testing.B) {
	s := store.NewSeededSession()
	for i := 0; i < 500; i++ {
		if _, err := s.Personnel.Add(model.Personnel{Role: fmt.Sprintf("Rol %d", i), Salary: 1000 + float64(i), Weeks: 4, Commission: 5}); err != nil {
			b.Fatal(err)
		}
		if _, err := s.Expenses.Add(model.Expense{Type: "Otro", Detail: "Material", UnitCost: 10, Quantity: float64(i)}); err != nil {
			b.Fatal(err)
		}
	}
	snap := s.Snapshot()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Summarize(snap, SummaryOptions{FixedCommission: DefaultFixedCommission})
	}
}

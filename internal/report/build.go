package report

import (
	"fmt"

	"github.com/theirongolddev/presupuesto/internal/csvenc"
	"github.com/theirongolddev/presupuesto/internal/pipeline"
	"github.com/theirongolddev/presupuesto/internal/store"
)

// Export is a shaped, named set of rows ready for encoding.
type Export struct {
	Kind     Kind
	Filename string
	Rows     []csvenc.Row
}

// Encode renders the rows as CSV. Empty exports return csvenc.ErrNothingToEncode.
func (e Export) Encode() (csvenc.Blob, error) {
	blob, err := csvenc.Encode(e.Rows)
	if err != nil {
		return csvenc.Blob{}, fmt.Errorf("%s: %w", e.Filename, err)
	}
	return blob, nil
}

// Build shapes one export from the session. KindCurrentTab resolves through
// the session's current tab.
func Build(kind Kind, s *store.Session, opts pipeline.SummaryOptions) (Export, error) {
	if kind == KindCurrentTab {
		resolved, err := KindForTab(s.CurrentTab)
		if err != nil {
			return Export{}, err
		}
		kind = resolved
	}

	snap := s.Snapshot()
	e := Export{Kind: kind}
	switch kind {
	case KindPersonnel:
		e.Filename, e.Rows = "nomina-proyecto.csv", PersonnelRows(snap.Personnel)
	case KindExpenses:
		e.Filename, e.Rows = "gastos-proyecto.csv", ExpenseRows(snap.Expenses)
	case KindFlights:
		e.Filename, e.Rows = "vuelos-proyecto.csv", FlightRows(snap.Flights)
	case KindPerDiems:
		e.Filename, e.Rows = "per-diems-proyecto.csv", PerDiemRows(snap.PerDiems)
	case KindInsurance:
		e.Filename, e.Rows = "seguros-proyecto.csv", InsuranceRows(snap.Insurance)
	case KindBudgetFlow:
		e.Filename, e.Rows = "flujo-presupuestal.csv", BudgetFlowRows(snap.BudgetBlocks)
	case KindSummary:
		e.Filename, e.Rows = SummaryFilename(snap.Project.ProjectName), SummaryRows(snap.Personnel, snap.Expenses)
	default:
		return Export{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return e, nil
}

// BuildShare shapes what the share action sends for a tab. The summary tab
// shares a one-row digest with revenue and margin instead of the export lines.
func BuildShare(tab store.Tab, s *store.Session, opts pipeline.SummaryOptions) (Export, error) {
	if tab != store.TabSummary {
		kind, err := KindForTab(tab)
		if err != nil {
			return Export{}, err
		}
		return Build(kind, s, opts)
	}
	snap := s.Snapshot()
	return Export{
		Kind:     KindSummary,
		Filename: "resumen-proyecto.csv",
		Rows:     ShareSummaryRow(snap.Project, pipeline.Summarize(snap, opts)),
	}, nil
}

// BuildAll shapes every concrete kind. Kinds with no records have empty Rows.
func BuildAll(s *store.Session, opts pipeline.SummaryOptions) []Export {
	out := make([]Export, 0, len(Kinds))
	for _, k := range Kinds {
		e, err := Build(k, s, opts)
		if err != nil {
			continue
		}
		out = append(out, e)
	}
	return out
}

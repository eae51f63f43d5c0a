// Package report shapes session data into labelled export rows.
package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/presupuesto/internal/store"
)

// ErrUnknownKind is returned for an export kind or share tab that has no shaper.
var ErrUnknownKind = errors.New("unknown export kind")

// Kind names one export.
type Kind string

const (
	KindCurrentTab Kind = "current-tab"
	KindPersonnel  Kind = "personnel"
	KindExpenses   Kind = "expenses"
	KindFlights    Kind = "flights"
	KindPerDiems   Kind = "per-diems"
	KindInsurance  Kind = "insurance"
	KindBudgetFlow Kind = "budget-flow"
	KindSummary    Kind = "summary"
)

// Kinds lists every concrete kind in workbook order.
var Kinds = []Kind{
	KindPersonnel,
	KindExpenses,
	KindFlights,
	KindPerDiems,
	KindInsurance,
	KindBudgetFlow,
	KindSummary,
}

// ParseKind maps a name to a Kind. Matching ignores case and surrounding space.
func ParseKind(name string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(name)))
	if k == KindCurrentTab {
		return k, nil
	}
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// KindForTab is the export kind behind a form section.
func KindForTab(tab store.Tab) (Kind, error) {
	switch tab {
	case store.TabPersonnel:
		return KindPersonnel, nil
	case store.TabExpenses:
		return KindExpenses, nil
	case store.TabBudgetFlow:
		return KindBudgetFlow, nil
	case store.TabSummary:
		return KindSummary, nil
	}
	return "", fmt.Errorf("%w: tab %q", ErrUnknownKind, tab)
}

// SheetName is the workbook sheet title for a kind.
func (k Kind) SheetName() string {
	switch k {
	case KindPersonnel:
		return "Nómina"
	case KindExpenses:
		return "Gastos Generales"
	case KindFlights:
		return "Vuelos"
	case KindPerDiems:
		return "Per Diems"
	case KindInsurance:
		return "Seguros"
	case KindBudgetFlow:
		return "Flujo Presupuestal"
	case KindSummary:
		return "Resumen"
	}
	return string(k)
}

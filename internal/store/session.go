package store

import (
	"fmt"

	"github.com/theirongolddev/presupuesto/internal/model"
)

// Tab identifies a top-level section of the budget form.
type Tab string

const (
	TabPersonnel  Tab = "personnel"
	TabExpenses   Tab = "expenses"
	TabBudgetFlow Tab = "budget-flow"
	TabSummary    Tab = "summary"
)

// Tabs lists the form sections in display order.
var Tabs = []Tab{TabPersonnel, TabExpenses, TabBudgetFlow, TabSummary}

// DisplayName returns the section title shown to the user.
func (t Tab) DisplayName() string {
	switch t {
	case TabPersonnel:
		return "Nómina"
	case TabExpenses:
		return "Gastos"
	case TabBudgetFlow:
		return "Flujo Presupuestal"
	case TabSummary:
		return "Resumen"
	}
	return string(t)
}

// ParseTab maps a tab name such as "budget-flow" to its Tab.
func ParseTab(name string) (Tab, error) {
	for _, t := range Tabs {
		if string(t) == name {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown tab %q", name)
}

type (
	PersonnelList   = Collection[model.Personnel, *model.Personnel]
	ExpenseList     = Collection[model.Expense, *model.Expense]
	FlightList      = Collection[model.Flight, *model.Flight]
	PerDiemList     = Collection[model.PerDiem, *model.PerDiem]
	InsuranceList   = Collection[model.Insurance, *model.Insurance]
	BudgetBlockList = Collection[model.BudgetBlock, *model.BudgetBlock]
)

// Session owns every collection of one budget form. It is not safe for
// concurrent mutation; the owner passes it explicitly to whatever needs it.
type Session struct {
	Project    model.ProjectData
	CurrentTab Tab

	Personnel    PersonnelList
	Expenses     ExpenseList
	Flights      FlightList
	PerDiems     PerDiemList
	Insurance    InsuranceList
	BudgetBlocks BudgetBlockList
}

// NewSession returns an empty session on the personnel tab.
func NewSession() *Session {
	return &Session{CurrentTab: TabPersonnel}
}

// SetProjectField updates one project header field.
func (s *Session) SetProjectField(field string, value any) error {
	return s.Project.Set(field, value)
}

// Snapshot is a read-only copy of every collection at one point in time.
type Snapshot struct {
	Project      model.ProjectData
	Personnel    []model.Personnel
	Expenses     []model.Expense
	Flights      []model.Flight
	PerDiems     []model.PerDiem
	Insurance    []model.Insurance
	BudgetBlocks []model.BudgetBlock
}

// Snapshot copies the current session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Project:      s.Project,
		Personnel:    s.Personnel.List(),
		Expenses:     s.Expenses.List(),
		Flights:      s.Flights.List(),
		PerDiems:     s.PerDiems.List(),
		Insurance:    s.Insurance.List(),
		BudgetBlocks: s.BudgetBlocks.List(),
	}
}

// NewSeededSession returns a session pre-filled with the starter budget the
// form opens with.
func NewSeededSession() *Session {
	s := NewSession()
	s.Project = model.ProjectData{
		ProjectName: "Implementación Módulo Finanzas",
		Duration:    12,
		Manager:     "Juan Pérez",
		StartDate:   "2025-06-01",
		EndDate:     "2025-06-01",
	}

	mustAdd(s.Personnel.Add(model.Personnel{Role: "Consultor Sr", Salary: 55000, Weeks: 12}))
	mustAdd(s.Personnel.Add(model.Personnel{Role: "Analista Jr", Salary: 30000, Weeks: 12}))
	mustAdd(s.Personnel.Add(model.Personnel{Role: "Gerente OP", Salary: 25000, Weeks: 12}))

	mustAdd(s.Expenses.Add(model.Expense{Type: "Transporte", Detail: "Avión / Taxi / Uber", Unit: "Viaje", UnitCost: 5000, Quantity: 12}))
	mustAdd(s.Expenses.Add(model.Expense{Type: "Hospedaje", Detail: "Hotel", Unit: "Semana", UnitCost: 8000, Quantity: 20}))
	mustAdd(s.Expenses.Add(model.Expense{Type: "Comunicación", Detail: "Teléfono e Internet", Unit: "Mes", UnitCost: 2500, Quantity: 5}))

	mustAdd(s.BudgetBlocks.Add(model.BudgetBlock{
		Name: "Implementación Módulo Finanzas", Weeks: 12, StartDate: "2025-01-01",
		WeeklyBilling: 218750, MonthlyAccumulated: 875000, EstimatedMargin: 40,
	}))
	mustAdd(s.BudgetBlocks.Add(model.BudgetBlock{
		Name: "Capacitación y Soporte", Weeks: 12, StartDate: "2025-01-08",
		WeeklyBilling: 218750, MonthlyAccumulated: 875000, EstimatedMargin: 35,
	}))

	mustAdd(s.Flights.Add(model.Flight{Role: "Consultor Jr", Origin: "Ciudad A", Destination: "Ciudad B", Frequency: 2, AuthorizedAmount: 5000}))
	mustAdd(s.PerDiems.Add(model.PerDiem{Role: "Consultor Jr", WeeklyAmount: 1500, Weeks: 8}))
	mustAdd(s.Insurance.Add(model.Insurance{Type: "Médico", Role: "Todos", Amount: 25000}))

	return s
}

func mustAdd(_ int, err error) {
	if err != nil {
		panic(fmt.Sprintf("store: invalid seed record: %v", err))
	}
}

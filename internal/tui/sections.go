package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/presupuesto/internal/cli"
	"github.com/theirongolddev/presupuesto/internal/model"
	"github.com/theirongolddev/presupuesto/internal/pipeline"
	"github.com/theirongolddev/presupuesto/internal/store"
)

// fieldKind controls form validation and how an empty input is treated.
type fieldKind int

const (
	fieldText fieldKind = iota
	fieldNumber
	fieldDate
)

type field struct {
	key         string // model Set name
	label       string
	kind        fieldKind
	placeholder string
}

// section binds one editable list to its collection in the session.
type section struct {
	title   string
	fields  []field
	headers []string
	// textCols is how many leading columns are left-aligned.
	textCols int

	ids    func(s *store.Session) []int
	cells  func(s *store.Session) [][]string
	values func(s *store.Session, id int) []string
	add    func(s *store.Session, vals []string) (int, error)
	update func(s *store.Session, id int, key, val string) error
	remove func(s *store.Session, id int) bool
	total  func(s *store.Session) float64
}

type sectionID int

const (
	secPersonnel sectionID = iota
	secExpenses
	secFlights
	secPerDiems
	secInsurance
	secBudgetBlocks
)

// expenseSections are the sub-sections of the Gastos tab, in display order.
var expenseSections = []sectionID{secExpenses, secFlights, secPerDiems, secInsurance}

// bind builds the collection half of a section for any record type.
func bind[T any, P interface {
	*T
	model.Record
}](sec *section, coll func(*store.Session) *store.Collection[T, P], id func(T) int, vals func(T) []string, cells func(T) []string, total func([]T) float64) {
	sec.ids = func(s *store.Session) []int {
		rows := coll(s).List()
		out := make([]int, len(rows))
		for i, r := range rows {
			out[i] = id(r)
		}
		return out
	}
	sec.cells = func(s *store.Session) [][]string {
		rows := coll(s).List()
		out := make([][]string, len(rows))
		for i, r := range rows {
			out[i] = cells(r)
		}
		return out
	}
	sec.values = func(s *store.Session, rid int) []string {
		r, ok := coll(s).Get(rid)
		if !ok {
			return make([]string, len(sec.fields))
		}
		return vals(r)
	}
	sec.add = func(s *store.Session, in []string) (int, error) {
		var draft T
		rec := P(&draft)
		for i, f := range sec.fields {
			v := strings.TrimSpace(in[i])
			if v == "" {
				continue
			}
			if err := rec.Set(f.key, v); err != nil {
				return 0, err
			}
		}
		return coll(s).Add(draft)
	}
	sec.update = func(s *store.Session, rid int, key, val string) error {
		return coll(s).Update(rid, key, val)
	}
	sec.remove = func(s *store.Session, rid int) bool {
		return coll(s).Delete(rid)
	}
	sec.total = func(s *store.Session) float64 {
		return total(coll(s).List())
	}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func newSections() map[sectionID]*section {
	personnel := &section{
		title: "Nómina",
		fields: []field{
			{key: "role", label: "Rol", placeholder: "Consultor Sr"},
			{key: "salary", label: "Salario base semanal", kind: fieldNumber},
			{key: "weeks", label: "Semanas asignadas", kind: fieldNumber},
			{key: "commission", label: "Comisión (%)", kind: fieldNumber},
		},
		headers:  []string{"#", "Rol", "Salario Base", "Semanas", "Comisión", "Costo Total"},
		textCols: 2,
	}
	bind(personnel, func(s *store.Session) *store.PersonnelList { return &s.Personnel },
		func(p model.Personnel) int { return p.ID },
		func(p model.Personnel) []string {
			return []string{p.Role, num(p.Salary), num(p.Weeks), num(p.Commission)}
		},
		func(p model.Personnel) []string {
			return []string{fmt.Sprint(p.ID), p.Role, cli.FormatMoney(p.Salary), cli.FormatQuantity(p.Weeks),
				cli.FormatPercent(p.Commission), cli.FormatMoney(p.TotalCost())}
		},
		pipeline.PersonnelTotal)

	expenses := &section{
		title: "Gastos Generales",
		fields: []field{
			{key: "type", label: "Tipo de gasto", placeholder: "Transporte"},
			{key: "detail", label: "Detalle", placeholder: "Avión / Taxi / Uber"},
			{key: "unit", label: "Unidad", placeholder: "Viaje"},
			{key: "unitCost", label: "Costo unitario", kind: fieldNumber},
			{key: "quantity", label: "Cantidad", kind: fieldNumber},
		},
		headers:  []string{"#", "Tipo", "Detalle", "Unidad", "Costo Unitario", "Cantidad", "Total"},
		textCols: 4,
	}
	bind(expenses, func(s *store.Session) *store.ExpenseList { return &s.Expenses },
		func(e model.Expense) int { return e.ID },
		func(e model.Expense) []string {
			return []string{e.Type, e.Detail, e.Unit, num(e.UnitCost), num(e.Quantity)}
		},
		func(e model.Expense) []string {
			return []string{fmt.Sprint(e.ID), e.Type, e.Detail, e.Unit, cli.FormatMoney(e.UnitCost),
				cli.FormatQuantity(e.Quantity), cli.FormatMoney(e.Total)}
		},
		pipeline.ExpensesTotal)

	flights := &section{
		title: "Vuelos",
		fields: []field{
			{key: "role", label: "Rol"},
			{key: "origin", label: "Origen"},
			{key: "destination", label: "Destino"},
			{key: "frequency", label: "Frecuencia", kind: fieldNumber},
			{key: "authorizedAmount", label: "Monto autorizado", kind: fieldNumber},
		},
		headers:  []string{"#", "Rol", "Origen", "Destino", "Frecuencia", "Monto Autorizado", "Total"},
		textCols: 4,
	}
	bind(flights, func(s *store.Session) *store.FlightList { return &s.Flights },
		func(f model.Flight) int { return f.ID },
		func(f model.Flight) []string {
			return []string{f.Role, f.Origin, f.Destination, num(f.Frequency), num(f.AuthorizedAmount)}
		},
		func(f model.Flight) []string {
			return []string{fmt.Sprint(f.ID), f.Role, f.Origin, f.Destination, cli.FormatQuantity(f.Frequency),
				cli.FormatMoney(f.AuthorizedAmount), cli.FormatMoney(f.TotalAmount)}
		},
		pipeline.FlightsTotal)

	perDiems := &section{
		title: "Per Diems",
		fields: []field{
			{key: "role", label: "Rol"},
			{key: "weeklyAmount", label: "Monto semanal", kind: fieldNumber},
			{key: "weeks", label: "Semanas", kind: fieldNumber},
		},
		headers:  []string{"#", "Rol", "Monto Semanal", "Semanas", "Costo Total"},
		textCols: 2,
	}
	bind(perDiems, func(s *store.Session) *store.PerDiemList { return &s.PerDiems },
		func(p model.PerDiem) int { return p.ID },
		func(p model.PerDiem) []string {
			return []string{p.Role, num(p.WeeklyAmount), num(p.Weeks)}
		},
		func(p model.PerDiem) []string {
			return []string{fmt.Sprint(p.ID), p.Role, cli.FormatMoney(p.WeeklyAmount), cli.FormatQuantity(p.Weeks),
				cli.FormatMoney(p.TotalCost)}
		},
		pipeline.PerDiemTotal)

	insurance := &section{
		title: "Seguros",
		fields: []field{
			{key: "type", label: "Tipo de seguro", placeholder: "Médico"},
			{key: "role", label: "Rol", placeholder: "Todos"},
			{key: "amount", label: "Monto", kind: fieldNumber},
		},
		headers:  []string{"#", "Tipo", "Rol", "Monto"},
		textCols: 3,
	}
	bind(insurance, func(s *store.Session) *store.InsuranceList { return &s.Insurance },
		func(i model.Insurance) int { return i.ID },
		func(i model.Insurance) []string {
			return []string{i.Type, i.Role, num(i.Amount)}
		},
		func(i model.Insurance) []string {
			return []string{fmt.Sprint(i.ID), i.Type, i.Role, cli.FormatMoney(i.Amount)}
		},
		pipeline.InsuranceTotal)

	blocks := &section{
		title: "Flujo Presupuestal",
		fields: []field{
			{key: "name", label: "Bloque"},
			{key: "weeks", label: "Semanas", kind: fieldNumber},
			{key: "startDate", label: "Fecha de inicio", kind: fieldDate, placeholder: "2025-01-01"},
			{key: "weeklyBilling", label: "Facturación semanal", kind: fieldNumber},
			{key: "monthlyAccumulated", label: "Facturación acumulada", kind: fieldNumber},
			{key: "estimatedMargin", label: "Margen estimado (%)", kind: fieldNumber},
		},
		headers:  []string{"#", "Bloque", "Semanas", "Inicio", "Fin", "Fact. Semanal", "Fact. Acumulada", "Margen"},
		textCols: 2,
	}
	bind(blocks, func(s *store.Session) *store.BudgetBlockList { return &s.BudgetBlocks },
		func(b model.BudgetBlock) int { return b.ID },
		func(b model.BudgetBlock) []string {
			return []string{b.Name, num(b.Weeks), b.StartDate, num(b.WeeklyBilling), num(b.MonthlyAccumulated), num(b.EstimatedMargin)}
		},
		func(b model.BudgetBlock) []string {
			end := "—"
			if t, ok := b.PeriodEnd(); ok {
				end = t.Format(model.DateLayout)
			}
			return []string{fmt.Sprint(b.ID), b.Name, cli.FormatQuantity(b.Weeks), cli.OrDash(b.StartDate), end,
				cli.FormatMoney(b.WeeklyBilling), cli.FormatMoney(b.MonthlyAccumulated), cli.FormatPercent(b.EstimatedMargin)}
		},
		func(rows []model.BudgetBlock) float64 {
			_, accumulated := pipeline.BillingTotals(rows)
			return accumulated
		})

	return map[sectionID]*section{
		secPersonnel:    personnel,
		secExpenses:     expenses,
		secFlights:      flights,
		secPerDiems:     perDiems,
		secInsurance:    insurance,
		secBudgetBlocks: blocks,
	}
}

// projectFields are the header fields edited by the project form.
var projectFields = []field{
	{key: "companyName", label: "Nombre de la empresa *", placeholder: "Ingrese nombre de la empresa"},
	{key: "projectName", label: "Nombre del proyecto"},
	{key: "duration", label: "Duración en semanas", kind: fieldNumber},
	{key: "manager", label: "Gerente responsable"},
	{key: "startDate", label: "Fecha estimada inicio", kind: fieldDate},
	{key: "endDate", label: "Fecha estimada fin", kind: fieldDate},
}

func projectValues(p model.ProjectData) []string {
	return []string{p.CompanyName, p.ProjectName, num(p.Duration), p.Manager, p.StartDate, p.EndDate}
}

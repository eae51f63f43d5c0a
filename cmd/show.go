package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/presupuesto/internal/cli"
	"github.com/theirongolddev/presupuesto/internal/model"
	"github.com/theirongolddev/presupuesto/internal/pipeline"

	"github.com/spf13/cobra"
)

var flagShowRole string

var showSections = []string{"project", "personnel", "expenses", "flights", "per-diems", "insurance", "budget-flow"}

var showCmd = &cobra.Command{
	Use:       "show <section>",
	Short:     "Print one budget section as a table",
	Long:      "Sections: " + strings.Join(showSections, ", "),
	Args:      cobra.ExactArgs(1),
	ValidArgs: showSections,
	RunE:      runShow,
}

func init() {
	showCmd.Flags().StringVar(&flagShowRole, "role", "", "Filter personnel by role (substring match)")
	rootCmd.AddCommand(showCmd)
}

func runShow(_ *cobra.Command, args []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}
	snap := s.Snapshot()

	var t cli.Table
	switch args[0] {
	case "project":
		t = projectTable(snap.Project)
	case "personnel":
		t = personnelTable(pipeline.FilterPersonnelByRole(snap.Personnel, flagShowRole))
	case "expenses":
		t = expensesTable(snap.Expenses)
	case "flights":
		t = flightsTable(snap.Flights)
	case "per-diems":
		t = perDiemsTable(snap.PerDiems)
	case "insurance":
		t = insuranceTable(snap.Insurance)
	case "budget-flow":
		t = budgetFlowTable(snap.BudgetBlocks)
	default:
		return fmt.Errorf("unknown section %q (want one of %s)", args[0], strings.Join(showSections, ", "))
	}

	fmt.Println()
	if len(t.Rows) == 0 {
		fmt.Printf("  %s: sin registros\n\n", t.Title)
		return nil
	}
	fmt.Print(cli.RenderTable(t))
	fmt.Println()
	return nil
}

func projectTable(p model.ProjectData) cli.Table {
	return cli.Table{
		Title: "Datos Generales",
		Rows: [][]string{
			{"Empresa", cli.OrDash(p.CompanyName)},
			{"Proyecto", cli.OrDash(p.ProjectName)},
			{"Duración", cli.FormatWeeks(p.Duration)},
			{"Gerente", cli.OrDash(p.Manager)},
			{"Inicio", cli.OrDash(p.StartDate)},
			{"Fin", cli.OrDash(p.EndDate)},
		},
	}
}

func personnelTable(rows []model.Personnel) cli.Table {
	t := cli.Table{
		Title:    "Nómina",
		Headers:  []string{"#", "Rol", "Salario Base", "Semanas", "Comisión", "Costo Total"},
		TextCols: 2,
	}
	for _, p := range rows {
		t.Rows = append(t.Rows, []string{
			fmt.Sprint(p.ID), p.Role, cli.FormatMoney(p.Salary), cli.FormatQuantity(p.Weeks),
			cli.FormatPercent(p.Commission), cli.FormatMoney(p.TotalCost()),
		})
	}
	if len(rows) > 0 {
		t.Rows = append(t.Rows, []string{"---"}, []string{"", "Total", "", "", "", cli.FormatMoney(pipeline.PersonnelTotal(rows))})
	}
	return t
}

func expensesTable(rows []model.Expense) cli.Table {
	t := cli.Table{
		Title:    "Gastos Generales",
		Headers:  []string{"#", "Tipo", "Detalle", "Unidad", "Costo Unitario", "Cantidad", "Total"},
		TextCols: 4,
	}
	for _, e := range rows {
		t.Rows = append(t.Rows, []string{
			fmt.Sprint(e.ID), e.Type, e.Detail, e.Unit, cli.FormatMoney(e.UnitCost),
			cli.FormatQuantity(e.Quantity), cli.FormatMoney(e.Total),
		})
	}
	if len(rows) > 0 {
		t.Rows = append(t.Rows, []string{"---"}, []string{"", "Total", "", "", "", "", cli.FormatMoney(pipeline.ExpensesTotal(rows))})
	}
	return t
}

func flightsTable(rows []model.Flight) cli.Table {
	t := cli.Table{
		Title:    "Vuelos",
		Headers:  []string{"#", "Rol", "Origen", "Destino", "Frecuencia", "Monto Autorizado", "Total"},
		TextCols: 4,
	}
	for _, f := range rows {
		t.Rows = append(t.Rows, []string{
			fmt.Sprint(f.ID), f.Role, f.Origin, f.Destination, cli.FormatQuantity(f.Frequency),
			cli.FormatMoney(f.AuthorizedAmount), cli.FormatMoney(f.TotalAmount),
		})
	}
	if len(rows) > 0 {
		t.Rows = append(t.Rows, []string{"---"}, []string{"", "Total", "", "", "", "", cli.FormatMoney(pipeline.FlightsTotal(rows))})
	}
	return t
}

func perDiemsTable(rows []model.PerDiem) cli.Table {
	t := cli.Table{
		Title:    "Per Diems",
		Headers:  []string{"#", "Rol", "Monto Semanal", "Semanas", "Costo Total"},
		TextCols: 2,
	}
	for _, p := range rows {
		t.Rows = append(t.Rows, []string{
			fmt.Sprint(p.ID), p.Role, cli.FormatMoney(p.WeeklyAmount), cli.FormatQuantity(p.Weeks), cli.FormatMoney(p.TotalCost),
		})
	}
	if len(rows) > 0 {
		t.Rows = append(t.Rows, []string{"---"}, []string{"", "Total", "", "", cli.FormatMoney(pipeline.PerDiemTotal(rows))})
	}
	return t
}

func insuranceTable(rows []model.Insurance) cli.Table {
	t := cli.Table{
		Title:    "Seguros",
		Headers:  []string{"#", "Tipo", "Rol", "Monto"},
		TextCols: 3,
	}
	for _, s := range rows {
		t.Rows = append(t.Rows, []string{fmt.Sprint(s.ID), s.Type, s.Role, cli.FormatMoney(s.Amount)})
	}
	if len(rows) > 0 {
		t.Rows = append(t.Rows, []string{"---"}, []string{"", "Total", "", cli.FormatMoney(pipeline.InsuranceTotal(rows))})
	}
	return t
}

func budgetFlowTable(rows []model.BudgetBlock) cli.Table {
	t := cli.Table{
		Title:    "Flujo Presupuestal",
		Headers:  []string{"#", "Bloque", "Semanas", "Inicio", "Fin", "Fact. Semanal", "Fact. Acumulada", "Margen"},
		TextCols: 2,
	}
	for i, p := range pipeline.Schedule(rows) {
		end := "—"
		if p.Dated {
			end = p.End.Format(model.DateLayout)
		}
		b := rows[i]
		t.Rows = append(t.Rows, []string{
			fmt.Sprint(b.ID), b.Name, cli.FormatQuantity(b.Weeks), cli.OrDash(b.StartDate), end,
			cli.FormatMoney(b.WeeklyBilling), cli.FormatMoney(b.MonthlyAccumulated), cli.FormatPercent(b.EstimatedMargin),
		})
	}
	if len(rows) > 0 {
		weekly, accumulated := pipeline.BillingTotals(rows)
		t.Rows = append(t.Rows, []string{"---"}, []string{"", "Total", "", "", "", cli.FormatMoney(weekly), cli.FormatMoney(accumulated), ""})
	}
	return t
}

package cmd

import (
	"fmt"

	"github.com/theirongolddev/presupuesto/internal/cli"
	"github.com/theirongolddev/presupuesto/internal/pipeline"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Project totals, profit and cost breakdown",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}

	snap := s.Snapshot()
	sum := pipeline.Summarize(snap, summaryOptions())

	fmt.Println()
	fmt.Println(cli.RenderTitle("RESUMEN  " + cli.OrDash(snap.Project.ProjectName)))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Title: "Proyecto",
		Rows: [][]string{
			{"Empresa", cli.OrDash(snap.Project.CompanyName)},
			{"Gerente", cli.OrDash(snap.Project.Manager)},
			{"Duración", cli.FormatWeeks(snap.Project.Duration)},
			{"Equipo", fmt.Sprintf("%d integrantes", sum.TeamSize)},
		},
	}))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Title: "Finanzas",
		Rows: [][]string{
			{"Facturación Total", cli.FormatMoney(sum.TotalRevenue)},
			{"Costos Totales", cli.FormatMoney(sum.TotalCosts)},
			{"Utilidad Estimada", cli.FormatMoney(sum.EstimatedProfit)},
			{"Margen Estimado", cli.FormatPercent(sum.ProfitMargin)},
			{"---"},
			{"Facturación Semanal", cli.FormatMoney(sum.WeeklyBilling)},
			{"Total Gastos (pestaña)", cli.FormatMoney(pipeline.GrandTotal(snap.Expenses, snap.Flights, snap.PerDiems, snap.Insurance))},
		},
	}))
	fmt.Println()

	rows := make([][]string, 0, len(sum.CostBreakdown))
	var maxAmount float64
	for _, l := range sum.CostBreakdown {
		rows = append(rows, []string{l.Category, cli.FormatMoney(l.Amount), cli.FormatPercent(l.SharePct)})
		maxAmount = max(maxAmount, l.Amount)
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Desglose de Costos",
		Headers: []string{"Categoría", "Monto", "% del total"},
		Rows:    rows,
	}))
	fmt.Println()
	for _, l := range sum.CostBreakdown {
		fmt.Println(cli.RenderHorizontalBar(l.Category, l.Amount, maxAmount, 30))
	}
	fmt.Println()

	fmt.Printf("  Completado %s\n", cli.RenderProgressBar(sum.Completion, 20))
	if !snap.Project.HeaderComplete() {
		fmt.Println("  " + cli.RenderWarning("Faltan datos generales del proyecto (empresa, proyecto o gerente)"))
	}
	fmt.Println()
	return nil
}

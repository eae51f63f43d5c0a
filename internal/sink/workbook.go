package sink

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/theirongolddev/presupuesto/internal/csvenc"
	"github.com/theirongolddev/presupuesto/internal/report"
)

// WriteWorkbook saves every non-empty export as one sheet of an XLSX file.
// It returns csvenc.ErrNothingToEncode when every export is empty.
func WriteWorkbook(path string, exports []report.Export) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	defaultSheet := f.GetSheetName(0)
	written := 0
	for _, ex := range exports {
		if len(ex.Rows) == 0 {
			continue
		}
		sheet := ex.Kind.SheetName()
		if written == 0 {
			if err := f.SetSheetName(defaultSheet, sheet); err != nil {
				return fmt.Errorf("naming sheet %s: %w", sheet, err)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("adding sheet %s: %w", sheet, err)
		}
		if err := writeSheet(f, sheet, ex.Rows); err != nil {
			return err
		}
		written++
	}
	if written == 0 {
		return csvenc.ErrNothingToEncode
	}

	f.SetActiveSheet(0)
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, rows []csvenc.Row) error {
	labels := rows[0].Labels()
	header := make([]any, len(labels))
	for i, l := range labels {
		header[i] = l
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("writing %s header: %w", sheet, err)
	}

	for n, row := range rows {
		values := make([]any, len(row))
		for i, field := range row {
			values[i] = field.Value
		}
		cell, err := excelize.CoordinatesToCellName(1, n+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("writing %s row %d: %w", sheet, n+1, err)
		}
	}
	return nil
}

package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Results"

// WriteXLSX сохраняет ту же таблицу, что и WriteCSV, в книгу Excel.
func WriteXLSX(path string, rows []Row) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if err := f.SetSheetName(sheet, sheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	head := make([]interface{}, len(header))
	for i, h := range header {
		head[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &head); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		excelRow := []interface{}{r.Product, r.OptimalUnits, r.ProfitPerUnit, r.TotalProfit}
		if err := f.SetSheetRow(sheetName, cell, &excelRow); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	return f.SaveAs(path)
}

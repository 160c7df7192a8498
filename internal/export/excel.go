package export

import (
	"fmt"

	"github.com/mverbeek/treestack/internal/model"
	"github.com/xuri/excelize/v2"
)

const cutListSheet = "Cut List"
const summarySheet = "Summary"

// ExportExcel writes the calculation to an .xlsx workbook with a cut list
// sheet and a material summary sheet.
func ExportExcel(path string, calc model.TreeCalculation, stock model.StockDimensions) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", cutListSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("failed to add summary sheet: %w", err)
	}

	if err := writeCutList(f, calc); err != nil {
		return err
	}
	if err := writeSummary(f, calc, stock); err != nil {
		return err
	}

	return f.SaveAs(path)
}

func writeCutList(f *excelize.File, calc model.TreeCalculation) error {
	headers := []string{"Layer", "Length (mm)", "Depth (mm)", "Height (mm)", "Cut Angle (deg)", "Note"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(cutListSheet, cell, h); err != nil {
			return err
		}
	}

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		_ = f.SetCellStyle(cutListSheet, "A1", "F1", boldStyle)
	}
	_ = f.SetColWidth(cutListSheet, "A", "F", 16)

	rows := make([]model.TreePiece, 0, len(calc.Pieces)+1)
	rows = append(rows, calc.Pieces...)
	if calc.StarPlatform != nil {
		rows = append(rows, *calc.StarPlatform)
	}

	for i, p := range rows {
		note := ""
		if calc.StarPlatform != nil && p.LayerNumber == calc.StarPlatform.LayerNumber {
			note = "topper platform"
		}
		values := []interface{}{p.LayerNumber + 1, p.Length, p.Depth, p.Height, p.CutAngle, note}
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(cutListSheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeSummary(f *excelize.File, calc model.TreeCalculation, stock model.StockDimensions) error {
	items := []struct {
		label string
		value interface{}
	}{
		{"Stock depth (mm)", stock.Depth},
		{"Stock height (mm)", stock.Height},
		{"Stock length (mm)", stock.Length},
		{"Total layers", calc.TotalLayers},
		{"Usable layers", calc.NumberOfLayers},
		{"Cut angle (deg)", calc.CutAngle},
		{"Actual height (mm)", calc.ActualHeight},
		{"Usable length (m)", calc.UsableLinearM},
		{"Topper platform (m)", calc.StarPlatformM},
		{"Total length (m)", calc.TotalLinearM},
		{"Stock pieces to buy", calc.NumberOfStockPieces},
	}

	for i, item := range items {
		labelCell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		valueCell, err := excelize.CoordinatesToCellName(2, i+1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(summarySheet, labelCell, item.label); err != nil {
			return err
		}
		if err := f.SetCellValue(summarySheet, valueCell, item.value); err != nil {
			return err
		}
	}
	_ = f.SetColWidth(summarySheet, "A", "A", 24)

	// Warnings below the summary block
	row := len(items) + 2
	for _, w := range calc.Warnings {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(summarySheet, cell, "WARNING: "+w); err != nil {
			return err
		}
		row++
	}
	return nil
}

// =============================================================================
// Disbursement Report Generator - Worksheet Assembler
// =============================================================================
//
// This module builds one formatted sheet inside an excelize document:
//
//   1. Create the named sheet.
//   2. Install the column schema: header label and display width per column.
//   3. Map each record in input order and append it as a row.
//   4. Style the sheet: bold header row, uniform thin border on every cell
//      in every column (header and data rows alike).
//
// The assembler only decides what structure and styling to request; cell
// serialization is excelize's job.
//
// =============================================================================

package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/heggies-id/disbursement-report/internal/schema"
	"github.com/heggies-id/disbursement-report/internal/types"
)

// headerRow is the 1-based sheet row the column labels are written to; data
// rows follow immediately after.
const headerRow = 1

// thinBorder is the uniform border requested for every cell.
var thinBorder = []excelize.Border{
	{Type: "left", Color: "000000", Style: 1},
	{Type: "right", Color: "000000", Style: 1},
	{Type: "top", Color: "000000", Style: 1},
	{Type: "bottom", Color: "000000", Style: 1},
}

// BuildWorksheet creates and populates one named sheet in the document.
//
// PARAMETERS:
//   - f: The target excelize document.
//   - sheetName: The name of the sheet to create.
//   - records: The tagged records, already in the order they should appear.
//   - ctx: The frozen per-sheet context; the column schema and the row
//     mapper both derive from it, which keeps them consistent.
func BuildWorksheet(f *excelize.File, sheetName string, records []types.TransactionRecord, ctx schema.ReportContext) error {
	if _, err := f.NewSheet(sheetName); err != nil {
		return fmt.Errorf("failed to create sheet %q: %w", sheetName, err)
	}

	columns := schema.BuildColumns(ctx)

	// Install headers and column widths.
	for i, column := range columns {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("failed to resolve column %d: %w", i+1, err)
		}
		if err := f.SetColWidth(sheetName, name, name, column.Width); err != nil {
			return fmt.Errorf("failed to set width of column %s: %w", name, err)
		}

		cell, err := excelize.CoordinatesToCellName(i+1, headerRow)
		if err != nil {
			return fmt.Errorf("failed to resolve header cell %d: %w", i+1, err)
		}
		if err := f.SetCellValue(sheetName, cell, column.Header); err != nil {
			return fmt.Errorf("failed to write header %q: %w", column.Header, err)
		}
	}

	// Populate data rows.
	for i, record := range records {
		row, err := MapRow(record, i, ctx)
		if err != nil {
			return err
		}

		for j, column := range columns {
			cell, err := excelize.CoordinatesToCellName(j+1, headerRow+1+i)
			if err != nil {
				return fmt.Errorf("failed to resolve cell (%d,%d): %w", j+1, headerRow+1+i, err)
			}
			if err := f.SetCellValue(sheetName, cell, row[column.Key]); err != nil {
				return fmt.Errorf("failed to write cell %s: %w", cell, err)
			}
		}
	}

	return styleWorksheet(f, sheetName, len(columns), len(records))
}

// styleWorksheet applies the presentation rules after all rows are in place:
// the header row is bold, and every cell in the populated range gets the
// uniform thin border.
func styleWorksheet(f *excelize.File, sheetName string, columnCount, recordCount int) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Border: thinBorder,
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	dataStyle, err := f.NewStyle(&excelize.Style{Border: thinBorder})
	if err != nil {
		return fmt.Errorf("failed to create data style: %w", err)
	}

	firstHeaderCell, err := excelize.CoordinatesToCellName(1, headerRow)
	if err != nil {
		return err
	}
	lastHeaderCell, err := excelize.CoordinatesToCellName(columnCount, headerRow)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetName, firstHeaderCell, lastHeaderCell, headerStyle); err != nil {
		return fmt.Errorf("failed to style header row: %w", err)
	}

	if recordCount == 0 {
		return nil
	}

	firstDataCell, err := excelize.CoordinatesToCellName(1, headerRow+1)
	if err != nil {
		return err
	}
	lastDataCell, err := excelize.CoordinatesToCellName(columnCount, headerRow+recordCount)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetName, firstDataCell, lastDataCell, dataStyle); err != nil {
		return fmt.Errorf("failed to style data rows: %w", err)
	}

	return nil
}

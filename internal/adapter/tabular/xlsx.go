package tabular

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/MuchMorePower/Inventory-Management-System/internal/usecase"
)

const sheetName = "Movements"

// ReadXLSX decodes the first sheet of a workbook into a header and
// labeled rows. Fully empty rows are skipped.
func ReadXLSX(r io.Reader) ([]string, []usecase.Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, nil, ErrMissingHeader
	}

	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("read workbook rows: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, ErrMissingHeader
	}

	header := records[0]

	var rows []usecase.Row
	for _, record := range records[1:] {
		row := recordToRow(header, record)
		if rowIsEmpty(row) {
			continue
		}
		rows = append(rows, row)
	}

	return header, rows, nil
}

// WriteXLSX encodes export rows as an XLSX workbook with a single
// sheet.
func WriteXLSX(w io.Writer, rows []usecase.ExportRow) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("drop default sheet: %w", err)
	}

	for i, col := range usecase.ExportColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("place header: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, col); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	for rowIdx, row := range rows {
		for colIdx, value := range exportCells(row) {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return fmt.Errorf("place cell: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return fmt.Errorf("write cell: %w", err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}

	return nil
}

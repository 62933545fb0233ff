package tabular

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/MuchMorePower/Inventory-Management-System/internal/usecase"
)

// utf8BOM is the byte order mark Excel prepends to UTF-8 CSV files.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadCSV decodes a CSV source into a header and labeled rows. A
// leading UTF-8 BOM is stripped, short records are padded with empty
// cells, and fully empty rows are skipped.
func ReadCSV(r io.Reader) ([]string, []usecase.Row, error) {
	br := bufio.NewReader(r)

	head, err := br.Peek(len(utf8BOM))
	if err != nil && err != io.EOF {
		return nil, nil, fmt.Errorf("read csv: %w", err)
	}
	if len(head) == len(utf8BOM) && head[0] == utf8BOM[0] && head[1] == utf8BOM[1] && head[2] == utf8BOM[2] {
		_, _ = br.Discard(len(utf8BOM))
	}

	cr := csv.NewReader(br)
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil, ErrMissingHeader
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read csv header: %w", err)
	}

	var rows []usecase.Row
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read csv row %d: %w", len(rows)+2, err)
		}

		row := recordToRow(header, record)
		if rowIsEmpty(row) {
			continue
		}
		rows = append(rows, row)
	}

	return header, rows, nil
}

// WriteCSV encodes export rows as CSV, BOM first so that Excel detects
// the encoding.
func WriteCSV(w io.Writer, rows []usecase.ExportRow) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}

	cw := csv.NewWriter(w)

	if err := cw.Write(usecase.ExportColumns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(exportCells(row)); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func recordToRow(header, record []string) usecase.Row {
	row := make(usecase.Row, len(header))
	for i, col := range header {
		if i < len(record) {
			row[col] = record[i]
		} else {
			row[col] = ""
		}
	}

	return row
}

func rowIsEmpty(row usecase.Row) bool {
	for _, v := range row {
		if v != "" {
			return false
		}
	}

	return true
}

package tabular

import (
	"io"

	"github.com/MuchMorePower/Inventory-Management-System/internal/usecase"
)

// Read decodes a source in the given format.
func Read(format Format, r io.Reader) ([]string, []usecase.Row, error) {
	if format == FormatXLSX {
		return ReadXLSX(r)
	}

	return ReadCSV(r)
}

// Write encodes export rows in the given format.
func Write(format Format, w io.Writer, rows []usecase.ExportRow) error {
	if format == FormatXLSX {
		return WriteXLSX(w, rows)
	}

	return WriteCSV(w, rows)
}

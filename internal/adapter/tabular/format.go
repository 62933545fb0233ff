// Package tabular codecs movement rows to and from external
// spreadsheet formats. It deals in cell text only; row semantics
// belong to the reconciliation use case.
package tabular

import (
	"errors"
	"strings"
)

// Format identifies a supported spreadsheet format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ErrUnknownFormat is returned for an unrecognized format name.
var ErrUnknownFormat = errors.New("format must be csv or xlsx")

// ErrMissingHeader is returned when a source has no header row.
var ErrMissingHeader = errors.New("file has no header row")

// ParseFormat parses a format name, case-insensitively. An empty name
// defaults to CSV.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "csv":
		return FormatCSV, nil
	case "xlsx":
		return FormatXLSX, nil
	}

	return "", ErrUnknownFormat
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}

	return "text/csv; charset=utf-8"
}

// Ext returns the file extension, without a dot.
func (f Format) Ext() string {
	return string(f)
}

package tabular

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MuchMorePower/Inventory-Management-System/internal/usecase"
)

func TestWriteXLSXRoundTrip(t *testing.T) {
	exported := []usecase.ExportRow{
		{
			ID:            2,
			EffectiveDate: "2024-01-02",
			ProductName:   "gadget",
			ModelNumber:   "G7",
			Unit:          "box",
			Direction:     "Outbound",
			Quantity:      3,
			UnitPrice:     decimal.NewFromInt(1),
			TotalAmount:   decimal.NewFromInt(3),
			Status:        "Undone",
			Buyer:         "acme",
			RecordedAt:    time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	if err := WriteXLSX(&buf, exported); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	header, rows, err := ReadXLSX(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}

	if len(header) != len(usecase.ExportColumns) {
		t.Fatalf("expected %d columns, got %v", len(usecase.ExportColumns), header)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}

	row := rows[0]
	for col, want := range map[string]string{
		"Item Name": "gadget",
		"Type":      "Outbound",
		"Quantity":  "3",
		"Status":    "Undone",
		"Buyer":     "acme",
	} {
		if row[col] != want {
			t.Errorf("column %q: expected %q, got %q", col, want, row[col])
		}
	}
}

func TestReadXLSXRejectsGarbage(t *testing.T) {
	if _, _, err := ReadXLSX(bytes.NewReader([]byte("not a workbook"))); err == nil {
		t.Error("expected an error for a non-xlsx source")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "", want: FormatCSV},
		{in: "csv", want: FormatCSV},
		{in: "XLSX", want: FormatXLSX},
		{in: " xlsx ", want: FormatXLSX},
		{in: "pdf", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			if err != ErrUnknownFormat {
				t.Errorf("ParseFormat(%q): expected ErrUnknownFormat, got %v", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, %v", tt.in, got, err)
		}
	}
}

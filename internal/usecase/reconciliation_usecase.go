package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"

	"github.com/MuchMorePower/Inventory-Management-System/internal/domain"
	"github.com/MuchMorePower/Inventory-Management-System/internal/infrastructure/metrics"
)

// Column labels of the tabular import/export boundary. Unknown columns
// in a source are ignored.
const (
	ColID            = "ID"
	ColEffectiveDate = "Effective Date"
	ColItemName      = "Item Name"
	ColModel         = "Model"
	ColUnit          = "Unit"
	ColType          = "Type"
	ColQuantity      = "Quantity"
	ColUnitPrice     = "Unit Price"
	ColTotalAmount   = "Total Amount"
	ColStatus        = "Status"
	ColNotes         = "Notes"
	ColBuyer         = "Buyer"
	ColSeller        = "Seller"
	ColRecordedAt    = "Recorded At"
)

// RequiredColumns must all be present in an import source schema. A
// missing column aborts the whole import before any row is processed.
var RequiredColumns = []string{
	ColItemName, ColModel, ColType, ColQuantity, ColUnitPrice, ColEffectiveDate,
}

// ExportColumns is the column order of exported rows.
var ExportColumns = []string{
	ColID, ColEffectiveDate, ColItemName, ColModel, ColUnit, ColType,
	ColQuantity, ColUnitPrice, ColTotalAmount, ColStatus, ColNotes,
	ColBuyer, ColSeller, ColRecordedAt,
}

// Row is one tabular record, a mapping from column label to cell text.
type Row map[string]string

// MaxReportedRowErrors caps the error messages surfaced for very large
// bad imports. The fail count is never capped.
const MaxReportedRowErrors = 5

// ImportReport accounts for a bulk import with partial failures.
type ImportReport struct {
	BatchID      string
	SuccessCount int
	FailCount    int
	Messages     []string
}

// Succeeded reports whether every row was imported.
func (r *ImportReport) Succeeded() bool {
	return r.FailCount == 0
}

// LimitedMessages returns at most MaxReportedRowErrors messages.
func (r *ImportReport) LimitedMessages() []string {
	if len(r.Messages) <= MaxReportedRowErrors {
		return r.Messages
	}

	return r.Messages[:MaxReportedRowErrors]
}

// ExportRow is one display row of an export. Direction and status are
// derived labels, the quantity is shown as its magnitude, and optional
// text fields are plain empty strings.
type ExportRow struct {
	ID            int64
	EffectiveDate string
	ProductName   string
	ModelNumber   string
	Unit          string
	Direction     string
	Quantity      int64
	UnitPrice     decimal.Decimal
	TotalAmount   decimal.Decimal
	Status        string
	Notes         string
	Buyer         string
	Seller        string
	RecordedAt    time.Time
}

// ReconciliationUseCase translates between the ledger and external
// tabular rows: row-by-row import with partial-failure accounting, and
// record-to-row export transformation.
type ReconciliationUseCase struct {
	recorder     *RecorderUseCase
	movementRepo MovementRepository
	metrics      *metrics.Metrics
}

// NewReconciliationUseCase creates a new ReconciliationUseCase.
func NewReconciliationUseCase(recorder *RecorderUseCase, movementRepo MovementRepository) *ReconciliationUseCase {
	return &ReconciliationUseCase{
		recorder:     recorder,
		movementRepo: movementRepo,
	}
}

// WithMetrics attaches metrics recording.
func (uc *ReconciliationUseCase) WithMetrics(m *metrics.Metrics) *ReconciliationUseCase {
	uc.metrics = m
	return uc
}

// ImportRows imports tabular rows sequentially, one store write per
// row. A malformed row is counted and skipped; rows already committed
// stay committed. A store failure aborts the import mid-way and is
// returned alongside the partial report. There is no cancellation
// once row processing has begun.
func (uc *ReconciliationUseCase) ImportRows(ctx context.Context, header []string, rows []Row) (*ImportReport, error) {
	present := make(map[string]bool, len(header))
	for _, col := range header {
		present[strings.TrimSpace(col)] = true
	}

	for _, col := range RequiredColumns {
		if !present[col] {
			return nil, fmt.Errorf("%w: %q", domain.ErrMissingColumn, col)
		}
	}

	report := &ImportReport{BatchID: ulid.Make().String()}

	for i, row := range rows {
		// The header occupies row 1 of the source file.
		rowNum := i + 2

		input, err := uc.parseRow(row)
		if err != nil {
			uc.failRow(report, rowNum, err)
			continue
		}

		direction, err := domain.ParseDirection(strings.TrimSpace(row[ColType]))
		if err != nil {
			uc.failRow(report, rowNum, fmt.Errorf("%q: %w", strings.TrimSpace(row[ColType]), err))
			continue
		}

		if direction == domain.DirectionInbound {
			_, err = uc.recorder.RecordInbound(ctx, input)
		} else {
			_, err = uc.recorder.RecordOutbound(ctx, input)
		}

		switch {
		case err == nil:
			report.SuccessCount++
			if uc.metrics != nil {
				uc.metrics.ImportRows.WithLabelValues("ok").Inc()
			}
		case isValidationError(err):
			uc.failRow(report, rowNum, err)
		default:
			// Store failure: abort the in-flight import. Prior rows
			// stay committed.
			return report, err
		}
	}

	if uc.metrics != nil {
		uc.metrics.ImportBatches.Inc()
	}

	return report, nil
}

func (uc *ReconciliationUseCase) parseRow(row Row) (RecordInput, error) {
	cell := func(col string) string { return strings.TrimSpace(row[col]) }

	quantity, err := strconv.ParseInt(cell(ColQuantity), 10, 64)
	if err != nil {
		return RecordInput{}, domain.ErrInvalidQuantity
	}

	unitPrice, err := decimal.NewFromString(cell(ColUnitPrice))
	if err != nil {
		return RecordInput{}, domain.ErrInvalidPrice
	}

	return RecordInput{
		ProductName:   cell(ColItemName),
		ModelNumber:   cell(ColModel),
		Unit:          cell(ColUnit),
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		EffectiveDate: cell(ColEffectiveDate),
		Notes:         cell(ColNotes),
		Buyer:         cell(ColBuyer),
		Seller:        cell(ColSeller),
	}, nil
}

func (uc *ReconciliationUseCase) failRow(report *ImportReport, rowNum int, err error) {
	report.FailCount++
	report.Messages = append(report.Messages, fmt.Sprintf("row %d: %v", rowNum, err))

	if uc.metrics != nil {
		uc.metrics.ImportRows.WithLabelValues("failed").Inc()
	}
}

// isValidationError distinguishes recoverable row errors from store
// failures.
func isValidationError(err error) bool {
	for _, sentinel := range []error{
		domain.ErrMissingProduct,
		domain.ErrMissingModel,
		domain.ErrInvalidQuantity,
		domain.ErrInvalidPrice,
		domain.ErrInvalidDate,
		domain.ErrUnknownDirection,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}

	return false
}

// ExportAll exports the full ledger, active and undone entries alike.
func (uc *ReconciliationUseCase) ExportAll(ctx context.Context) ([]ExportRow, error) {
	movements, err := uc.movementRepo.List(ctx, domain.Filter{IncludeUndone: true})
	if err != nil {
		return nil, err
	}

	return uc.toExportRows(movements)
}

// ExportSelected exports an arbitrary id subset via bulk lookup. Ids
// with no live entry are simply absent from the output.
func (uc *ReconciliationUseCase) ExportSelected(ctx context.Context, ids []int64) ([]ExportRow, error) {
	movements, err := uc.movementRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	return uc.toExportRows(movements)
}

func (uc *ReconciliationUseCase) toExportRows(movements []*domain.Movement) ([]ExportRow, error) {
	if len(movements) == 0 {
		return nil, domain.ErrNothingToExport
	}

	rows := make([]ExportRow, 0, len(movements))
	for _, m := range movements {
		rows = append(rows, ExportRow{
			ID:            m.ID,
			EffectiveDate: m.EffectiveDate.Format(domain.DateLayout),
			ProductName:   m.ProductName,
			ModelNumber:   m.ModelNumber,
			Unit:          m.Unit,
			Direction:     m.Direction().String(),
			Quantity:      m.Magnitude(),
			UnitPrice:     m.UnitPrice,
			TotalAmount:   m.TotalAmount,
			Status:        m.StatusLabel(),
			Notes:         m.Notes,
			Buyer:         m.Buyer,
			Seller:        m.Seller,
			RecordedAt:    m.CreatedAt,
		})
	}

	if uc.metrics != nil {
		uc.metrics.ExportedMovements.Add(float64(len(rows)))
	}

	return rows, nil
}

package handler

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MuchMorePower/Inventory-Management-System/internal/adapter/http/dto"
	"github.com/MuchMorePower/Inventory-Management-System/internal/adapter/tabular"
	"github.com/MuchMorePower/Inventory-Management-System/internal/domain"
	"github.com/MuchMorePower/Inventory-Management-System/internal/usecase"
)

// ReconciliationHandler handles bulk import and export requests. The
// format query parameter selects csv (default) or xlsx.
type ReconciliationHandler struct {
	reconciliationUC *usecase.ReconciliationUseCase
}

// NewReconciliationHandler creates a new ReconciliationHandler.
func NewReconciliationHandler(reconciliationUC *usecase.ReconciliationUseCase) *ReconciliationHandler {
	return &ReconciliationHandler{reconciliationUC: reconciliationUC}
}

// Import imports the request body as a spreadsheet of movements.
// Malformed rows are reported, not fatal; a store failure aborts the
// import and the partial report says how far it got.
func (h *ReconciliationHandler) Import(w http.ResponseWriter, r *http.Request) {
	format, err := tabular.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid format", err.Error())
		return
	}

	header, rows, err := tabular.Read(format, r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to parse file", err.Error())
		return
	}

	report, err := h.reconciliationUC.ImportRows(r.Context(), header, rows)
	if err != nil {
		if errors.Is(err, domain.ErrMissingColumn) {
			writeError(w, http.StatusBadRequest, "invalid file schema", err.Error())
			return
		}

		// Store failure mid-import: surface the partial report so the
		// caller knows which rows are already committed.
		resp := &dto.ImportReportResponse{Error: err.Error()}
		if report != nil {
			resp = dto.ImportReportFromUseCase(report)
			resp.Error = err.Error()
		}
		writeJSON(w, http.StatusInternalServerError, resp)
		return
	}

	writeJSON(w, http.StatusOK, dto.ImportReportFromUseCase(report))
}

// Export streams the ledger as a spreadsheet attachment. An ids query
// parameter narrows the export to a selection.
func (h *ReconciliationHandler) Export(w http.ResponseWriter, r *http.Request) {
	format, err := tabular.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid format", err.Error())
		return
	}

	ids, err := parseIDList(r.URL.Query().Get("ids"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid ids", err.Error())
		return
	}

	var rows []usecase.ExportRow
	if len(ids) > 0 {
		rows, err = h.reconciliationUC.ExportSelected(r.Context(), ids)
	} else {
		rows, err = h.reconciliationUC.ExportAll(r.Context())
	}
	if err != nil {
		writeError(w, mapDomainError(err), "failed to export movements", err.Error())
		return
	}

	// Encode before touching headers so a codec failure can still
	// produce an error response.
	var buf bytes.Buffer
	if err := tabular.Write(format, &buf, rows); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to encode export", err.Error())
		return
	}

	filename := fmt.Sprintf("movements_%s.%s", time.Now().Format("20060102"), format.Ext())
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(buf.Bytes())
}

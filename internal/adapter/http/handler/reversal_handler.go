package handler

import (
	"net/http"

	"github.com/MuchMorePower/Inventory-Management-System/internal/usecase"
)

// ReversalHandler handles movement lifecycle transitions.
type ReversalHandler struct {
	reversalUC *usecase.ReversalUseCase
}

// NewReversalHandler creates a new ReversalHandler.
func NewReversalHandler(reversalUC *usecase.ReversalUseCase) *ReversalHandler {
	return &ReversalHandler{reversalUC: reversalUC}
}

// Undo marks a movement as undone.
func (h *ReversalHandler) Undo(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid movement id", err.Error())
		return
	}

	if err := h.reversalUC.Undo(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to undo movement", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"id": id, "status": "Undone"})
}

// Redo restores an undone movement.
func (h *ReversalHandler) Redo(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid movement id", err.Error())
		return
	}

	if err := h.reversalUC.Redo(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to redo movement", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"id": id, "status": "Active"})
}

// Delete permanently removes a movement.
func (h *ReversalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid movement id", err.Error())
		return
	}

	if err := h.reversalUC.Delete(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete movement", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

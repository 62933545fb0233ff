package handler

import (
	"encoding/json"
	"net/http"

	"github.com/MuchMorePower/Inventory-Management-System/internal/adapter/http/dto"
	"github.com/MuchMorePower/Inventory-Management-System/internal/domain"
	"github.com/MuchMorePower/Inventory-Management-System/internal/usecase"
)

// MovementHandler handles movement recording and query requests.
type MovementHandler struct {
	recorderUC *usecase.RecorderUseCase
	queryUC    *usecase.QueryUseCase
}

// NewMovementHandler creates a new MovementHandler.
func NewMovementHandler(recorderUC *usecase.RecorderUseCase, queryUC *usecase.QueryUseCase) *MovementHandler {
	return &MovementHandler{
		recorderUC: recorderUC,
		queryUC:    queryUC,
	}
}

// Record records a new movement.
func (h *MovementHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordMovementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	direction, err := domain.ParseDirection(req.Type)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid movement type", err.Error())
		return
	}

	var movement *domain.Movement
	if direction == domain.DirectionInbound {
		movement, err = h.recorderUC.RecordInbound(r.Context(), req.ToUseCaseInput())
	} else {
		movement, err = h.recorderUC.RecordOutbound(r.Context(), req.ToUseCaseInput())
	}
	if err != nil {
		writeError(w, mapDomainError(err), "failed to record movement", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.MovementFromDomain(movement))
}

// List lists movements matching the filter query parameters.
func (h *MovementHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid filter", err.Error())
		return
	}

	movements, err := h.queryUC.List(r.Context(), filter)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list movements", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.MovementsFromDomain(movements))
}

// Get retrieves a movement by id.
func (h *MovementHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid movement id", err.Error())
		return
	}

	movement, err := h.queryUC.Get(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get movement", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.MovementFromDomain(movement))
}

// filterFromQuery builds a composite filter from query parameters.
// Absent parameters leave their predicate inactive.
func filterFromQuery(r *http.Request) (domain.Filter, error) {
	q := r.URL.Query()

	filter := domain.Filter{
		Product:       q.Get("product"),
		Model:         q.Get("model"),
		Buyer:         q.Get("buyer"),
		Seller:        q.Get("seller"),
		IncludeUndone: q.Get("include_undone") == "true",
	}

	if raw := q.Get("type"); raw != "" {
		direction, err := domain.ParseDirection(raw)
		if err != nil {
			return domain.Filter{}, err
		}
		filter.Direction = direction
	}

	if raw := q.Get("from"); raw != "" {
		from, err := domain.ParseEffectiveDate(raw)
		if err != nil {
			return domain.Filter{}, err
		}
		filter.From = &from
	}

	if raw := q.Get("to"); raw != "" {
		to, err := domain.ParseEffectiveDate(raw)
		if err != nil {
			return domain.Filter{}, err
		}
		filter.To = &to
	}

	return filter, nil
}

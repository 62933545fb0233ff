package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/MuchMorePower/Inventory-Management-System/internal/domain"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		expect int
	}{
		{name: "not found", err: domain.ErrMovementNotFound, expect: http.StatusNotFound},
		{name: "nothing to export", err: domain.ErrNothingToExport, expect: http.StatusNotFound},
		{name: "already undone", err: domain.ErrAlreadyUndone, expect: http.StatusConflict},
		{name: "not undone", err: domain.ErrNotUndone, expect: http.StatusConflict},
		{name: "missing product", err: domain.ErrMissingProduct, expect: http.StatusBadRequest},
		{name: "invalid quantity", err: domain.ErrInvalidQuantity, expect: http.StatusBadRequest},
		{name: "invalid date", err: domain.ErrInvalidDate, expect: http.StatusBadRequest},
		{name: "unknown direction", err: domain.ErrUnknownDirection, expect: http.StatusBadRequest},
		{name: "wrapped sentinel", err: errors.Join(errors.New("context"), domain.ErrInvalidPrice), expect: http.StatusBadRequest},
		{name: "unknown error", err: errors.New("boom"), expect: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapDomainError(tt.err); got != tt.expect {
				t.Errorf("expected %d, got %d", tt.expect, got)
			}
		})
	}
}

func TestParseIDList(t *testing.T) {
	ids, err := parseIDList("1,4,7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 3 || ids[0] != 1 || ids[1] != 4 || ids[2] != 7 {
		t.Errorf("unexpected ids: %v", ids)
	}

	ids, err = parseIDList("")
	if err != nil || ids != nil {
		t.Errorf("empty input must yield nothing, got %v, %v", ids, err)
	}

	if _, err := parseIDList("1,x"); err == nil {
		t.Error("expected an error for a non-numeric id")
	}

	if _, err := parseIDList("1,,3"); err == nil {
		t.Error("expected an error for an empty element")
	}
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction selects movements by the sign of their quantity.
type Direction int

const (
	// DirectionAll imposes no constraint.
	DirectionAll Direction = iota
	// DirectionInbound matches quantity > 0.
	DirectionInbound
	// DirectionOutbound matches quantity < 0.
	DirectionOutbound
)

// Direction labels as they appear in import/export rows.
const (
	LabelInbound  = "Inbound"
	LabelOutbound = "Outbound"
)

// String returns the human-readable direction label.
func (d Direction) String() string {
	switch d {
	case DirectionInbound:
		return LabelInbound
	case DirectionOutbound:
		return LabelOutbound
	default:
		return "All"
	}
}

// ParseDirection maps an import/export type label to a direction.
func ParseDirection(label string) (Direction, error) {
	switch label {
	case LabelInbound:
		return DirectionInbound, nil
	case LabelOutbound:
		return DirectionOutbound, nil
	default:
		return DirectionAll, ErrUnknownDirection
	}
}

// Filter is a set of independent, optional predicates over the ledger.
// Every present predicate is AND-combined; zero values impose no
// constraint. The degenerate filter lists all active movements.
type Filter struct {
	Product       string
	Model         string
	Buyer         string
	Seller        string
	Direction     Direction
	From          *time.Time // inclusive effective-date lower bound
	To            *time.Time // inclusive effective-date upper bound
	IncludeUndone bool
}

// StockSummary is a computed current-stock row keyed by
// (product, model, unit). It is never persisted.
type StockSummary struct {
	ProductName  string
	ModelNumber  string
	Unit         string
	CurrentStock int64
}

// SelectionTotal aggregates the total amount over a caller-selected
// set of movements. Missing or undone ids are skipped, not counted.
type SelectionTotal struct {
	TotalAmount    decimal.Decimal
	CountedEntries int
}

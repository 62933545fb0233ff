package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/MuchMorePower/Inventory-Management-System/internal/domain"
	"github.com/MuchMorePower/Inventory-Management-System/internal/infrastructure/metrics"
)

const movementColumns = `id, created_at, effective_date, product_name, model_number, unit,
	quantity, unit_price, total_amount, is_undone, notes, buyer, seller`

// MovementRepository implements usecase.MovementRepository. Every
// method is a single atomic statement against the store.
type MovementRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
	metrics *metrics.Metrics
}

// NewMovementRepository creates a new MovementRepository.
func NewMovementRepository(pool *pgxpool.Pool) *MovementRepository {
	return &MovementRepository{pool: pool}
}

// WithRetrier attaches a retrier for transient write failures.
func (r *MovementRepository) WithRetrier(retrier *Retrier) *MovementRepository {
	r.retrier = retrier
	return r
}

// WithMetrics attaches database error accounting.
func (r *MovementRepository) WithMetrics(m *metrics.Metrics) *MovementRepository {
	r.metrics = m
	return r
}

// observeError counts store failures per operation. Domain sentinels
// are outcomes, not failures.
func (r *MovementRepository) observeError(operation string, err error) error {
	if err == nil || r.metrics == nil {
		return err
	}
	if errors.Is(err, domain.ErrMovementNotFound) ||
		errors.Is(err, domain.ErrAlreadyUndone) ||
		errors.Is(err, domain.ErrNotUndone) {
		return err
	}

	r.metrics.DBErrors.WithLabelValues(operation).Inc()
	return err
}

// Insert persists a movement and returns the store-assigned id.
func (r *MovementRepository) Insert(ctx context.Context, movement *domain.Movement) (int64, error) {
	const query = `
		INSERT INTO movements (created_at, effective_date, product_name, model_number, unit,
			quantity, unit_price, total_amount, is_undone, notes, buyer, seller)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`

	var id int64
	err := r.write(ctx, func() error {
		return r.pool.QueryRow(ctx, query,
			timeToPgTimestamptz(movement.CreatedAt),
			timeToPgDate(movement.EffectiveDate),
			movement.ProductName,
			movement.ModelNumber,
			movement.Unit,
			movement.Quantity,
			decimalToNumeric(movement.UnitPrice),
			decimalToNumeric(movement.TotalAmount),
			movement.IsUndone,
			movement.Notes,
			movement.Buyer,
			movement.Seller,
		).Scan(&id)
	})
	if err != nil {
		return 0, r.observeError("insert", err)
	}

	return id, nil
}

// GetByID retrieves a movement by id.
func (r *MovementRepository) GetByID(ctx context.Context, id int64) (*domain.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE id = $1`

	movement, err := scanMovement(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMovementNotFound
		}

		return nil, r.observeError("get", err)
	}

	return movement, nil
}

// GetByIDs retrieves movements by id set; missing ids are simply
// absent from the result.
func (r *MovementRepository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Movement, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT ` + movementColumns + ` FROM movements WHERE id = ANY($1) ORDER BY id DESC`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, r.observeError("get_many", err)
	}
	defer rows.Close()

	movements, err := scanMovements(rows)
	return movements, r.observeError("get_many", err)
}

// List retrieves movements matching the filter, ordered by id
// descending. The WHERE clause is assembled from the present
// predicates only; values are always bound parameters.
func (r *MovementRepository) List(ctx context.Context, filter domain.Filter) ([]*domain.Movement, error) {
	var (
		conds []string
		args  []any
	)

	bind := func(format string, value any) {
		args = append(args, value)
		conds = append(conds, fmt.Sprintf(format, len(args)))
	}

	if !filter.IncludeUndone {
		conds = append(conds, "is_undone = FALSE")
	}
	if filter.Product != "" {
		bind("product_name ILIKE $%d", "%"+filter.Product+"%")
	}
	if filter.Model != "" {
		bind("model_number ILIKE $%d", "%"+filter.Model+"%")
	}
	if filter.Buyer != "" {
		bind("buyer ILIKE $%d", "%"+filter.Buyer+"%")
	}
	if filter.Seller != "" {
		bind("seller ILIKE $%d", "%"+filter.Seller+"%")
	}
	switch filter.Direction {
	case domain.DirectionInbound:
		conds = append(conds, "quantity > 0")
	case domain.DirectionOutbound:
		conds = append(conds, "quantity < 0")
	case domain.DirectionAll:
	}
	if filter.From != nil {
		bind("effective_date >= $%d", timeToPgDate(*filter.From))
	}
	if filter.To != nil {
		bind("effective_date <= $%d", timeToPgDate(*filter.To))
	}

	query := `SELECT ` + movementColumns + ` FROM movements`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY id DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, r.observeError("list", err)
	}
	defer rows.Close()

	movements, err := scanMovements(rows)
	return movements, r.observeError("list", err)
}

// SetUndone flips the undone flag in one conditional write, so that
// concurrent transitions on the same entry serialize at the store and
// exactly one caller wins.
func (r *MovementRepository) SetUndone(ctx context.Context, id int64, undone bool) error {
	const query = `UPDATE movements SET is_undone = $2 WHERE id = $1 AND is_undone <> $2`

	return r.observeError("set_undone", r.write(ctx, func() error {
		tag, err := r.pool.Exec(ctx, query, id, undone)
		if err != nil {
			return err
		}
		if tag.RowsAffected() > 0 {
			return nil
		}

		// The write did not apply: classify without mutating.
		var exists bool
		if err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM movements WHERE id = $1)`, id).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return domain.ErrMovementNotFound
		}
		if undone {
			return domain.ErrAlreadyUndone
		}

		return domain.ErrNotUndone
	}))
}

// DeleteByID permanently removes a movement. There is no tombstone.
func (r *MovementRepository) DeleteByID(ctx context.Context, id int64) error {
	const query = `DELETE FROM movements WHERE id = $1`

	return r.observeError("delete", r.write(ctx, func() error {
		tag, err := r.pool.Exec(ctx, query, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrMovementNotFound
		}

		return nil
	}))
}

// Summarize derives current stock per (product, model, unit) over the
// non-undone entries. Zero-stock groups stay in the result.
func (r *MovementRepository) Summarize(ctx context.Context) ([]domain.StockSummary, error) {
	const query = `
		SELECT product_name, model_number, unit, COALESCE(SUM(quantity), 0) AS current_stock
		FROM movements
		WHERE is_undone = FALSE
		GROUP BY product_name, model_number, unit
		ORDER BY product_name, model_number`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, r.observeError("summarize", err)
	}
	defer rows.Close()

	summary := make([]domain.StockSummary, 0)
	for rows.Next() {
		var s domain.StockSummary
		if err := rows.Scan(&s.ProductName, &s.ModelNumber, &s.Unit, &s.CurrentStock); err != nil {
			return nil, r.observeError("summarize", err)
		}
		summary = append(summary, s)
	}

	return summary, r.observeError("summarize", rows.Err())
}

func (r *MovementRepository) write(ctx context.Context, operation func() error) error {
	if r.retrier == nil {
		return operation()
	}

	// Domain sentinels are not pg errors, so the retrier treats them
	// as permanent and returns them unchanged.
	return r.retrier.Retry(ctx, operation)
}

func scanMovements(rows pgx.Rows) ([]*domain.Movement, error) {
	movements := make([]*domain.Movement, 0)
	for rows.Next() {
		movement, err := scanMovement(rows)
		if err != nil {
			return nil, err
		}
		movements = append(movements, movement)
	}

	return movements, rows.Err()
}

func scanMovement(row pgx.Row) (*domain.Movement, error) {
	var (
		m             domain.Movement
		createdAt     pgtype.Timestamptz
		effectiveDate pgtype.Date
		unitPrice     pgtype.Numeric
		totalAmount   pgtype.Numeric
	)

	err := row.Scan(
		&m.ID,
		&createdAt,
		&effectiveDate,
		&m.ProductName,
		&m.ModelNumber,
		&m.Unit,
		&m.Quantity,
		&unitPrice,
		&totalAmount,
		&m.IsUndone,
		&m.Notes,
		&m.Buyer,
		&m.Seller,
	)
	if err != nil {
		return nil, err
	}

	m.CreatedAt = createdAt.Time
	m.EffectiveDate = effectiveDate.Time
	m.UnitPrice = numericToDecimal(unitPrice)
	m.TotalAmount = numericToDecimal(totalAmount)

	return &m, nil
}

// Type conversion helpers.
func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func timeToPgDate(t time.Time) pgtype.Date {
	return pgtype.Date{Time: t, Valid: true}
}

package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ordernest-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Store is the durable keyed storage for order records. Single-row atomicity
// is the database's guarantee; the orchestrator performs no locking of its own.
type Store interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, orderID uuid.UUID) (*Order, error)
	GetByUser(ctx context.Context, userID uuid.UUID) ([]*Order, error)
	UpdatePricing(ctx context.Context, orderID uuid.UUID, unitPrice float64, currency string) error
	UpdatePaymentState(ctx context.Context, orderID uuid.UUID, status Status, paymentStatus PaymentStatus) error
}

type store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) Store {
	return &store{db: db}
}

const orderColumns = `id, user_id, product_id, product_name, quantity, unit_price, currency, status, payment_status, created_at, updated_at`

func (s *store) Create(ctx context.Context, o *Order) error {
	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	var unitPrice sql.NullFloat64
	if o.UnitPrice != nil {
		unitPrice = sql.NullFloat64{Float64: *o.UnitPrice, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, query,
		o.ID, o.UserID, o.ProductID, o.ProductName, o.Quantity,
		unitPrice, o.Currency, o.Status, o.PaymentStatus,
		o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to insert order",
			zap.String("order_id", o.ID.String()),
			zap.Error(err),
		)
		return fmt.Errorf("insert order: %w", err)
	}

	return nil
}

func (s *store) GetByID(ctx context.Context, orderID uuid.UUID) (*Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	o, err := scanOrder(s.db.QueryRowContext(ctx, query, orderID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &NotFoundError{OrderID: orderID}
	}
	if err != nil {
		return nil, fmt.Errorf("select order: %w", err)
	}

	return o, nil
}

func (s *store) GetByUser(ctx context.Context, userID uuid.UUID) ([]*Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("select orders by user: %w", err)
	}
	defer rows.Close()

	orders := make([]*Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}

	return orders, nil
}

func (s *store) UpdatePricing(ctx context.Context, orderID uuid.UUID, unitPrice float64, currency string) error {
	query := `UPDATE orders SET unit_price = $2, currency = $3, updated_at = NOW() WHERE id = $1`

	res, err := s.db.ExecContext(ctx, query, orderID, unitPrice, currency)
	if err != nil {
		return fmt.Errorf("update order pricing: %w", err)
	}
	return ensureRowUpdated(res, orderID)
}

func (s *store) UpdatePaymentState(ctx context.Context, orderID uuid.UUID, status Status, paymentStatus PaymentStatus) error {
	query := `UPDATE orders SET status = $2, payment_status = $3, updated_at = NOW() WHERE id = $1`

	res, err := s.db.ExecContext(ctx, query, orderID, status, paymentStatus)
	if err != nil {
		return fmt.Errorf("update order payment state: %w", err)
	}
	return ensureRowUpdated(res, orderID)
}

func ensureRowUpdated(res sql.Result, orderID uuid.UUID) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return &NotFoundError{OrderID: orderID}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*Order, error) {
	var (
		o         Order
		unitPrice sql.NullFloat64
		currency  sql.NullString
	)

	err := row.Scan(
		&o.ID, &o.UserID, &o.ProductID, &o.ProductName, &o.Quantity,
		&unitPrice, &currency, &o.Status, &o.PaymentStatus,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if unitPrice.Valid {
		o.UnitPrice = &unitPrice.Float64
	}
	o.Currency = currency.String

	return &o, nil
}

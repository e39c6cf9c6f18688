package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/DanielPopoola/shopfront-payment-service/internal/application"
	"github.com/DanielPopoola/shopfront-payment-service/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const paymentColumns = `id, order_id, user_id, amount_cents, method, status,
		       payment_key, transaction_id, cancel_reason, refund_amount_cents,
		       paid_at, cancelled_at, created_at, updated_at, version`

type PaymentRepository struct {
	db *pgxpool.Pool
}

func NewPaymentRepository(db *DB) *PaymentRepository {
	return &PaymentRepository{db: db.Pool}
}

var _ application.PaymentRepository = (*PaymentRepository)(nil)

// Save inserts a new payment. The database assigns id, timestamps and the
// initial version. A duplicate order_id surfaces as ErrDuplicateOrderPayment.
func (r *PaymentRepository) Save(ctx context.Context, payment domain.Payment) (domain.Payment, error) {
	query := `
		INSERT INTO payments (
			order_id, user_id, amount_cents, method, status,
			payment_key, transaction_id, cancel_reason, refund_amount_cents,
			paid_at, cancelled_at, created_at, updated_at, version
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now(), now(), 1)
		RETURNING id, created_at, updated_at, version
	`

	m := toDBModel(payment)
	err := r.db.QueryRow(ctx, query,
		m.OrderID,
		m.UserID,
		m.AmountCents,
		m.Method,
		m.Status,
		m.PaymentKey,
		m.TransactionID,
		m.CancelReason,
		m.RefundAmountCents,
		m.PaidAt,
		m.CancelledAt,
	).Scan(&payment.ID, &payment.CreatedAt, &payment.UpdatedAt, &payment.Version)

	if err != nil {
		if IsUniqueViolation(err) {
			return domain.Payment{}, application.ErrDuplicateOrderPayment
		}
		return domain.Payment{}, fmt.Errorf("failed to create payment: %w", err)
	}

	return payment, nil
}

// Update persists a transition, conditional on the version the caller read.
// Zero rows affected means either the row is gone or another writer got
// there first.
func (r *PaymentRepository) Update(ctx context.Context, payment domain.Payment) (domain.Payment, error) {
	query := `
		UPDATE payments
		SET status = $1,
			payment_key = $2, transaction_id = $3,
			cancel_reason = $4, refund_amount_cents = $5,
			paid_at = $6, cancelled_at = $7,
			updated_at = now(), version = version + 1
		WHERE id = $8 AND version = $9
		RETURNING updated_at, version
	`

	m := toDBModel(payment)
	err := r.db.QueryRow(ctx, query,
		m.Status,
		m.PaymentKey,
		m.TransactionID,
		m.CancelReason,
		m.RefundAmountCents,
		m.PaidAt,
		m.CancelledAt,
		m.ID,
		m.Version,
	).Scan(&payment.UpdatedAt, &payment.Version)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			exists, existsErr := r.exists(ctx, m.ID)
			if existsErr != nil {
				return domain.Payment{}, existsErr
			}
			if exists {
				return domain.Payment{}, application.ErrStalePayment
			}
			return domain.Payment{}, application.ErrPaymentNotFound
		}
		return domain.Payment{}, fmt.Errorf("failed to update payment: %w", err)
	}

	return payment, nil
}

// FindByID retrieves a payment
func (r *PaymentRepository) FindByID(ctx context.Context, id int64) (domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	row := r.db.QueryRow(ctx, query, id)
	return scanPayment(row)
}

// FindByOrderID retrieves the payment tied to an order
func (r *PaymentRepository) FindByOrderID(ctx context.Context, orderID int64) (domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE order_id = $1`
	row := r.db.QueryRow(ctx, query, orderID)
	return scanPayment(row)
}

func (r *PaymentRepository) ExistsByOrderID(ctx context.Context, orderID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM payments WHERE order_id = $1)`, orderID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check payment existence by order_id: %w", err)
	}
	return exists, nil
}

// FindByUserID retrieves a user's payments, newest first
func (r *PaymentRepository) FindByUserID(ctx context.Context, userID int64) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("query payments by user_id: %w", err)
	}
	return collectPayments(rows)
}

// FindByStatus retrieves all payments in a given lifecycle state
func (r *PaymentRepository) FindByStatus(ctx context.Context, status domain.PaymentStatus) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE status = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, string(status))
	if err != nil {
		return nil, fmt.Errorf("query payments by status: %w", err)
	}
	return collectPayments(rows)
}

func (r *PaymentRepository) FindAll(ctx context.Context) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query all payments: %w", err)
	}
	return collectPayments(rows)
}

func (r *PaymentRepository) exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM payments WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check payment existence: %w", err)
	}
	return exists, nil
}

func collectPayments(rows pgx.Rows) ([]domain.Payment, error) {
	results, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Payment, error) {
		var m PaymentModel
		err := row.Scan(
			&m.ID, &m.OrderID, &m.UserID, &m.AmountCents, &m.Method, &m.Status,
			&m.PaymentKey, &m.TransactionID, &m.CancelReason, &m.RefundAmountCents,
			&m.PaidAt, &m.CancelledAt, &m.CreatedAt, &m.UpdatedAt, &m.Version,
		)
		return toDomainModel(m), err
	})
	if err != nil {
		return nil, fmt.Errorf("error occurred while scanning rows: %w", err)
	}
	return results, nil
}

// scanPayment converts a database row into a domain Payment.
// Returns ErrPaymentNotFound if the row doesn't exist.
func scanPayment(row pgx.Row) (domain.Payment, error) {
	var m PaymentModel
	err := row.Scan(
		&m.ID, &m.OrderID, &m.UserID, &m.AmountCents, &m.Method, &m.Status,
		&m.PaymentKey, &m.TransactionID, &m.CancelReason, &m.RefundAmountCents,
		&m.PaidAt, &m.CancelledAt, &m.CreatedAt, &m.UpdatedAt, &m.Version,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Payment{}, application.ErrPaymentNotFound
		}
		return domain.Payment{}, fmt.Errorf("failed to scan payment: %w", err)
	}
	return toDomainModel(m), nil
}

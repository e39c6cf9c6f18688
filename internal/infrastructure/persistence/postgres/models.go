package postgres

import (
	"time"
)

// PaymentModel mirrors the payments table. Version backs the optimistic lock
// on updates; order_id carries a unique index that enforces one payment per
// order under concurrent creation.
type PaymentModel struct {
	ID                int64
	OrderID           int64
	UserID            int64
	AmountCents       int64
	Method            string
	Status            string
	PaymentKey        *string
	TransactionID     *string
	CancelReason      *string
	RefundAmountCents *int64
	PaidAt            *time.Time
	CancelledAt       *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
	Version           int64
}

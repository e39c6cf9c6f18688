// Package domain encodes the payment entity and its lifecycle.
package domain

import (
	"errors"
	"slices"
	"time"
)

// PaymentStatus represents the current state of a payment in its lifecycle
type PaymentStatus string

const (
	StatusPending   PaymentStatus = "PENDING"
	StatusCompleted PaymentStatus = "COMPLETED"
	StatusFailed    PaymentStatus = "FAILED"
	StatusCancelled PaymentStatus = "CANCELLED"
	StatusRefunded  PaymentStatus = "REFUNDED"
)

// ParseStatus validates a status string received from the outside.
func ParseStatus(s string) (PaymentStatus, error) {
	status := PaymentStatus(s)
	switch status {
	case StatusPending, StatusCompleted, StatusFailed, StatusCancelled, StatusRefunded:
		return status, nil
	}
	return "", errors.New("unknown payment status: " + s)
}

// transitions is the legality table for the payment state machine.
// An edge missing here is an illegal transition, no exceptions.
var transitions = map[PaymentStatus][]PaymentStatus{
	StatusPending:   {StatusCompleted, StatusFailed},
	StatusCompleted: {StatusCancelled, StatusRefunded},
	StatusCancelled: {StatusRefunded},
}

type Payment struct {
	ID      int64
	OrderID int64
	UserID  int64

	AmountCents int64
	Method      string
	Status      PaymentStatus

	PaymentKey    *string
	TransactionID *string

	CancelReason      *string
	RefundAmountCents *int64

	PaidAt      *time.Time
	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// Version guards concurrent updates; bumped by the store on every write.
	Version int64
}

// NewPayment builds a pending payment. The store assigns ID and timestamps
// on first save.
func NewPayment(orderID, userID, amountCents int64, method string) (Payment, error) {
	if orderID <= 0 {
		return Payment{}, errors.New("order ID is required")
	}
	if userID <= 0 {
		return Payment{}, errors.New("user ID is required")
	}
	if amountCents <= 0 {
		return Payment{}, errors.New("amount must be positive")
	}
	if method == "" {
		return Payment{}, errors.New("payment method is required")
	}

	return Payment{
		OrderID:     orderID,
		UserID:      userID,
		AmountCents: amountCents,
		Method:      method,
		Status:      StatusPending,
	}, nil
}

// NewCompletedPayment builds a payment that is born COMPLETED. Used for
// gateway-driven confirmations where the processor has already charged the
// customer before this service hears about the order.
func NewCompletedPayment(orderID, userID, amountCents int64, method, paymentKey, transactionID string, paidAt time.Time) (Payment, error) {
	p, err := NewPayment(orderID, userID, amountCents, method)
	if err != nil {
		return Payment{}, err
	}
	return p.Complete(paymentKey, transactionID, paidAt)
}

func (p Payment) canTransitionTo(target PaymentStatus) error {
	if slices.Contains(transitions[p.Status], target) {
		return nil
	}
	return ErrInvalidTransition
}

// Complete moves the payment to COMPLETED and records the gateway identifiers.
func (p Payment) Complete(paymentKey, transactionID string, paidAt time.Time) (Payment, error) {
	if err := p.canTransitionTo(StatusCompleted); err != nil {
		return Payment{}, err
	}
	p.Status = StatusCompleted
	p.PaymentKey = &paymentKey
	p.TransactionID = &transactionID
	p.PaidAt = &paidAt
	return p, nil
}

// Fail marks a pending payment as failed.
func (p Payment) Fail() (Payment, error) {
	if err := p.canTransitionTo(StatusFailed); err != nil {
		return Payment{}, err
	}
	p.Status = StatusFailed
	return p, nil
}

// Cancel moves a completed payment to CANCELLED with the supplied reason.
func (p Payment) Cancel(reason string, cancelledAt time.Time) (Payment, error) {
	if err := p.canTransitionTo(StatusCancelled); err != nil {
		return Payment{}, err
	}
	p.Status = StatusCancelled
	p.CancelReason = &reason
	p.CancelledAt = &cancelledAt
	return p, nil
}

// Refund moves a completed or cancelled payment to REFUNDED. The refund
// amount is recorded as supplied; partial refunds are allowed and the amount
// is not checked against the original charge.
func (p Payment) Refund(refundAmountCents int64, reason string, refundedAt time.Time) (Payment, error) {
	if err := p.canTransitionTo(StatusRefunded); err != nil {
		return Payment{}, err
	}
	p.Status = StatusRefunded
	p.RefundAmountCents = &refundAmountCents
	p.CancelReason = &reason
	p.CancelledAt = &refundedAt
	return p, nil
}

// IsTerminal reports whether the payment can make no further transitions.
func (p Payment) IsTerminal() bool {
	return len(transitions[p.Status]) == 0
}

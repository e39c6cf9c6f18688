package application

import (
	"context"
	"errors"

	"github.com/DanielPopoola/shopfront-payment-service/internal/domain"
)

// Sentinel errors every PaymentRepository implementation must surface.
var (
	// ErrPaymentNotFound is returned by single-record lookups that miss.
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrDuplicateOrderPayment is returned when an insert trips the
	// uniqueness constraint on order_id. The application-level existence
	// check is only a fast path; this is the real enforcement.
	ErrDuplicateOrderPayment = errors.New("payment already exists for order")

	// ErrStalePayment is returned when an update lost an optimistic-lock
	// race: the row exists but its version moved since the read.
	ErrStalePayment = errors.New("payment was modified concurrently")

	// ErrOrderNotFound must wrap any OrderClient failure caused by the order
	// id not resolving, so the orchestrator can tell a missing order apart
	// from an unreachable order service.
	ErrOrderNotFound = errors.New("order not found")
)

// PaymentRepository is the port for persistence.
type PaymentRepository interface {
	// Save inserts a new payment, assigning ID, CreatedAt and UpdatedAt.
	Save(ctx context.Context, payment domain.Payment) (domain.Payment, error)
	// Update persists a transition. The write is conditional on the version
	// read; a lost race returns ErrStalePayment.
	Update(ctx context.Context, payment domain.Payment) (domain.Payment, error)
	FindByID(ctx context.Context, id int64) (domain.Payment, error)
	FindByOrderID(ctx context.Context, orderID int64) (domain.Payment, error)
	ExistsByOrderID(ctx context.Context, orderID int64) (bool, error)
	FindByUserID(ctx context.Context, userID int64) ([]domain.Payment, error)
	FindByStatus(ctx context.Context, status domain.PaymentStatus) ([]domain.Payment, error)
	FindAll(ctx context.Context) ([]domain.Payment, error)
}

// Order is the order-service projection this service cares about.
type Order struct {
	ID         int64
	UserID     int64
	TotalCents int64
	Status     string
}

// OrderClient is the port for the external order service.
type OrderClient interface {
	GetOrder(ctx context.Context, orderID int64) (*Order, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, status string) (*Order, error)
}

// GatewayConfirmRequest is the body sent to the processor's confirm endpoint.
type GatewayConfirmRequest struct {
	PaymentKey string `json:"paymentKey"`
	OrderID    string `json:"orderId"`
	Amount     int64  `json:"amount"`
}

// GatewayClient is the port for the third-party payment processor. The
// response is a free-form mapping of processor fields; callers pick out what
// they need.
type GatewayClient interface {
	ConfirmPayment(ctx context.Context, authorization string, req GatewayConfirmRequest) (map[string]any, error)
}

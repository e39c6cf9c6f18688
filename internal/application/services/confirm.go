package services

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/DanielPopoola/shopfront-payment-service/internal/application"
	"github.com/DanielPopoola/shopfront-payment-service/internal/domain"
	"github.com/google/uuid"
)

// Order statuses pushed to the order service after a local transition.
const (
	orderStatusConfirmed = "CONFIRMED"
	orderStatusCancelled = "CANCELLED"
)

type ConfirmService struct {
	paymentRepo   application.PaymentRepository
	orderClient   application.OrderClient
	gatewayClient application.GatewayClient
	secretKey     string
	logger        *slog.Logger
}

func NewConfirmService(
	paymentRepo application.PaymentRepository,
	orderClient application.OrderClient,
	gatewayClient application.GatewayClient,
	secretKey string,
	logger *slog.Logger,
) *ConfirmService {
	return &ConfirmService{
		paymentRepo:   paymentRepo,
		orderClient:   orderClient,
		gatewayClient: gatewayClient,
		secretKey:     secretKey,
		logger:        logger,
	}
}

// Confirm completes a pending payment. The local record is committed before
// the order service is notified; if that notification fails the record stays
// COMPLETED and the failure is surfaced to the caller. Reconciliation of the
// two systems happens out of band.
func (s *ConfirmService) Confirm(ctx context.Context, paymentID int64) (domain.Payment, error) {
	payment, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, application.ErrPaymentNotFound) {
			return domain.Payment{}, application.NewPaymentNotFoundError(err)
		}
		return domain.Payment{}, application.NewInternalError(err)
	}

	if payment.Status != domain.StatusPending {
		return domain.Payment{}, application.NewInvalidStateError(domain.ErrInvalidTransition)
	}

	paymentKey := "PK_" + uuid.New().String()
	transactionID := "TXN_" + strconv.FormatInt(time.Now().UnixMilli(), 10)

	completed, err := payment.Complete(paymentKey, transactionID, time.Now())
	if err != nil {
		return domain.Payment{}, application.NewInvalidStateError(err)
	}

	saved, err := s.paymentRepo.Update(ctx, completed)
	if err != nil {
		if errors.Is(err, application.ErrStalePayment) {
			return domain.Payment{}, application.NewInvalidStateError(err)
		}
		return domain.Payment{}, application.NewInternalError(err)
	}

	s.logger.Info("payment completed",
		"payment_id", saved.ID,
		"order_id", saved.OrderID,
		"payment_key", paymentKey,
	)

	if _, err := s.orderClient.UpdateOrderStatus(ctx, saved.OrderID, orderStatusConfirmed); err != nil {
		// The payment is durably COMPLETED at this point. No rollback.
		s.logger.Warn("order status update failed after payment completion",
			"payment_id", saved.ID,
			"order_id", saved.OrderID,
			"error", err,
		)
		return saved, application.NewExternalServiceError(err)
	}

	return saved, nil
}

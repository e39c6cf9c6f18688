package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/DanielPopoola/shopfront-payment-service/internal/application"
	"github.com/DanielPopoola/shopfront-payment-service/internal/domain"
)

type CancelService struct {
	paymentRepo application.PaymentRepository
	orderClient application.OrderClient
	logger      *slog.Logger
}

func NewCancelService(
	paymentRepo application.PaymentRepository,
	orderClient application.OrderClient,
	logger *slog.Logger,
) *CancelService {
	return &CancelService{
		paymentRepo: paymentRepo,
		orderClient: orderClient,
		logger:      logger,
	}
}

// Cancel moves a completed payment to CANCELLED and notifies the order
// service. The notification has the same best-effort semantics as Confirm:
// the local commit is never undone by a downstream failure.
func (s *CancelService) Cancel(ctx context.Context, cmd CancelCommand) (domain.Payment, error) {
	payment, err := s.paymentRepo.FindByID(ctx, cmd.PaymentID)
	if err != nil {
		if errors.Is(err, application.ErrPaymentNotFound) {
			return domain.Payment{}, application.NewPaymentNotFoundError(err)
		}
		return domain.Payment{}, application.NewInternalError(err)
	}

	cancelled, err := payment.Cancel(cmd.Reason, time.Now())
	if err != nil {
		return domain.Payment{}, application.NewInvalidStateError(err)
	}

	saved, err := s.paymentRepo.Update(ctx, cancelled)
	if err != nil {
		if errors.Is(err, application.ErrStalePayment) {
			return domain.Payment{}, application.NewInvalidStateError(err)
		}
		return domain.Payment{}, application.NewInternalError(err)
	}

	s.logger.Info("payment cancelled",
		"payment_id", saved.ID,
		"order_id", saved.OrderID,
		"reason", cmd.Reason,
	)

	if _, err := s.orderClient.UpdateOrderStatus(ctx, saved.OrderID, orderStatusCancelled); err != nil {
		s.logger.Warn("order status update failed after payment cancellation",
			"payment_id", saved.ID,
			"order_id", saved.OrderID,
			"error", err,
		)
		return saved, application.NewExternalServiceError(err)
	}

	return saved, nil
}

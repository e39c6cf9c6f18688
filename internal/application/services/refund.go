package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/DanielPopoola/shopfront-payment-service/internal/application"
	"github.com/DanielPopoola/shopfront-payment-service/internal/domain"
)

type RefundService struct {
	paymentRepo application.PaymentRepository
	logger      *slog.Logger
}

func NewRefundService(
	paymentRepo application.PaymentRepository,
	logger *slog.Logger,
) *RefundService {
	return &RefundService{
		paymentRepo: paymentRepo,
		logger:      logger,
	}
}

// Refund moves a completed or cancelled payment to REFUNDED. Refunds are
// payment-internal: the order service is not notified. The refund amount is
// recorded as supplied, partial refunds included.
func (s *RefundService) Refund(ctx context.Context, cmd RefundCommand) (domain.Payment, error) {
	payment, err := s.paymentRepo.FindByID(ctx, cmd.PaymentID)
	if err != nil {
		if errors.Is(err, application.ErrPaymentNotFound) {
			return domain.Payment{}, application.NewPaymentNotFoundError(err)
		}
		return domain.Payment{}, application.NewInternalError(err)
	}

	refunded, err := payment.Refund(cmd.RefundAmountCents, cmd.Reason, time.Now())
	if err != nil {
		return domain.Payment{}, application.NewInvalidStateError(err)
	}

	saved, err := s.paymentRepo.Update(ctx, refunded)
	if err != nil {
		if errors.Is(err, application.ErrStalePayment) {
			return domain.Payment{}, application.NewInvalidStateError(err)
		}
		return domain.Payment{}, application.NewInternalError(err)
	}

	s.logger.Info("payment refunded",
		"payment_id", saved.ID,
		"order_id", saved.OrderID,
		"refund_amount_cents", cmd.RefundAmountCents,
	)

	return saved, nil
}

package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/DanielPopoola/shopfront-payment-service/internal/application"
	"github.com/DanielPopoola/shopfront-payment-service/internal/domain"
)

type CreateService struct {
	paymentRepo application.PaymentRepository
	orderClient application.OrderClient
	logger      *slog.Logger
}

func NewCreateService(
	paymentRepo application.PaymentRepository,
	orderClient application.OrderClient,
	logger *slog.Logger,
) *CreateService {
	return &CreateService{
		paymentRepo: paymentRepo,
		orderClient: orderClient,
		logger:      logger,
	}
}

// Create registers a pending payment for an order. Creation is idempotent
// per order: the existence check is the fast path, the store's uniqueness
// constraint on order_id is the enforcement under concurrent requests.
func (s *CreateService) Create(ctx context.Context, cmd CreateCommand) (domain.Payment, error) {
	if _, err := s.orderClient.GetOrder(ctx, cmd.OrderID); err != nil {
		if errors.Is(err, application.ErrOrderNotFound) {
			return domain.Payment{}, application.NewOrderNotFoundError(err)
		}
		return domain.Payment{}, application.NewExternalServiceError(err)
	}

	exists, err := s.paymentRepo.ExistsByOrderID(ctx, cmd.OrderID)
	if err != nil {
		return domain.Payment{}, application.NewInternalError(err)
	}
	if exists {
		return domain.Payment{}, application.NewDuplicatePaymentError(cmd.OrderID)
	}

	payment, err := domain.NewPayment(cmd.OrderID, cmd.UserID, cmd.AmountCents, cmd.Method)
	if err != nil {
		return domain.Payment{}, application.NewInvalidInputError(err)
	}

	saved, err := s.paymentRepo.Save(ctx, payment)
	if err != nil {
		// A unique violation here means another request won the race after
		// our existence check passed.
		if errors.Is(err, application.ErrDuplicateOrderPayment) {
			return domain.Payment{}, application.NewDuplicatePaymentError(cmd.OrderID)
		}
		return domain.Payment{}, application.NewInternalError(err)
	}

	s.logger.Info("payment created",
		"payment_id", saved.ID,
		"order_id", saved.OrderID,
		"amount_cents", saved.AmountCents,
	)

	return saved, nil
}

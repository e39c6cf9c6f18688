package services

import (
	"context"
	"errors"

	"github.com/DanielPopoola/shopfront-payment-service/internal/application"
	"github.com/DanielPopoola/shopfront-payment-service/internal/domain"
)

// QueryService exposes read-only projections over the payment store. Single
// lookups miss with a not-found error; list queries return empty slices.
type QueryService struct {
	paymentRepo application.PaymentRepository
}

func NewQueryService(paymentRepo application.PaymentRepository) *QueryService {
	return &QueryService{paymentRepo: paymentRepo}
}

func (s *QueryService) FindByID(ctx context.Context, id int64) (domain.Payment, error) {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, application.ErrPaymentNotFound) {
			return domain.Payment{}, application.NewPaymentNotFoundError(err)
		}
		return domain.Payment{}, application.NewInternalError(err)
	}
	return payment, nil
}

func (s *QueryService) FindByOrderID(ctx context.Context, orderID int64) (domain.Payment, error) {
	payment, err := s.paymentRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, application.ErrPaymentNotFound) {
			return domain.Payment{}, application.NewPaymentNotFoundError(err)
		}
		return domain.Payment{}, application.NewInternalError(err)
	}
	return payment, nil
}

func (s *QueryService) FindByUserID(ctx context.Context, userID int64) ([]domain.Payment, error) {
	payments, err := s.paymentRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, application.NewInternalError(err)
	}
	return payments, nil
}

func (s *QueryService) FindByStatus(ctx context.Context, status domain.PaymentStatus) ([]domain.Payment, error) {
	payments, err := s.paymentRepo.FindByStatus(ctx, status)
	if err != nil {
		return nil, application.NewInternalError(err)
	}
	return payments, nil
}

func (s *QueryService) FindAll(ctx context.Context) ([]domain.Payment, error) {
	payments, err := s.paymentRepo.FindAll(ctx)
	if err != nil {
		return nil, application.NewInternalError(err)
	}
	return payments, nil
}

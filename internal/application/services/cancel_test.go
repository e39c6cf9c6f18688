package services_test

import (
	"context"
	"testing"

	"github.com/DanielPopoola/shopfront-payment-service/internal/application"
	"github.com/DanielPopoola/shopfront-payment-service/internal/application/services"
	"github.com/DanielPopoola/shopfront-payment-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createCompletedPayment(t *testing.T, repo *mockPaymentRepository, orders *mockOrderClient, orderID int64) domain.Payment {
	t.Helper()
	confirm := newConfirmService(repo, orders, nil)
	pending := createPendingPayment(t, repo, orderID)
	completed, err := confirm.Confirm(context.Background(), pending.ID)
	require.NoError(t, err)
	return completed
}

func TestCancelService_Cancel_Success(t *testing.T) {
	ctx := context.Background()
	mockRepo := newMockPaymentRepository()
	mockOrders := newMockOrderClient(&application.Order{ID: 42, UserID: 7, Status: "CREATED"})
	completed := createCompletedPayment(t, mockRepo, mockOrders, 42)

	service := services.NewCancelService(mockRepo, mockOrders, testLogger())

	payment, err := service.Cancel(ctx, services.CancelCommand{PaymentID: completed.ID, Reason: "customer request"})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, payment.Status)
	require.NotNil(t, payment.CancelReason)
	assert.Equal(t, "customer request", *payment.CancelReason)
	assert.NotNil(t, payment.CancelledAt)

	calls := mockOrders.calls()
	require.Len(t, calls, 2, "one CONFIRMED from setup, one CANCELLED")
	assert.Equal(t, statusCall{OrderID: 42, Status: "CANCELLED"}, calls[1])
}

func TestCancelService_Cancel_NotFound(t *testing.T) {
	ctx := context.Background()
	service := services.NewCancelService(newMockPaymentRepository(), newMockOrderClient(), testLogger())

	_, err := service.Cancel(ctx, services.CancelCommand{PaymentID: 999, Reason: "x"})

	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.ErrCodePaymentNotFound, svcErr.Code)
}

func TestCancelService_Cancel_PendingIsIllegal(t *testing.T) {
	ctx := context.Background()
	mockRepo := newMockPaymentRepository()
	mockOrders := newMockOrderClient(&application.Order{ID: 42, UserID: 7, Status: "CREATED"})
	pending := createPendingPayment(t, mockRepo, 42)

	service := services.NewCancelService(mockRepo, mockOrders, testLogger())

	_, err := service.Cancel(ctx, services.CancelCommand{PaymentID: pending.ID, Reason: "too early"})

	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.ErrCodeInvalidState, svcErr.Code)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	saved, findErr := mockRepo.FindByID(ctx, pending.ID)
	require.NoError(t, findErr)
	assert.Equal(t, domain.StatusPending, saved.Status)
	assert.Empty(t, mockOrders.calls())
}

func TestCancelService_Cancel_OrderUpdateFailsAfterCommit(t *testing.T) {
	ctx := context.Background()
	mockRepo := newMockPaymentRepository()
	mockOrders := newMockOrderClient(&application.Order{ID: 42, UserID: 7, Status: "CREATED"})
	completed := createCompletedPayment(t, mockRepo, mockOrders, 42)

	mockOrders.UpdateFn = func(ctx context.Context, orderID int64, status string) (*application.Order, error) {
		return nil, assert.AnError
	}
	service := services.NewCancelService(mockRepo, mockOrders, testLogger())

	payment, err := service.Cancel(ctx, services.CancelCommand{PaymentID: completed.ID, Reason: "customer request"})

	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.ErrCodeExternalUnavailable, svcErr.Code)

	// The cancellation itself stuck.
	assert.Equal(t, domain.StatusCancelled, payment.Status)
	saved, findErr := mockRepo.FindByID(ctx, completed.ID)
	require.NoError(t, findErr)
	assert.Equal(t, domain.StatusCancelled, saved.Status)
}

func TestCancelService_Cancel_StaleVersionConflict(t *testing.T) {
	ctx := context.Background()
	mockRepo := newMockPaymentRepository()
	mockOrders := newMockOrderClient(&application.Order{ID: 42, UserID: 7, Status: "CREATED"})
	completed := createCompletedPayment(t, mockRepo, mockOrders, 42)

	mockRepo.UpdateFn = func(ctx context.Context, payment domain.Payment) (domain.Payment, error) {
		return domain.Payment{}, application.ErrStalePayment
	}
	service := services.NewCancelService(mockRepo, mockOrders, testLogger())

	_, err := service.Cancel(ctx, services.CancelCommand{PaymentID: completed.ID, Reason: "x"})

	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.ErrCodeInvalidState, svcErr.Code)
	assert.Len(t, mockOrders.calls(), 1, "only the CONFIRMED call from setup")
}

package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/DanielPopoola/shopfront-payment-service/internal/application"
	"github.com/DanielPopoola/shopfront-payment-service/internal/application/services"
	"github.com/DanielPopoola/shopfront-payment-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfirmService(repo *mockPaymentRepository, orders *mockOrderClient, gw *mockGatewayClient) *services.ConfirmService {
	if gw == nil {
		gw = &mockGatewayClient{}
	}
	return services.NewConfirmService(repo, orders, gw, "sk_test_secret", testLogger())
}

func createPendingPayment(t *testing.T, repo *mockPaymentRepository, orderID int64) domain.Payment {
	t.Helper()
	payment, err := domain.NewPayment(orderID, 7, 10000, "CARD")
	require.NoError(t, err)
	saved, err := repo.Save(context.Background(), payment)
	require.NoError(t, err)
	return saved
}

func TestConfirmService_Confirm_Success(t *testing.T) {
	ctx := context.Background()
	mockRepo := newMockPaymentRepository()
	mockOrders := newMockOrderClient(&application.Order{ID: 42, UserID: 7, Status: "CREATED"})
	service := newConfirmService(mockRepo, mockOrders, nil)

	pending := createPendingPayment(t, mockRepo, 42)

	payment, err := service.Confirm(ctx, pending.ID)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, payment.Status)
	require.NotNil(t, payment.PaymentKey)
	assert.True(t, strings.HasPrefix(*payment.PaymentKey, "PK_"))
	require.NotNil(t, payment.TransactionID)
	assert.True(t, strings.HasPrefix(*payment.TransactionID, "TXN_"))
	assert.NotNil(t, payment.PaidAt)

	calls := mockOrders.calls()
	require.Len(t, calls, 1, "exactly one order status update")
	assert.Equal(t, statusCall{OrderID: 42, Status: "CONFIRMED"}, calls[0])

	saved, err := mockRepo.FindByID(ctx, pending.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, saved.Status)
}

func TestConfirmService_Confirm_NotFound(t *testing.T) {
	ctx := context.Background()
	mockRepo := newMockPaymentRepository()
	service := newConfirmService(mockRepo, newMockOrderClient(), nil)

	_, err := service.Confirm(ctx, 999)

	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.ErrCodePaymentNotFound, svcErr.Code)
}

func TestConfirmService_Confirm_NotPending(t *testing.T) {
	ctx := context.Background()
	mockRepo := newMockPaymentRepository()
	mockOrders := newMockOrderClient(&application.Order{ID: 42, UserID: 7, Status: "CREATED"})
	service := newConfirmService(mockRepo, mockOrders, nil)

	pending := createPendingPayment(t, mockRepo, 42)
	confirmed, err := service.Confirm(ctx, pending.ID)
	require.NoError(t, err)

	_, err = service.Confirm(ctx, confirmed.ID)

	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.ErrCodeInvalidState, svcErr.Code)

	// Record unchanged beyond the first confirmation.
	saved, err := mockRepo.FindByID(ctx, pending.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, saved.Status)
	assert.Equal(t, *confirmed.PaymentKey, *saved.PaymentKey)
	assert.Len(t, mockOrders.calls(), 1)
}

func TestConfirmService_Confirm_OrderUpdateFailsAfterCommit(t *testing.T) {
	// The local COMPLETED write must survive a failed order notification.
	ctx := context.Background()
	mockRepo := newMockPaymentRepository()
	mockOrders := newMockOrderClient()
	mockOrders.GetOrderFn = func(ctx context.Context, orderID int64) (*application.Order, error) {
		return &application.Order{ID: orderID, UserID: 7}, nil
	}
	mockOrders.UpdateFn = func(ctx context.Context, orderID int64, status string) (*application.Order, error) {
		return nil, assert.AnError
	}
	service := newConfirmService(mockRepo, mockOrders, nil)

	pending := createPendingPayment(t, mockRepo, 42)

	payment, err := service.Confirm(ctx, pending.ID)

	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.ErrCodeExternalUnavailable, svcErr.Code)

	// The returned payment and the stored record are both COMPLETED.
	assert.Equal(t, domain.StatusCompleted, payment.Status)
	saved, findErr := mockRepo.FindByID(ctx, pending.ID)
	require.NoError(t, findErr)
	assert.Equal(t, domain.StatusCompleted, saved.Status)
}

func TestConfirmService_Confirm_StaleVersionConflict(t *testing.T) {
	ctx := context.Background()
	mockRepo := newMockPaymentRepository()
	mockOrders := newMockOrderClient(&application.Order{ID: 42, UserID: 7, Status: "CREATED"})
	service := newConfirmService(mockRepo, mockOrders, nil)

	pending := createPendingPayment(t, mockRepo, 42)
	mockRepo.UpdateFn = func(ctx context.Context, payment domain.Payment) (domain.Payment, error) {
		return domain.Payment{}, application.ErrStalePayment
	}

	_, err := service.Confirm(ctx, pending.ID)

	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.ErrCodeInvalidState, svcErr.Code)
	assert.Empty(t, mockOrders.calls(), "no order notification on a lost write race")
}

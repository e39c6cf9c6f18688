package services_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/DanielPopoola/shopfront-payment-service/internal/application"
	"github.com/DanielPopoola/shopfront-payment-service/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockPaymentRepository is an in-memory PaymentRepository. It enforces the
// same contract as the postgres implementation: one payment per order and
// version-checked updates. Individual methods can be overridden per test.
type mockPaymentRepository struct {
	mu       sync.RWMutex
	payments map[int64]domain.Payment
	nextID   int64

	SaveFn            func(ctx context.Context, payment domain.Payment) (domain.Payment, error)
	UpdateFn          func(ctx context.Context, payment domain.Payment) (domain.Payment, error)
	FindByIDFn        func(ctx context.Context, id int64) (domain.Payment, error)
	ExistsByOrderIDFn func(ctx context.Context, orderID int64) (bool, error)
}

func newMockPaymentRepository() *mockPaymentRepository {
	return &mockPaymentRepository{
		payments: make(map[int64]domain.Payment),
		nextID:   1,
	}
}

func (m *mockPaymentRepository) Save(ctx context.Context, payment domain.Payment) (domain.Payment, error) {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, payment)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.payments {
		if existing.OrderID == payment.OrderID {
			return domain.Payment{}, application.ErrDuplicateOrderPayment
		}
	}
	payment.ID = m.nextID
	m.nextID++
	payment.CreatedAt = time.Now()
	payment.UpdatedAt = payment.CreatedAt
	payment.Version = 1
	m.payments[payment.ID] = payment
	return payment, nil
}

func (m *mockPaymentRepository) Update(ctx context.Context, payment domain.Payment) (domain.Payment, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, payment)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.payments[payment.ID]
	if !ok {
		return domain.Payment{}, application.ErrPaymentNotFound
	}
	if existing.Version != payment.Version {
		return domain.Payment{}, application.ErrStalePayment
	}
	payment.Version++
	payment.UpdatedAt = time.Now()
	m.payments[payment.ID] = payment
	return payment, nil
}

func (m *mockPaymentRepository) FindByID(ctx context.Context, id int64) (domain.Payment, error) {
	if m.FindByIDFn != nil {
		return m.FindByIDFn(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if p, ok := m.payments[id]; ok {
		return p, nil
	}
	return domain.Payment{}, application.ErrPaymentNotFound
}

func (m *mockPaymentRepository) FindByOrderID(ctx context.Context, orderID int64) (domain.Payment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.payments {
		if p.OrderID == orderID {
			return p, nil
		}
	}
	return domain.Payment{}, application.ErrPaymentNotFound
}

func (m *mockPaymentRepository) ExistsByOrderID(ctx context.Context, orderID int64) (bool, error) {
	if m.ExistsByOrderIDFn != nil {
		return m.ExistsByOrderIDFn(ctx, orderID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.payments {
		if p.OrderID == orderID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockPaymentRepository) FindByUserID(ctx context.Context, userID int64) ([]domain.Payment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	results := []domain.Payment{}
	for _, p := range m.payments {
		if p.UserID == userID {
			results = append(results, p)
		}
	}
	return results, nil
}

func (m *mockPaymentRepository) FindByStatus(ctx context.Context, status domain.PaymentStatus) ([]domain.Payment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	results := []domain.Payment{}
	for _, p := range m.payments {
		if p.Status == status {
			results = append(results, p)
		}
	}
	return results, nil
}

func (m *mockPaymentRepository) FindAll(ctx context.Context) ([]domain.Payment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	results := []domain.Payment{}
	for _, p := range m.payments {
		results = append(results, p)
	}
	return results, nil
}

func (m *mockPaymentRepository) count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.payments)
}

// mockOrderClient records every order-service call it receives.
type mockOrderClient struct {
	mu          sync.Mutex
	orders      map[int64]*application.Order
	statusCalls []statusCall
	GetOrderFn  func(ctx context.Context, orderID int64) (*application.Order, error)
	UpdateFn    func(ctx context.Context, orderID int64, status string) (*application.Order, error)
}

type statusCall struct {
	OrderID int64
	Status  string
}

func newMockOrderClient(orders ...*application.Order) *mockOrderClient {
	m := &mockOrderClient{orders: make(map[int64]*application.Order)}
	for _, o := range orders {
		m.orders[o.ID] = o
	}
	return m
}

func (m *mockOrderClient) GetOrder(ctx context.Context, orderID int64) (*application.Order, error) {
	if m.GetOrderFn != nil {
		return m.GetOrderFn(ctx, orderID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if o, ok := m.orders[orderID]; ok {
		return o, nil
	}
	return nil, application.ErrOrderNotFound
}

func (m *mockOrderClient) UpdateOrderStatus(ctx context.Context, orderID int64, status string) (*application.Order, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, orderID, status)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statusCalls = append(m.statusCalls, statusCall{OrderID: orderID, Status: status})
	if o, ok := m.orders[orderID]; ok {
		o.Status = status
		return o, nil
	}
	return nil, application.ErrOrderNotFound
}

func (m *mockOrderClient) calls() []statusCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]statusCall{}, m.statusCalls...)
}

// mockGatewayClient returns a canned processor response.
type mockGatewayClient struct {
	mu           sync.Mutex
	confirmCalls int
	lastAuth     string
	lastRequest  application.GatewayConfirmRequest
	Response     map[string]any
	Err          error
}

func (m *mockGatewayClient) ConfirmPayment(ctx context.Context, authorization string, req application.GatewayConfirmRequest) (map[string]any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.confirmCalls++
	m.lastAuth = authorization
	m.lastRequest = req
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Response != nil {
		return m.Response, nil
	}
	return map[string]any{"method": "CARD", "transactionKey": "tk-1"}, nil
}

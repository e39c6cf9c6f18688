package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/DanielPopoola/shopfront-payment-service/internal/domain"
	"github.com/DanielPopoola/shopfront-payment-service/internal/interfaces/rest"
)

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
}

// PaymentResponse is the wire shape of a payment.
type PaymentResponse struct {
	ID                int64      `json:"id"`
	OrderID           int64      `json:"order_id"`
	UserID            int64      `json:"user_id"`
	AmountCents       int64      `json:"amount_cents"`
	Method            string     `json:"method"`
	Status            string     `json:"status"`
	PaymentKey        *string    `json:"payment_key,omitempty"`
	TransactionID     *string    `json:"transaction_id,omitempty"`
	CancelReason      *string    `json:"cancel_reason,omitempty"`
	RefundAmountCents *int64     `json:"refund_amount_cents,omitempty"`
	PaidAt            *time.Time `json:"paid_at,omitempty"`
	CancelledAt       *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func toPaymentResponse(p domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                p.ID,
		OrderID:           p.OrderID,
		UserID:            p.UserID,
		AmountCents:       p.AmountCents,
		Method:            p.Method,
		Status:            string(p.Status),
		PaymentKey:        p.PaymentKey,
		TransactionID:     p.TransactionID,
		CancelReason:      p.CancelReason,
		RefundAmountCents: p.RefundAmountCents,
		PaidAt:            p.PaidAt,
		CancelledAt:       p.CancelledAt,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func toPaymentResponses(payments []domain.Payment) []PaymentResponse {
	responses := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		responses = append(responses, toPaymentResponse(p))
	}
	return responses
}

func respondWithJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(APIResponse{
		Success: status >= 200 && status < 300,
		Data:    data,
	})
}

func respondWithPayment(w http.ResponseWriter, status int, p domain.Payment) {
	respondWithJSON(w, status, toPaymentResponse(p))
}

func respondWithError(w http.ResponseWriter, err error) {
	rest.WriteError(w, err)
}

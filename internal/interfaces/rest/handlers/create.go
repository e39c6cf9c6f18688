package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/DanielPopoola/shopfront-payment-service/internal/application"
	"github.com/DanielPopoola/shopfront-payment-service/internal/application/services"
)

type CreateRequest struct {
	OrderID     int64  `json:"order_id" validate:"required,gt=0" example:"42"`
	UserID      int64  `json:"user_id" validate:"required,gt=0" example:"7"`
	AmountCents int64  `json:"amount_cents" validate:"required,gt=0" example:"10000"`
	Method      string `json:"method" validate:"required" example:"CARD"`
}

// HandleCreate registers a pending payment for an order
// @Summary      Create a payment
// @Description  Validates the order upstream and records a PENDING payment. At most one payment can exist per order.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request  body      CreateRequest  true  "Payment details"
// @Success      201      {object}  APIResponse    "Payment created"
// @Failure      400      {object}  rest.ErrorResponse  "Invalid request parameters"
// @Failure      404      {object}  rest.ErrorResponse  "Order does not exist"
// @Failure      409      {object}  rest.ErrorResponse  "Order already has a payment"
// @Failure      503      {object}  rest.ErrorResponse  "Order service unreachable"
// @Router       /api/payments [post]
func (h *PaymentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, application.NewInvalidInputError(err))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		respondWithError(w, application.NewInvalidInputError(err))
		return
	}

	payment, err := h.createService.Create(r.Context(), services.CreateCommand{
		OrderID:     req.OrderID,
		UserID:      req.UserID,
		AmountCents: req.AmountCents,
		Method:      req.Method,
	})
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondWithPayment(w, http.StatusCreated, payment)
}

package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/DanielPopoola/shopfront-payment-service/internal/application"
	"github.com/DanielPopoola/shopfront-payment-service/internal/application/services"
)

// GatewayConfirmRequest is the processor's callback body. Field names follow
// the processor's wire format, not this service's conventions.
type GatewayConfirmRequest struct {
	PaymentKey string `json:"paymentKey" validate:"required"`
	OrderID    string `json:"orderId" validate:"required"`
	Amount     int64  `json:"amount" validate:"required,gt=0"`
}

// HandleConfirm completes a pending payment
// @Summary      Confirm a payment
// @Description  Transitions a PENDING payment to COMPLETED and notifies the order service. The local commit is not rolled back if the notification fails.
// @Tags         payments
// @Produce      json
// @Param        id   path      int          true  "Payment ID"
// @Success      200  {object}  APIResponse  "Payment completed"
// @Failure      404  {object}  rest.ErrorResponse  "Payment not found"
// @Failure      409  {object}  rest.ErrorResponse  "Payment not in PENDING state"
// @Failure      503  {object}  rest.ErrorResponse  "Order service unreachable after local commit"
// @Router       /api/payments/{id}/confirm [post]
func (h *PaymentHandler) HandleConfirm(w http.ResponseWriter, r *http.Request) {
	paymentID, err := parseIDParam(r, "id")
	if err != nil {
		respondWithError(w, application.NewInvalidInputError(err))
		return
	}

	payment, err := h.confirmService.Confirm(r.Context(), paymentID)
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondWithPayment(w, http.StatusOK, payment)
}

// HandleGatewayConfirm records an already-authorized gateway charge
// @Summary      Confirm a gateway callback
// @Description  Confirms the charge with the processor and records a COMPLETED payment for the referenced order.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request  body      GatewayConfirmRequest  true  "Processor callback"
// @Success      200      {object}  APIResponse            "Payment recorded"
// @Failure      400      {object}  rest.ErrorResponse     "Confirmation failed"
// @Router       /api/payments/confirm [post]
func (h *PaymentHandler) HandleGatewayConfirm(w http.ResponseWriter, r *http.Request) {
	var req GatewayConfirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, application.NewInvalidInputError(err))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		respondWithError(w, application.NewInvalidInputError(err))
		return
	}

	payment, err := h.confirmService.ConfirmWithGateway(r.Context(), services.GatewayConfirmCommand{
		PaymentKey:  req.PaymentKey,
		OrderRef:    req.OrderID,
		AmountCents: req.Amount,
	})
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondWithPayment(w, http.StatusOK, payment)
}

func parseIDParam(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(r.PathValue(name), 10, 64)
}

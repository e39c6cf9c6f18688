package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/DanielPopoola/shopfront-payment-service/internal/application"
	"github.com/DanielPopoola/shopfront-payment-service/internal/application/services"
)

type RefundRequest struct {
	RefundAmountCents int64  `json:"refund_amount_cents" validate:"required,gt=0" example:"5000"`
	Reason            string `json:"reason" example:"partial refund"`
}

// HandleRefund refunds a completed or cancelled payment
// @Summary      Refund a payment
// @Description  Transitions a COMPLETED or CANCELLED payment to REFUNDED with the supplied amount. Partial refunds are allowed.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id       path      int            true  "Payment ID"
// @Param        request  body      RefundRequest  true  "Refund details"
// @Success      200      {object}  APIResponse    "Payment refunded"
// @Failure      404      {object}  rest.ErrorResponse  "Payment not found"
// @Failure      409      {object}  rest.ErrorResponse  "Payment not refundable"
// @Router       /api/payments/{id}/refund [post]
func (h *PaymentHandler) HandleRefund(w http.ResponseWriter, r *http.Request) {
	paymentID, err := parseIDParam(r, "id")
	if err != nil {
		respondWithError(w, application.NewInvalidInputError(err))
		return
	}

	var req RefundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, application.NewInvalidInputError(err))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		respondWithError(w, application.NewInvalidInputError(err))
		return
	}

	payment, err := h.refundService.Refund(r.Context(), services.RefundCommand{
		PaymentID:         paymentID,
		RefundAmountCents: req.RefundAmountCents,
		Reason:            req.Reason,
	})
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondWithPayment(w, http.StatusOK, payment)
}

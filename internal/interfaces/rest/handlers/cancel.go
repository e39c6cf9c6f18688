package handlers

import (
	"net/http"

	"github.com/DanielPopoola/shopfront-payment-service/internal/application"
	"github.com/DanielPopoola/shopfront-payment-service/internal/application/services"
)

// HandleCancel cancels a completed payment
// @Summary      Cancel a payment
// @Description  Transitions a COMPLETED payment to CANCELLED, recording the reason, and notifies the order service.
// @Tags         payments
// @Produce      json
// @Param        id      path      int     true   "Payment ID"
// @Param        reason  query     string  false  "Cancellation reason"
// @Success      200     {object}  APIResponse  "Payment cancelled"
// @Failure      404     {object}  rest.ErrorResponse  "Payment not found"
// @Failure      409     {object}  rest.ErrorResponse  "Payment not in COMPLETED state"
// @Router       /api/payments/{id}/cancel [post]
func (h *PaymentHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	paymentID, err := parseIDParam(r, "id")
	if err != nil {
		respondWithError(w, application.NewInvalidInputError(err))
		return
	}

	payment, err := h.cancelService.Cancel(r.Context(), services.CancelCommand{
		PaymentID: paymentID,
		Reason:    r.URL.Query().Get("reason"),
	})
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondWithPayment(w, http.StatusOK, payment)
}

package handlers

import (
	"net/http"

	"github.com/DanielPopoola/shopfront-payment-service/internal/application"
	"github.com/DanielPopoola/shopfront-payment-service/internal/domain"
)

func (h *PaymentHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	paymentID, err := parseIDParam(r, "id")
	if err != nil {
		respondWithError(w, application.NewInvalidInputError(err))
		return
	}

	payment, err := h.queryService.FindByID(r.Context(), paymentID)
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondWithPayment(w, http.StatusOK, payment)
}

func (h *PaymentHandler) HandleGetByOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := parseIDParam(r, "orderId")
	if err != nil {
		respondWithError(w, application.NewInvalidInputError(err))
		return
	}

	payment, err := h.queryService.FindByOrderID(r.Context(), orderID)
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondWithPayment(w, http.StatusOK, payment)
}

func (h *PaymentHandler) HandleGetByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "userId")
	if err != nil {
		respondWithError(w, application.NewInvalidInputError(err))
		return
	}

	payments, err := h.queryService.FindByUserID(r.Context(), userID)
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, toPaymentResponses(payments))
}

func (h *PaymentHandler) HandleGetByStatus(w http.ResponseWriter, r *http.Request) {
	status, err := domain.ParseStatus(r.PathValue("status"))
	if err != nil {
		respondWithError(w, application.NewInvalidInputError(err))
		return
	}

	payments, err := h.queryService.FindByStatus(r.Context(), status)
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, toPaymentResponses(payments))
}

func (h *PaymentHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	payments, err := h.queryService.FindAll(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, toPaymentResponses(payments))
}

func (h *PaymentHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

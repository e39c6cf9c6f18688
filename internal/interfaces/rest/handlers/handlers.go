package handlers

import (
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/shopfront-payment-service/internal/application/services"
	"github.com/go-playground/validator"
)

type PaymentHandler struct {
	createService  *services.CreateService
	confirmService *services.ConfirmService
	cancelService  *services.CancelService
	refundService  *services.RefundService
	queryService   *services.QueryService
	validate       *validator.Validate
	logger         *slog.Logger
}

func NewPaymentHandler(
	createService *services.CreateService,
	confirmService *services.ConfirmService,
	cancelService *services.CancelService,
	refundService *services.RefundService,
	queryService *services.QueryService,
	logger *slog.Logger,
) *PaymentHandler {
	return &PaymentHandler{
		createService:  createService,
		confirmService: confirmService,
		cancelService:  cancelService,
		refundService:  refundService,
		queryService:   queryService,
		validate:       validator.New(),
		logger:         logger,
	}
}

func (h *PaymentHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/payments", h.HandleCreate)
	mux.HandleFunc("POST /api/payments/confirm", h.HandleGatewayConfirm)
	mux.HandleFunc("POST /api/payments/{id}/confirm", h.HandleConfirm)
	mux.HandleFunc("POST /api/payments/{id}/cancel", h.HandleCancel)
	mux.HandleFunc("POST /api/payments/{id}/refund", h.HandleRefund)
	mux.HandleFunc("GET /api/payments", h.HandleGetAll)
	mux.HandleFunc("GET /api/payments/{id}", h.HandleGetByID)
	mux.HandleFunc("GET /api/payments/order/{orderId}", h.HandleGetByOrder)
	mux.HandleFunc("GET /api/payments/user/{userId}", h.HandleGetByUser)
	mux.HandleFunc("GET /api/payments/status/{status}", h.HandleGetByStatus)
	mux.HandleFunc("GET /api/payments/health", h.HandleHealth)
}

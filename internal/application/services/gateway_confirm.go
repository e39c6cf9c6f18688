package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/DanielPopoola/shopfront-payment-service/internal/application"
	"github.com/DanielPopoola/shopfront-payment-service/internal/domain"
)

// defaultUserID is recorded when the order's owner cannot be resolved during
// a gateway callback. Losing the charge over a failed ownership lookup is
// worse than attributing it to the fallback account.
const defaultUserID = 1

// ConfirmWithGateway handles the processor-driven confirmation: the gateway
// calls back with an already-authorized charge, we confirm it upstream and
// record a payment that is born COMPLETED. Any failure before the record is
// persisted leaves nothing behind; a failed order notification afterwards
// leaves the COMPLETED record in place, same as Confirm.
func (s *ConfirmService) ConfirmWithGateway(ctx context.Context, cmd GatewayConfirmCommand) (domain.Payment, error) {
	authorization := "Basic " + base64.StdEncoding.EncodeToString([]byte(s.secretKey+":"))

	gatewayResp, err := s.gatewayClient.ConfirmPayment(ctx, authorization, application.GatewayConfirmRequest{
		PaymentKey: cmd.PaymentKey,
		OrderID:    cmd.OrderRef,
		Amount:     cmd.AmountCents,
	})
	if err != nil {
		return domain.Payment{}, application.NewConfirmationFailedError(err)
	}

	orderID, err := parseOrderRef(cmd.OrderRef)
	if err != nil {
		return domain.Payment{}, application.NewConfirmationFailedError(err)
	}

	method, _ := gatewayResp["method"].(string)
	if method == "" {
		method = "UNKNOWN"
	}
	transactionID, _ := gatewayResp["transactionKey"].(string)

	payment, err := domain.NewCompletedPayment(
		orderID,
		s.orderUserID(ctx, orderID),
		cmd.AmountCents,
		method,
		cmd.PaymentKey,
		transactionID,
		time.Now(),
	)
	if err != nil {
		return domain.Payment{}, application.NewConfirmationFailedError(err)
	}

	saved, err := s.paymentRepo.Save(ctx, payment)
	if err != nil {
		return domain.Payment{}, application.NewConfirmationFailedError(err)
	}

	s.logger.Info("gateway payment confirmed",
		"payment_id", saved.ID,
		"order_id", saved.OrderID,
		"payment_key", cmd.PaymentKey,
	)

	if _, err := s.orderClient.UpdateOrderStatus(ctx, orderID, orderStatusConfirmed); err != nil {
		s.logger.Warn("order status update failed after gateway confirmation",
			"payment_id", saved.ID,
			"order_id", saved.OrderID,
			"error", err,
		)
		return saved, application.NewConfirmationFailedError(err)
	}

	return saved, nil
}

// parseOrderRef extracts the numeric order id out of the composite reference
// the processor echoes back, e.g. "ORDER_42_1718031622".
func parseOrderRef(ref string) (int64, error) {
	parts := strings.Split(ref, "_")
	if len(parts) < 2 {
		return 0, fmt.Errorf("malformed order reference %q", ref)
	}
	orderID, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed order reference %q: %w", ref, err)
	}
	return orderID, nil
}

// orderUserID resolves the order's owner, falling back to the default user
// when the lookup fails.
func (s *ConfirmService) orderUserID(ctx context.Context, orderID int64) int64 {
	order, err := s.orderClient.GetOrder(ctx, orderID)
	if err != nil {
		s.logger.Warn("order owner lookup failed, using default user",
			"order_id", orderID,
			"error", err,
		)
		return defaultUserID
	}
	return order.UserID
}

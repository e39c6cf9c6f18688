package postgres

import (
	"github.com/DanielPopoola/shopfront-payment-service/internal/domain"
)

// toDomainModel: maps db model to domain entity
func toDomainModel(m PaymentModel) domain.Payment {
	return domain.Payment{
		ID:                m.ID,
		OrderID:           m.OrderID,
		UserID:            m.UserID,
		AmountCents:       m.AmountCents,
		Method:            m.Method,
		Status:            domain.PaymentStatus(m.Status),
		PaymentKey:        m.PaymentKey,
		TransactionID:     m.TransactionID,
		CancelReason:      m.CancelReason,
		RefundAmountCents: m.RefundAmountCents,
		PaidAt:            m.PaidAt,
		CancelledAt:       m.CancelledAt,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
		Version:           m.Version,
	}
}

// toDBModel: maps domain entity to db model
func toDBModel(p domain.Payment) PaymentModel {
	return PaymentModel{
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
		Version:           p.Version,
	}
}

package services

type CreateCommand struct {
	OrderID     int64
	UserID      int64
	AmountCents int64
	Method      string
}

type CancelCommand struct {
	PaymentID int64
	Reason    string
}

type RefundCommand struct {
	PaymentID         int64
	RefundAmountCents int64
	Reason            string
}

// GatewayConfirmCommand carries the processor callback for an
// already-authorized charge. OrderRef is the composite reference the
// processor echoes back, not a bare order id.
type GatewayConfirmCommand struct {
	PaymentKey  string
	OrderRef    string
	AmountCents int64
}

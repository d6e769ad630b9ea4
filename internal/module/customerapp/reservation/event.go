package reservation

// CheckoutCompletedEvent is the processor's completion callback payload. The
// session id is all it carries; everything else is read back from the
// processor so a forged callback cannot confirm an unpaid reservation.
type CheckoutCompletedEvent struct {
	SessionID string `json:"session_id" validate:"required"`
}

// ConfirmedMessage is published to the notification exchange on every
// terminal confirmation.
type ConfirmedMessage struct {
	ReservationID string `json:"reservation_id"`
	TenantID      string `json:"tenant_id"`
	EventID       string `json:"event_id"`
	EventName     string `json:"event_name"`
	TableName     string `json:"table_name"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	Total         string `json:"total"`
	PaymentStatus string `json:"payment_status"`
}

package reservation

import (
	"time"

	"github.com/shopspring/decimal"
)

// Reservation and payment statuses keep the values the booking front end and
// the tenants' back office already speak.
const (
	StatusPending   string = "Pendente"
	StatusConfirmed string = "Confirmada"
	StatusCancelled string = "Cancelada"

	PaymentPending   string = "Pendente"
	PaymentPaid      string = "Pago"
	PaymentWaived    string = "Dispensado"
	PaymentCancelled string = "Cancelado"
)

type CustomerData struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Observations string `json:"observations"`
}

// TableSnapshot freezes the selected table at selection time. The charge
// amount is always recomputed from this snapshot on the server.
type TableSnapshot struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	SeatCount int64           `json:"seat_count"`
	Location  string          `json:"location"`
}

// Draft is the in-progress reservation held in the session-scoped store
// between the selection step and a terminal outcome.
type Draft struct {
	TenantID  string        `json:"tenant_id"`
	EventID   string        `json:"event_id"`
	EventName string        `json:"event_name"`
	Table     TableSnapshot `json:"table"`
	Customer  CustomerData  `json:"customer"`
	CreatedAt time.Time     `json:"created_at"`
}

type Reservation struct {
	ID                string
	TenantID          string
	EventID           string
	EventName         string
	Table             TableSnapshot
	Customer          CustomerData
	Subtotal          decimal.Decimal
	Fee               decimal.Decimal
	Total             decimal.Decimal
	Status            string
	PaymentStatus     string
	CheckoutSessionID *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

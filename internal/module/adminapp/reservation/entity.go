package reservation

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusPending   string = "Pendente"
	StatusConfirmed string = "Confirmada"
	StatusCancelled string = "Cancelada"

	PaymentPending   string = "Pendente"
	PaymentCancelled string = "Cancelado"
)

type Reservation struct {
	ID                string
	TenantID          string
	EventID           string
	EventName         string
	TableID           string
	TableName         string
	UnitPrice         decimal.Decimal
	SeatCount         int64
	Location          string
	CustomerName      string
	CustomerEmail     string
	CustomerPhone     string
	Observations      string
	Subtotal          decimal.Decimal
	Fee               decimal.Decimal
	Total             decimal.Decimal
	Status            string
	PaymentStatus     string
	CheckoutSessionID *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

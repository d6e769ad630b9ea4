package reservation

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReservationResponse struct {
	ID                string          `json:"id"`
	EventID           string          `json:"event_id"`
	EventName         string          `json:"event_name"`
	TableID           string          `json:"table_id"`
	TableName         string          `json:"table_name"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	SeatCount         int64           `json:"seat_count"`
	Location          string          `json:"location"`
	CustomerName      string          `json:"customer_name"`
	CustomerEmail     string          `json:"customer_email"`
	CustomerPhone     string          `json:"customer_phone"`
	Observations      string          `json:"observations"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	Fee               decimal.Decimal `json:"fee"`
	Total             decimal.Decimal `json:"total"`
	Status            string          `json:"status"`
	PaymentStatus     string          `json:"payment_status"`
	CheckoutSessionID *string         `json:"checkout_session_id"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func (r *ReservationResponse) PopulateFromEntity(rsv Reservation) {
	r.ID = rsv.ID
	r.EventID = rsv.EventID
	r.EventName = rsv.EventName
	r.TableID = rsv.TableID
	r.TableName = rsv.TableName
	r.UnitPrice = rsv.UnitPrice
	r.SeatCount = rsv.SeatCount
	r.Location = rsv.Location
	r.CustomerName = rsv.CustomerName
	r.CustomerEmail = rsv.CustomerEmail
	r.CustomerPhone = rsv.CustomerPhone
	r.Observations = rsv.Observations
	r.Subtotal = rsv.Subtotal
	r.Fee = rsv.Fee
	r.Total = rsv.Total
	r.Status = rsv.Status
	r.PaymentStatus = rsv.PaymentStatus
	r.CheckoutSessionID = rsv.CheckoutSessionID
	r.CreatedAt = rsv.CreatedAt
	r.UpdatedAt = rsv.UpdatedAt
}

type GetManyReservationResponse []ReservationResponse

type GetManyReservationMeta struct {
	Page  int64 `json:"page"`
	Size  int64 `json:"size"`
	Total int64 `json:"total"`
}

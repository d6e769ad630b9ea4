package reservation

import (
	"time"

	"github.com/shopspring/decimal"
)

type TableSnapshotResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	SeatCount int64           `json:"seat_count"`
	Location  string          `json:"location"`
}

type DraftResponse struct {
	EventID   string                `json:"event_id"`
	EventName string                `json:"event_name"`
	Table     TableSnapshotResponse `json:"table"`
	Customer  CustomerData          `json:"customer"`
	Subtotal  decimal.Decimal       `json:"subtotal"`
	Fee       decimal.Decimal       `json:"fee"`
	Total     decimal.Decimal       `json:"total"`
}

func (r *DraftResponse) PopulateFromEntity(d Draft) {
	r.EventID = d.EventID
	r.EventName = d.EventName
	r.Table = TableSnapshotResponse{
		ID:        d.Table.ID,
		Name:      d.Table.Name,
		UnitPrice: d.Table.UnitPrice,
		SeatCount: d.Table.SeatCount,
		Location:  d.Table.Location,
	}
	r.Customer = d.Customer
}

type CreateCheckoutSessionResponse struct {
	URL string `json:"url"`
}

type ReservationResponse struct {
	ID                string                `json:"id"`
	EventID           string                `json:"event_id"`
	EventName         string                `json:"event_name"`
	Table             TableSnapshotResponse `json:"table"`
	Customer          CustomerData          `json:"customer"`
	Subtotal          decimal.Decimal       `json:"subtotal"`
	Fee               decimal.Decimal       `json:"fee"`
	Total             decimal.Decimal       `json:"total"`
	Status            string                `json:"status"`
	PaymentStatus     string                `json:"payment_status"`
	PaymentCollected  bool                  `json:"payment_collected"`
	CheckoutSessionID *string               `json:"checkout_session_id"`
	CreatedAt         time.Time             `json:"created_at"`
	UpdatedAt         time.Time             `json:"updated_at"`
}

func (r *ReservationResponse) PopulateFromEntity(rsv Reservation) {
	r.ID = rsv.ID
	r.EventID = rsv.EventID
	r.EventName = rsv.EventName
	r.Table = TableSnapshotResponse{
		ID:        rsv.Table.ID,
		Name:      rsv.Table.Name,
		UnitPrice: rsv.Table.UnitPrice,
		SeatCount: rsv.Table.SeatCount,
		Location:  rsv.Table.Location,
	}
	r.Customer = rsv.Customer
	r.Subtotal = rsv.Subtotal
	r.Fee = rsv.Fee
	r.Total = rsv.Total
	r.Status = rsv.Status
	r.PaymentStatus = rsv.PaymentStatus
	r.PaymentCollected = rsv.PaymentStatus == PaymentPaid
	r.CheckoutSessionID = rsv.CheckoutSessionID
	r.CreatedAt = rsv.CreatedAt
	r.UpdatedAt = rsv.UpdatedAt
}

type GetManyReservationResponse []ReservationResponse

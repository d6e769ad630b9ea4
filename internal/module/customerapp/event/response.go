package event

import (
	"time"

	"github.com/shopspring/decimal"
)

type TableResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	SeatCount int64           `json:"seat_count"`
	Location  string          `json:"location"`
	Available bool            `json:"available"`
}

type GetEventResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Venue       string          `json:"venue"`
	StartsAt    time.Time       `json:"starts_at"`
	Status      string          `json:"status"`
	ItemLabel   string          `json:"item_label"`
	Tables      []TableResponse `json:"tables"`
}

func (r *GetEventResponse) PopulateFromEntity(e Event, tables []Table) {
	r.ID = e.ID
	r.Name = e.Name
	r.Description = e.Description
	r.Venue = e.Venue
	r.StartsAt = e.StartsAt
	r.Status = e.Status

	tablesResponse := make([]TableResponse, len(tables))
	for k, t := range tables {
		tablesResponse[k] = TableResponse{
			ID:        t.ID,
			Name:      t.Name,
			UnitPrice: t.UnitPrice,
			SeatCount: t.SeatCount,
			Location:  t.Location,
			Available: t.Available,
		}
	}
	r.Tables = tablesResponse
}

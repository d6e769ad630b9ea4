package reservation

type CustomerDataRequest struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"omitempty,min=8"`
	Observations string `json:"observations" validate:"omitempty,max=500"`
}

type SelectedTableRequest struct {
	ID        string `json:"id" validate:"required"`
	Name      string `json:"name" validate:"required"`
	UnitPrice string `json:"unit_price" validate:"required"`
	SeatCount int64  `json:"seat_count" validate:"required,min=1"`
	Location  string `json:"location"`
}

type SaveDraftRequest struct {
	EventID      string              `json:"event_id" validate:"required"`
	TableID      string              `json:"table_id" validate:"required"`
	CustomerData CustomerDataRequest `json:"customer_data" validate:"required"`
}

type CreateCheckoutSessionRequest struct {
	EventID       string               `json:"event_id" validate:"required"`
	ItemID        string               `json:"item_id" validate:"required"`
	CustomerData  CustomerDataRequest  `json:"customer_data" validate:"required"`
	SelectedTable SelectedTableRequest `json:"selected_table" validate:"required"`
}

type GetManyReservationRequest struct {
	Page int64 `validate:"required,min=1"`
	Size int64 `validate:"required,min=1,max=100"`
}

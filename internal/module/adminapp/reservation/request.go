package reservation

type GetManyReservationRequest struct {
	Page int64 `validate:"required,min=1"`
	Size int64 `validate:"required,min=1,max=100"`
}

type CancelReservationRequest struct {
	ID string `validate:"required"`
}

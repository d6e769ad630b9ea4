package reservation

import (
	"context"
	"net/http"
	"time"

	"github.com/andersonbelino29/eventmate-pro-sub001/internal/module/customerapp/tenant"
	"github.com/andersonbelino29/eventmate-pro-sub001/pkg/errors"
	"github.com/andersonbelino29/eventmate-pro-sub001/pkg/monitoring"
	"github.com/andersonbelino29/eventmate-pro-sub001/pkg/status"
	"github.com/sirupsen/logrus"
)

type ReservationUseCase interface {
	GetManyReservation(ctx context.Context, req GetManyReservationRequest) (GetManyReservationResponse, GetManyReservationMeta, error)
	CancelReservation(ctx context.Context, req CancelReservationRequest) (ReservationResponse, error)
}

type reservationUseCase struct {
	logger                *logrus.Logger
	timeout               time.Duration
	reservationRepository ReservationRepository
}

type ReservationUseCaseProperty struct {
	Logger                *logrus.Logger
	Timeout               time.Duration
	ReservationRepository ReservationRepository
}

func NewReservationUseCase(props ReservationUseCaseProperty) ReservationUseCase {
	return &reservationUseCase{
		logger:                props.Logger,
		timeout:               props.Timeout,
		reservationRepository: props.ReservationRepository,
	}
}

// GetManyReservation implements ReservationUseCase.
func (u *reservationUseCase) GetManyReservation(ctx context.Context, req GetManyReservationRequest) (GetManyReservationResponse, GetManyReservationMeta, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	t, err := tenant.FromCtx(ctx)
	if err != nil {
		return nil, GetManyReservationMeta{}, err
	}

	offset := (req.Page - 1) * req.Size

	reservations, err := u.reservationRepository.FindMany(ctx, t.ID, offset, req.Size, nil)
	if err != nil {
		return nil, GetManyReservationMeta{}, err
	}

	total, err := u.reservationRepository.Count(ctx, t.ID, nil)
	if err != nil {
		return nil, GetManyReservationMeta{}, err
	}

	resp := make(GetManyReservationResponse, len(reservations))
	for k, rsv := range reservations {
		r := ReservationResponse{}
		r.PopulateFromEntity(rsv)
		resp[k] = r
	}

	meta := GetManyReservationMeta{
		Page:  req.Page,
		Size:  req.Size,
		Total: total,
	}

	return resp, meta, nil
}

// CancelReservation implements ReservationUseCase. Cancellation is one-way:
// only Pendente and Confirmada reservations may transition, and a cancelled
// one never leaves Cancelada through this flow.
func (u *reservationUseCase) CancelReservation(ctx context.Context, req CancelReservationRequest) (ReservationResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	t, err := tenant.FromCtx(ctx)
	if err != nil {
		return ReservationResponse{}, err
	}

	tx, err := u.reservationRepository.BeginTx(ctx)
	if err != nil {
		return ReservationResponse{}, err
	}

	rsv, err := u.reservationRepository.FindByID(ctx, t.ID, req.ID, tx)
	if err != nil {
		u.reservationRepository.Rollback(ctx, tx)
		return ReservationResponse{}, err
	}

	if rsv.Status != StatusPending && rsv.Status != StatusConfirmed {
		u.reservationRepository.Rollback(ctx, tx)
		return ReservationResponse{}, errors.New(http.StatusConflict, status.CONFLICT, "reservation can no longer be cancelled")
	}

	rsv.Status = StatusCancelled
	rsv.PaymentStatus = PaymentCancelled
	rsv.UpdatedAt = time.Now()

	if err := u.reservationRepository.Update(ctx, rsv.ID, rsv, tx); err != nil {
		u.reservationRepository.Rollback(ctx, tx)
		return ReservationResponse{}, err
	}

	if err := u.reservationRepository.CommitTx(ctx, tx); err != nil {
		return ReservationResponse{}, err
	}

	monitoring.RecordReservationCancelled(t.Subdomain)

	resp := ReservationResponse{}
	resp.PopulateFromEntity(rsv)

	return resp, nil
}

package reservation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/andersonbelino29/eventmate-pro-sub001/internal/module/customerapp/event"
	"github.com/andersonbelino29/eventmate-pro-sub001/internal/module/customerapp/stripe"
	"github.com/andersonbelino29/eventmate-pro-sub001/internal/module/customerapp/tenant"
	"github.com/andersonbelino29/eventmate-pro-sub001/internal/pkg/pricing"
	"github.com/andersonbelino29/eventmate-pro-sub001/internal/pkg/session"
	"github.com/andersonbelino29/eventmate-pro-sub001/internal/pkg/util"
	"github.com/andersonbelino29/eventmate-pro-sub001/pkg/broker"
	"github.com/andersonbelino29/eventmate-pro-sub001/pkg/errors"
	"github.com/andersonbelino29/eventmate-pro-sub001/pkg/monitoring"
	"github.com/andersonbelino29/eventmate-pro-sub001/pkg/status"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type ReservationUseCase interface {
	SaveDraft(ctx context.Context, sessionID string, req SaveDraftRequest) (DraftResponse, error)
	LoadDraft(ctx context.Context, sessionID string) (DraftResponse, error)
	ClearDraft(ctx context.Context, sessionID string) error
	CreateCheckoutSession(ctx context.Context, origin string, req CreateCheckoutSessionRequest) (CreateCheckoutSessionResponse, error)
	ConfirmWithoutPayment(ctx context.Context, sessionID string) (ReservationResponse, error)
	OnCheckoutCompleted(ctx context.Context, e CheckoutCompletedEvent) error
	GetManyReservation(ctx context.Context, req GetManyReservationRequest) (GetManyReservationResponse, error)
}

type reservationUseCase struct {
	logger                *logrus.Logger
	timeout               time.Duration
	baseURL               string
	currency              string
	eventRepository       event.EventRepository
	tableRepository       event.TableRepository
	draftRepository       DraftRepository
	reservationRepository ReservationRepository
	stripeRepository      stripe.StripeRepository
	publisher             broker.Publisher
}

type ReservationUseCaseProperty struct {
	Logger                *logrus.Logger
	Timeout               time.Duration
	BaseURL               string
	Currency              string
	EventRepository       event.EventRepository
	TableRepository       event.TableRepository
	DraftRepository       DraftRepository
	ReservationRepository ReservationRepository
	StripeRepository      stripe.StripeRepository
	Publisher             broker.Publisher
}

func NewReservationUseCase(props ReservationUseCaseProperty) ReservationUseCase {
	return &reservationUseCase{
		logger:                props.Logger,
		timeout:               props.Timeout,
		baseURL:               props.BaseURL,
		currency:              props.Currency,
		eventRepository:       props.EventRepository,
		tableRepository:       props.TableRepository,
		draftRepository:       props.DraftRepository,
		reservationRepository: props.ReservationRepository,
		stripeRepository:      props.StripeRepository,
		publisher:             props.Publisher,
	}
}

// SaveDraft implements ReservationUseCase. The table snapshot is taken from
// the catalog, never from the client, so the draft's unit price is already
// authoritative.
func (u *reservationUseCase) SaveDraft(ctx context.Context, sessionID string, req SaveDraftRequest) (DraftResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	t, err := tenant.FromCtx(ctx)
	if err != nil {
		return DraftResponse{}, err
	}

	e, err := u.eventRepository.FindByID(ctx, t.ID, req.EventID)
	if err != nil {
		return DraftResponse{}, err
	}

	tbl, err := u.tableRepository.FindByID(ctx, req.TableID)
	if err != nil {
		return DraftResponse{}, err
	}

	if tbl.EventID != e.ID {
		return DraftResponse{}, errors.New(http.StatusBadRequest, status.BAD_REQUEST, "invalid table id")
	}

	if !tbl.Available {
		return DraftResponse{}, errors.New(http.StatusConflict, status.CONFLICT, "table is no longer available")
	}

	draft := Draft{
		TenantID:  t.ID,
		EventID:   e.ID,
		EventName: e.Name,
		Table: TableSnapshot{
			ID:        tbl.ID,
			Name:      tbl.Name,
			UnitPrice: tbl.UnitPrice,
			SeatCount: tbl.SeatCount,
			Location:  tbl.Location,
		},
		Customer: CustomerData{
			Name:         req.CustomerData.Name,
			Email:        req.CustomerData.Email,
			Phone:        req.CustomerData.Phone,
			Observations: req.CustomerData.Observations,
		},
		CreatedAt: time.Now(),
	}

	if err := u.draftRepository.Save(ctx, sessionID, draft); err != nil {
		return DraftResponse{}, err
	}

	return u.draftResponse(draft, t)
}

// LoadDraft implements ReservationUseCase.
func (u *reservationUseCase) LoadDraft(ctx context.Context, sessionID string) (DraftResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	t, err := tenant.FromCtx(ctx)
	if err != nil {
		return DraftResponse{}, err
	}

	draft, err := u.draftRepository.Load(ctx, t.ID, sessionID)
	if err != nil {
		return DraftResponse{}, err
	}

	return u.draftResponse(draft, t)
}

// ClearDraft implements ReservationUseCase.
func (u *reservationUseCase) ClearDraft(ctx context.Context, sessionID string) error {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	t, err := tenant.FromCtx(ctx)
	if err != nil {
		return err
	}

	return u.draftRepository.Clear(ctx, t.ID, sessionID)
}

// CreateCheckoutSession implements ReservationUseCase. The charge amount is
// recomputed here from the submitted table snapshot; a client-supplied total
// is never part of the request shape, so tampering with it has no effect.
func (u *reservationUseCase) CreateCheckoutSession(ctx context.Context, origin string, req CreateCheckoutSessionRequest) (CreateCheckoutSessionResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	t, err := tenant.FromCtx(ctx)
	if err != nil {
		return CreateCheckoutSessionResponse{}, err
	}

	if !t.PaymentConfig.Enabled {
		return CreateCheckoutSessionResponse{}, errors.New(http.StatusBadRequest, status.BAD_REQUEST, "online payment is not enabled for this tenant")
	}

	if req.SelectedTable.ID != req.ItemID {
		return CreateCheckoutSessionResponse{}, errors.New(http.StatusBadRequest, status.BAD_REQUEST, "invalid item id")
	}

	e, err := u.eventRepository.FindByID(ctx, t.ID, req.EventID)
	if err != nil {
		return CreateCheckoutSessionResponse{}, err
	}

	unitPrice, err := decimal.NewFromString(req.SelectedTable.UnitPrice)
	if err != nil {
		return CreateCheckoutSessionResponse{}, errors.New(http.StatusBadRequest, status.BAD_REQUEST, "invalid unit price")
	}

	breakdown, err := pricing.Calculate(unitPrice, req.SelectedTable.SeatCount, t.PaymentConfig.ServiceFeePercent)
	if err != nil {
		return CreateCheckoutSessionResponse{}, err
	}

	customer, found, err := u.stripeRepository.FindCustomerByEmail(ctx, req.CustomerData.Email)
	if err != nil {
		monitoring.RecordCheckoutSession(t.Subdomain, "failed")
		return CreateCheckoutSessionResponse{}, err
	}

	if !found {
		customer, err = u.stripeRepository.CreateCustomer(ctx, stripe.CreateCustomerRequest{
			Email: req.CustomerData.Email,
			Name:  req.CustomerData.Name,
			Phone: req.CustomerData.Phone,
			Metadata: map[string]string{
				"tenant_id": t.ID,
				"event_id":  e.ID,
			},
		})
		if err != nil {
			monitoring.RecordCheckoutSession(t.Subdomain, "failed")
			return CreateCheckoutSessionResponse{}, err
		}
	}

	// The metadata must round-trip losslessly: until the completion callback
	// writes the booking record, the processor holds the only copy of the
	// reservation context.
	metadata := map[string]string{
		"tenant_id":      t.ID,
		"event_id":       e.ID,
		"event_name":     e.Name,
		"table_id":       req.SelectedTable.ID,
		"table_name":     req.SelectedTable.Name,
		"seat_count":     fmt.Sprintf("%d", req.SelectedTable.SeatCount),
		"customer_name":  req.CustomerData.Name,
		"customer_email": req.CustomerData.Email,
		"customer_phone": req.CustomerData.Phone,
		"observations":   req.CustomerData.Observations,
	}

	price, err := u.stripeRepository.CreatePrice(ctx, stripe.CreatePriceRequest{
		ProductName: fmt.Sprintf("%s - %s", req.SelectedTable.Name, e.Name),
		UnitAmount:  breakdown.Total.Shift(2).IntPart(),
		Currency:    u.currency,
		Metadata:    metadata,
	})
	if err != nil {
		monitoring.RecordCheckoutSession(t.Subdomain, "failed")
		return CreateCheckoutSessionResponse{}, err
	}

	if origin == "" {
		origin = u.baseURL
	}

	cs, err := u.stripeRepository.CreateCheckoutSession(ctx, stripe.CreateCheckoutSessionRequest{
		CustomerID: customer.ID,
		PriceID:    price.ID,
		Quantity:   1,
		SuccessURL: fmt.Sprintf("%s/payment-success?session_id={CHECKOUT_SESSION_ID}", origin),
		CancelURL:  fmt.Sprintf("%s/evento/%s/reservar", origin, e.ID),
		Metadata:   metadata,
	})
	if err != nil {
		monitoring.RecordCheckoutSession(t.Subdomain, "failed")
		return CreateCheckoutSessionResponse{}, err
	}

	now := time.Now()
	rsv := Reservation{
		ID:        util.GenerateTimestampWithPrefix("RV"),
		TenantID:  t.ID,
		EventID:   e.ID,
		EventName: e.Name,
		Table: TableSnapshot{
			ID:        req.SelectedTable.ID,
			Name:      req.SelectedTable.Name,
			UnitPrice: unitPrice,
			SeatCount: req.SelectedTable.SeatCount,
			Location:  req.SelectedTable.Location,
		},
		Customer: CustomerData{
			Name:         req.CustomerData.Name,
			Email:        req.CustomerData.Email,
			Phone:        req.CustomerData.Phone,
			Observations: req.CustomerData.Observations,
		},
		Subtotal:          breakdown.Subtotal,
		Fee:               breakdown.Fee,
		Total:             breakdown.Total,
		Status:            StatusPending,
		PaymentStatus:     PaymentPending,
		CheckoutSessionID: &cs.ID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := u.reservationRepository.Save(ctx, rsv, nil); err != nil {
		monitoring.RecordCheckoutSession(t.Subdomain, "failed")
		return CreateCheckoutSessionResponse{}, err
	}

	monitoring.RecordCheckoutSession(t.Subdomain, "created")

	return CreateCheckoutSessionResponse{URL: cs.URL}, nil
}

// ConfirmWithoutPayment implements ReservationUseCase. A persistence failure
// leaves the draft in place so the visitor can retry.
func (u *reservationUseCase) ConfirmWithoutPayment(ctx context.Context, sessionID string) (ReservationResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	t, err := tenant.FromCtx(ctx)
	if err != nil {
		return ReservationResponse{}, err
	}

	draft, err := u.draftRepository.Load(ctx, t.ID, sessionID)
	if err != nil {
		return ReservationResponse{}, err
	}

	breakdown, err := pricing.Calculate(draft.Table.UnitPrice, draft.Table.SeatCount, t.PaymentConfig.ServiceFeePercent)
	if err != nil {
		return ReservationResponse{}, err
	}

	now := time.Now()
	rsv := Reservation{
		ID:            util.GenerateTimestampWithPrefix("RV"),
		TenantID:      t.ID,
		EventID:       draft.EventID,
		EventName:     draft.EventName,
		Table:         draft.Table,
		Customer:      draft.Customer,
		Subtotal:      breakdown.Subtotal,
		Fee:           breakdown.Fee,
		Total:         breakdown.Total,
		Status:        StatusConfirmed,
		PaymentStatus: PaymentWaived,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := u.reservationRepository.Save(ctx, rsv, nil); err != nil {
		return ReservationResponse{}, err
	}

	if err := u.draftRepository.Clear(ctx, t.ID, sessionID); err != nil {
		u.logger.WithContext(ctx).WithError(err).Warn("reservation draft could not be cleared after confirmation")
	}

	u.publishConfirmed(ctx, rsv)
	monitoring.RecordReservationConfirmed(t.Subdomain, PaymentWaived)

	resp := ReservationResponse{}
	resp.PopulateFromEntity(rsv)

	return resp, nil
}

// OnCheckoutCompleted implements ReservationUseCase. The session is read
// back from the processor; callbacks for unpaid or unknown sessions are
// ignored, and a reservation that already left Pendente stays put.
func (u *reservationUseCase) OnCheckoutCompleted(ctx context.Context, e CheckoutCompletedEvent) error {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	cs, err := u.stripeRepository.GetCheckoutSession(ctx, e.SessionID)
	if err != nil {
		return err
	}

	if cs.PaymentStatus != "paid" {
		return nil
	}

	tx, err := u.reservationRepository.BeginTx(ctx)
	if err != nil {
		return err
	}

	rsv, err := u.reservationRepository.FindByCheckoutSessionID(ctx, cs.ID, tx)
	if err != nil {
		u.reservationRepository.Rollback(ctx, tx)
		return err
	}

	if rsv.Status != StatusPending {
		u.reservationRepository.Rollback(ctx, tx)
		return nil
	}

	rsv.Status = StatusConfirmed
	rsv.PaymentStatus = PaymentPaid
	rsv.UpdatedAt = time.Now()

	if err := u.reservationRepository.Update(ctx, rsv.ID, rsv, tx); err != nil {
		u.reservationRepository.Rollback(ctx, tx)
		return err
	}

	if err := u.reservationRepository.CommitTx(ctx, tx); err != nil {
		return err
	}

	u.publishConfirmed(ctx, rsv)
	monitoring.RecordReservationConfirmed(rsv.TenantID, PaymentPaid)

	return nil
}

// GetManyReservation implements ReservationUseCase.
func (u *reservationUseCase) GetManyReservation(ctx context.Context, req GetManyReservationRequest) (GetManyReservationResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	t, err := tenant.FromCtx(ctx)
	if err != nil {
		return nil, err
	}

	acc, err := session.GetAccountFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	offset := (req.Page - 1) * req.Size

	reservations, err := u.reservationRepository.FindManyByCustomerEmail(ctx, t.ID, acc.Email, offset, req.Size, nil)
	if err != nil {
		return nil, err
	}

	resp := make(GetManyReservationResponse, len(reservations))
	for k, rsv := range reservations {
		r := ReservationResponse{}
		r.PopulateFromEntity(rsv)
		resp[k] = r
	}

	return resp, nil
}

func (u *reservationUseCase) draftResponse(draft Draft, t tenant.Tenant) (DraftResponse, error) {
	breakdown, err := pricing.Calculate(draft.Table.UnitPrice, draft.Table.SeatCount, t.PaymentConfig.ServiceFeePercent)
	if err != nil {
		return DraftResponse{}, err
	}

	resp := DraftResponse{}
	resp.PopulateFromEntity(draft)
	resp.Subtotal = breakdown.Subtotal
	resp.Fee = breakdown.Fee
	resp.Total = breakdown.Total

	return resp, nil
}

func (u *reservationUseCase) publishConfirmed(ctx context.Context, rsv Reservation) {
	msg := ConfirmedMessage{
		ReservationID: rsv.ID,
		TenantID:      rsv.TenantID,
		EventID:       rsv.EventID,
		EventName:     rsv.EventName,
		TableName:     rsv.Table.Name,
		CustomerName:  rsv.Customer.Name,
		CustomerEmail: rsv.Customer.Email,
		Total:         rsv.Total.StringFixed(2),
		PaymentStatus: rsv.PaymentStatus,
	}

	buff, _ := json.Marshal(msg)
	if err := u.publisher.Publish(ctx, "reservation-confirmed", buff); err != nil {
		u.logger.WithContext(ctx).WithError(err).Warn("reservation confirmation message could not be published")
	}
}

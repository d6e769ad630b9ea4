package reservation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	appErrors "github.com/andersonbelino29/eventmate-pro-sub001/pkg/errors"
	"github.com/andersonbelino29/eventmate-pro-sub001/pkg/response"
	"github.com/andersonbelino29/eventmate-pro-sub001/pkg/status"
	"github.com/andersonbelino29/eventmate-pro-sub001/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockReservationUseCase struct {
	mock.Mock
}

func (m *mockReservationUseCase) SaveDraft(ctx context.Context, sessionID string, req SaveDraftRequest) (DraftResponse, error) {
	args := m.Called(ctx, sessionID, req)
	return args.Get(0).(DraftResponse), args.Error(1)
}

func (m *mockReservationUseCase) LoadDraft(ctx context.Context, sessionID string) (DraftResponse, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(DraftResponse), args.Error(1)
}

func (m *mockReservationUseCase) ClearDraft(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *mockReservationUseCase) CreateCheckoutSession(ctx context.Context, origin string, req CreateCheckoutSessionRequest) (CreateCheckoutSessionResponse, error) {
	args := m.Called(ctx, origin, req)
	return args.Get(0).(CreateCheckoutSessionResponse), args.Error(1)
}

func (m *mockReservationUseCase) ConfirmWithoutPayment(ctx context.Context, sessionID string) (ReservationResponse, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(ReservationResponse), args.Error(1)
}

func (m *mockReservationUseCase) OnCheckoutCompleted(ctx context.Context, e CheckoutCompletedEvent) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *mockReservationUseCase) GetManyReservation(ctx context.Context, req GetManyReservationRequest) (GetManyReservationResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(GetManyReservationResponse), args.Error(1)
}

func setupHandler() (HTTPHandler, *mockReservationUseCase) {
	uc := &mockReservationUseCase{}
	handler := HTTPHandler{
		Validate:           validator.Get(),
		ReservationUseCase: uc,
	}

	return handler, uc
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.RESTEnvelope {
	t.Helper()

	envelope := response.RESTEnvelope{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))

	return envelope
}

func TestSaveDraftMissingSessionHeader(t *testing.T) {
	handler, uc := setupHandler()

	r := httptest.NewRequest(http.MethodPut, "/v1/customerapp/reservation-draft", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	handler.SaveDraft(rec, r)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, status.BAD_REQUEST, envelope.Status)
	assert.Contains(t, envelope.Message, "X-Session-ID")
	uc.AssertNotCalled(t, "SaveDraft", mock.Anything, mock.Anything, mock.Anything)
}

func TestSaveDraftRejectsMalformedBody(t *testing.T) {
	handler, uc := setupHandler()

	r := httptest.NewRequest(http.MethodPut, "/v1/customerapp/reservation-draft", strings.NewReader(`{"event_id":`))
	r.Header.Set("X-Session-ID", "sess-abc")
	rec := httptest.NewRecorder()

	handler.SaveDraft(rec, r)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	uc.AssertNotCalled(t, "SaveDraft", mock.Anything, mock.Anything, mock.Anything)
}

func TestSaveDraftRejectsIncompletePayload(t *testing.T) {
	handler, uc := setupHandler()

	body := `{"event_id":"EV-1","customer_data":{"name":"Maria Silva","email":"maria@example.com"}}`
	r := httptest.NewRequest(http.MethodPut, "/v1/customerapp/reservation-draft", strings.NewReader(body))
	r.Header.Set("X-Session-ID", "sess-abc")
	rec := httptest.NewRecorder()

	handler.SaveDraft(rec, r)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Contains(t, envelope.Message, "TableID")
	uc.AssertNotCalled(t, "SaveDraft", mock.Anything, mock.Anything, mock.Anything)
}

func TestConfirmWithoutPaymentMapsDraftNotFound(t *testing.T) {
	handler, uc := setupHandler()

	uc.On("ConfirmWithoutPayment", mock.Anything, "sess-gone").
		Return(ReservationResponse{}, appErrors.New(http.StatusNotFound, status.DRAFT_NOT_FOUND, "there is no reservation in progress for this session"))

	r := httptest.NewRequest(http.MethodPost, "/v1/customerapp/reservations/confirm", nil)
	r.Header.Set("X-Session-ID", "sess-gone")
	rec := httptest.NewRecorder()

	handler.ConfirmWithoutPayment(rec, r)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, status.DRAFT_NOT_FOUND, envelope.Status)
}

func TestConfirmWithoutPaymentCreated(t *testing.T) {
	handler, uc := setupHandler()

	uc.On("ConfirmWithoutPayment", mock.Anything, "sess-abc").
		Return(ReservationResponse{ID: "RV-1", Status: StatusConfirmed, PaymentStatus: PaymentWaived}, nil)

	r := httptest.NewRequest(http.MethodPost, "/v1/customerapp/reservations/confirm", nil)
	r.Header.Set("X-Session-ID", "sess-abc")
	rec := httptest.NewRecorder()

	handler.ConfirmWithoutPayment(rec, r)

	assert.Equal(t, http.StatusCreated, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, status.CREATED, envelope.Status)
}

func TestOnCheckoutCompletedRejectsMissingSessionID(t *testing.T) {
	handler, uc := setupHandler()

	r := httptest.NewRequest(http.MethodPost, "/v1/customerapp/checkout-sessions/on-completed", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	handler.OnCheckoutCompleted(rec, r)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "OnCheckoutCompleted", mock.Anything, mock.Anything)
}

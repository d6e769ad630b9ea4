package reservation

import (
	"context"
	"database/sql"
	"net/http"
	"testing"
	"time"

	"github.com/andersonbelino29/eventmate-pro-sub001/internal/module/customerapp/tenant"
	appErrors "github.com/andersonbelino29/eventmate-pro-sub001/pkg/errors"
	"github.com/andersonbelino29/eventmate-pro-sub001/pkg/status"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockReservationRepository struct {
	mock.Mock
}

func (m *mockReservationRepository) BeginTx(ctx context.Context) (*sql.Tx, error) {
	args := m.Called(ctx)
	return nil, args.Error(1)
}

func (m *mockReservationRepository) CommitTx(ctx context.Context, tx *sql.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *mockReservationRepository) Rollback(ctx context.Context, tx *sql.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *mockReservationRepository) FindByID(ctx context.Context, tenantID, ID string, tx *sql.Tx) (Reservation, error) {
	args := m.Called(ctx, tenantID, ID, tx)
	return args.Get(0).(Reservation), args.Error(1)
}

func (m *mockReservationRepository) FindMany(ctx context.Context, tenantID string, offset, limit int64, tx *sql.Tx) ([]Reservation, error) {
	args := m.Called(ctx, tenantID, offset, limit, tx)
	return args.Get(0).([]Reservation), args.Error(1)
}

func (m *mockReservationRepository) Count(ctx context.Context, tenantID string, tx *sql.Tx) (int64, error) {
	args := m.Called(ctx, tenantID, tx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockReservationRepository) Update(ctx context.Context, ID string, rsv Reservation, tx *sql.Tx) error {
	args := m.Called(ctx, ID, rsv, tx)
	return args.Error(0)
}

func adminContext() context.Context {
	return tenant.SetToCtx(context.Background(), tenant.Tenant{
		ID:        "tn-001",
		Subdomain: "demo",
	})
}

func setupUseCase() (ReservationUseCase, *mockReservationRepository) {
	repo := &mockReservationRepository{}
	u := NewReservationUseCase(ReservationUseCaseProperty{
		Logger:                logrus.New(),
		Timeout:               5 * time.Second,
		ReservationRepository: repo,
	})

	return u, repo
}

func TestCancelReservation(t *testing.T) {
	testCases := []struct {
		name   string
		status string
	}{
		{name: "pending reservation", status: StatusPending},
		{name: "confirmed reservation", status: StatusConfirmed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			u, repo := setupUseCase()

			repo.On("BeginTx", mock.Anything).Return(nil, nil)
			repo.On("FindByID", mock.Anything, "tn-001", "RV-1", (*sql.Tx)(nil)).Return(Reservation{
				ID:            "RV-1",
				TenantID:      "tn-001",
				Status:        tc.status,
				PaymentStatus: PaymentPending,
				Total:         decimal.RequireFromString("1320.00"),
			}, nil)
			repo.On("Update", mock.Anything, "RV-1", mock.MatchedBy(func(rsv Reservation) bool {
				return rsv.Status == StatusCancelled && rsv.PaymentStatus == PaymentCancelled
			}), (*sql.Tx)(nil)).Return(nil)
			repo.On("CommitTx", mock.Anything, (*sql.Tx)(nil)).Return(nil)

			resp, err := u.CancelReservation(adminContext(), CancelReservationRequest{ID: "RV-1"})
			require.NoError(t, err)

			assert.Equal(t, StatusCancelled, resp.Status)
			assert.Equal(t, PaymentCancelled, resp.PaymentStatus)
			repo.AssertExpectations(t)
		})
	}
}

func TestCancelReservationAlreadyCancelled(t *testing.T) {
	u, repo := setupUseCase()

	repo.On("BeginTx", mock.Anything).Return(nil, nil)
	repo.On("FindByID", mock.Anything, "tn-001", "RV-1", (*sql.Tx)(nil)).Return(Reservation{
		ID:     "RV-1",
		Status: StatusCancelled,
	}, nil)
	repo.On("Rollback", mock.Anything, (*sql.Tx)(nil)).Return(nil)

	_, err := u.CancelReservation(adminContext(), CancelReservationRequest{ID: "RV-1"})
	require.Error(t, err)

	ae := appErrors.Destruct(err)
	assert.Equal(t, http.StatusConflict, ae.HTTPStatusCode)
	assert.Equal(t, status.CONFLICT, ae.Status)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCancelReservationUnknownID(t *testing.T) {
	u, repo := setupUseCase()

	repo.On("BeginTx", mock.Anything).Return(nil, nil)
	repo.On("FindByID", mock.Anything, "tn-001", "RV-404", (*sql.Tx)(nil)).
		Return(Reservation{}, appErrors.New(http.StatusNotFound, status.NOT_FOUND, "reservation not found"))
	repo.On("Rollback", mock.Anything, (*sql.Tx)(nil)).Return(nil)

	_, err := u.CancelReservation(adminContext(), CancelReservationRequest{ID: "RV-404"})
	require.Error(t, err)

	ae := appErrors.Destruct(err)
	assert.Equal(t, http.StatusNotFound, ae.HTTPStatusCode)
}

func TestGetManyReservation(t *testing.T) {
	u, repo := setupUseCase()

	repo.On("FindMany", mock.Anything, "tn-001", int64(20), int64(10), (*sql.Tx)(nil)).Return([]Reservation{
		{ID: "RV-1", Status: StatusConfirmed, Total: decimal.RequireFromString("1320.00")},
		{ID: "RV-2", Status: StatusPending, Total: decimal.RequireFromString("89.00")},
	}, nil)
	repo.On("Count", mock.Anything, "tn-001", (*sql.Tx)(nil)).Return(int64(42), nil)

	resp, meta, err := u.GetManyReservation(adminContext(), GetManyReservationRequest{Page: 3, Size: 10})
	require.NoError(t, err)

	require.Len(t, resp, 2)
	assert.Equal(t, "RV-1", resp[0].ID)
	assert.Equal(t, int64(3), meta.Page)
	assert.Equal(t, int64(42), meta.Total)
}

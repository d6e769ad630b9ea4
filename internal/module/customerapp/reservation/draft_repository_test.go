package reservation

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDraft() Draft {
	return Draft{
		TenantID:  "tn-001",
		EventID:   "EV-1",
		EventName: "Festa Junina",
		Table: TableSnapshot{
			ID:        "TB-1",
			Name:      "Mesa 01",
			UnitPrice: decimal.RequireFromString("150.00"),
			SeatCount: 8,
			Location:  "Salão principal",
		},
		Customer: CustomerData{
			Name:  "Maria Silva",
			Email: "maria@example.com",
		},
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestDraftRepositorySaveOverwrites(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := NewDraftRepository(logrus.New(), client, 30*time.Minute)

	draft := testDraft()
	buff, _ := json.Marshal(draft)

	mock.ExpectSet("reservation:draft:tn-001:sess-abc", buff, 30*time.Minute).SetVal("OK")

	err := repo.Save(context.Background(), "sess-abc", draft)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDraftRepositoryLoad(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := NewDraftRepository(logrus.New(), client, 30*time.Minute)

	draft := testDraft()
	buff, _ := json.Marshal(draft)

	mock.ExpectGet("reservation:draft:tn-001:sess-abc").SetVal(string(buff))

	loaded, err := repo.Load(context.Background(), "tn-001", "sess-abc")
	require.NoError(t, err)

	assert.Equal(t, draft.EventID, loaded.EventID)
	assert.Equal(t, draft.Customer.Email, loaded.Customer.Email)
	assert.True(t, draft.Table.UnitPrice.Equal(loaded.Table.UnitPrice))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDraftRepositoryLoadAbsent(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := NewDraftRepository(logrus.New(), client, 30*time.Minute)

	mock.ExpectGet("reservation:draft:tn-001:sess-missing").RedisNil()

	_, err := repo.Load(context.Background(), "tn-001", "sess-missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no reservation in progress")
}

func TestDraftRepositoryClear(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := NewDraftRepository(logrus.New(), client, 30*time.Minute)

	mock.ExpectDel("reservation:draft:tn-001:sess-abc").SetVal(1)

	err := repo.Clear(context.Background(), "tn-001", "sess-abc")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

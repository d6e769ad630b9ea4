package middleware

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/andersonbelino29/eventmate-pro-sub001/internal/module/customerapp/tenant"
	"github.com/andersonbelino29/eventmate-pro-sub001/internal/pkg/jwt"
	"github.com/andersonbelino29/eventmate-pro-sub001/internal/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSessionStore struct {
	mock.Mock
}

func (m *mockSessionStore) Set(ctx context.Context, account session.Account, ttl time.Duration) error {
	args := m.Called(ctx, account, ttl)
	return args.Error(0)
}

func (m *mockSessionStore) Get(ctx context.Context, accountID int64) (session.Account, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(session.Account), args.Error(1)
}

func (m *mockSessionStore) Delete(ctx context.Context, accountID int64) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

func testJSONWebToken(t *testing.T) *jwt.JSONWebToken {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	privPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})
	pubBytes, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)

	pubPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "PUBLIC KEY",
		Bytes: pubBytes,
	})

	jsonWebToken, err := jwt.NewJSONWebToken(string(privPEM), string(pubPEM))
	require.NoError(t, err)

	return jsonWebToken
}

func signedRequest(t *testing.T, jsonWebToken *jwt.JSONWebToken, accountID int64, tenantID string) *http.Request {
	t.Helper()

	token, err := jsonWebToken.Sign(jwt.Claims{AccountID: accountID, TenantID: tenantID}, time.Minute)
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/v1/customerapp/reservations", nil)
	r.Header.Set("Authorization", "Bearer "+token)

	return r.WithContext(tenant.SetToCtx(r.Context(), tenant.Tenant{ID: tenantID, Subdomain: "demo"}))
}

func TestCustomerSessionRejectsMissingToken(t *testing.T) {
	jsonWebToken := testJSONWebToken(t)
	store := &mockSessionStore{}

	m := NewCustomerSessionMiddleware(jsonWebToken, store)

	r := httptest.NewRequest(http.MethodGet, "/v1/customerapp/reservations", nil)
	rec := httptest.NewRecorder()

	m.Verify(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	})(rec, r)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCustomerSessionRejectsForeignTenant(t *testing.T) {
	jsonWebToken := testJSONWebToken(t)
	store := &mockSessionStore{}
	store.On("Get", mock.Anything, int64(7)).Return(session.Account{ID: 7, TenantID: "tn-other", Role: session.RoleCustomer}, nil)

	m := NewCustomerSessionMiddleware(jsonWebToken, store)

	r := signedRequest(t, jsonWebToken, 7, "tn-001")
	rec := httptest.NewRecorder()

	m.Verify(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	})(rec, r)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCustomerSessionInjectsAccount(t *testing.T) {
	jsonWebToken := testJSONWebToken(t)
	store := &mockSessionStore{}
	store.On("Get", mock.Anything, int64(7)).Return(session.Account{ID: 7, Email: "maria@example.com", TenantID: "tn-001", Role: session.RoleCustomer}, nil)

	m := NewCustomerSessionMiddleware(jsonWebToken, store)

	r := signedRequest(t, jsonWebToken, 7, "tn-001")
	rec := httptest.NewRecorder()

	reached := false
	m.Verify(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		account, err := session.GetAccountFromCtx(r.Context())
		require.NoError(t, err)
		assert.Equal(t, "maria@example.com", account.Email)
	})(rec, r)

	assert.True(t, reached)
}

func TestAdminSessionRejectsCustomerRole(t *testing.T) {
	jsonWebToken := testJSONWebToken(t)
	store := &mockSessionStore{}
	store.On("Get", mock.Anything, int64(7)).Return(session.Account{ID: 7, TenantID: "tn-001", Role: session.RoleCustomer}, nil)

	m := NewAdminSessionMiddleware(jsonWebToken, store)

	r := signedRequest(t, jsonWebToken, 7, "tn-001")
	rec := httptest.NewRecorder()

	m.Verify(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	})(rec, r)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminSessionAllowsAdmin(t *testing.T) {
	jsonWebToken := testJSONWebToken(t)
	store := &mockSessionStore{}
	store.On("Get", mock.Anything, int64(1)).Return(session.Account{ID: 1, TenantID: "tn-001", Role: session.RoleAdmin}, nil)

	m := NewAdminSessionMiddleware(jsonWebToken, store)

	r := signedRequest(t, jsonWebToken, 1, "tn-001")
	rec := httptest.NewRecorder()

	reached := false
	m.Verify(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	})(rec, r)

	assert.True(t, reached)
}

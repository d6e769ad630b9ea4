package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/andersonbelino29/eventmate-pro-sub001/internal/module/customerapp/tenant"
	"github.com/andersonbelino29/eventmate-pro-sub001/internal/pkg/jwt"
	"github.com/andersonbelino29/eventmate-pro-sub001/internal/pkg/session"
	"github.com/andersonbelino29/eventmate-pro-sub001/pkg/response"
	"github.com/andersonbelino29/eventmate-pro-sub001/pkg/status"
)

// CustomerSession verifies the bearer token and loads the session record for
// customer-facing routes.
type CustomerSession struct {
	jsonWebToken *jwt.JSONWebToken
	sessionStore session.Store
}

func NewCustomerSessionMiddleware(jsonWebToken *jwt.JSONWebToken, sessionStore session.Store) *CustomerSession {
	return &CustomerSession{
		jsonWebToken: jsonWebToken,
		sessionStore: sessionStore,
	}
}

func (m *CustomerSession) Verify(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		account, err := verifyBearer(r, m.jsonWebToken, m.sessionStore)
		if err != nil {
			response.JSON(w, http.StatusUnauthorized, response.RESTEnvelope{
				Status:  status.UNAUTHORIZED,
				Message: err.Error(),
			})
			return
		}

		if !belongsToTenant(ctx, account) {
			response.JSON(w, http.StatusForbidden, response.RESTEnvelope{
				Status:  status.FORBIDDEN,
				Message: "account does not belong to this tenant",
			})
			return
		}

		ctx = session.SetAccountToCtx(ctx, account)
		next(w, r.WithContext(ctx))
	}
}

// AdminSession additionally requires the admin role for the signed-in
// account's tenant.
type AdminSession struct {
	jsonWebToken *jwt.JSONWebToken
	sessionStore session.Store
}

func NewAdminSessionMiddleware(jsonWebToken *jwt.JSONWebToken, sessionStore session.Store) *AdminSession {
	return &AdminSession{
		jsonWebToken: jsonWebToken,
		sessionStore: sessionStore,
	}
}

func (m *AdminSession) Verify(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		account, err := verifyBearer(r, m.jsonWebToken, m.sessionStore)
		if err != nil {
			response.JSON(w, http.StatusUnauthorized, response.RESTEnvelope{
				Status:  status.UNAUTHORIZED,
				Message: err.Error(),
			})
			return
		}

		if account.Role != session.RoleAdmin {
			response.JSON(w, http.StatusForbidden, response.RESTEnvelope{
				Status:  status.FORBIDDEN,
				Message: "account is not allowed to access this resource",
			})
			return
		}

		if !belongsToTenant(ctx, account) {
			response.JSON(w, http.StatusForbidden, response.RESTEnvelope{
				Status:  status.FORBIDDEN,
				Message: "account does not belong to this tenant",
			})
			return
		}

		ctx = session.SetAccountToCtx(ctx, account)
		next(w, r.WithContext(ctx))
	}
}

// belongsToTenant compares the account against the tenant resolved earlier
// in the chain. Routes without tenant resolution skip the check.
func belongsToTenant(ctx context.Context, account session.Account) bool {
	t, err := tenant.FromCtx(ctx)
	if err != nil {
		return true
	}

	return account.TenantID == t.ID
}

func verifyBearer(r *http.Request, jsonWebToken *jwt.JSONWebToken, sessionStore session.Store) (session.Account, error) {
	authorization := r.Header.Get("Authorization")
	tokenString := strings.TrimPrefix(authorization, "Bearer ")

	claims, err := jsonWebToken.Parse(tokenString)
	if err != nil {
		return session.Account{}, err
	}

	account, err := sessionStore.Get(r.Context(), claims.AccountID)
	if err != nil {
		return session.Account{}, err
	}

	return account, nil
}

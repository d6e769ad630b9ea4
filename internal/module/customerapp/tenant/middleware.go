package tenant

import (
	"context"
	"net/http"

	"github.com/andersonbelino29/eventmate-pro-sub001/internal/pkg/util"
	appErrors "github.com/andersonbelino29/eventmate-pro-sub001/pkg/errors"
	"github.com/andersonbelino29/eventmate-pro-sub001/pkg/response"
	"github.com/andersonbelino29/eventmate-pro-sub001/pkg/status"
)

type contextKey string

const tenantContextKey contextKey = "tenant"

// Resolver maps the request host's subdomain to a tenant and injects it into
// the request context. The X-Tenant-Subdomain header takes precedence so
// local clients without wildcard DNS can still address a tenant.
type Resolver struct {
	tenantRepository TenantRepository
}

func NewResolverMiddleware(tenantRepository TenantRepository) *Resolver {
	return &Resolver{
		tenantRepository: tenantRepository,
	}
}

func (m *Resolver) Resolve(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		subdomain := r.Header.Get("X-Tenant-Subdomain")
		if subdomain == "" {
			subdomain = util.SubdomainFromHost(r.Host)
		}

		if subdomain == "" {
			response.JSON(w, http.StatusNotFound, response.RESTEnvelope{
				Status:  status.NOT_FOUND,
				Message: "tenant could not be resolved from the request host",
			})
			return
		}

		t, err := m.tenantRepository.FindBySubdomain(ctx, subdomain)
		if err != nil {
			ae := appErrors.Destruct(err)
			response.JSON(w, ae.HTTPStatusCode, response.RESTEnvelope{
				Status:  ae.Status,
				Message: ae.Message,
			})
			return
		}

		ctx = SetToCtx(ctx, t)
		next(w, r.WithContext(ctx))
	}
}

func SetToCtx(ctx context.Context, t Tenant) context.Context {
	return context.WithValue(ctx, tenantContextKey, t)
}

func FromCtx(ctx context.Context) (Tenant, error) {
	t, ok := ctx.Value(tenantContextKey).(Tenant)
	if !ok {
		return Tenant{}, appErrors.New(http.StatusNotFound, status.NOT_FOUND, "tenant is not found in the request context")
	}

	return t, nil
}

package tenant

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"github.com/andersonbelino29/eventmate-pro-sub001/pkg/errors"
	"github.com/andersonbelino29/eventmate-pro-sub001/pkg/status"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type TenantRepository interface {
	FindBySubdomain(ctx context.Context, subdomain string) (Tenant, error)
}

type tenantRepository struct {
	logger *logrus.Logger
	db     *sql.DB
}

func NewTenantRepository(logger *logrus.Logger, db *sql.DB) TenantRepository {
	return &tenantRepository{
		logger: logger,
		db:     db,
	}
}

// FindBySubdomain implements TenantRepository.
func (r *tenantRepository) FindBySubdomain(ctx context.Context, subdomain string) (Tenant, error) {
	query := `
		SELECT
			id, subdomain, name, primary_color, secondary_color, logo_url,
			payment_enabled, service_fee_percent, payment_methods, cancellation_policy,
			item_singular_label, item_plural_label, created_at, updated_at
		FROM tenant
		WHERE
			subdomain = $1
		LIMIT 1
	`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return Tenant{}, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting tenant's properties")
	}
	defer stmt.Close()

	row := stmt.QueryRowContext(ctx, subdomain)

	var data Tenant

	err = row.Scan(
		&data.ID, &data.Subdomain, &data.Name, &data.Branding.PrimaryColor, &data.Branding.SecondaryColor, &data.Branding.LogoURL,
		&data.PaymentConfig.Enabled, &data.PaymentConfig.ServiceFeePercent, pq.Array(&data.PaymentConfig.PaymentMethods), &data.PaymentConfig.CancellationPolicy,
		&data.ItemConfig.SingularLabel, &data.ItemConfig.PluralLabel, &data.CreatedAt, &data.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return Tenant{}, errors.New(http.StatusNotFound, status.NOT_FOUND, fmt.Sprintf("tenant with subdomain '%s' is not found", subdomain))
		}
		r.logger.WithContext(ctx).WithError(err).Error()
		return Tenant{}, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting tenant's properties")
	}

	return data, nil
}

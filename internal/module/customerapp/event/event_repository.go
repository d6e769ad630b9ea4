package event

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"github.com/andersonbelino29/eventmate-pro-sub001/pkg/errors"
	"github.com/andersonbelino29/eventmate-pro-sub001/pkg/status"
	"github.com/sirupsen/logrus"
)

type EventRepository interface {
	FindByID(ctx context.Context, tenantID, ID string) (Event, error)
}

type eventRepository struct {
	logger *logrus.Logger
	db     *sql.DB
}

func NewEventRepository(logger *logrus.Logger, db *sql.DB) EventRepository {
	return &eventRepository{
		logger: logger,
		db:     db,
	}
}

// FindByID implements EventRepository. Lookups are always tenant-scoped so
// one tenant's event id never resolves under another tenant.
func (r *eventRepository) FindByID(ctx context.Context, tenantID, ID string) (Event, error) {
	query := `
		SELECT
			id, tenant_id, name, description, venue, starts_at, status, created_at, updated_at
		FROM event
		WHERE
			id = $1
		AND
			tenant_id = $2
		LIMIT 1
	`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return Event{}, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting event's properties")
	}
	defer stmt.Close()

	row := stmt.QueryRowContext(ctx, ID, tenantID)

	var data Event
	err = row.Scan(
		&data.ID, &data.TenantID, &data.Name, &data.Description, &data.Venue, &data.StartsAt, &data.Status, &data.CreatedAt, &data.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return Event{}, errors.New(http.StatusNotFound, status.NOT_FOUND, fmt.Sprintf("event's properties with id '%s' is not found", ID))
		}
		r.logger.WithContext(ctx).WithError(err).Error()
		return Event{}, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting event's properties")
	}

	return data, nil
}

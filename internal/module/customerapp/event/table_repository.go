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

type TableRepository interface {
	FindByID(ctx context.Context, ID string) (Table, error)
	FindManyByEventID(ctx context.Context, eventID string) ([]Table, error)
}

type tableRepository struct {
	logger *logrus.Logger
	db     *sql.DB
}

func NewTableRepository(logger *logrus.Logger, db *sql.DB) TableRepository {
	return &tableRepository{
		logger: logger,
		db:     db,
	}
}

// FindByID implements TableRepository.
func (r *tableRepository) FindByID(ctx context.Context, ID string) (Table, error) {
	query := `
		SELECT
			id, event_id, name, unit_price, seat_count, location, available
		FROM event_table
		WHERE
			id = $1
		LIMIT 1
	`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return Table{}, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting table's properties")
	}
	defer stmt.Close()

	row := stmt.QueryRowContext(ctx, ID)

	var data Table
	err = row.Scan(
		&data.ID, &data.EventID, &data.Name, &data.UnitPrice, &data.SeatCount, &data.Location, &data.Available,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return Table{}, errors.New(http.StatusNotFound, status.NOT_FOUND, fmt.Sprintf("table's properties with id '%s' is not found", ID))
		}
		r.logger.WithContext(ctx).WithError(err).Error()
		return Table{}, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting table's properties")
	}

	return data, nil
}

// FindManyByEventID implements TableRepository.
func (r *tableRepository) FindManyByEventID(ctx context.Context, eventID string) ([]Table, error) {
	query := `
		SELECT
			id, event_id, name, unit_price, seat_count, location, available
		FROM event_table
		WHERE
			event_id = $1
		ORDER BY name ASC
	`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return nil, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting bunch of table's properties")
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx, eventID)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return nil, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting bunch of table's properties")
	}

	defer rows.Close()

	var data = make([]Table, 0)

	for rows.Next() {
		var t Table

		if err := rows.Scan(
			&t.ID, &t.EventID, &t.Name, &t.UnitPrice, &t.SeatCount, &t.Location, &t.Available,
		); err != nil {
			r.logger.WithContext(ctx).WithError(err).Error()
			return nil, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting bunch of table's properties")
		}

		data = append(data, t)
	}

	return data, nil
}

package reservation

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"github.com/andersonbelino29/eventmate-pro-sub001/pkg/errors"
	"github.com/andersonbelino29/eventmate-pro-sub001/pkg/status"
	"github.com/sirupsen/logrus"
)

type ReservationRepository interface {
	BeginTx(ctx context.Context) (*sql.Tx, error)
	CommitTx(ctx context.Context, tx *sql.Tx) error
	Rollback(ctx context.Context, tx *sql.Tx) error

	FindByID(ctx context.Context, tenantID, ID string, tx *sql.Tx) (Reservation, error)
	FindMany(ctx context.Context, tenantID string, offset, limit int64, tx *sql.Tx) ([]Reservation, error)
	Count(ctx context.Context, tenantID string, tx *sql.Tx) (int64, error)
	Update(ctx context.Context, ID string, rsv Reservation, tx *sql.Tx) error
}

type sqlCommand interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
}

type reservationRepository struct {
	logger *logrus.Logger
	db     *sql.DB
}

func NewReservationRepository(logger *logrus.Logger, db *sql.DB) ReservationRepository {
	return &reservationRepository{
		logger: logger,
		db:     db,
	}
}

const reservationColumns = `
	id, tenant_id, event_id, event_name, table_id, table_name, unit_price,
	seat_count, location, customer_name, customer_email, customer_phone,
	observations, subtotal, fee, total, status, payment_status,
	checkout_session_id, created_at, updated_at
`

// BeginTx implements ReservationRepository.
func (r *reservationRepository) BeginTx(ctx context.Context) (*sql.Tx, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return nil, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred trying to begin transaction")
	}

	return tx, nil
}

// CommitTx implements ReservationRepository.
func (r *reservationRepository) CommitTx(ctx context.Context, tx *sql.Tx) error {
	if err := tx.Commit(); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred trying to commit transaction")
	}

	return nil
}

// Rollback implements ReservationRepository.
func (r *reservationRepository) Rollback(ctx context.Context, tx *sql.Tx) error {
	if err := tx.Rollback(); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred trying to rollback transaction")
	}

	return nil
}

// FindByID implements ReservationRepository.
func (r *reservationRepository) FindByID(ctx context.Context, tenantID, ID string, tx *sql.Tx) (Reservation, error) {
	var cmd sqlCommand = r.db

	if tx != nil {
		cmd = tx
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM reservation
		WHERE
			id = $1
		AND
			tenant_id = $2
		LIMIT 1
	`, reservationColumns)

	stmt, err := cmd.PrepareContext(ctx, query)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return Reservation{}, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting reservation's properties")
	}
	defer stmt.Close()

	row := stmt.QueryRowContext(ctx, ID, tenantID)

	data, err := scan(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Reservation{}, errors.New(http.StatusNotFound, status.NOT_FOUND, fmt.Sprintf("reservation's properties with id '%s' is not found", ID))
		}
		r.logger.WithContext(ctx).WithError(err).Error()
		return Reservation{}, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting reservation's properties")
	}

	return data, nil
}

// FindMany implements ReservationRepository.
func (r *reservationRepository) FindMany(ctx context.Context, tenantID string, offset, limit int64, tx *sql.Tx) ([]Reservation, error) {
	var cmd sqlCommand = r.db

	if tx != nil {
		cmd = tx
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM reservation
		WHERE
			tenant_id = $1
		ORDER BY created_at DESC
		OFFSET $2
		LIMIT $3
	`, reservationColumns)

	stmt, err := cmd.PrepareContext(ctx, query)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return nil, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting bunch of reservation's properties")
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx, tenantID, offset, limit)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return nil, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting bunch of reservation's properties")
	}

	defer rows.Close()

	var data = make([]Reservation, 0)

	for rows.Next() {
		rsv, err := scan(rows)
		if err != nil {
			r.logger.WithContext(ctx).WithError(err).Error()
			return nil, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting bunch of reservation's properties")
		}

		data = append(data, rsv)
	}

	return data, nil
}

// Count implements ReservationRepository.
func (r *reservationRepository) Count(ctx context.Context, tenantID string, tx *sql.Tx) (int64, error) {
	var cmd sqlCommand = r.db

	if tx != nil {
		cmd = tx
	}

	query := `
		SELECT count(id)
		FROM reservation
		WHERE
			tenant_id = $1
		LIMIT 1
	`

	stmt, err := cmd.PrepareContext(ctx, query)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return 0, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while counting reservation's properties")
	}
	defer stmt.Close()

	row := stmt.QueryRowContext(ctx, tenantID)

	var count int64
	if err := row.Scan(&count); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return 0, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while counting reservation's properties")
	}

	return count, nil
}

// Update implements ReservationRepository.
func (r *reservationRepository) Update(ctx context.Context, ID string, rsv Reservation, tx *sql.Tx) error {
	var cmd sqlCommand = r.db

	if tx != nil {
		cmd = tx
	}

	query := `
		UPDATE reservation
		SET
			status = $1,
			payment_status = $2,
			updated_at = $3
		WHERE id = $4
	`

	stmt, err := cmd.PrepareContext(ctx, query)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while updating reservation's properties")
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, rsv.Status, rsv.PaymentStatus, rsv.UpdatedAt, ID)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while updating reservation's properties")
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scan(row rowScanner) (Reservation, error) {
	var data Reservation
	var checkoutSessionID sql.NullString

	err := row.Scan(
		&data.ID, &data.TenantID, &data.EventID, &data.EventName, &data.TableID, &data.TableName, &data.UnitPrice,
		&data.SeatCount, &data.Location, &data.CustomerName, &data.CustomerEmail, &data.CustomerPhone,
		&data.Observations, &data.Subtotal, &data.Fee, &data.Total, &data.Status, &data.PaymentStatus,
		&checkoutSessionID, &data.CreatedAt, &data.UpdatedAt,
	)
	if err != nil {
		return Reservation{}, err
	}

	if checkoutSessionID.Valid {
		data.CheckoutSessionID = &checkoutSessionID.String
	}

	return data, nil
}

package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/aptstay/apartment-booking-backend/internal/pkg/apperror"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	// CreateIfAvailable re-checks the overlap predicate and inserts the booking
	// as one atomic unit. It returns ErrDateConflict if any active booking for
	// the same apartment intersects the requested range.
	CreateIfAvailable(ctx context.Context, b *Booking) error

	// HasOverlap checks if any active booking for the apartment intersects [start, end).
	HasOverlap(ctx context.Context, apartmentID string, start, end time.Time) (bool, error)

	GetByID(ctx context.Context, id string) (*Booking, error)
	ListRangesByApartment(ctx context.Context, apartmentID string) ([]DateRange, error)
	ListByUser(ctx context.Context, userID string) ([]*Booking, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func overlapExistsSql(apartmentID string, start, end time.Time) (string, []interface{}, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	sub, args, err := psql.Select("1").
		From("public.bookings").
		Where(squirrel.Eq{"apartment_id": apartmentID}).
		Where(squirrel.Eq{"status": StatusActive}).
		Where(squirrel.Lt{"start_date": end}).
		Where(squirrel.Gt{"end_date": start}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("build overlap query failed: %w", err)
	}
	return "SELECT EXISTS (" + sub + ")", args, nil
}

func (r *pgxRepository) HasOverlap(ctx context.Context, apartmentID string, start, end time.Time) (bool, error) {
	query, args, err := overlapExistsSql(apartmentID, start, end)
	if err != nil {
		return false, err
	}

	var exists bool
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, mapStoreErr(err, "check overlap failed")
	}
	return exists, nil
}

func (r *pgxRepository) CreateIfAvailable(ctx context.Context, b *Booking) error {
	err := pgx.BeginTxFunc(ctx, r.pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		query, args, err := overlapExistsSql(b.ApartmentID, b.StartDate, b.EndDate)
		if err != nil {
			return err
		}

		var exists bool
		if err := tx.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
			return fmt.Errorf("check overlap failed: %w", err)
		}
		if exists {
			return ErrDateConflict
		}

		const insert = `
			INSERT INTO public.bookings (apartment_id, user_id, start_date, end_date, status)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at, updated_at
		`
		return tx.QueryRow(ctx, insert, b.ApartmentID, b.UserID, b.StartDate, b.EndDate, b.Status).
			Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	})
	if err != nil {
		if errors.Is(err, ErrDateConflict) {
			return ErrDateConflict
		}
		// The bookings_no_overlap exclusion constraint closes the window
		// between the check above and the insert: the racing transaction
		// that loses the insert fails here. A serialization failure means
		// the same thing under stricter isolation levels.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgerrcode.ExclusionViolation, pgerrcode.UniqueViolation, pgerrcode.SerializationFailure:
				return ErrDateConflict
			}
		}
		return mapStoreErr(err, "create booking failed")
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	const query = `
		SELECT b.id, b.apartment_id, a.title, a.image_url, b.user_id,
			b.start_date, b.end_date, b.status, b.created_at, b.updated_at
		FROM public.bookings b
		JOIN public.apartments a ON b.apartment_id = a.id
		WHERE b.id = $1
	`

	var b Booking
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.ApartmentID, &b.ApartmentTitle, &b.ApartmentImageURL, &b.UserID,
		&b.StartDate, &b.EndDate, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, mapStoreErr(err, "get booking failed")
	}
	return &b, nil
}

func (r *pgxRepository) ListRangesByApartment(ctx context.Context, apartmentID string) ([]DateRange, error) {
	const query = `
		SELECT start_date, end_date
		FROM public.bookings
		WHERE apartment_id = $1 AND status = 'active'
		ORDER BY start_date ASC
	`

	rows, err := r.pool.Query(ctx, query, apartmentID)
	if err != nil {
		return nil, mapStoreErr(err, "list booking ranges failed")
	}
	defer rows.Close()

	var ranges []DateRange
	for rows.Next() {
		var dr DateRange
		if err := rows.Scan(&dr.Start, &dr.End); err != nil {
			return nil, fmt.Errorf("scan booking range failed: %w", err)
		}
		ranges = append(ranges, dr)
	}

	return ranges, nil
}

func (r *pgxRepository) ListByUser(ctx context.Context, userID string) ([]*Booking, error) {
	const query = `
		SELECT b.id, b.apartment_id, a.title, a.image_url, b.user_id,
			b.start_date, b.end_date, b.status, b.created_at, b.updated_at
		FROM public.bookings b
		JOIN public.apartments a ON b.apartment_id = a.id
		WHERE b.user_id = $1 AND b.status = 'active'
		ORDER BY b.start_date DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, mapStoreErr(err, "list bookings failed")
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID, &b.ApartmentID, &b.ApartmentTitle, &b.ApartmentImageURL, &b.UserID,
			&b.StartDate, &b.EndDate, &b.Status, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}

	return bookings, nil
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	const query = `
		UPDATE public.bookings
		SET status = $1, updated_at = now()
		WHERE id = $2
	`

	ct, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return mapStoreErr(err, "update booking status failed")
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// mapStoreErr classifies low-level storage failures. Connection-class errors
// and timeouts surface as ErrStoreUnavailable so callers know a retry is safe;
// everything else stays an internal error.
func mapStoreErr(err error, msg string) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return apperror.Wrap(err, ErrStoreUnavailable.Kind, ErrStoreUnavailable.Code, ErrStoreUnavailable.Message)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgerrcode.IsConnectionException(pgErr.Code) {
		return apperror.Wrap(err, ErrStoreUnavailable.Kind, ErrStoreUnavailable.Code, ErrStoreUnavailable.Message)
	}

	return fmt.Errorf("%s: %w", msg, err)
}

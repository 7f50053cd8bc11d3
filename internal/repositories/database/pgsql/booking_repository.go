package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/desk_booking_app/internal/apperrors"
	"github.com/SscSPs/desk_booking_app/internal/core/domain"
	portsrepo "github.com/SscSPs/desk_booking_app/internal/core/ports/repositories"
	"github.com/SscSPs/desk_booking_app/internal/models"
	"github.com/SscSPs/desk_booking_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"gorm.io/datatypes"
)

const bookingColumns = `booking_id, desk_id, user_id, booking_date, start_time, end_time, status,
	checked_in_at, check_in_address, completed_at, cancelled_at, cancelled_by,
	created_at, created_by, last_updated_at, last_updated_by, version`

type PgxBookingRepository struct {
	BaseRepository
}

func newPgxBookingRepository(base BaseRepository) portsrepo.BookingRepositoryFacade {
	return &PgxBookingRepository{BaseRepository: base}
}

var _ portsrepo.BookingRepositoryFacade = (*PgxBookingRepository)(nil)

func scanBooking(row pgx.Row) (domain.Booking, error) {
	var m models.Booking
	var date time.Time
	err := row.Scan(
		&m.BookingID,
		&m.DeskID,
		&m.UserID,
		&date,
		&m.StartTime,
		&m.EndTime,
		&m.Status,
		&m.CheckedInAt,
		&m.CheckInAddress,
		&m.CompletedAt,
		&m.CancelledAt,
		&m.CancelledBy,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.Version,
	)
	if err != nil {
		return domain.Booking{}, err
	}
	m.BookingDate = datatypes.Date(date)
	return mapping.ToDomainBooking(m)
}

func (r *PgxBookingRepository) queryBookings(ctx context.Context, query string, args ...any) ([]domain.Booking, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer rows.Close()

	bookings := []domain.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking row: %w", err)
		}
		bookings = append(bookings, b)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating booking rows: %w", rows.Err())
	}
	return bookings, nil
}

func (r *PgxBookingRepository) FindBookingByID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE booking_id = $1;`
	b, err := scanBooking(r.Pool.QueryRow(ctx, query, bookingID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find booking %s: %w", bookingID, err)
	}
	return &b, nil
}

func (r *PgxBookingRepository) ListLiveBookingsByDate(ctx context.Context, date time.Time) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
        WHERE booking_date = $1 AND status IN ` + liveStatuses + `
        ORDER BY desk_id;`
	return r.queryBookings(ctx, query, mapping.NormalizeDate(date))
}

func (r *PgxBookingRepository) FindLiveBookingForUser(ctx context.Context, userID string, date time.Time) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
        WHERE user_id = $1 AND booking_date = $2 AND status IN ` + liveStatuses + `;`
	b, err := scanBooking(r.Pool.QueryRow(ctx, query, userID, mapping.NormalizeDate(date)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find live booking for user %s: %w", userID, err)
	}
	return &b, nil
}

func (r *PgxBookingRepository) ListBookings(ctx context.Context, filter domain.BookingFilter, limit int, after *domain.BookingCursor) ([]domain.Booking, error) {
	var conds []string
	var args []any
	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if filter.UserID != "" {
		conds = append(conds, "user_id = "+next(filter.UserID))
	}
	if filter.DeskID != "" {
		conds = append(conds, "desk_id = "+next(filter.DeskID))
	}
	if filter.Status != "" {
		conds = append(conds, "status = "+next(string(filter.Status)))
	}
	if filter.FromDate != nil {
		conds = append(conds, "booking_date >= "+next(mapping.NormalizeDate(*filter.FromDate)))
	}
	if filter.ToDate != nil {
		conds = append(conds, "booking_date <= "+next(mapping.NormalizeDate(*filter.ToDate)))
	}
	if after != nil {
		conds = append(conds, fmt.Sprintf("(booking_date, created_at, booking_id) < (%s, %s, %s)",
			next(mapping.NormalizeDate(after.Date)), next(after.CreatedAt), next(after.BookingID)))
	}

	query := `SELECT ` + bookingColumns + ` FROM bookings`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY booking_date DESC, created_at DESC, booking_id DESC LIMIT ` + next(limit) + `;`
	return r.queryBookings(ctx, query, args...)
}

func (r *PgxBookingRepository) ListCheckedInBookingsUpTo(ctx context.Context, date time.Time) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
        WHERE status = 'checked-in' AND booking_date <= $1
        ORDER BY booking_date, start_time;`
	return r.queryBookings(ctx, query, mapping.NormalizeDate(date))
}

// lockBookableDesk takes a share lock on the desk so a concurrent deactivation
// waits for this transaction, then checks the desk still takes bookings.
func lockBookableDesk(ctx context.Context, tx pgx.Tx, deskID string) error {
	var isActive, isUnavailable bool
	err := tx.QueryRow(ctx, `SELECT is_active, is_unavailable FROM desks WHERE desk_id = $1 FOR SHARE;`, deskID).
		Scan(&isActive, &isUnavailable)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundError("desk " + deskID + " not found")
		}
		return fmt.Errorf("failed to lock desk %s: %w", deskID, err)
	}
	if !isActive {
		return apperrors.NewNotFoundError("desk " + deskID + " not found")
	}
	if isUnavailable {
		return apperrors.NewPolicyViolationError("desk is temporarily unavailable")
	}
	return nil
}

// liveHolder returns the conflict for an existing live booking of the desk or the
// user on the date, excluding the booking being changed.
func liveHolder(ctx context.Context, tx pgx.Tx, b domain.Booking) error {
	var deskID, userID string
	err := tx.QueryRow(ctx, `
        SELECT desk_id, user_id FROM bookings
        WHERE booking_date = $1 AND status IN `+liveStatuses+`
          AND (desk_id = $2 OR user_id = $3) AND booking_id <> $4
        LIMIT 1;`,
		mapping.NormalizeDate(b.Date), b.DeskID, b.UserID, b.BookingID,
	).Scan(&deskID, &userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to check live bookings: %w", err)
	}
	if deskID == b.DeskID {
		return conflictFor("uq_bookings_live_desk")
	}
	return conflictFor("uq_bookings_live_user")
}

func (r *PgxBookingRepository) CreateBooking(ctx context.Context, booking domain.Booking) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := lockBookableDesk(ctx, tx, booking.DeskID); err != nil {
		return err
	}
	if err := liveHolder(ctx, tx, booking); err != nil {
		return err
	}

	m := mapping.ToModelBooking(booking)
	query := `
        INSERT INTO bookings (booking_id, desk_id, user_id, booking_date, start_time, end_time, status,
                              created_at, created_by, last_updated_at, last_updated_by, version)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
    `
	_, err = tx.Exec(ctx, query,
		m.BookingID,
		m.DeskID,
		m.UserID,
		mapping.NormalizeDate(booking.Date),
		m.StartTime,
		m.EndTime,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.Version,
	)
	if err != nil {
		if constraint, ok := uniqueViolation(err); ok {
			return conflictFor(constraint)
		}
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return r.Commit(ctx, tx)
}

func (r *PgxBookingRepository) UpdateBooking(ctx context.Context, booking domain.Booking, expectedStatus domain.BookingStatus) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if booking.Status == domain.BookingStatusReserved {
		if err := lockBookableDesk(ctx, tx, booking.DeskID); err != nil {
			return err
		}
		if err := liveHolder(ctx, tx, booking); err != nil {
			return err
		}
	}

	m := mapping.ToModelBooking(booking)
	query := `
        UPDATE bookings
        SET desk_id = $1, booking_date = $2, start_time = $3, end_time = $4, status = $5,
            checked_in_at = $6, check_in_address = $7, completed_at = $8, cancelled_at = $9, cancelled_by = $10,
            last_updated_at = $11, last_updated_by = $12, version = $13
        WHERE booking_id = $14 AND status = $15;
    `
	cmdTag, err := tx.Exec(ctx, query,
		m.DeskID,
		mapping.NormalizeDate(booking.Date),
		m.StartTime,
		m.EndTime,
		m.Status,
		m.CheckedInAt,
		m.CheckInAddress,
		m.CompletedAt,
		m.CancelledAt,
		m.CancelledBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.Version,
		m.BookingID,
		string(expectedStatus),
	)
	if err != nil {
		if constraint, ok := uniqueViolation(err); ok {
			return conflictFor(constraint)
		}
		return fmt.Errorf("failed to update booking: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		var current string
		err := tx.QueryRow(ctx, `SELECT status FROM bookings WHERE booking_id = $1;`, m.BookingID).Scan(&current)
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundError("booking " + m.BookingID + " not found")
		}
		if err != nil {
			return fmt.Errorf("failed to read booking status: %w", err)
		}
		return apperrors.NewInvalidStateError(fmt.Sprintf("booking is %s, expected %s", current, expectedStatus))
	}
	return r.Commit(ctx, tx)
}

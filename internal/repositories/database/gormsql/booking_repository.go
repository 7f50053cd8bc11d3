package gormsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/desk_booking_app/internal/apperrors"
	"github.com/SscSPs/desk_booking_app/internal/core/domain"
	portsrepo "github.com/SscSPs/desk_booking_app/internal/core/ports/repositories"
	"github.com/SscSPs/desk_booking_app/internal/models"
	"github.com/SscSPs/desk_booking_app/internal/utils/mapping"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type BookingRepository struct {
	BaseRepository
}

var _ portsrepo.BookingRepositoryFacade = (*BookingRepository)(nil)

func dateArg(t time.Time) datatypes.Date {
	return datatypes.Date(mapping.NormalizeDate(t))
}

func (r *BookingRepository) find(q *gorm.DB) ([]domain.Booking, error) {
	var ms []models.Booking
	if err := q.Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	return mapping.ToDomainBookingSlice(ms)
}

func (r *BookingRepository) FindBookingByID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	var m models.Booking
	if err := r.DB.WithContext(ctx).Where("booking_id = ?", bookingID).First(&m).Error; err != nil {
		if notFound(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find booking %s: %w", bookingID, err)
	}
	b, err := mapping.ToDomainBooking(m)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) ListLiveBookingsByDate(ctx context.Context, date time.Time) ([]domain.Booking, error) {
	return r.find(r.DB.WithContext(ctx).
		Where("booking_date = ? AND status IN ?", dateArg(date), liveStatuses).
		Order("desk_id"))
}

func (r *BookingRepository) FindLiveBookingForUser(ctx context.Context, userID string, date time.Time) (*domain.Booking, error) {
	var m models.Booking
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND booking_date = ? AND status IN ?", userID, dateArg(date), liveStatuses).
		First(&m).Error
	if err != nil {
		if notFound(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find live booking for user %s: %w", userID, err)
	}
	b, err := mapping.ToDomainBooking(m)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) ListBookings(ctx context.Context, filter domain.BookingFilter, limit int, after *domain.BookingCursor) ([]domain.Booking, error) {
	q := r.DB.WithContext(ctx).Model(&models.Booking{})
	if filter.UserID != "" {
		q = q.Where("user_id = ?", filter.UserID)
	}
	if filter.DeskID != "" {
		q = q.Where("desk_id = ?", filter.DeskID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", string(filter.Status))
	}
	if filter.FromDate != nil {
		q = q.Where("booking_date >= ?", dateArg(*filter.FromDate))
	}
	if filter.ToDate != nil {
		q = q.Where("booking_date <= ?", dateArg(*filter.ToDate))
	}
	if after != nil {
		q = q.Where("(booking_date, created_at, booking_id) < (?, ?, ?)",
			dateArg(after.Date), after.CreatedAt.UTC(), after.BookingID)
	}
	return r.find(q.Order("booking_date DESC").Order("created_at DESC").Order("booking_id DESC").Limit(limit))
}

func (r *BookingRepository) ListCheckedInBookingsUpTo(ctx context.Context, date time.Time) ([]domain.Booking, error) {
	return r.find(r.DB.WithContext(ctx).
		Where("status = ? AND booking_date <= ?", string(domain.BookingStatusCheckedIn), dateArg(date)).
		Order("booking_date").Order("start_time"))
}

// checkBookable fails unless the desk exists, is active and is not blocked, and
// neither the desk nor the user already holds another live booking on the date.
func checkBookable(tx *gorm.DB, b domain.Booking) error {
	var desk models.Desk
	if err := tx.Where("desk_id = ?", b.DeskID).First(&desk).Error; err != nil {
		if notFound(err) {
			return apperrors.NewNotFoundError("desk " + b.DeskID + " not found")
		}
		return fmt.Errorf("failed to load desk %s: %w", b.DeskID, err)
	}
	if !desk.IsActive {
		return apperrors.NewNotFoundError("desk " + b.DeskID + " not found")
	}
	if desk.IsUnavailable {
		return apperrors.NewPolicyViolationError("desk is temporarily unavailable")
	}

	var holders []models.Booking
	err := tx.Select("desk_id", "user_id").
		Where("booking_date = ? AND status IN ? AND (desk_id = ? OR user_id = ?) AND booking_id <> ?",
			dateArg(b.Date), liveStatuses, b.DeskID, b.UserID, b.BookingID).
		Limit(1).Find(&holders).Error
	if err != nil {
		return fmt.Errorf("failed to check live bookings: %w", err)
	}
	if len(holders) == 0 {
		return nil
	}
	if holders[0].DeskID == b.DeskID {
		return apperrors.NewConflictError("desk is already booked for this date")
	}
	return apperrors.NewConflictError("you already have a booking for this date")
}

func (r *BookingRepository) CreateBooking(ctx context.Context, booking domain.Booking) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkBookable(tx, booking); err != nil {
			return err
		}
		m := mapping.ToModelBooking(booking)
		if err := tx.Create(&m).Error; err != nil {
			if duplicate(err) {
				return apperrors.NewConflictError("desk or user already holds a booking for this date")
			}
			return fmt.Errorf("failed to insert booking: %w", err)
		}
		return nil
	})
}

func (r *BookingRepository) UpdateBooking(ctx context.Context, booking domain.Booking, expectedStatus domain.BookingStatus) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if booking.Status == domain.BookingStatusReserved {
			if err := checkBookable(tx, booking); err != nil {
				return err
			}
		}

		m := mapping.ToModelBooking(booking)
		res := tx.Model(&models.Booking{}).
			Where("booking_id = ? AND status = ?", m.BookingID, string(expectedStatus)).
			Updates(map[string]any{
				"desk_id":          m.DeskID,
				"booking_date":     m.BookingDate,
				"start_time":       m.StartTime,
				"end_time":         m.EndTime,
				"status":           m.Status,
				"checked_in_at":    m.CheckedInAt,
				"check_in_address": m.CheckInAddress,
				"completed_at":     m.CompletedAt,
				"cancelled_at":     m.CancelledAt,
				"cancelled_by":     m.CancelledBy,
				"last_updated_at":  m.LastUpdatedAt,
				"last_updated_by":  m.LastUpdatedBy,
				"version":          m.Version,
			})
		if res.Error != nil {
			if duplicate(res.Error) {
				return apperrors.NewConflictError("desk or user already holds a booking for this date")
			}
			return fmt.Errorf("failed to update booking: %w", res.Error)
		}
		if res.RowsAffected > 0 {
			return nil
		}

		var current models.Booking
		if err := tx.Select("status").Where("booking_id = ?", m.BookingID).First(&current).Error; err != nil {
			if notFound(err) {
				return apperrors.NewNotFoundError("booking " + m.BookingID + " not found")
			}
			return fmt.Errorf("failed to read booking status: %w", err)
		}
		return apperrors.NewInvalidStateError(fmt.Sprintf("booking is %s, expected %s", current.Status, expectedStatus))
	})
}

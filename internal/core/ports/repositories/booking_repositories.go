package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/desk_booking_app/internal/core/domain"
)

// BookingReader defines read operations for bookings
type BookingReader interface {
	// FindBookingByID retrieves a booking in any status.
	FindBookingByID(ctx context.Context, bookingID string) (*domain.Booking, error)

	// ListLiveBookingsByDate returns every reserved or checked-in booking on the date.
	ListLiveBookingsByDate(ctx context.Context, date time.Time) ([]domain.Booking, error)

	// FindLiveBookingForUser returns the user's live booking on the date, or ErrNotFound.
	FindLiveBookingForUser(ctx context.Context, userID string, date time.Time) (*domain.Booking, error)

	// ListBookings returns a page of bookings ordered by date, creation time and id, newest first.
	ListBookings(ctx context.Context, filter domain.BookingFilter, limit int, after *domain.BookingCursor) ([]domain.Booking, error)

	// ListCheckedInBookingsUpTo returns checked-in bookings dated on or before the date.
	ListCheckedInBookingsUpTo(ctx context.Context, date time.Time) ([]domain.Booking, error)
}

// BookingWriter defines write operations for bookings
type BookingWriter interface {
	// CreateBooking stores a new live booking. It fails with ErrConflict when the desk
	// or the user already holds a live booking for the date, with ErrNotFound when the
	// desk does not exist or is inactive and with ErrPolicyViolation when it is
	// marked unavailable. The checks and the insert are atomic.
	CreateBooking(ctx context.Context, booking domain.Booking) error

	// UpdateBooking stores booking only if the stored status still equals
	// expectedStatus, otherwise it fails with ErrInvalidState. Moving a live booking
	// onto a held desk/date fails with ErrConflict.
	UpdateBooking(ctx context.Context, booking domain.Booking, expectedStatus domain.BookingStatus) error
}

// BookingRepositoryFacade combines all booking-related repository interfaces
type BookingRepositoryFacade interface {
	BookingReader
	BookingWriter
}

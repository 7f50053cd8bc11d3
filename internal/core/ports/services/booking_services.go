package services

import (
	"context"
	"io"
	"time"

	"github.com/SscSPs/desk_booking_app/internal/core/domain"
	"github.com/SscSPs/desk_booking_app/internal/dto"
)

// BookingReaderSvc defines read operations on the booking ledger
type BookingReaderSvc interface {
	// GetBooking returns a booking visible to the actor.
	GetBooking(ctx context.Context, actor domain.Actor, bookingID string) (*domain.Booking, error)

	// ListBookings pages through the actor's bookings, or everyone's for elevated roles.
	ListBookings(ctx context.Context, actor domain.Actor, params dto.ListBookingsParams) (*dto.ListBookingsResponse, error)
}

// BookingWriterSvc defines the booking mutations
type BookingWriterSvc interface {
	CreateBooking(ctx context.Context, actor domain.Actor, req dto.CreateBookingRequest) (*domain.Booking, error)
	RescheduleBooking(ctx context.Context, actor domain.Actor, bookingID string, req dto.RescheduleBookingRequest) (*domain.Booking, error)
	CancelBooking(ctx context.Context, actor domain.Actor, bookingID string) (*domain.Booking, error)
}

// BookingLifecycleSvc defines check-in and completion
type BookingLifecycleSvc interface {
	// CheckIn checks a reserved booking in after the network evidence is verified.
	CheckIn(ctx context.Context, actor domain.Actor, bookingID string, evidence domain.NetworkEvidence) (*domain.Booking, error)

	// CheckInToday checks in the actor's booking for today. An already checked-in
	// booking is returned unchanged.
	CheckInToday(ctx context.Context, actor domain.Actor, evidence domain.NetworkEvidence) (*domain.Booking, error)

	// CompleteBooking completes a checked-in booking whose window has ended.
	CompleteBooking(ctx context.Context, actor domain.Actor, bookingID string) (*domain.Booking, error)

	// CompleteElapsedBookings completes every checked-in booking whose window has ended.
	CompleteElapsedBookings(ctx context.Context) (int, error)
}

// BookingSvcFacade combines all booking-related service interfaces
type BookingSvcFacade interface {
	BookingReaderSvc
	BookingWriterSvc
	BookingLifecycleSvc
}

// ExportSvc renders booking reports.
type ExportSvc interface {
	// ExportBookingsCSV writes the bookings matching params as CSV. Elevated roles only.
	ExportBookingsCSV(ctx context.Context, actor domain.Actor, params dto.ListBookingsParams, w io.Writer) error
}

// CheckInGateSvc decides whether network evidence proves office presence.
type CheckInGateSvc interface {
	// Authorize reports whether evidence is acceptable for checking in booking.
	Authorize(ctx context.Context, booking domain.Booking, evidence domain.NetworkEvidence) bool

	// Probe reports whether evidence places the caller on the office network.
	Probe(ctx context.Context, evidence domain.NetworkEvidence) domain.Presence
}

// BookingPolicySvc holds the booking rules and the office clock.
type BookingPolicySvc interface {
	Now() time.Time
	Today() time.Time
	Location() *time.Location

	// ValidateSlot fails with ErrInvalidInput for times off the slot grid or outside office hours.
	ValidateSlot(start domain.TimeOfDay, end *domain.TimeOfDay) error
	// CheckBookingWindow fails with ErrPolicyViolation when date is in the past or too far ahead.
	CheckBookingWindow(deskType domain.DeskType, date time.Time) error
	// CheckRoleAccess fails with ErrForbidden when role may not book deskType.
	CheckRoleAccess(deskType domain.DeskType, role domain.Role) error
	// CheckNotElapsed fails with ErrPolicyViolation when the booking window is over.
	CheckNotElapsed(b domain.Booking) error
	// CheckLeadTime fails with ErrPolicyViolation when the booking starts within the lead time.
	CheckLeadTime(b domain.Booking) error
	// CheckCheckInWindow fails with ErrPolicyViolation outside the booking date or after the window.
	CheckCheckInWindow(b domain.Booking) error
	// WindowEnded reports whether the booking window is over.
	WindowEnded(b domain.Booking) bool

	// Describe exposes the active rules for clients.
	Describe() dto.PolicyResponse
}

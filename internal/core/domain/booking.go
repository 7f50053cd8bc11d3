package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/desk_booking_app/internal/apperrors"
)

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingStatusReserved  BookingStatus = "reserved"
	BookingStatusCheckedIn BookingStatus = "checked-in"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// LiveBookingStatuses are the statuses that hold a desk for a date.
var LiveBookingStatuses = []BookingStatus{BookingStatusReserved, BookingStatusCheckedIn}

var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusReserved:  {BookingStatusCheckedIn, BookingStatusCancelled},
	BookingStatusCheckedIn: {BookingStatusCompleted, BookingStatusCancelled},
}

// IsValid reports whether s is a known status.
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusReserved, BookingStatusCheckedIn, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// IsLive reports whether the booking still holds its desk.
func (s BookingStatus) IsLive() bool {
	return s == BookingStatusReserved || s == BookingStatusCheckedIn
}

// IsTerminal reports whether no further transitions are possible.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

// CanTransitionTo reports whether next is reachable from s in one step.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Booking is a claim by one user on one desk for one calendar date.
type Booking struct {
	BookingID      string        `json:"bookingID"`
	DeskID         string        `json:"deskID"`
	UserID         string        `json:"userID"`
	Date           time.Time     `json:"date"` // midnight UTC of the calendar day
	StartTime      TimeOfDay     `json:"-"`
	EndTime        *TimeOfDay    `json:"-"`
	Status         BookingStatus `json:"status"`
	CheckedInAt    *time.Time    `json:"checkedInAt,omitempty"`
	CheckInAddress string        `json:"checkInAddress,omitempty"`
	CompletedAt    *time.Time    `json:"completedAt,omitempty"`
	CancelledAt    *time.Time    `json:"cancelledAt,omitempty"`
	CancelledBy    string        `json:"cancelledBy,omitempty"`
	AuditFields
}

// DateString returns the booking date as YYYY-MM-DD.
func (b Booking) DateString() string {
	return b.Date.Format(DateLayout)
}

// Window returns the booking's wall-clock start and end in loc. Bookings without
// an end time run until closing.
func (b Booking) Window(loc *time.Location, closing TimeOfDay) (time.Time, time.Time) {
	start := b.StartTime.On(b.Date, loc)
	end := closing.On(b.Date, loc)
	if b.EndTime != nil {
		end = b.EndTime.On(b.Date, loc)
	}
	return start, end
}

// Transition moves the booking to next, stamping the matching timestamp.
func (b *Booking) Transition(next BookingStatus, at time.Time, by string) error {
	if !b.Status.CanTransitionTo(next) {
		return apperrors.NewInvalidStateError(fmt.Sprintf("cannot move booking from %s to %s", b.Status, next))
	}
	b.Status = next
	switch next {
	case BookingStatusCheckedIn:
		b.CheckedInAt = &at
	case BookingStatusCompleted:
		b.CompletedAt = &at
	case BookingStatusCancelled:
		b.CancelledAt = &at
		b.CancelledBy = by
	}
	b.Touch(at, by)
	return nil
}

// BookingFilter narrows a booking listing. Zero values do not filter.
type BookingFilter struct {
	UserID   string
	DeskID   string
	Status   BookingStatus
	FromDate *time.Time
	ToDate   *time.Time
}

// BookingCursor is a keyset position in the (date, createdAt, id) descending order.
type BookingCursor struct {
	Date      time.Time
	CreatedAt time.Time
	BookingID string
}

package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/desk_booking_app/internal/apperrors"
	"github.com/SscSPs/desk_booking_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from domain.BookingStatus
		to   domain.BookingStatus
		want bool
	}{
		{"reserved to checked-in", domain.BookingStatusReserved, domain.BookingStatusCheckedIn, true},
		{"reserved to cancelled", domain.BookingStatusReserved, domain.BookingStatusCancelled, true},
		{"reserved to completed", domain.BookingStatusReserved, domain.BookingStatusCompleted, false},
		{"checked-in to completed", domain.BookingStatusCheckedIn, domain.BookingStatusCompleted, true},
		{"checked-in to cancelled", domain.BookingStatusCheckedIn, domain.BookingStatusCancelled, true},
		{"checked-in to reserved", domain.BookingStatusCheckedIn, domain.BookingStatusReserved, false},
		{"completed is terminal", domain.BookingStatusCompleted, domain.BookingStatusCancelled, false},
		{"cancelled is terminal", domain.BookingStatusCancelled, domain.BookingStatusReserved, false},
		{"cancelled to checked-in", domain.BookingStatusCancelled, domain.BookingStatusCheckedIn, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestBookingStatus_Liveness(t *testing.T) {
	assert.True(t, domain.BookingStatusReserved.IsLive())
	assert.True(t, domain.BookingStatusCheckedIn.IsLive())
	assert.False(t, domain.BookingStatusCompleted.IsLive())
	assert.False(t, domain.BookingStatusCancelled.IsLive())

	assert.True(t, domain.BookingStatusCompleted.IsTerminal())
	assert.True(t, domain.BookingStatusCancelled.IsTerminal())
	assert.False(t, domain.BookingStatusReserved.IsTerminal())
}

func TestBooking_Transition(t *testing.T) {
	at := time.Date(2026, 3, 2, 9, 5, 0, 0, time.UTC)

	b := domain.Booking{Status: domain.BookingStatusReserved, AuditFields: domain.NewAuditFields(at.Add(-time.Hour), "u1")}
	require.NoError(t, b.Transition(domain.BookingStatusCheckedIn, at, "u1"))
	assert.Equal(t, domain.BookingStatusCheckedIn, b.Status)
	require.NotNil(t, b.CheckedInAt)
	assert.Equal(t, at, *b.CheckedInAt)
	assert.Equal(t, 2, b.Version)

	require.NoError(t, b.Transition(domain.BookingStatusCancelled, at.Add(time.Hour), "admin"))
	assert.Equal(t, "admin", b.CancelledBy)
	require.NotNil(t, b.CancelledAt)

	err := b.Transition(domain.BookingStatusCheckedIn, at, "u1")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)
	assert.Equal(t, domain.BookingStatusCancelled, b.Status)
}

func TestBooking_Window(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	closing := domain.MustParseTimeOfDay("18:00")
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	open := domain.Booking{Date: date, StartTime: domain.MustParseTimeOfDay("09:30")}
	start, end := open.Window(loc, closing)
	assert.Equal(t, time.Date(2026, 3, 2, 9, 30, 0, 0, loc), start)
	assert.Equal(t, time.Date(2026, 3, 2, 18, 0, 0, 0, loc), end)

	endTime := domain.MustParseTimeOfDay("11:00")
	bounded := domain.Booking{Date: date, StartTime: domain.MustParseTimeOfDay("09:30"), EndTime: &endTime}
	_, end = bounded.Window(loc, closing)
	assert.Equal(t, time.Date(2026, 3, 2, 11, 0, 0, 0, loc), end)
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"09:00", "09:00", false},
		{"17:30", "17:30", false},
		{"09:00 AM", "09:00", false},
		{"2:30 pm", "14:30", false},
		{"12:00 PM", "12:00", false},
		{"25:00", "", true},
		{"nine", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.ParseTimeOfDay(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestCalendarDate(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	// 02:00 UTC on the 3rd is still the 2nd in New York.
	instant := time.Date(2026, 3, 3, 2, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), domain.CalendarDate(instant, loc))

	d, err := domain.ParseDate("2026-03-02")
	require.NoError(t, err)
	assert.Equal(t, 1, domain.DaysBetween(d, d.AddDate(0, 0, 1)))

	_, err = domain.ParseDate("02/03/2026")
	assert.Error(t, err)
}

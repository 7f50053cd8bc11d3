package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/desk_booking_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingMapping_OptionalFields(t *testing.T) {
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	end := domain.MustParseTimeOfDay("12:30")
	b := domain.Booking{
		BookingID:      "b1",
		DeskID:         "d1",
		UserID:         "u1",
		Date:           time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		StartTime:      domain.MustParseTimeOfDay("09:00"),
		EndTime:        &end,
		Status:         domain.BookingStatusCheckedIn,
		CheckedInAt:    &now,
		CheckInAddress: "10.1.2.3",
		AuditFields:    domain.NewAuditFields(now, "u1"),
	}

	m := ToModelBooking(b)
	require.NotNil(t, m.EndTime)
	assert.Equal(t, "12:30", *m.EndTime)
	assert.Equal(t, "09:00", m.StartTime)
	assert.Nil(t, m.CancelledBy)

	back, err := ToDomainBooking(m)
	require.NoError(t, err)
	assert.Equal(t, b, back)
}

func TestBookingMapping_RejectsCorruptTimes(t *testing.T) {
	m := ToModelBooking(domain.Booking{BookingID: "b1", StartTime: domain.MustParseTimeOfDay("09:00")})
	m.StartTime = "nine"
	_, err := ToDomainBooking(m)
	assert.Error(t, err)
}

func TestNormalizeDate(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), NormalizeDate(time.Date(2026, 3, 2, 0, 0, 0, 0, ist)))
}

package mapping

import (
	"fmt"
	"time"

	"github.com/SscSPs/desk_booking_app/internal/core/domain"
	"github.com/SscSPs/desk_booking_app/internal/models"
	"gorm.io/datatypes"
)

// ToModelBooking converts a domain Booking to a model Booking
func ToModelBooking(d domain.Booking) models.Booking {
	m := models.Booking{
		BookingID:   d.BookingID,
		DeskID:      d.DeskID,
		UserID:      d.UserID,
		BookingDate: datatypes.Date(d.Date.UTC()),
		StartTime:   d.StartTime.String(),
		Status:      string(d.Status),
		CheckedInAt: d.CheckedInAt,
		CompletedAt: d.CompletedAt,
		CancelledAt: d.CancelledAt,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
	if d.EndTime != nil {
		end := d.EndTime.String()
		m.EndTime = &end
	}
	if d.CheckInAddress != "" {
		addr := d.CheckInAddress
		m.CheckInAddress = &addr
	}
	if d.CancelledBy != "" {
		by := d.CancelledBy
		m.CancelledBy = &by
	}
	return m
}

// ToDomainBooking converts a model Booking to a domain Booking
func ToDomainBooking(m models.Booking) (domain.Booking, error) {
	start, err := domain.ParseTimeOfDay(m.StartTime)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("booking %s: %w", m.BookingID, err)
	}
	d := domain.Booking{
		BookingID:   m.BookingID,
		DeskID:      m.DeskID,
		UserID:      m.UserID,
		Date:        NormalizeDate(time.Time(m.BookingDate)),
		StartTime:   start,
		Status:      domain.BookingStatus(m.Status),
		CheckedInAt: m.CheckedInAt,
		CompletedAt: m.CompletedAt,
		CancelledAt: m.CancelledAt,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	if m.EndTime != nil && *m.EndTime != "" {
		end, err := domain.ParseTimeOfDay(*m.EndTime)
		if err != nil {
			return domain.Booking{}, fmt.Errorf("booking %s: %w", m.BookingID, err)
		}
		d.EndTime = &end
	}
	if m.CheckInAddress != nil {
		d.CheckInAddress = *m.CheckInAddress
	}
	if m.CancelledBy != nil {
		d.CancelledBy = *m.CancelledBy
	}
	return d, nil
}

// ToDomainBookingSlice converts a slice of model Bookings to a slice of domain Bookings
func ToDomainBookingSlice(ms []models.Booking) ([]domain.Booking, error) {
	ds := make([]domain.Booking, len(ms))
	for i, m := range ms {
		d, err := ToDomainBooking(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}

// NormalizeDate drops the time and zone a driver may attach to a DATE column,
// keeping the calendar day as midnight UTC.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

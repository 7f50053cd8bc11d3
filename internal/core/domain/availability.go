package domain

import "time"

// DisplayStatus is the derived state of a desk on a date, as shown to users.
// Clients that need the legacy "booked" label map it from Reserved.
type DisplayStatus string

const (
	DisplayAvailable   DisplayStatus = "available"
	DisplayReserved    DisplayStatus = "reserved"
	DisplayCheckedIn   DisplayStatus = "checked-in"
	DisplayUnavailable DisplayStatus = "unavailable"
	DisplayInactive    DisplayStatus = "inactive"
)

// DeriveDisplayStatus resolves the display status of a desk given its live booking
// for the date (nil when none). Precedence: inactive, unavailable, checked-in, reserved.
func DeriveDisplayStatus(desk Desk, live *Booking) DisplayStatus {
	switch {
	case !desk.IsActive:
		return DisplayInactive
	case desk.IsUnavailable:
		return DisplayUnavailable
	case live != nil && live.Status == BookingStatusCheckedIn:
		return DisplayCheckedIn
	case live != nil && live.Status == BookingStatusReserved:
		return DisplayReserved
	}
	return DisplayAvailable
}

// DeskAvailability is a desk with its resolved status for one date.
type DeskAvailability struct {
	Desk         Desk
	Date         time.Time
	Status       DisplayStatus
	Booking      *Booking
	HeldByViewer bool
}

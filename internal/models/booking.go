package models

import (
	"time"

	"gorm.io/datatypes"
)

// Booking is the persisted form of a desk booking. StartTime and EndTime are
// "HH:MM" wall-clock strings on the office clock.
type Booking struct {
	BookingID      string         `db:"booking_id" gorm:"column:booking_id;primaryKey;size:36"`
	DeskID         string         `db:"desk_id" gorm:"column:desk_id;size:36;not null;index"`
	UserID         string         `db:"user_id" gorm:"column:user_id;size:36;not null;index"`
	BookingDate    datatypes.Date `db:"booking_date" gorm:"column:booking_date;not null;index"`
	StartTime      string         `db:"start_time" gorm:"column:start_time;size:5;not null"`
	EndTime        *string        `db:"end_time" gorm:"column:end_time;size:5"`
	Status         string         `db:"status" gorm:"column:status;size:16;not null;index"`
	CheckedInAt    *time.Time     `db:"checked_in_at" gorm:"column:checked_in_at"`
	CheckInAddress *string        `db:"check_in_address" gorm:"column:check_in_address"`
	CompletedAt    *time.Time     `db:"completed_at" gorm:"column:completed_at"`
	CancelledAt    *time.Time     `db:"cancelled_at" gorm:"column:cancelled_at"`
	CancelledBy    *string        `db:"cancelled_by" gorm:"column:cancelled_by"`
	AuditFields
}

func (Booking) TableName() string { return "bookings" }

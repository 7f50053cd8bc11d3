package dto

import (
	"time"

	"github.com/SscSPs/desk_booking_app/internal/core/domain"
)

// CreateBookingRequest defines the data needed to book a desk for a date.
type CreateBookingRequest struct {
	DeskID    string  `json:"deskID" binding:"required"`
	Date      string  `json:"date" binding:"required,isodate"`
	StartTime string  `json:"startTime" binding:"required,timeslot"`
	EndTime   *string `json:"endTime" binding:"omitempty,timeslot"`
}

// RescheduleBookingRequest moves a booking to another date, time or desk.
// Omitted fields keep their current value.
type RescheduleBookingRequest struct {
	DeskID    *string `json:"deskID"`
	Date      *string `json:"date" binding:"omitempty,isodate"`
	StartTime *string `json:"startTime" binding:"omitempty,timeslot"`
	EndTime   *string `json:"endTime" binding:"omitempty,timeslot"`
}

// CheckInRequest optionally carries client-reported network evidence.
type CheckInRequest struct {
	NetworkEvidence *string `json:"networkEvidence"`
}

// ListBookingsParams defines query parameters for listing bookings.
type ListBookingsParams struct {
	Limit     int     `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken *string `form:"nextToken"`
	// Scope "all" lists every user's bookings and requires an elevated role.
	Scope  string `form:"scope,default=me" binding:"omitempty,oneof=me all"`
	Date   string `form:"date" binding:"omitempty,isodate"`
	Status string `form:"status" binding:"omitempty,oneof=reserved checked-in completed cancelled"`
	DeskID string `form:"deskID"`
	UserID string `form:"userID"`
}

type BookingResponse struct {
	BookingID     string     `json:"bookingID"`
	DeskID        string     `json:"deskID"`
	UserID        string     `json:"userID"`
	Date          string     `json:"date"`
	StartTime     string     `json:"startTime"`
	EndTime       *string    `json:"endTime,omitempty"`
	Status        string     `json:"status"`
	CheckedInAt   *time.Time `json:"checkedInAt,omitempty"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
	CancelledAt   *time.Time `json:"cancelledAt,omitempty"`
	CancelledBy   string     `json:"cancelledBy,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	LastUpdatedAt time.Time  `json:"lastUpdatedAt"`
}

// ListBookingsResponse wraps a page of bookings.
type ListBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	NextToken *string           `json:"nextToken,omitempty"`
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		BookingID:     b.BookingID,
		DeskID:        b.DeskID,
		UserID:        b.UserID,
		Date:          b.DateString(),
		StartTime:     b.StartTime.String(),
		Status:        string(b.Status),
		CheckedInAt:   b.CheckedInAt,
		CompletedAt:   b.CompletedAt,
		CancelledAt:   b.CancelledAt,
		CancelledBy:   b.CancelledBy,
		CreatedAt:     b.CreatedAt,
		LastUpdatedAt: b.LastUpdatedAt,
	}
	if b.EndTime != nil {
		end := b.EndTime.String()
		resp.EndTime = &end
	}
	return resp
}

// ToBookingResponses converts a slice of bookings.
func ToBookingResponses(bookings []domain.Booking) []BookingResponse {
	out := make([]BookingResponse, len(bookings))
	for i := range bookings {
		out[i] = ToBookingResponse(&bookings[i])
	}
	return out
}

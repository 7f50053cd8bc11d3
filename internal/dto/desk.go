package dto

import (
	"time"

	"github.com/SscSPs/desk_booking_app/internal/core/domain"
)

// CreateDeskRequest defines the data needed to register a desk or room.
type CreateDeskRequest struct {
	Code     string  `json:"code" binding:"required,max=32"`
	Name     string  `json:"name" binding:"required,max=128"`
	Type     string  `json:"type" binding:"required,oneof=regular_desk executive_office meeting_room board_room"`
	Capacity int     `json:"capacity" binding:"omitempty,min=1"`
	Floor    string  `json:"floor"`
	Section  string  `json:"section"`
	PosX     float64 `json:"posX"`
	PosY     float64 `json:"posY"`
}

// UpdateDeskStatusRequest carries an administrative status command.
type UpdateDeskStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active inactive available unavailable"`
}

// ListDesksParams defines query parameters for the desk map.
type ListDesksParams struct {
	Date    string `form:"date" binding:"omitempty,isodate"`
	Type    string `form:"type" binding:"omitempty,oneof=regular_desk executive_office meeting_room board_room"`
	Floor   string `form:"floor"`
	Section string `form:"section"`
	Status  string `form:"status" binding:"omitempty,oneof=available reserved checked-in unavailable inactive"`
}

// GetDeskParams defines query parameters for a single desk lookup.
type GetDeskParams struct {
	Date string `form:"date" binding:"omitempty,isodate"`
}

// DeskResponse is a desk with its resolved status for the requested date.
type DeskResponse struct {
	DeskID        string           `json:"deskID"`
	Code          string           `json:"code"`
	Name          string           `json:"name"`
	Type          string           `json:"type"`
	Capacity      int              `json:"capacity"`
	Floor         string           `json:"floor"`
	Section       string           `json:"section"`
	PosX          float64          `json:"posX"`
	PosY          float64          `json:"posY"`
	IsActive      bool             `json:"isActive"`
	IsUnavailable bool             `json:"isUnavailable"`
	Date          string           `json:"date,omitempty"`
	Status        string           `json:"status,omitempty"`
	HeldByViewer  bool             `json:"heldByViewer,omitempty"`
	Booking       *BookingResponse `json:"booking,omitempty"`
}

// ListDesksResponse wraps the desk map for a date.
type ListDesksResponse struct {
	Date  string         `json:"date"`
	Desks []DeskResponse `json:"desks"`
}

// ToDeskResponse converts a bare desk, without date information.
func ToDeskResponse(d *domain.Desk) DeskResponse {
	return DeskResponse{
		DeskID:        d.DeskID,
		Code:          d.Code,
		Name:          d.Name,
		Type:          string(d.Type),
		Capacity:      d.Capacity,
		Floor:         d.Floor,
		Section:       d.Section,
		PosX:          d.PosX,
		PosY:          d.PosY,
		IsActive:      d.IsActive,
		IsUnavailable: d.IsUnavailable,
	}
}

// ToDeskAvailabilityResponse converts a resolved desk. Booking details are only
// included when the viewer holds the booking or may see all bookings.
func ToDeskAvailabilityResponse(a *domain.DeskAvailability, showBooking bool) DeskResponse {
	resp := ToDeskResponse(&a.Desk)
	resp.Date = a.Date.Format(domain.DateLayout)
	resp.Status = string(a.Status)
	resp.HeldByViewer = a.HeldByViewer
	if a.Booking != nil && (showBooking || a.HeldByViewer) {
		b := ToBookingResponse(a.Booking)
		resp.Booking = &b
	}
	return resp
}

// ToListDesksResponse converts the resolved desk map.
func ToListDesksResponse(date time.Time, items []domain.DeskAvailability, showBookings bool) ListDesksResponse {
	desks := make([]DeskResponse, len(items))
	for i := range items {
		desks[i] = ToDeskAvailabilityResponse(&items[i], showBookings)
	}
	return ListDesksResponse{Date: date.Format(domain.DateLayout), Desks: desks}
}

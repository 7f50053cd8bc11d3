package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/desk_booking_app/internal/core/domain"
	portsrepo "github.com/SscSPs/desk_booking_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/desk_booking_app/internal/core/ports/services"
)

// availabilityService is the single place where desk display status is derived.
type availabilityService struct {
	BaseService
	deskRepo    portsrepo.DeskReader
	bookingRepo portsrepo.BookingReader
}

// NewAvailabilityService creates the availability resolver.
func NewAvailabilityService(deskRepo portsrepo.DeskReader, bookingRepo portsrepo.BookingReader) portssvc.AvailabilitySvc {
	return &availabilityService{
		BaseService: BaseService{name: "availability"},
		deskRepo:    deskRepo,
		bookingRepo: bookingRepo,
	}
}

var _ portssvc.AvailabilitySvc = (*availabilityService)(nil)

func (s *availabilityService) liveByDesk(ctx context.Context, date time.Time) (map[string]domain.Booking, error) {
	live, err := s.bookingRepo.ListLiveBookingsByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	byDesk := make(map[string]domain.Booking, len(live))
	for _, b := range live {
		byDesk[b.DeskID] = b
	}
	return byDesk, nil
}

func resolve(desk domain.Desk, date time.Time, byDesk map[string]domain.Booking, viewer domain.Actor) domain.DeskAvailability {
	a := domain.DeskAvailability{Desk: desk, Date: date}
	if b, ok := byDesk[desk.DeskID]; ok {
		a.Booking = &b
		a.HeldByViewer = b.UserID == viewer.UserID
	}
	a.Status = domain.DeriveDisplayStatus(desk, a.Booking)
	return a
}

func (s *availabilityService) ResolveDesks(ctx context.Context, actor domain.Actor, date time.Time, filter domain.DeskFilter) ([]domain.DeskAvailability, error) {
	desks, err := s.deskRepo.ListDesks(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list desks for availability")
		return nil, err
	}
	byDesk, err := s.liveByDesk(ctx, date)
	if err != nil {
		s.LogError(ctx, err, "Failed to load live bookings", slog.String("date", date.Format(domain.DateLayout)))
		return nil, err
	}

	out := make([]domain.DeskAvailability, 0, len(desks))
	for _, d := range desks {
		out = append(out, resolve(d, date, byDesk, actor))
	}
	return out, nil
}

func (s *availabilityService) ResolveDesk(ctx context.Context, actor domain.Actor, deskID string, date time.Time) (*domain.DeskAvailability, error) {
	desk, err := s.deskRepo.FindDeskByID(ctx, deskID)
	if err != nil {
		return nil, err
	}
	byDesk, err := s.liveByDesk(ctx, date)
	if err != nil {
		s.LogError(ctx, err, "Failed to load live bookings", slog.String("date", date.Format(domain.DateLayout)))
		return nil, err
	}
	a := resolve(*desk, date, byDesk, actor)
	return &a, nil
}

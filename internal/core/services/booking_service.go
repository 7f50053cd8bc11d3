package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/desk_booking_app/internal/apperrors"
	"github.com/SscSPs/desk_booking_app/internal/core/domain"
	portsrepo "github.com/SscSPs/desk_booking_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/desk_booking_app/internal/core/ports/services"
	"github.com/SscSPs/desk_booking_app/internal/dto"
	"github.com/SscSPs/desk_booking_app/internal/utils/pagination"
	"github.com/google/uuid"
)

// SystemActorID is recorded as the updater of bookings changed by the sweeper.
const SystemActorID = "system"

// bookingService is the booking ledger: it owns every booking state transition.
type bookingService struct {
	BaseService
	bookingRepo portsrepo.BookingRepositoryFacade
	deskRepo    portsrepo.DeskReader
	userRepo    portsrepo.UserReader
	policy      portssvc.BookingPolicySvc
	gate        portssvc.CheckInGateSvc
	newID       func() string
}

// BookingServiceOption is a functional option for configuring the booking service
type BookingServiceOption func(*bookingService)

// WithBookingIDGenerator replaces the uuid generator, mostly for tests.
func WithBookingIDGenerator(gen func() string) BookingServiceOption {
	return func(s *bookingService) {
		s.newID = gen
	}
}

// NewBookingService creates the booking ledger.
func NewBookingService(
	bookingRepo portsrepo.BookingRepositoryFacade,
	deskRepo portsrepo.DeskReader,
	userRepo portsrepo.UserReader,
	policy portssvc.BookingPolicySvc,
	gate portssvc.CheckInGateSvc,
	options ...BookingServiceOption,
) portssvc.BookingSvcFacade {
	svc := &bookingService{
		BaseService: BaseService{name: "booking_ledger"},
		bookingRepo: bookingRepo,
		deskRepo:    deskRepo,
		userRepo:    userRepo,
		policy:      policy,
		gate:        gate,
		newID:       uuid.NewString,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.BookingSvcFacade = (*bookingService)(nil)

// stamp is the current instant at the precision every store keeps.
func (s *bookingService) stamp() time.Time {
	return s.policy.Now().UTC().Truncate(time.Microsecond)
}

func parseSlot(start string, end *string) (domain.TimeOfDay, *domain.TimeOfDay, error) {
	st, err := domain.ParseTimeOfDay(start)
	if err != nil {
		return domain.TimeOfDay{}, nil, apperrors.NewValidationFailedError(err.Error())
	}
	if end == nil || *end == "" {
		return st, nil, nil
	}
	et, err := domain.ParseTimeOfDay(*end)
	if err != nil {
		return domain.TimeOfDay{}, nil, apperrors.NewValidationFailedError(err.Error())
	}
	return st, &et, nil
}

// bookableDesk loads a desk that can take a booking for role.
func (s *bookingService) bookableDesk(ctx context.Context, deskID string, role domain.Role) (*domain.Desk, error) {
	desk, err := s.deskRepo.FindDeskByID(ctx, deskID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.NewNotFoundError("desk " + deskID + " not found")
		}
		return nil, err
	}
	if !desk.IsActive {
		return nil, apperrors.NewNotFoundError("desk " + deskID + " not found")
	}
	if desk.IsUnavailable {
		return nil, apperrors.NewPolicyViolationError("desk " + desk.Code + " is temporarily unavailable")
	}
	if err := s.policy.CheckRoleAccess(desk.Type, role); err != nil {
		return nil, err
	}
	return desk, nil
}

func (s *bookingService) CreateBooking(ctx context.Context, actor domain.Actor, req dto.CreateBookingRequest) (*domain.Booking, error) {
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, apperrors.NewValidationFailedError(err.Error())
	}
	start, end, err := parseSlot(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}
	if err := s.policy.ValidateSlot(start, end); err != nil {
		return nil, err
	}

	desk, err := s.bookableDesk(ctx, req.DeskID, actor.Role)
	if err != nil {
		return nil, err
	}
	if err := s.policy.CheckBookingWindow(desk.Type, date); err != nil {
		return nil, err
	}

	now := s.stamp()
	booking := domain.Booking{
		BookingID:   s.newID(),
		DeskID:      desk.DeskID,
		UserID:      actor.UserID,
		Date:        date,
		StartTime:   start,
		EndTime:     end,
		Status:      domain.BookingStatusReserved,
		AuditFields: domain.NewAuditFields(now, actor.UserID),
	}
	if err := s.policy.CheckNotElapsed(booking); err != nil {
		return nil, err
	}

	if err := s.bookingRepo.CreateBooking(ctx, booking); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			s.LogInfo(ctx, "Booking conflict",
				slog.String("desk_id", desk.DeskID),
				slog.String("date", booking.DateString()))
		} else {
			s.LogError(ctx, err, "Failed to create booking", slog.String("desk_id", desk.DeskID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Booking created",
		slog.String("booking_id", booking.BookingID),
		slog.String("desk_id", booking.DeskID),
		slog.String("date", booking.DateString()),
		slog.String("start", booking.StartTime.String()))
	return &booking, nil
}

// loadVisible returns the booking when the actor owns it or holds an elevated role.
func (s *bookingService) loadVisible(ctx context.Context, actor domain.Actor, bookingID string) (*domain.Booking, error) {
	b, err := s.bookingRepo.FindBookingByID(ctx, bookingID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.NewNotFoundError("booking " + bookingID + " not found")
		}
		return nil, err
	}
	if b.UserID != actor.UserID && !actor.IsElevated() {
		return nil, apperrors.NewForbiddenError("booking belongs to another user")
	}
	return b, nil
}

func (s *bookingService) GetBooking(ctx context.Context, actor domain.Actor, bookingID string) (*domain.Booking, error) {
	return s.loadVisible(ctx, actor, bookingID)
}

func (s *bookingService) ListBookings(ctx context.Context, actor domain.Actor, params dto.ListBookingsParams) (*dto.ListBookingsResponse, error) {
	filter, err := s.bookingFilter(ctx, actor, params)
	if err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	var after *domain.BookingCursor
	if params.NextToken != nil && *params.NextToken != "" {
		date, createdAt, id, err := pagination.DecodeKeysetToken(*params.NextToken)
		if err != nil {
			return nil, apperrors.NewValidationFailedError(err.Error())
		}
		after = &domain.BookingCursor{Date: date, CreatedAt: createdAt, BookingID: id}
	}

	bookings, err := s.bookingRepo.ListBookings(ctx, filter, limit+1, after)
	if err != nil {
		s.LogError(ctx, err, "Failed to list bookings")
		return nil, err
	}

	resp := &dto.ListBookingsResponse{}
	if len(bookings) > limit {
		bookings = bookings[:limit]
		last := bookings[len(bookings)-1]
		token := pagination.EncodeKeysetToken(last.Date, last.CreatedAt, last.BookingID)
		resp.NextToken = &token
	}
	resp.Bookings = dto.ToBookingResponses(bookings)
	return resp, nil
}

func (s *bookingService) RescheduleBooking(ctx context.Context, actor domain.Actor, bookingID string, req dto.RescheduleBookingRequest) (*domain.Booking, error) {
	current, err := s.loadVisible(ctx, actor, bookingID)
	if err != nil {
		return nil, err
	}
	if current.UserID != actor.UserID && !actor.IsAdmin() {
		return nil, apperrors.NewForbiddenError("only the owner or an admin may reschedule a booking")
	}
	if current.Status != domain.BookingStatusReserved {
		return nil, apperrors.NewInvalidStateError("only reserved bookings can be rescheduled, booking is " + string(current.Status))
	}
	if !actor.IsAdmin() {
		if err := s.policy.CheckLeadTime(*current); err != nil {
			return nil, err
		}
	}

	updated := *current
	if req.Date != nil {
		date, err := domain.ParseDate(*req.Date)
		if err != nil {
			return nil, apperrors.NewValidationFailedError(err.Error())
		}
		updated.Date = date
	}
	if req.StartTime != nil {
		start, _, err := parseSlot(*req.StartTime, nil)
		if err != nil {
			return nil, err
		}
		updated.StartTime = start
	}
	if req.EndTime != nil {
		if *req.EndTime == "" {
			updated.EndTime = nil
		} else {
			_, end, err := parseSlot(updated.StartTime.String(), req.EndTime)
			if err != nil {
				return nil, err
			}
			updated.EndTime = end
		}
	}
	if err := s.policy.ValidateSlot(updated.StartTime, updated.EndTime); err != nil {
		return nil, err
	}

	if req.DeskID != nil && *req.DeskID != "" {
		updated.DeskID = *req.DeskID
	}
	// The owner's role decides room access, not the admin moving the booking.
	role, err := s.ownerRole(ctx, actor, current)
	if err != nil {
		return nil, err
	}
	desk, err := s.bookableDesk(ctx, updated.DeskID, role)
	if err != nil {
		return nil, err
	}
	if err := s.policy.CheckBookingWindow(desk.Type, updated.Date); err != nil {
		return nil, err
	}
	if err := s.policy.CheckNotElapsed(updated); err != nil {
		return nil, err
	}

	updated.Touch(s.stamp(), actor.UserID)
	if err := s.bookingRepo.UpdateBooking(ctx, updated, domain.BookingStatusReserved); err != nil {
		s.LogError(ctx, err, "Failed to reschedule booking", slog.String("booking_id", bookingID))
		return nil, err
	}
	s.LogInfo(ctx, "Booking rescheduled",
		slog.String("booking_id", bookingID),
		slog.String("desk_id", updated.DeskID),
		slog.String("date", updated.DateString()),
		slog.String("start", updated.StartTime.String()))
	return &updated, nil
}

// ownerRole is the role used for room-access checks on an existing booking.
func (s *bookingService) ownerRole(ctx context.Context, actor domain.Actor, b *domain.Booking) (domain.Role, error) {
	if b.UserID == actor.UserID {
		return actor.Role, nil
	}
	owner, err := s.userRepo.FindUserByID(ctx, b.UserID)
	if err != nil {
		if isNotFound(err) {
			return "", apperrors.NewNotFoundError("booking owner " + b.UserID + " not found")
		}
		s.LogError(ctx, err, "Failed to load booking owner", slog.String("user_id", b.UserID))
		return "", err
	}
	return owner.Role, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, actor domain.Actor, bookingID string) (*domain.Booking, error) {
	b, err := s.loadVisible(ctx, actor, bookingID)
	if err != nil {
		return nil, err
	}
	if b.UserID != actor.UserID && !actor.IsAdmin() {
		return nil, apperrors.NewForbiddenError("only the owner or an admin may cancel a booking")
	}
	if b.Status.IsTerminal() {
		return nil, apperrors.NewInvalidStateError("booking is already " + string(b.Status))
	}
	// Reserved bookings respect the lead time unless an admin overrides it.
	// A checked-in booking may be released early by its owner or an admin.
	if b.Status == domain.BookingStatusReserved && !actor.IsAdmin() {
		if err := s.policy.CheckLeadTime(*b); err != nil {
			return nil, err
		}
	}

	previous := b.Status
	if err := b.Transition(domain.BookingStatusCancelled, s.stamp(), actor.UserID); err != nil {
		return nil, err
	}
	if err := s.bookingRepo.UpdateBooking(ctx, *b, previous); err != nil {
		s.LogError(ctx, err, "Failed to cancel booking", slog.String("booking_id", bookingID))
		return nil, err
	}
	s.LogInfo(ctx, "Booking cancelled",
		slog.String("booking_id", bookingID),
		slog.String("previous_status", string(previous)))
	return b, nil
}

func (s *bookingService) CheckIn(ctx context.Context, actor domain.Actor, bookingID string, evidence domain.NetworkEvidence) (*domain.Booking, error) {
	b, err := s.loadVisible(ctx, actor, bookingID)
	if err != nil {
		return nil, err
	}
	return s.checkIn(ctx, actor, b, evidence)
}

func (s *bookingService) CheckInToday(ctx context.Context, actor domain.Actor, evidence domain.NetworkEvidence) (*domain.Booking, error) {
	b, err := s.bookingRepo.FindLiveBookingForUser(ctx, actor.UserID, s.policy.Today())
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.NewNotFoundError("no booking for today")
		}
		return nil, err
	}
	if b.Status == domain.BookingStatusCheckedIn {
		return b, nil
	}
	return s.checkIn(ctx, actor, b, evidence)
}

func (s *bookingService) checkIn(ctx context.Context, actor domain.Actor, b *domain.Booking, evidence domain.NetworkEvidence) (*domain.Booking, error) {
	if b.UserID != actor.UserID {
		return nil, apperrors.NewForbiddenError("only the booking owner can check in")
	}
	if b.Status != domain.BookingStatusReserved {
		return nil, apperrors.NewInvalidStateError("only reserved bookings can be checked in, booking is " + string(b.Status))
	}
	if err := s.policy.CheckCheckInWindow(*b); err != nil {
		return nil, err
	}
	if !s.gate.Authorize(ctx, *b, evidence) {
		s.LogInfo(ctx, "Check-in evidence rejected",
			slog.String("booking_id", b.BookingID),
			slog.String("address", evidence.Address))
		return nil, apperrors.NewNotAuthorizedError("network evidence does not match the office network")
	}

	if err := b.Transition(domain.BookingStatusCheckedIn, s.stamp(), actor.UserID); err != nil {
		return nil, err
	}
	b.CheckInAddress = evidence.Address
	if err := s.bookingRepo.UpdateBooking(ctx, *b, domain.BookingStatusReserved); err != nil {
		if !errors.Is(err, apperrors.ErrInvalidState) {
			s.LogError(ctx, err, "Failed to check in booking", slog.String("booking_id", b.BookingID))
		}
		return nil, err
	}
	s.LogInfo(ctx, "Booking checked in", slog.String("booking_id", b.BookingID))
	return b, nil
}

func (s *bookingService) CompleteBooking(ctx context.Context, actor domain.Actor, bookingID string) (*domain.Booking, error) {
	if err := s.RequireElevated(ctx, actor, "completing bookings"); err != nil {
		return nil, err
	}
	b, err := s.loadVisible(ctx, actor, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Status != domain.BookingStatusCheckedIn {
		return nil, apperrors.NewInvalidStateError("only checked-in bookings can be completed, booking is " + string(b.Status))
	}
	if !s.policy.WindowEnded(*b) {
		return nil, apperrors.NewPolicyViolationError("the booking window has not elapsed yet")
	}
	if err := b.Transition(domain.BookingStatusCompleted, s.stamp(), actor.UserID); err != nil {
		return nil, err
	}
	if err := s.bookingRepo.UpdateBooking(ctx, *b, domain.BookingStatusCheckedIn); err != nil {
		s.LogError(ctx, err, "Failed to complete booking", slog.String("booking_id", bookingID))
		return nil, err
	}
	s.LogInfo(ctx, "Booking completed", slog.String("booking_id", bookingID))
	return b, nil
}

func (s *bookingService) CompleteElapsedBookings(ctx context.Context) (int, error) {
	candidates, err := s.bookingRepo.ListCheckedInBookingsUpTo(ctx, s.policy.Today())
	if err != nil {
		s.LogError(ctx, err, "Failed to list checked-in bookings")
		return 0, err
	}

	completed := 0
	for i := range candidates {
		b := candidates[i]
		if !s.policy.WindowEnded(b) {
			continue
		}
		if err := b.Transition(domain.BookingStatusCompleted, s.stamp(), SystemActorID); err != nil {
			continue
		}
		if err := s.bookingRepo.UpdateBooking(ctx, b, domain.BookingStatusCheckedIn); err != nil {
			if errors.Is(err, apperrors.ErrInvalidState) {
				// Cancelled or completed by someone else since the listing.
				continue
			}
			s.LogError(ctx, err, "Failed to auto-complete booking", slog.String("booking_id", b.BookingID))
			return completed, err
		}
		completed++
	}
	return completed, nil
}

package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/desk_booking_app/internal/apperrors"
	"github.com/SscSPs/desk_booking_app/internal/core/domain"
	portsrepo "github.com/SscSPs/desk_booking_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/desk_booking_app/internal/core/ports/services"
	"github.com/SscSPs/desk_booking_app/internal/dto"
	"github.com/google/uuid"
)

type deskService struct {
	BaseService
	deskRepo portsrepo.DeskRepositoryFacade
	now      func() time.Time
	today    func() time.Time
}

// DeskServiceOption is a functional option for configuring the desk service
type DeskServiceOption func(*deskService)

// WithDeskClock sets the clock used for audit stamps and for the "today" used by
// the live-booking guard.
func WithDeskClock(policy portssvc.BookingPolicySvc) DeskServiceOption {
	return func(s *deskService) {
		s.now = policy.Now
		s.today = policy.Today
	}
}

// NewDeskService creates the desk registry.
func NewDeskService(repo portsrepo.DeskRepositoryFacade, options ...DeskServiceOption) portssvc.DeskSvcFacade {
	svc := &deskService{
		BaseService: BaseService{name: "desk_registry"},
		deskRepo:    repo,
		now:         time.Now,
	}
	svc.today = func() time.Time { return domain.CalendarDate(svc.now(), time.UTC) }
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.DeskSvcFacade = (*deskService)(nil)

func (s *deskService) GetDesk(ctx context.Context, deskID string) (*domain.Desk, error) {
	desk, err := s.deskRepo.FindDeskByID(ctx, deskID)
	if err != nil {
		if !isNotFound(err) {
			s.LogError(ctx, err, "Failed to get desk", slog.String("desk_id", deskID))
		}
		return nil, err
	}
	return desk, nil
}

func (s *deskService) ListDesks(ctx context.Context, filter domain.DeskFilter) ([]domain.Desk, error) {
	desks, err := s.deskRepo.ListDesks(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list desks")
		return nil, err
	}
	return desks, nil
}

func (s *deskService) CreateDesk(ctx context.Context, actor domain.Actor, req dto.CreateDeskRequest) (*domain.Desk, error) {
	if err := s.RequireElevated(ctx, actor, "creating desks"); err != nil {
		return nil, err
	}
	deskType := domain.DeskType(req.Type)
	if !deskType.IsValid() {
		return nil, apperrors.NewValidationFailedError("unknown desk type " + req.Type)
	}
	capacity := req.Capacity
	if capacity == 0 {
		capacity = 1
	}

	desk := domain.Desk{
		DeskID:      uuid.NewString(),
		Code:        strings.TrimSpace(req.Code),
		Name:        strings.TrimSpace(req.Name),
		Type:        deskType,
		Capacity:    capacity,
		Floor:       req.Floor,
		Section:     req.Section,
		PosX:        req.PosX,
		PosY:        req.PosY,
		IsActive:    true,
		AuditFields: domain.NewAuditFields(s.now().UTC().Truncate(time.Microsecond), actor.UserID),
	}
	if err := s.deskRepo.SaveDesk(ctx, desk); err != nil {
		s.LogError(ctx, err, "Failed to save desk", slog.String("code", desk.Code))
		return nil, err
	}
	s.LogInfo(ctx, "Desk created", slog.String("desk_id", desk.DeskID), slog.String("code", desk.Code))
	return &desk, nil
}

func (s *deskService) UpdateDeskStatus(ctx context.Context, actor domain.Actor, deskID string, change domain.DeskStatusChange) (*domain.Desk, error) {
	if err := s.RequireElevated(ctx, actor, "changing desk status"); err != nil {
		return nil, err
	}
	if !change.IsValid() {
		return nil, apperrors.NewValidationFailedError("unknown desk status " + string(change))
	}

	update := portsrepo.DeskStatusUpdate{
		DeskID:    deskID,
		Change:    change,
		UpdatedBy: actor.UserID,
		UpdatedAt: s.now().UTC().Truncate(time.Microsecond),
	}
	if change.RemovesFromService() {
		today := s.today()
		update.GuardLiveFrom = &today
	}

	updated, err := s.deskRepo.UpdateDeskStatus(ctx, update)
	if err != nil {
		s.LogError(ctx, err, "Failed to update desk status",
			slog.String("desk_id", deskID), slog.String("change", string(change)))
		return nil, err
	}
	s.LogInfo(ctx, "Desk status updated",
		slog.String("desk_id", deskID),
		slog.Bool("is_active", updated.IsActive),
		slog.Bool("is_unavailable", updated.IsUnavailable))
	return updated, nil
}

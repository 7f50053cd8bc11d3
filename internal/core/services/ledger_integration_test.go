package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/desk_booking_app/internal/apperrors"
	"github.com/SscSPs/desk_booking_app/internal/core/domain"
	portssvc "github.com/SscSPs/desk_booking_app/internal/core/ports/services"
	"github.com/SscSPs/desk_booking_app/internal/core/services"
	"github.com/SscSPs/desk_booking_app/internal/dto"
	"github.com/SscSPs/desk_booking_app/internal/platform/config"
	"github.com/SscSPs/desk_booking_app/internal/repositories/database/gormsql"
	"github.com/SscSPs/desk_booking_app/pkg/database"
	"github.com/stretchr/testify/suite"
)

// LedgerIntegrationTestSuite runs the services against the sqlite repositories.
type LedgerIntegrationTestSuite struct {
	suite.Suite
	ctx   context.Context
	clock *fakeClock
	svc   *portssvc.ServiceContainer
	deskA *domain.Desk
}

func (s *LedgerIntegrationTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = &fakeClock{now: time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)}

	db, err := database.OpenSQLite("file::memory:")
	s.Require().NoError(err)
	s.Require().NoError(gormsql.Migrate(db))
	s.T().Cleanup(func() { database.CloseGorm(db) })

	cfg := &config.Config{
		OfficeLocation:    time.UTC,
		OfficeOpen:        "08:00",
		OfficeClose:       "18:00",
		SlotMinutes:       30,
		LeadTime:          2 * time.Hour,
		OfficeNetworks:    []string{"10.0.0.0/8"},
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "test",
	}
	s.svc, err = services.NewServiceContainer(cfg, gormsql.NewRepositoryProvider(db), s.clock.Now)
	s.Require().NoError(err)

	s.deskA, err = s.svc.Desk.CreateDesk(s.ctx, admin, dto.CreateDeskRequest{Code: "OP-01", Name: "Open plan 1", Type: "regular_desk"})
	s.Require().NoError(err)
}

func (s *LedgerIntegrationTestSuite) statusOf(viewer domain.Actor, deskID string) domain.DisplayStatus {
	a, err := s.svc.Availability.ResolveDesk(s.ctx, viewer, deskID, s.svc.Policy.Today())
	s.Require().NoError(err)
	return a.Status
}

func (s *LedgerIntegrationTestSuite) TestEndToEndScenario() {
	userA := domain.Actor{UserID: "user-a", Role: domain.RoleEmployee}
	userB := domain.Actor{UserID: "user-b", Role: domain.RoleEmployee}
	today := s.svc.Policy.Today().Format(domain.DateLayout)
	req := dto.CreateBookingRequest{DeskID: s.deskA.DeskID, Date: today, StartTime: "09:00"}

	booking, err := s.svc.Booking.CreateBooking(s.ctx, userA, req)
	s.Require().NoError(err)
	s.Equal(domain.DisplayReserved, s.statusOf(userB, s.deskA.DeskID))

	_, err = s.svc.Booking.CreateBooking(s.ctx, userB, req)
	s.ErrorIs(err, apperrors.ErrConflict)

	_, err = s.svc.Booking.CheckIn(s.ctx, userA, booking.BookingID, domain.NetworkEvidence{Address: "10.4.0.12", Source: domain.EvidenceClaimed})
	s.Require().NoError(err)
	s.Equal(domain.DisplayCheckedIn, s.statusOf(userB, s.deskA.DeskID))

	again, err := s.svc.Booking.CheckInToday(s.ctx, userA, domain.NetworkEvidence{Address: "10.4.0.12"})
	s.Require().NoError(err)
	s.Equal(domain.BookingStatusCheckedIn, again.Status)

	_, err = s.svc.Booking.CancelBooking(s.ctx, userA, booking.BookingID)
	s.Require().NoError(err)
	s.Equal(domain.DisplayAvailable, s.statusOf(userB, s.deskA.DeskID))

	_, err = s.svc.Booking.CreateBooking(s.ctx, userB, req)
	s.NoError(err)
	a, err := s.svc.Availability.ResolveDesk(s.ctx, userB, s.deskA.DeskID, s.svc.Policy.Today())
	s.Require().NoError(err)
	s.True(a.HeldByViewer)
}

func (s *LedgerIntegrationTestSuite) TestDeactivationBlockedByLiveBooking() {
	userA := domain.Actor{UserID: "user-a", Role: domain.RoleEmployee}
	b, err := s.svc.Booking.CreateBooking(s.ctx, userA, dto.CreateBookingRequest{
		DeskID: s.deskA.DeskID, Date: "2026-03-11", StartTime: "10:00",
	})
	s.Require().NoError(err)

	_, err = s.svc.Desk.UpdateDeskStatus(s.ctx, admin, s.deskA.DeskID, domain.DeskStatusDeactivate)
	s.ErrorIs(err, apperrors.ErrConflict)

	_, err = s.svc.Booking.CancelBooking(s.ctx, userA, b.BookingID)
	s.Require().NoError(err)

	desk, err := s.svc.Desk.UpdateDeskStatus(s.ctx, admin, s.deskA.DeskID, domain.DeskStatusDeactivate)
	s.Require().NoError(err)
	s.False(desk.IsActive)
	s.Equal(domain.DisplayInactive, s.statusOf(userA, s.deskA.DeskID))

	_, err = s.svc.Booking.CreateBooking(s.ctx, userA, dto.CreateBookingRequest{
		DeskID: s.deskA.DeskID, Date: "2026-03-11", StartTime: "10:00",
	})
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *LedgerIntegrationTestSuite) TestSweeperCompletesElapsedBookings() {
	userA := domain.Actor{UserID: "user-a", Role: domain.RoleEmployee}
	b, err := s.svc.Booking.CreateBooking(s.ctx, userA, dto.CreateBookingRequest{
		DeskID: s.deskA.DeskID, Date: "2026-03-10", StartTime: "09:00", EndTime: strPtr("11:00"),
	})
	s.Require().NoError(err)
	_, err = s.svc.Booking.CheckIn(s.ctx, userA, b.BookingID, domain.NetworkEvidence{Address: "10.0.0.1"})
	s.Require().NoError(err)

	sweeper := services.NewCompletionSweeper(s.svc.Booking, time.Minute)
	s.Equal(0, sweeper.SweepOnce(s.ctx))

	s.clock.Set(time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC))
	s.Equal(1, sweeper.SweepOnce(s.ctx))

	done, err := s.svc.Booking.GetBooking(s.ctx, userA, b.BookingID)
	s.Require().NoError(err)
	s.Equal(domain.BookingStatusCompleted, done.Status)
	s.Equal(domain.DisplayAvailable, s.statusOf(userA, s.deskA.DeskID))
}

func (s *LedgerIntegrationTestSuite) TestAdminRescheduleKeepsOwnerRoomAccess() {
	user, err := s.svc.User.CreateUser(s.ctx, admin, dto.CreateUserRequest{
		Name: "Emp One", Email: "emp1@example.com", Password: "long-enough-pass", Role: "employee",
	})
	s.Require().NoError(err)
	emp := domain.Actor{UserID: user.UserID, Role: user.Role}
	exec, err := s.svc.Desk.CreateDesk(s.ctx, admin, dto.CreateDeskRequest{Code: "EX-01", Name: "Corner office", Type: "executive_office"})
	s.Require().NoError(err)

	_, err = s.svc.Booking.CreateBooking(s.ctx, emp, dto.CreateBookingRequest{DeskID: exec.DeskID, Date: "2026-03-11", StartTime: "10:00"})
	s.ErrorIs(err, apperrors.ErrForbidden)

	b, err := s.svc.Booking.CreateBooking(s.ctx, emp, dto.CreateBookingRequest{DeskID: s.deskA.DeskID, Date: "2026-03-11", StartTime: "10:00"})
	s.Require().NoError(err)

	_, err = s.svc.Booking.RescheduleBooking(s.ctx, admin, b.BookingID, dto.RescheduleBookingRequest{DeskID: &exec.DeskID})
	s.ErrorIs(err, apperrors.ErrForbidden)

	stored, err := s.svc.Booking.GetBooking(s.ctx, emp, b.BookingID)
	s.Require().NoError(err)
	s.Equal(s.deskA.DeskID, stored.DeskID)
}

func TestLedgerIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerIntegrationTestSuite))
}

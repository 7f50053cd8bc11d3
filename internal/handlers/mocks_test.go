package handlers_test

import (
	"context"
	"io"
	"time"

	"github.com/SscSPs/desk_booking_app/internal/core/domain"
	portssvc "github.com/SscSPs/desk_booking_app/internal/core/ports/services"
	"github.com/SscSPs/desk_booking_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) ListUsers(ctx context.Context, actor domain.Actor, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, actor, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserService) CreateUser(ctx context.Context, actor domain.Actor, req dto.CreateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) UpdateUser(ctx context.Context, actor domain.Actor, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, actor, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) SetUserStatus(ctx context.Context, actor domain.Actor, userID string, isActive bool) (*domain.User, error) {
	args := m.Called(ctx, actor, userID, isActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) EnsureBootstrapAdmin(ctx context.Context, email, password string) error {
	return m.Called(ctx, email, password).Error(0)
}
func (m *MockUserService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) IssueToken(user domain.User) (string, time.Time, error) {
	args := m.Called(user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

var _ portssvc.TokenSvc = (*MockTokenService)(nil)

// --- Mock DeskService ---
type MockDeskService struct {
	mock.Mock
}

func (m *MockDeskService) GetDesk(ctx context.Context, deskID string) (*domain.Desk, error) {
	args := m.Called(ctx, deskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Desk), args.Error(1)
}
func (m *MockDeskService) ListDesks(ctx context.Context, filter domain.DeskFilter) ([]domain.Desk, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Desk), args.Error(1)
}
func (m *MockDeskService) CreateDesk(ctx context.Context, actor domain.Actor, req dto.CreateDeskRequest) (*domain.Desk, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Desk), args.Error(1)
}
func (m *MockDeskService) UpdateDeskStatus(ctx context.Context, actor domain.Actor, deskID string, change domain.DeskStatusChange) (*domain.Desk, error) {
	args := m.Called(ctx, actor, deskID, change)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Desk), args.Error(1)
}

var _ portssvc.DeskSvcFacade = (*MockDeskService)(nil)

// --- Mock AvailabilityService ---
type MockAvailabilityService struct {
	mock.Mock
}

func (m *MockAvailabilityService) ResolveDesks(ctx context.Context, actor domain.Actor, date time.Time, filter domain.DeskFilter) ([]domain.DeskAvailability, error) {
	args := m.Called(ctx, actor, date, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DeskAvailability), args.Error(1)
}
func (m *MockAvailabilityService) ResolveDesk(ctx context.Context, actor domain.Actor, deskID string, date time.Time) (*domain.DeskAvailability, error) {
	args := m.Called(ctx, actor, deskID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeskAvailability), args.Error(1)
}

var _ portssvc.AvailabilitySvc = (*MockAvailabilityService)(nil)

// --- Mock BookingService ---
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) booking(args mock.Arguments) (*domain.Booking, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingService) GetBooking(ctx context.Context, actor domain.Actor, bookingID string) (*domain.Booking, error) {
	return m.booking(m.Called(ctx, actor, bookingID))
}
func (m *MockBookingService) ListBookings(ctx context.Context, actor domain.Actor, params dto.ListBookingsParams) (*dto.ListBookingsResponse, error) {
	args := m.Called(ctx, actor, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListBookingsResponse), args.Error(1)
}
func (m *MockBookingService) CreateBooking(ctx context.Context, actor domain.Actor, req dto.CreateBookingRequest) (*domain.Booking, error) {
	return m.booking(m.Called(ctx, actor, req))
}
func (m *MockBookingService) RescheduleBooking(ctx context.Context, actor domain.Actor, bookingID string, req dto.RescheduleBookingRequest) (*domain.Booking, error) {
	return m.booking(m.Called(ctx, actor, bookingID, req))
}
func (m *MockBookingService) CancelBooking(ctx context.Context, actor domain.Actor, bookingID string) (*domain.Booking, error) {
	return m.booking(m.Called(ctx, actor, bookingID))
}
func (m *MockBookingService) CheckIn(ctx context.Context, actor domain.Actor, bookingID string, evidence domain.NetworkEvidence) (*domain.Booking, error) {
	return m.booking(m.Called(ctx, actor, bookingID, evidence))
}
func (m *MockBookingService) CheckInToday(ctx context.Context, actor domain.Actor, evidence domain.NetworkEvidence) (*domain.Booking, error) {
	return m.booking(m.Called(ctx, actor, evidence))
}
func (m *MockBookingService) CompleteBooking(ctx context.Context, actor domain.Actor, bookingID string) (*domain.Booking, error) {
	return m.booking(m.Called(ctx, actor, bookingID))
}
func (m *MockBookingService) CompleteElapsedBookings(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

var _ portssvc.BookingSvcFacade = (*MockBookingService)(nil)

// --- Mock ExportService ---
type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) ExportBookingsCSV(ctx context.Context, actor domain.Actor, params dto.ListBookingsParams, w io.Writer) error {
	args := m.Called(ctx, actor, params, w)
	if args.Error(0) == nil {
		if body, ok := args.Get(1).(string); ok {
			_, _ = io.WriteString(w, body)
		}
	}
	return args.Error(0)
}

var _ portssvc.ExportSvc = (*MockExportService)(nil)

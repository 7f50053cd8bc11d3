package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/desk_booking_app/internal/core/domain"
	portsrepo "github.com/SscSPs/desk_booking_app/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) RecordLogin(ctx context.Context, userID string, at time.Time) error {
	return m.Called(ctx, userID, at).Error(0)
}

// --- Mock DeskRepository ---
type MockDeskRepository struct {
	mock.Mock
}

func (m *MockDeskRepository) FindDeskByID(ctx context.Context, deskID string) (*domain.Desk, error) {
	args := m.Called(ctx, deskID)
	var desk *domain.Desk
	if args.Get(0) != nil {
		desk = args.Get(0).(*domain.Desk)
	}
	return desk, args.Error(1)
}

func (m *MockDeskRepository) ListDesks(ctx context.Context, filter domain.DeskFilter) ([]domain.Desk, error) {
	args := m.Called(ctx, filter)
	var desks []domain.Desk
	if args.Get(0) != nil {
		desks = args.Get(0).([]domain.Desk)
	}
	return desks, args.Error(1)
}

func (m *MockDeskRepository) SaveDesk(ctx context.Context, desk domain.Desk) error {
	return m.Called(ctx, desk).Error(0)
}

func (m *MockDeskRepository) UpdateDeskStatus(ctx context.Context, update portsrepo.DeskStatusUpdate) (*domain.Desk, error) {
	args := m.Called(ctx, update)
	var desk *domain.Desk
	if args.Get(0) != nil {
		desk = args.Get(0).(*domain.Desk)
	}
	return desk, args.Error(1)
}

// --- Mock BookingRepository ---
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) FindBookingByID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID)
	var b *domain.Booking
	if args.Get(0) != nil {
		b = args.Get(0).(*domain.Booking)
	}
	return b, args.Error(1)
}

func (m *MockBookingRepository) ListLiveBookingsByDate(ctx context.Context, date time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, date)
	var out []domain.Booking
	if args.Get(0) != nil {
		out = args.Get(0).([]domain.Booking)
	}
	return out, args.Error(1)
}

func (m *MockBookingRepository) FindLiveBookingForUser(ctx context.Context, userID string, date time.Time) (*domain.Booking, error) {
	args := m.Called(ctx, userID, date)
	var b *domain.Booking
	if args.Get(0) != nil {
		b = args.Get(0).(*domain.Booking)
	}
	return b, args.Error(1)
}

func (m *MockBookingRepository) ListBookings(ctx context.Context, filter domain.BookingFilter, limit int, after *domain.BookingCursor) ([]domain.Booking, error) {
	args := m.Called(ctx, filter, limit, after)
	var out []domain.Booking
	if args.Get(0) != nil {
		out = args.Get(0).([]domain.Booking)
	}
	return out, args.Error(1)
}

func (m *MockBookingRepository) ListCheckedInBookingsUpTo(ctx context.Context, date time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, date)
	var out []domain.Booking
	if args.Get(0) != nil {
		out = args.Get(0).([]domain.Booking)
	}
	return out, args.Error(1)
}

func (m *MockBookingRepository) CreateBooking(ctx context.Context, booking domain.Booking) error {
	return m.Called(ctx, booking).Error(0)
}

func (m *MockBookingRepository) UpdateBooking(ctx context.Context, booking domain.Booking, expectedStatus domain.BookingStatus) error {
	return m.Called(ctx, booking, expectedStatus).Error(0)
}

// fakeClock is a settable clock shared by the services under test.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Set(t time.Time) { c.now = t }

package services_test

import (
	"testing"
	"time"

	"github.com/SscSPs/desk_booking_app/internal/apperrors"
	"github.com/SscSPs/desk_booking_app/internal/core/domain"
	"github.com/SscSPs/desk_booking_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClock(t *testing.T, now time.Time) *fakeClock {
	t.Helper()
	return &fakeClock{now: now}
}

func TestPolicyEngine_ValidateSlot(t *testing.T) {
	clock := newClock(t, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	policy, err := services.NewPolicyEngine(services.DefaultPolicyConfig(), clock.Now)
	require.NoError(t, err)

	end := func(s string) *domain.TimeOfDay {
		v := domain.MustParseTimeOfDay(s)
		return &v
	}

	tests := []struct {
		name    string
		start   string
		end     *domain.TimeOfDay
		wantErr bool
	}{
		{"opening slot", "08:00", nil, false},
		{"last slot", "17:30", nil, false},
		{"half hour grid", "12:30", end("13:30"), false},
		{"before opening", "07:30", nil, true},
		{"off grid", "09:15", nil, true},
		{"at closing", "18:00", nil, true},
		{"end after closing", "17:00", end("18:30"), true},
		{"end equals start", "10:00", end("10:00"), true},
		{"end off grid", "10:00", end("10:45"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := policy.ValidateSlot(domain.MustParseTimeOfDay(tt.start), tt.end)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPolicyEngine_CheckBookingWindow(t *testing.T) {
	clock := newClock(t, time.Date(2026, 3, 10, 23, 30, 0, 0, time.UTC))
	policy, err := services.NewPolicyEngine(services.DefaultPolicyConfig(), clock.Now)
	require.NoError(t, err)

	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	assert.NoError(t, policy.CheckBookingWindow(domain.DeskTypeRegular, today))
	assert.NoError(t, policy.CheckBookingWindow(domain.DeskTypeRegular, today.AddDate(0, 0, 1)))
	assert.ErrorIs(t, policy.CheckBookingWindow(domain.DeskTypeRegular, today.AddDate(0, 0, 2)), apperrors.ErrPolicyViolation)
	assert.ErrorIs(t, policy.CheckBookingWindow(domain.DeskTypeMeetingRoom, today.AddDate(0, 0, 2)), apperrors.ErrPolicyViolation)
	assert.NoError(t, policy.CheckBookingWindow(domain.DeskTypeBoardRoom, today.AddDate(0, 2, 0)))
	assert.NoError(t, policy.CheckBookingWindow(domain.DeskTypeExecutiveOffice, today.AddDate(1, 0, 0)))
	assert.ErrorIs(t, policy.CheckBookingWindow(domain.DeskTypeBoardRoom, today.AddDate(0, 0, -1)), apperrors.ErrPolicyViolation)
}

func TestPolicyEngine_TodayFollowsOfficeZone(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	cfg := services.DefaultPolicyConfig()
	cfg.Location = kolkata

	// 20:00 UTC is already the next day in Kolkata.
	clock := newClock(t, time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC))
	policy, err := services.NewPolicyEngine(cfg, clock.Now)
	require.NoError(t, err)

	assert.Equal(t, "2026-03-11", policy.Today().Format(domain.DateLayout))
}

func TestPolicyEngine_CheckRoleAccess(t *testing.T) {
	policy, err := services.NewPolicyEngine(services.DefaultPolicyConfig(), nil)
	require.NoError(t, err)

	assert.ErrorIs(t, policy.CheckRoleAccess(domain.DeskTypeExecutiveOffice, domain.RoleEmployee), apperrors.ErrForbidden)
	for _, role := range []domain.Role{domain.RoleExecutive, domain.RoleCompany, domain.RoleAdmin} {
		assert.NoError(t, policy.CheckRoleAccess(domain.DeskTypeExecutiveOffice, role))
	}
	assert.NoError(t, policy.CheckRoleAccess(domain.DeskTypeBoardRoom, domain.RoleEmployee))
}

func TestPolicyEngine_LeadTimeAndWindows(t *testing.T) {
	clock := newClock(t, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	policy, err := services.NewPolicyEngine(services.DefaultPolicyConfig(), clock.Now)
	require.NoError(t, err)

	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	b := domain.Booking{Date: today, StartTime: domain.MustParseTimeOfDay("11:00")}
	assert.NoError(t, policy.CheckLeadTime(b))

	b.StartTime = domain.MustParseTimeOfDay("10:30")
	assert.ErrorIs(t, policy.CheckLeadTime(b), apperrors.ErrPolicyViolation)

	assert.NoError(t, policy.CheckCheckInWindow(b))
	assert.False(t, policy.WindowEnded(b))

	clock.Set(time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC))
	assert.True(t, policy.WindowEnded(b))
	assert.ErrorIs(t, policy.CheckCheckInWindow(b), apperrors.ErrPolicyViolation)
	assert.ErrorIs(t, policy.CheckNotElapsed(b), apperrors.ErrPolicyViolation)
}

func TestPolicyEngine_Describe(t *testing.T) {
	policy, err := services.NewPolicyEngine(services.DefaultPolicyConfig(), nil)
	require.NoError(t, err)

	d := policy.Describe()
	assert.Equal(t, "UTC", d.Timezone)
	assert.Equal(t, 30, d.SlotMinutes)
	assert.Len(t, d.Slots, 20)
	assert.Equal(t, "08:00", d.Slots[0])
	assert.Equal(t, "17:30", d.Slots[len(d.Slots)-1])
	assert.Len(t, d.Rules, len(domain.AllDeskTypes))
}

func TestNewPolicyEngine_RejectsBadHours(t *testing.T) {
	cfg := services.DefaultPolicyConfig()
	cfg.OfficeOpen, cfg.OfficeClose = cfg.OfficeClose, cfg.OfficeOpen
	_, err := services.NewPolicyEngine(cfg, nil)
	assert.Error(t, err)

	cfg = services.DefaultPolicyConfig()
	cfg.SlotMinutes = 0
	_, err = services.NewPolicyEngine(cfg, nil)
	assert.Error(t, err)
}

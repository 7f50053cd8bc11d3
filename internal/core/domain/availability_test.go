package domain_test

import (
	"testing"

	"github.com/SscSPs/desk_booking_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestDeriveDisplayStatus(t *testing.T) {
	active := domain.Desk{IsActive: true}
	inactive := domain.Desk{IsActive: false}
	blocked := domain.Desk{IsActive: true, IsUnavailable: true}
	reserved := &domain.Booking{Status: domain.BookingStatusReserved}
	checkedIn := &domain.Booking{Status: domain.BookingStatusCheckedIn}

	tests := []struct {
		name    string
		desk    domain.Desk
		booking *domain.Booking
		want    domain.DisplayStatus
	}{
		{"free desk", active, nil, domain.DisplayAvailable},
		{"reserved desk", active, reserved, domain.DisplayReserved},
		{"occupied desk", active, checkedIn, domain.DisplayCheckedIn},
		{"unavailable beats booking", blocked, checkedIn, domain.DisplayUnavailable},
		{"inactive beats everything", domain.Desk{IsActive: false, IsUnavailable: true}, reserved, domain.DisplayInactive},
		{"inactive without booking", inactive, nil, domain.DisplayInactive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.DeriveDisplayStatus(tt.desk, tt.booking))
		})
	}
}

func TestDeskStatusChange_Apply(t *testing.T) {
	d := domain.Desk{IsActive: true}

	active, unavailable, ok := domain.DeskStatusUnavailable.Apply(d)
	assert.True(t, ok)
	assert.True(t, active)
	assert.True(t, unavailable)

	active, _, ok = domain.DeskStatusDeactivate.Apply(d)
	assert.True(t, ok)
	assert.False(t, active)

	_, _, ok = domain.DeskStatusChange("archived").Apply(d)
	assert.False(t, ok)

	assert.True(t, domain.DeskStatusDeactivate.RemovesFromService())
	assert.False(t, domain.DeskStatusAvailable.RemovesFromService())
}

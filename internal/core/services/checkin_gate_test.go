package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/desk_booking_app/internal/core/domain"
	"github.com/SscSPs/desk_booking_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckInGate(t *testing.T) {
	gate, err := services.NewCheckInGate([]string{"10.20.0.0/16", " 203.0.113.7 ", "", "2001:db8::/32"})
	require.NoError(t, err)
	ctx := context.Background()

	tests := []struct {
		address string
		want    bool
	}{
		{"10.20.5.1", true},
		{"10.21.0.1", false},
		{"203.0.113.7", true},
		{"203.0.113.8", false},
		{"::ffff:10.20.1.1", true},
		{"2001:db8::1", true},
		{"not-an-ip", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.address, func(t *testing.T) {
			ev := domain.NetworkEvidence{Address: tt.address, Source: domain.EvidenceObserved}
			assert.Equal(t, tt.want, gate.Authorize(ctx, domain.Booking{BookingID: "b"}, ev))
			assert.Equal(t, tt.want, gate.Probe(ctx, ev).OnOfficeNetwork)
		})
	}
}

func TestCheckInGate_EmptyRejectsEverything(t *testing.T) {
	gate, err := services.NewCheckInGate(nil)
	require.NoError(t, err)
	assert.False(t, gate.Authorize(context.Background(), domain.Booking{}, domain.NetworkEvidence{Address: "127.0.0.1"}))
}

func TestNewCheckInGate_InvalidEntry(t *testing.T) {
	_, err := services.NewCheckInGate([]string{"10.0.0.0/33"})
	assert.Error(t, err)
	_, err = services.NewCheckInGate([]string{"office-lan"})
	assert.Error(t, err)
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/netip"
	"strings"

	"github.com/SscSPs/desk_booking_app/internal/core/domain"
	portssvc "github.com/SscSPs/desk_booking_app/internal/core/ports/services"
)

// checkInGate accepts evidence whose address falls inside one of the configured
// office networks. A claimed address is client-supplied and can be forged; the
// gate is a convenience check, not a security boundary.
type checkInGate struct {
	BaseService
	networks []netip.Prefix
}

// NewCheckInGate parses entries as CIDR prefixes or single addresses.
func NewCheckInGate(entries []string) (portssvc.CheckInGateSvc, error) {
	g := &checkInGate{BaseService: BaseService{name: "checkin_gate"}}
	for _, e := range entries {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if strings.Contains(e, "/") {
			prefix, err := netip.ParsePrefix(e)
			if err != nil {
				return nil, fmt.Errorf("invalid office network %q: %w", e, err)
			}
			g.networks = append(g.networks, prefix.Masked())
			continue
		}
		addr, err := netip.ParseAddr(e)
		if err != nil {
			return nil, fmt.Errorf("invalid office address %q: %w", e, err)
		}
		g.networks = append(g.networks, netip.PrefixFrom(addr.Unmap(), addr.Unmap().BitLen()))
	}
	return g, nil
}

var _ portssvc.CheckInGateSvc = (*checkInGate)(nil)

func (g *checkInGate) onOfficeNetwork(address string) bool {
	addr, err := netip.ParseAddr(strings.TrimSpace(address))
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, n := range g.networks {
		if n.Contains(addr) {
			return true
		}
	}
	return false
}

func (g *checkInGate) Authorize(ctx context.Context, booking domain.Booking, evidence domain.NetworkEvidence) bool {
	ok := g.onOfficeNetwork(evidence.Address)
	g.LogDebug(ctx, "Check-in evidence evaluated",
		slog.String("booking_id", booking.BookingID),
		slog.String("address", evidence.Address),
		slog.String("source", string(evidence.Source)),
		slog.Bool("accepted", ok))
	return ok
}

func (g *checkInGate) Probe(ctx context.Context, evidence domain.NetworkEvidence) domain.Presence {
	return domain.Presence{
		OnOfficeNetwork: g.onOfficeNetwork(evidence.Address),
		ObservedAddress: evidence.Address,
	}
}

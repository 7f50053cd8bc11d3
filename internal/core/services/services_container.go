package services

import (
	"fmt"
	"time"

	"github.com/SscSPs/desk_booking_app/internal/core/domain"
	portsrepo "github.com/SscSPs/desk_booking_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/desk_booking_app/internal/core/ports/services"
	"github.com/SscSPs/desk_booking_app/internal/platform/config"
)

// PolicyConfigFromConfig builds the booking rules from application configuration.
func PolicyConfigFromConfig(cfg *config.Config) (PolicyConfig, error) {
	policyCfg := DefaultPolicyConfig()
	if cfg.OfficeLocation != nil {
		policyCfg.Location = cfg.OfficeLocation
	}
	if cfg.OfficeOpen != "" {
		open, err := domain.ParseTimeOfDay(cfg.OfficeOpen)
		if err != nil {
			return policyCfg, fmt.Errorf("OFFICE_OPEN: %w", err)
		}
		policyCfg.OfficeOpen = open
	}
	if cfg.OfficeClose != "" {
		closing, err := domain.ParseTimeOfDay(cfg.OfficeClose)
		if err != nil {
			return policyCfg, fmt.Errorf("OFFICE_CLOSE: %w", err)
		}
		policyCfg.OfficeClose = closing
	}
	if cfg.SlotMinutes > 0 {
		policyCfg.SlotMinutes = cfg.SlotMinutes
	}
	policyCfg.LeadTime = cfg.LeadTime
	return policyCfg, nil
}

// NewServiceContainer creates a new service container with properly initialized dependencies.
// now is the clock shared by every service; nil uses time.Now.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, now func() time.Time) (*portssvc.ServiceContainer, error) {
	if now == nil {
		now = time.Now
	}
	policyCfg, err := PolicyConfigFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	policy, err := NewPolicyEngine(policyCfg, now)
	if err != nil {
		return nil, err
	}
	gate, err := NewCheckInGate(cfg.OfficeNetworks)
	if err != nil {
		return nil, err
	}

	container := &portssvc.ServiceContainer{
		Policy: policy,
		Gate:   gate,
	}
	container.User = NewUserService(repos.UserRepo, WithUserClock(now))
	container.Token = NewTokenService(cfg, now)
	container.Desk = NewDeskService(repos.DeskRepo, WithDeskClock(policy))
	container.Availability = NewAvailabilityService(repos.DeskRepo, repos.BookingRepo)
	container.Booking = NewBookingService(repos.BookingRepo, repos.DeskRepo, repos.UserRepo, policy, gate)
	container.Export = NewExportService(repos.BookingRepo, repos.DeskRepo)

	return container, nil
}

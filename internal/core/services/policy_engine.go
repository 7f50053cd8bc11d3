package services

import (
	"fmt"
	"time"

	"github.com/SscSPs/desk_booking_app/internal/apperrors"
	"github.com/SscSPs/desk_booking_app/internal/core/domain"
	portssvc "github.com/SscSPs/desk_booking_app/internal/core/ports/services"
	"github.com/SscSPs/desk_booking_app/internal/dto"
)

// Unlimited marks a room rule without a booking horizon.
const Unlimited = -1

// RoomRule is the booking rule for one desk type.
type RoomRule struct {
	// MaxDaysAhead is how many calendar days after today a booking may be dated;
	// 1 means today or tomorrow. Unlimited disables the check.
	MaxDaysAhead int
	// AllowedRoles restricts who may book; empty means everyone.
	AllowedRoles []domain.Role
}

// PolicyConfig parameterises the policy engine.
type PolicyConfig struct {
	Location    *time.Location
	OfficeOpen  domain.TimeOfDay
	OfficeClose domain.TimeOfDay
	SlotMinutes int
	LeadTime    time.Duration
	Rules       map[domain.DeskType]RoomRule
}

// DefaultRoomRules are the stock rules: desks and meeting rooms open one day ahead,
// executive offices and board rooms have no horizon, executive offices are
// reserved for executive, company and admin users.
func DefaultRoomRules() map[domain.DeskType]RoomRule {
	return map[domain.DeskType]RoomRule{
		domain.DeskTypeRegular:     {MaxDaysAhead: 1},
		domain.DeskTypeMeetingRoom: {MaxDaysAhead: 1},
		domain.DeskTypeBoardRoom:   {MaxDaysAhead: Unlimited},
		domain.DeskTypeExecutiveOffice: {
			MaxDaysAhead: Unlimited,
			AllowedRoles: []domain.Role{domain.RoleExecutive, domain.RoleCompany, domain.RoleAdmin},
		},
	}
}

// DefaultPolicyConfig is an 08:00-18:00 UTC office with 30 minute slots and a 2h lead time.
func DefaultPolicyConfig() PolicyConfig {
	return PolicyConfig{
		Location:    time.UTC,
		OfficeOpen:  domain.TimeOfDay{Hour: 8},
		OfficeClose: domain.TimeOfDay{Hour: 18},
		SlotMinutes: 30,
		LeadTime:    2 * time.Hour,
		Rules:       DefaultRoomRules(),
	}
}

type policyEngine struct {
	cfg PolicyConfig
	now func() time.Time
}

// NewPolicyEngine validates cfg and builds the engine. now is the clock; nil uses time.Now.
func NewPolicyEngine(cfg PolicyConfig, now func() time.Time) (portssvc.BookingPolicySvc, error) {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.SlotMinutes <= 0 {
		return nil, fmt.Errorf("slot length must be positive, got %d", cfg.SlotMinutes)
	}
	if !cfg.OfficeOpen.Before(cfg.OfficeClose) {
		return nil, fmt.Errorf("office opens at %s but closes at %s", cfg.OfficeOpen, cfg.OfficeClose)
	}
	if cfg.Rules == nil {
		cfg.Rules = DefaultRoomRules()
	}
	if now == nil {
		now = time.Now
	}
	return &policyEngine{cfg: cfg, now: now}, nil
}

var _ portssvc.BookingPolicySvc = (*policyEngine)(nil)

func (p *policyEngine) Now() time.Time {
	return p.now()
}

func (p *policyEngine) Today() time.Time {
	return domain.CalendarDate(p.now(), p.cfg.Location)
}

func (p *policyEngine) Location() *time.Location {
	return p.cfg.Location
}

// slots returns every valid start time: open, open+slot, ... up to the last slot
// that still ends by closing time.
func (p *policyEngine) slots() []domain.TimeOfDay {
	var out []domain.TimeOfDay
	for m := p.cfg.OfficeOpen.Minutes(); m+p.cfg.SlotMinutes <= p.cfg.OfficeClose.Minutes(); m += p.cfg.SlotMinutes {
		out = append(out, domain.TimeOfDay{Hour: m / 60, Minute: m % 60})
	}
	return out
}

func (p *policyEngine) onGrid(t domain.TimeOfDay) bool {
	offset := t.Minutes() - p.cfg.OfficeOpen.Minutes()
	return offset >= 0 && offset%p.cfg.SlotMinutes == 0
}

func (p *policyEngine) ValidateSlot(start domain.TimeOfDay, end *domain.TimeOfDay) error {
	lastStart := p.cfg.OfficeClose.Minutes() - p.cfg.SlotMinutes
	if !p.onGrid(start) || start.Minutes() > lastStart {
		return apperrors.NewValidationFailedError(fmt.Sprintf(
			"start time %s is not a valid slot; slots run every %d minutes from %s to %s",
			start, p.cfg.SlotMinutes, p.cfg.OfficeOpen, domain.TimeOfDay{Hour: lastStart / 60, Minute: lastStart % 60}))
	}
	if end == nil {
		return nil
	}
	if !p.onGrid(*end) || end.Minutes() > p.cfg.OfficeClose.Minutes() {
		return apperrors.NewValidationFailedError(fmt.Sprintf("end time %s is not on the slot grid or is after closing", end))
	}
	if !start.Before(*end) {
		return apperrors.NewValidationFailedError("end time must be after start time")
	}
	return nil
}

func (p *policyEngine) rule(deskType domain.DeskType) RoomRule {
	if r, ok := p.cfg.Rules[deskType]; ok {
		return r
	}
	return RoomRule{MaxDaysAhead: Unlimited}
}

func (p *policyEngine) CheckBookingWindow(deskType domain.DeskType, date time.Time) error {
	days := domain.DaysBetween(p.Today(), date)
	if days < 0 {
		return apperrors.NewPolicyViolationError("cannot book a date in the past")
	}
	r := p.rule(deskType)
	if r.MaxDaysAhead != Unlimited && days > r.MaxDaysAhead {
		if r.MaxDaysAhead == 1 {
			return apperrors.NewPolicyViolationError(fmt.Sprintf("%s can only be booked for today or tomorrow", deskType))
		}
		return apperrors.NewPolicyViolationError(fmt.Sprintf("%s can only be booked up to %d days ahead", deskType, r.MaxDaysAhead))
	}
	return nil
}

func (p *policyEngine) CheckRoleAccess(deskType domain.DeskType, role domain.Role) error {
	r := p.rule(deskType)
	if len(r.AllowedRoles) == 0 {
		return nil
	}
	for _, allowed := range r.AllowedRoles {
		if allowed == role {
			return nil
		}
	}
	return apperrors.NewForbiddenError(fmt.Sprintf("role %s may not book %s", role, deskType))
}

func (p *policyEngine) window(b domain.Booking) (time.Time, time.Time) {
	return b.Window(p.cfg.Location, p.cfg.OfficeClose)
}

func (p *policyEngine) CheckNotElapsed(b domain.Booking) error {
	if p.WindowEnded(b) {
		return apperrors.NewPolicyViolationError("the requested time has already passed")
	}
	return nil
}

func (p *policyEngine) CheckLeadTime(b domain.Booking) error {
	start, _ := p.window(b)
	if start.Sub(p.now()) < p.cfg.LeadTime {
		return apperrors.NewPolicyViolationError(fmt.Sprintf("bookings can only be changed more than %s before they start", p.cfg.LeadTime))
	}
	return nil
}

func (p *policyEngine) CheckCheckInWindow(b domain.Booking) error {
	if !b.Date.Equal(p.Today()) {
		return apperrors.NewPolicyViolationError("check-in is only possible on the day of the booking")
	}
	if p.WindowEnded(b) {
		return apperrors.NewPolicyViolationError("the booking window has already ended")
	}
	return nil
}

func (p *policyEngine) WindowEnded(b domain.Booking) bool {
	_, end := p.window(b)
	return !p.now().Before(end)
}

func (p *policyEngine) Describe() dto.PolicyResponse {
	slots := p.slots()
	resp := dto.PolicyResponse{
		Timezone:    p.cfg.Location.String(),
		OfficeOpen:  p.cfg.OfficeOpen.String(),
		OfficeClose: p.cfg.OfficeClose.String(),
		SlotMinutes: p.cfg.SlotMinutes,
		LeadTime:    p.cfg.LeadTime.String(),
		Slots:       make([]string, len(slots)),
	}
	for i, s := range slots {
		resp.Slots[i] = s.String()
	}
	for _, t := range domain.AllDeskTypes {
		r := p.rule(t)
		rr := dto.RoomRuleResponse{Type: string(t)}
		if r.MaxDaysAhead != Unlimited {
			days := r.MaxDaysAhead
			rr.MaxDaysAhead = &days
		}
		for _, role := range r.AllowedRoles {
			rr.AllowedRoles = append(rr.AllowedRoles, string(role))
		}
		resp.Rules = append(resp.Rules, rr)
	}
	return resp
}

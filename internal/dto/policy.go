package dto

// RoomRuleResponse describes the booking rule for one desk type.
type RoomRuleResponse struct {
	Type string `json:"type"`
	// MaxDaysAhead is omitted when bookings may be made any number of days ahead.
	MaxDaysAhead *int     `json:"maxDaysAhead,omitempty"`
	AllowedRoles []string `json:"allowedRoles,omitempty"`
}

// PolicyResponse describes the office hours, slot grid and per-type rules.
type PolicyResponse struct {
	Timezone    string             `json:"timezone"`
	OfficeOpen  string             `json:"officeOpen"`
	OfficeClose string             `json:"officeClose"`
	SlotMinutes int                `json:"slotMinutes"`
	LeadTime    string             `json:"leadTime"`
	Slots       []string           `json:"slots"`
	Rules       []RoomRuleResponse `json:"rules"`
}

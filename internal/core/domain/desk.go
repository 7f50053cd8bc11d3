package domain

// DeskType classifies a bookable resource.
type DeskType string

const (
	DeskTypeRegular         DeskType = "regular_desk"
	DeskTypeExecutiveOffice DeskType = "executive_office"
	DeskTypeMeetingRoom     DeskType = "meeting_room"
	DeskTypeBoardRoom       DeskType = "board_room"
)

// AllDeskTypes lists every known desk type.
var AllDeskTypes = []DeskType{DeskTypeRegular, DeskTypeExecutiveOffice, DeskTypeMeetingRoom, DeskTypeBoardRoom}

// IsValid reports whether t is one of the known desk types.
func (t DeskType) IsValid() bool {
	for _, known := range AllDeskTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Desk is a bookable resource: a desk, office or room.
// IsActive=false removes the desk from service; IsUnavailable marks a temporary
// block (maintenance) while the desk stays listed.
type Desk struct {
	DeskID        string   `json:"deskID"`
	Code          string   `json:"code"`
	Name          string   `json:"name"`
	Type          DeskType `json:"type"`
	Capacity      int      `json:"capacity"`
	Floor         string   `json:"floor"`
	Section       string   `json:"section"`
	PosX          float64  `json:"posX"`
	PosY          float64  `json:"posY"`
	IsActive      bool     `json:"isActive"`
	IsUnavailable bool     `json:"isUnavailable"`
	AuditFields
}

// Bookable reports whether new bookings may be made against the desk.
func (d Desk) Bookable() bool {
	return d.IsActive && !d.IsUnavailable
}

// DeskFilter narrows a desk listing. Zero values do not filter.
type DeskFilter struct {
	Type            DeskType
	Floor           string
	Section         string
	IncludeInactive bool
}

// DeskStatusChange is an administrative status command for a desk.
type DeskStatusChange string

const (
	DeskStatusActivate    DeskStatusChange = "active"
	DeskStatusDeactivate  DeskStatusChange = "inactive"
	DeskStatusAvailable   DeskStatusChange = "available"
	DeskStatusUnavailable DeskStatusChange = "unavailable"
)

// Apply returns the desk flags that result from the change.
func (c DeskStatusChange) Apply(d Desk) (isActive, isUnavailable bool, ok bool) {
	switch c {
	case DeskStatusActivate:
		return true, d.IsUnavailable, true
	case DeskStatusDeactivate:
		return false, d.IsUnavailable, true
	case DeskStatusAvailable:
		return d.IsActive, false, true
	case DeskStatusUnavailable:
		return d.IsActive, true, true
	}
	return d.IsActive, d.IsUnavailable, false
}

// IsValid reports whether c is a known status command.
func (c DeskStatusChange) IsValid() bool {
	_, _, ok := c.Apply(Desk{})
	return ok
}

// RemovesFromService reports whether the change takes a bookable desk out of service.
func (c DeskStatusChange) RemovesFromService() bool {
	return c == DeskStatusDeactivate || c == DeskStatusUnavailable
}

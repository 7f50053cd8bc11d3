package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
	Version       int       `json:"version"`
}

// NewAuditFields stamps creation and update fields with the same actor and instant.
func NewAuditFields(at time.Time, by string) AuditFields {
	return AuditFields{
		CreatedAt:     at,
		CreatedBy:     by,
		LastUpdatedAt: at,
		LastUpdatedBy: by,
		Version:       1,
	}
}

// Touch records an update by the given actor.
func (a *AuditFields) Touch(at time.Time, by string) {
	a.LastUpdatedAt = at
	a.LastUpdatedBy = by
	a.Version++
}

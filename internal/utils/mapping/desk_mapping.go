package mapping

import (
	"github.com/SscSPs/desk_booking_app/internal/core/domain"
	"github.com/SscSPs/desk_booking_app/internal/models"
)

// ToModelDesk converts a domain Desk to a model Desk
func ToModelDesk(d domain.Desk) models.Desk {
	return models.Desk{
		DeskID:        d.DeskID,
		Code:          d.Code,
		Name:          d.Name,
		DeskType:      string(d.Type),
		Capacity:      d.Capacity,
		Floor:         d.Floor,
		Section:       d.Section,
		PosX:          d.PosX,
		PosY:          d.PosY,
		IsActive:      d.IsActive,
		IsUnavailable: d.IsUnavailable,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDesk converts a model Desk to a domain Desk
func ToDomainDesk(m models.Desk) domain.Desk {
	return domain.Desk{
		DeskID:        m.DeskID,
		Code:          m.Code,
		Name:          m.Name,
		Type:          domain.DeskType(m.DeskType),
		Capacity:      m.Capacity,
		Floor:         m.Floor,
		Section:       m.Section,
		PosX:          m.PosX,
		PosY:          m.PosY,
		IsActive:      m.IsActive,
		IsUnavailable: m.IsUnavailable,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainDeskSlice converts a slice of model Desks to a slice of domain Desks
func ToDomainDeskSlice(ms []models.Desk) []domain.Desk {
	ds := make([]domain.Desk, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDesk(m)
	}
	return ds
}

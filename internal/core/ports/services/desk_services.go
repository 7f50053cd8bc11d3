package services

import (
	"context"
	"time"

	"github.com/SscSPs/desk_booking_app/internal/core/domain"
	"github.com/SscSPs/desk_booking_app/internal/dto"
)

// DeskReaderSvc defines read operations on the desk registry
type DeskReaderSvc interface {
	GetDesk(ctx context.Context, deskID string) (*domain.Desk, error)
	ListDesks(ctx context.Context, filter domain.DeskFilter) ([]domain.Desk, error)
}

// DeskWriterSvc defines administrative operations on the desk registry
type DeskWriterSvc interface {
	// CreateDesk adds a new active desk. Elevated roles only.
	CreateDesk(ctx context.Context, actor domain.Actor, req dto.CreateDeskRequest) (*domain.Desk, error)

	// UpdateDeskStatus activates, deactivates or blocks a desk. Elevated roles only.
	UpdateDeskStatus(ctx context.Context, actor domain.Actor, deskID string, change domain.DeskStatusChange) (*domain.Desk, error)
}

// DeskSvcFacade combines all desk-related service interfaces
type DeskSvcFacade interface {
	DeskReaderSvc
	DeskWriterSvc
}

// AvailabilitySvc derives per-date desk display status.
type AvailabilitySvc interface {
	// ResolveDesks returns every desk matching the filter with its status on date.
	ResolveDesks(ctx context.Context, actor domain.Actor, date time.Time, filter domain.DeskFilter) ([]domain.DeskAvailability, error)

	// ResolveDesk returns a single desk with its status on date.
	ResolveDesk(ctx context.Context, actor domain.Actor, deskID string, date time.Time) (*domain.DeskAvailability, error)
}

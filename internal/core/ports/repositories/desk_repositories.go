package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/desk_booking_app/internal/core/domain"
)

// DeskReader defines read operations for desks
type DeskReader interface {
	// FindDeskByID retrieves a desk, active or not.
	FindDeskByID(ctx context.Context, deskID string) (*domain.Desk, error)

	// ListDesks returns desks matching the filter ordered by floor, section and code.
	ListDesks(ctx context.Context, filter domain.DeskFilter) ([]domain.Desk, error)
}

// DeskStatusUpdate describes a change of the desk service flags. Change is
// applied to the row as read inside the update transaction, so concurrent
// changes to the other flag are kept.
type DeskStatusUpdate struct {
	DeskID    string
	Change    domain.DeskStatusChange
	UpdatedBy string
	UpdatedAt time.Time
	// GuardLiveFrom, when set, makes the update fail with ErrConflict if the desk
	// holds any live booking dated on or after it. The check and the update are atomic
	// with respect to booking creation.
	GuardLiveFrom *time.Time
}

// DeskWriter defines write operations for desks
type DeskWriter interface {
	// SaveDesk persists a new desk. Returns ErrConflict when the code is taken.
	SaveDesk(ctx context.Context, desk domain.Desk) error

	// UpdateDeskStatus applies a status update and returns the stored desk.
	UpdateDeskStatus(ctx context.Context, update DeskStatusUpdate) (*domain.Desk, error)
}

// DeskRepositoryFacade combines all desk-related repository interfaces
type DeskRepositoryFacade interface {
	DeskReader
	DeskWriter
}

package gormsql

import (
	portsrepo "github.com/SscSPs/desk_booking_app/internal/core/ports/repositories"
	"gorm.io/gorm"
)

// NewRepositoryProvider builds the repositories on top of a migrated gorm handle.
func NewRepositoryProvider(db *gorm.DB) portsrepo.RepositoryProvider {
	base := BaseRepository{DB: db}

	return portsrepo.RepositoryProvider{
		DeskRepo:    &DeskRepository{BaseRepository: base},
		BookingRepo: &BookingRepository{BaseRepository: base},
		UserRepo:    &UserRepository{BaseRepository: base},
		Health:      &base,
	}
}

package pgsql

import (
	portsrepo "github.com/SscSPs/desk_booking_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	base := BaseRepository{Pool: dbPool}

	return portsrepo.RepositoryProvider{
		DeskRepo:    newPgxDeskRepository(base),
		BookingRepo: newPgxBookingRepository(base),
		UserRepo:    newPgxUserRepository(base),
		Health:      &base,
	}
}

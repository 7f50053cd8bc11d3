package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// Both the pgx and the gorm backends build one of these.
type RepositoryProvider struct {
	DeskRepo    DeskRepositoryFacade
	BookingRepo BookingRepositoryFacade
	UserRepo    UserRepositoryFacade
	Health      HealthChecker
}

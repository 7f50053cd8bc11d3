package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/desk_booking_app/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by their (case-insensitive) email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUsers retrieves a paginated list of users.
	FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user. Returns ErrConflict when the email is taken.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser updates an existing user's details, role and status.
	UpdateUser(ctx context.Context, user domain.User) error

	// RecordLogin bumps the login counter and stamps the last login time.
	RecordLogin(ctx context.Context, userID string, at time.Time) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}

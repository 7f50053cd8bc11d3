package services

import (
	"context"
	"time"

	"github.com/SscSPs/desk_booking_app/internal/core/domain"
	"github.com/SscSPs/desk_booking_app/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// ListUsers retrieves a paginated list of users.
	ListUsers(ctx context.Context, actor domain.Actor, limit, offset int) ([]domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// CreateUser creates a new employee account.
	CreateUser(ctx context.Context, actor domain.Actor, req dto.CreateUserRequest) (*domain.User, error)

	// UpdateUser updates name and role of an existing user.
	UpdateUser(ctx context.Context, actor domain.Actor, userID string, req dto.UpdateUserRequest) (*domain.User, error)

	// SetUserStatus activates or deactivates an account.
	SetUserStatus(ctx context.Context, actor domain.Actor, userID string, isActive bool) (*domain.User, error)

	// EnsureBootstrapAdmin creates the initial admin account if no user owns the email.
	EnsureBootstrapAdmin(ctx context.Context, email, password string) error
}

// UserAuthSvc defines operations for user authentication
type UserAuthSvc interface {
	// AuthenticateUser checks credentials and records the login.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
}

// TokenSvc issues signed access tokens.
type TokenSvc interface {
	// IssueToken returns a signed token carrying the user's ID and role.
	IssueToken(user domain.User) (string, time.Time, error)
}

package gormsql_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/desk_booking_app/internal/apperrors"
	"github.com/SscSPs/desk_booking_app/internal/core/domain"
	"github.com/SscSPs/desk_booking_app/internal/repositories/database/gormsql"
	"github.com/SscSPs/desk_booking_app/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	db, err := database.OpenSQLite("file::memory:")
	require.NoError(t, err)
	defer database.CloseGorm(db)
	require.NoError(t, gormsql.Migrate(db))
	repos := gormsql.NewRepositoryProvider(db)

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	user := domain.User{
		UserID: "user-a", Name: "Asha", Email: "asha@example.com", PasswordHash: "hash",
		Role: domain.RoleEmployee, IsActive: true, AuditFields: domain.NewAuditFields(now, "admin"),
	}
	require.NoError(t, repos.UserRepo.SaveUser(ctx, user))

	dup := user
	dup.UserID = "user-b"
	assert.ErrorIs(t, repos.UserRepo.SaveUser(ctx, dup), apperrors.ErrConflict)

	got, err := repos.UserRepo.FindUserByEmail(ctx, "ASHA@example.com")
	require.NoError(t, err)
	assert.Equal(t, "user-a", got.UserID)

	require.NoError(t, repos.UserRepo.RecordLogin(ctx, "user-a", now.Add(time.Hour)))
	require.NoError(t, repos.UserRepo.RecordLogin(ctx, "user-a", now.Add(2*time.Hour)))
	got, err = repos.UserRepo.FindUserByID(ctx, "user-a")
	require.NoError(t, err)
	assert.Equal(t, 2, got.LoginCount)
	require.NotNil(t, got.LastLoginAt)
	assert.True(t, got.LastLoginAt.Equal(now.Add(2*time.Hour)))

	got.Role = domain.RoleExecutive
	got.IsActive = false
	require.NoError(t, repos.UserRepo.UpdateUser(ctx, *got))
	users, err := repos.UserRepo.FindUsers(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, domain.RoleExecutive, users[0].Role)
	assert.False(t, users[0].IsActive)

	_, err = repos.UserRepo.FindUserByID(ctx, "ghost")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.ErrorIs(t, repos.UserRepo.RecordLogin(ctx, "ghost", now), apperrors.ErrNotFound)
	assert.NoError(t, repos.Health.Ping(ctx))
}

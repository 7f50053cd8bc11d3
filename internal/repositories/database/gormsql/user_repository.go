package gormsql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/desk_booking_app/internal/apperrors"
	"github.com/SscSPs/desk_booking_app/internal/core/domain"
	portsrepo "github.com/SscSPs/desk_booking_app/internal/core/ports/repositories"
	"github.com/SscSPs/desk_booking_app/internal/models"
	"github.com/SscSPs/desk_booking_app/internal/utils/mapping"
	"gorm.io/gorm"
)

type UserRepository struct {
	BaseRepository
}

var _ portsrepo.UserRepositoryFacade = (*UserRepository)(nil)

func (r *UserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	if err := r.DB.WithContext(ctx).Create(&m).Error; err != nil {
		if duplicate(err) {
			return apperrors.NewConflictError("email is already registered")
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	var m models.User
	if err := r.DB.WithContext(ctx).Where(query, arg).First(&m).Error; err != nil {
		if notFound(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	u := mapping.ToDomainUser(m)
	return &u, nil
}

func (r *UserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findOne(ctx, "user_id = ?", userID)
}

func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, "lower(email) = ?", strings.ToLower(email))
}

func (r *UserRepository) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	var ms []models.User
	err := r.DB.WithContext(ctx).
		Order("created_at DESC").Order("user_id").
		Limit(limit).Offset(offset).
		Find(&ms).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	return mapping.ToDomainUserSlice(ms), nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	res := r.DB.WithContext(ctx).Model(&models.User{}).Where("user_id = ?", m.UserID).Updates(map[string]any{
		"name":            m.Name,
		"email":           m.Email,
		"role":            m.Role,
		"is_active":       m.IsActive,
		"last_updated_at": m.LastUpdatedAt,
		"last_updated_by": m.LastUpdatedBy,
		"version":         m.Version,
	})
	if res.Error != nil {
		if duplicate(res.Error) {
			return apperrors.NewConflictError("email is already registered")
		}
		return fmt.Errorf("failed to update user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("user %s: %w", m.UserID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *UserRepository) RecordLogin(ctx context.Context, userID string, at time.Time) error {
	res := r.DB.WithContext(ctx).Model(&models.User{}).Where("user_id = ?", userID).UpdateColumns(map[string]any{
		"last_login_at": at,
		"login_count":   gorm.Expr("login_count + 1"),
	})
	if res.Error != nil {
		return fmt.Errorf("failed to record login: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("user %s: %w", userID, apperrors.ErrNotFound)
	}
	return nil
}

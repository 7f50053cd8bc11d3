package gormsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/desk_booking_app/internal/apperrors"
	"github.com/SscSPs/desk_booking_app/internal/core/domain"
	portsrepo "github.com/SscSPs/desk_booking_app/internal/core/ports/repositories"
	"github.com/SscSPs/desk_booking_app/internal/models"
	"github.com/SscSPs/desk_booking_app/internal/utils/mapping"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type DeskRepository struct {
	BaseRepository
}

var _ portsrepo.DeskRepositoryFacade = (*DeskRepository)(nil)

func (r *DeskRepository) SaveDesk(ctx context.Context, desk domain.Desk) error {
	m := mapping.ToModelDesk(desk)
	if err := r.DB.WithContext(ctx).Create(&m).Error; err != nil {
		if duplicate(err) {
			return apperrors.NewConflictError("desk code is already in use")
		}
		return fmt.Errorf("failed to save desk: %w", err)
	}
	return nil
}

func (r *DeskRepository) FindDeskByID(ctx context.Context, deskID string) (*domain.Desk, error) {
	var m models.Desk
	if err := r.DB.WithContext(ctx).Where("desk_id = ?", deskID).First(&m).Error; err != nil {
		if notFound(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find desk %s: %w", deskID, err)
	}
	d := mapping.ToDomainDesk(m)
	return &d, nil
}

func (r *DeskRepository) ListDesks(ctx context.Context, filter domain.DeskFilter) ([]domain.Desk, error) {
	q := r.DB.WithContext(ctx).Model(&models.Desk{})
	if !filter.IncludeInactive {
		q = q.Where("is_active = ?", true)
	}
	if filter.Type != "" {
		q = q.Where("desk_type = ?", string(filter.Type))
	}
	if filter.Floor != "" {
		q = q.Where("floor = ?", filter.Floor)
	}
	if filter.Section != "" {
		q = q.Where("section = ?", filter.Section)
	}

	var ms []models.Desk
	if err := q.Order("floor").Order("section").Order("code").Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("failed to query desks: %w", err)
	}
	return mapping.ToDomainDeskSlice(ms), nil
}

func (r *DeskRepository) UpdateDeskStatus(ctx context.Context, update portsrepo.DeskStatusUpdate) (*domain.Desk, error) {
	var out models.Desk
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("desk_id = ?", update.DeskID).First(&out).Error; err != nil {
			if notFound(err) {
				return apperrors.ErrNotFound
			}
			return fmt.Errorf("failed to load desk %s: %w", update.DeskID, err)
		}

		if update.GuardLiveFrom != nil {
			var live int64
			err := tx.Model(&models.Booking{}).
				Where("desk_id = ? AND booking_date >= ? AND status IN ?",
					update.DeskID, datatypes.Date(mapping.NormalizeDate(*update.GuardLiveFrom)), liveStatuses).
				Count(&live).Error
			if err != nil {
				return fmt.Errorf("failed to count live bookings: %w", err)
			}
			if live > 0 {
				return apperrors.NewConflictError(fmt.Sprintf("desk has %d upcoming booking(s); cancel them first", live))
			}
		}

		isActive, isUnavailable, ok := update.Change.Apply(mapping.ToDomainDesk(out))
		if !ok {
			return apperrors.NewValidationFailedError("unknown desk status " + string(update.Change))
		}
		err := tx.Model(&models.Desk{}).Where("desk_id = ?", update.DeskID).Updates(map[string]any{
			"is_active":       isActive,
			"is_unavailable":  isUnavailable,
			"last_updated_at": update.UpdatedAt,
			"last_updated_by": update.UpdatedBy,
			"version":         gorm.Expr("version + 1"),
		}).Error
		if err != nil {
			return fmt.Errorf("failed to update desk status: %w", err)
		}
		return tx.Where("desk_id = ?", update.DeskID).First(&out).Error
	})
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainDesk(out)
	return &d, nil
}

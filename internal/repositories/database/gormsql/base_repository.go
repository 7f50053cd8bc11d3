package gormsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/desk_booking_app/internal/core/domain"
	"github.com/SscSPs/desk_booking_app/internal/models"
	"gorm.io/gorm"
)

var liveStatuses = []string{string(domain.BookingStatusReserved), string(domain.BookingStatusCheckedIn)}

// partialIndexes back the live-booking rules; gorm tags cannot express a WHERE clause.
var partialIndexes = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_bookings_live_desk ON bookings (desk_id, booking_date) WHERE status IN ('reserved', 'checked-in')`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_bookings_live_user ON bookings (user_id, booking_date) WHERE status IN ('reserved', 'checked-in')`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_listing ON bookings (booking_date DESC, created_at DESC, booking_id DESC)`,
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Desk{}, &models.Booking{}); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	for _, stmt := range partialIndexes {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}
	return nil
}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	DB *gorm.DB
}

// Ping verifies the database connection.
func (r *BaseRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func notFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func duplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

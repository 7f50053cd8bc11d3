package models

import "time"

// AuditFields holds standard audit columns shared by every table.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at" gorm:"column:created_at;not null"`
	CreatedBy     string    `db:"created_by" gorm:"column:created_by;not null"`
	LastUpdatedAt time.Time `db:"last_updated_at" gorm:"column:last_updated_at;not null"`
	LastUpdatedBy string    `db:"last_updated_by" gorm:"column:last_updated_by;not null"`
	Version       int       `db:"version" gorm:"column:version;not null;default:1"`
}

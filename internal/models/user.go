package models

import (
	"time"
)

// User is the persisted form of an employee account.
type User struct {
	UserID       string     `db:"user_id" gorm:"column:user_id;primaryKey;size:36"`
	Name         string     `db:"name" gorm:"column:name;not null"`
	Email        string     `db:"email" gorm:"column:email;not null;uniqueIndex:idx_users_email"`
	PasswordHash string     `db:"password_hash" gorm:"column:password_hash;not null"`
	Role         string     `db:"role" gorm:"column:role;size:16;not null"`
	IsActive     bool       `db:"is_active" gorm:"column:is_active;not null"`
	LastLoginAt  *time.Time `db:"last_login_at" gorm:"column:last_login_at"`
	LoginCount   int        `db:"login_count" gorm:"column:login_count;not null;default:0"`
	AuditFields
}

func (User) TableName() string { return "users" }

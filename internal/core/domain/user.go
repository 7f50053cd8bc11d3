package domain

import "time"

// Role is the coarse permission level of a user.
type Role string

const (
	RoleEmployee  Role = "employee"
	RoleExecutive Role = "executive"
	RoleCompany   Role = "company"
	RoleAdmin     Role = "admin"
)

// AllRoles lists every known role.
var AllRoles = []Role{RoleEmployee, RoleExecutive, RoleCompany, RoleAdmin}

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	for _, known := range AllRoles {
		if r == known {
			return true
		}
	}
	return false
}

// IsElevated reports whether the role may manage desks and view all bookings.
func (r Role) IsElevated() bool {
	return r == RoleAdmin || r == RoleCompany || r == RoleExecutive
}

// CanManageUsers reports whether the role may create and update employee accounts.
func (r Role) CanManageUsers() bool {
	return r == RoleAdmin || r == RoleCompany
}

// User represents an employee account.
type User struct {
	UserID       string     `json:"userID"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         Role       `json:"role"`
	IsActive     bool       `json:"isActive"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
	LoginCount   int        `json:"loginCount"`
	AuditFields
}

// Actor is the authenticated caller of an operation.
type Actor struct {
	UserID string
	Role   Role
}

// IsElevated reports whether the actor holds an elevated role.
func (a Actor) IsElevated() bool {
	return a.Role.IsElevated()
}

// IsAdmin reports whether the actor is an administrator.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

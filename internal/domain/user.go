package domain

import "time"

// UserRole identifies the authorization level of a user account.
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// IsValid reports whether the role is one of the known values.
func (r UserRole) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User represents a registered account in the marketplace.
// HashedPassword is never serialized; handlers build public representations
// from the other fields.
type User struct {
	ID             int64
	Username       string
	FullName       string
	Email          string
	HashedPassword string
	Role           UserRole
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

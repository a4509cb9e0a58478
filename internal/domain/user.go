package domain

import "time"

type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleManager UserRole = "manager"
	RoleOwner   UserRole = "owner"
)

// StaffRoles may read bookings and inventory.
var StaffRoles = []UserRole{RoleAdmin, RoleManager, RoleOwner}

// InventoryWriterRoles may record inventory checks.
var InventoryWriterRoles = []UserRole{RoleAdmin, RoleManager}

func (r UserRole) Valid() bool {
	return r.In(StaffRoles...)
}

// In reports whether r is one of allowed.
func (r UserRole) In(allowed ...UserRole) bool {
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}

type User struct {
	ID           int64      `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         UserRole   `json:"role"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	LastLogout   *time.Time `json:"last_logout,omitempty"`
}

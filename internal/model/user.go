package model

import (
	"slices"
	"time"
)

type User struct {
	ID        int64     `json:"id"`
	WorkOSID  *string   `json:"-"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Region    *string   `json:"region,omitempty"`
	Roles     []Role    `json:"roles"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) HasRole(role Role) bool {
	return slices.Contains(u.Roles, role)
}

// IsSuperAdmin is a shortcut used by every platform-admin guard.
func (u *User) IsSuperAdmin() bool {
	return u.HasRole(RoleSuperAdmin)
}

package model

import (
	"slices"
	"time"
)

type MemberRole string

const (
	MemberRoleOwner MemberRole = "owner"
	MemberRoleAdmin MemberRole = "admin"
)

type MemberStatus string

const (
	MemberStatusPending MemberStatus = "pending"
	MemberStatusActive  MemberStatus = "active"
)

type Permission string

const (
	PermissionManageAcademy  Permission = "manage_academy"
	PermissionManageClasses  Permission = "manage_classes"
	PermissionManageSeminars Permission = "manage_seminars"
	PermissionManagePosts    Permission = "manage_posts"
	PermissionManageMembers  Permission = "manage_members"
	PermissionChat           Permission = "chat"
)

var AllPermissions = []Permission{
	PermissionManageAcademy,
	PermissionManageClasses,
	PermissionManageSeminars,
	PermissionManagePosts,
	PermissionManageMembers,
	PermissionChat,
}

func (p Permission) Valid() bool {
	return slices.Contains(AllPermissions, p)
}

type AcademyMember struct {
	AcademyID   int64        `json:"academy_id"`
	UserID      int64        `json:"user_id"`
	Role        MemberRole   `json:"role"`
	Status      MemberStatus `json:"status"`
	Permissions []Permission `json:"permissions"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`

	// Populated by list queries only.
	UserName    string `json:"user_name,omitempty"`
	UserEmail   string `json:"user_email,omitempty"`
	AcademyName string `json:"academy_name,omitempty"`
}

func (m *AcademyMember) IsOwner() bool {
	return m.Role == MemberRoleOwner
}

func (m *AcademyMember) IsActive() bool {
	return m.Status == MemberStatusActive
}

// Can reports whether an active member holds perm. Owners hold every permission.
func (m *AcademyMember) Can(perm Permission) bool {
	if !m.IsActive() {
		return false
	}
	if m.IsOwner() {
		return true
	}
	return slices.Contains(m.Permissions, perm)
}

package model

type Role string

const (
	RoleParent       Role = "parent"
	RoleStudent      Role = "student"
	RoleAcademyAdmin Role = "academy_admin"
	RoleSuperAdmin   Role = "super_admin"
)

var AllRoles = []Role{RoleParent, RoleStudent, RoleAcademyAdmin, RoleSuperAdmin}

func (r Role) Valid() bool {
	switch r {
	case RoleParent, RoleStudent, RoleAcademyAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

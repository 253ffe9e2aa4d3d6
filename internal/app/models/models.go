package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent   RoleType = "STUDENT"
	RoleProfessor RoleType = "PROFESSOR"
	RoleAdmin     RoleType = "ADMIN"
)

// Valid reports whether the role is one of the three known roles.
func (r RoleType) Valid() bool {
	switch r {
	case RoleStudent, RoleProfessor, RoleAdmin:
		return true
	}
	return false
}

// AuthenticatedUser carries the role-specific identity of a logged-in user.
// Exactly one of Student, Professor or Admin is set, matching Role.
type AuthenticatedUser struct {
	ID        int64      `json:"id"`
	Username  string     `json:"username"`
	Role      RoleType   `json:"role"`
	Student   *Student   `json:"student,omitempty"`
	Professor *Professor `json:"professor,omitempty"`
	Admin     *Admin     `json:"admin,omitempty"`
}

package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

// Role is supplied by the auth collaborator with every request.
type Role string

const (
	RoleViewer   Role = "viewer"
	RoleOperator Role = "operator"
	RoleAdmin    Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleViewer, RoleOperator, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsElevated reports whether the role may act on other users' bookings.
func (r Role) IsElevated() bool {
	return r == RoleAdmin
}

// CanManageTaxonomy reports whether the role may create reference data.
func (r Role) CanManageTaxonomy() bool {
	return r == RoleAdmin || r == RoleOperator
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

package domain

import "fmt"

// Role is the closed set of staff roles. Authorization decisions are
// expressed as capability checks on the variant, never as comparisons
// against raw role names.
type Role string

const (
	RoleStaff   Role = "staff"
	RoleManager Role = "manager"
)

// ParseRole validates a raw role name coming from the identity provider
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleStaff, RoleManager:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown staff role %q", s)
	}
}

// CanManagePlanning returns true if the role may edit planning settings
func (r Role) CanManagePlanning() bool {
	return r == RoleManager
}

// CanManagePrestations returns true if the role may edit the service catalog
func (r Role) CanManagePrestations() bool {
	return r == RoleManager
}

// CanManageAllReservations returns true if the role may edit and cancel
// any reservation, not just read them
func (r Role) CanManageAllReservations() bool {
	return r == RoleManager
}

// CanReadReservations returns true if the role may read reservations
func (r Role) CanReadReservations() bool {
	return r == RoleStaff || r == RoleManager
}

// StaffMember represents a bookable employee sourced from the identity provider
type StaffMember struct {
	ID          int64
	DisplayName string
	Role        Role
}

package user

import "time"

type Role string

const (
	RoleAdmin    Role = "ADMIN"    // full access, may approve without an employee profile
	RoleHR       Role = "HR"       // manages employees, leave and payroll
	RoleManager  Role = "MANAGER"  // may approve leave for their reports
	RoleEmployee Role = "EMPLOYEE" // regular employee
)

// User is an account that can sign in. A user optionally links to one
// Employee record; the link lives on the employees table.
type User struct {
	ID              string
	Username        string
	Email           string
	PasswordHash    *string
	Roles           []Role
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Join field: id of the linked employee, if any.
	EmployeeID *string
}

// HasRole checks membership in the user's role set.
func (u *User) HasRole(role Role) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsAdmin checks if user is an administrator
func (u *User) IsAdmin() bool {
	return u.HasRole(RoleAdmin)
}

// IsHR checks if user is HR staff
func (u *User) IsHR() bool {
	return u.HasRole(RoleHR)
}

// CanApprove checks if user may action leave requests at all. Admins
// qualify outright; everyone else also needs a linked employee profile
// so the approval can carry an approver identity.
func (u *User) CanApprove() bool {
	if u.IsAdmin() {
		return true
	}
	if !u.IsHR() && !u.HasRole(RoleManager) {
		return false
	}
	return u.EmployeeID != nil
}

// RoleStrings returns the role set as plain strings for JWT claims.
func (u *User) RoleStrings() []string {
	roles := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		roles = append(roles, string(r))
	}
	return roles
}

// ParseRoles converts claim/request strings into the Role type,
// dropping anything unknown.
func ParseRoles(values []string) []Role {
	var roles []Role
	for _, v := range values {
		switch Role(v) {
		case RoleAdmin, RoleHR, RoleManager, RoleEmployee:
			roles = append(roles, Role(v))
		}
	}
	return roles
}

package models

import "strings"

type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleManager UserRole = "manager"
	RoleMentor  UserRole = "mentor"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleMentor:
		return true
	}
	return false
}

func ParseRole(s string) (UserRole, bool) {
	r := UserRole(strings.ToLower(strings.TrimSpace(s)))
	return r, r.Valid()
}

// RoleFallback decides which role an authenticated identity gets when its
// profile row is missing or carries no role.
type RoleFallback func(email string) UserRole

// RoleFromEmail infers the role from the address for demo accounts.
// Unknown addresses get the manager role.
func RoleFromEmail(email string) UserRole {
	e := strings.ToLower(email)
	switch {
	case strings.Contains(e, "admin"):
		return RoleAdmin
	case strings.Contains(e, "manager"):
		return RoleManager
	case strings.Contains(e, "mentor"):
		return RoleMentor
	default:
		return RoleManager
	}
}

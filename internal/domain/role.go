package domain

import "strings"

// Role identifies which kind of account a person holds.
type Role int

const (
	// RoleNone means nobody is logged in. It is never a valid account role.
	RoleNone Role = iota
	RoleAdmin
	RoleUser
)

// String returns the display name of the role.
func (r Role) String() string {
	switch r {
	case RoleNone:
		return ""
	case RoleAdmin:
		return "Admin"
	case RoleUser:
		return "User"
	default:
		return "unknown"
	}
}

// Valid reports whether r names an account role.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// ParseRole maps the role selector typed at the register/login prompt
// ("1", "2", "admin", "user") to a Role. Anything else yields an invalid
// Role; the caller decides whether that is an error.
func ParseRole(input string) Role {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "1", "admin":
		return RoleAdmin
	case "2", "user":
		return RoleUser
	default:
		return Role(-1)
	}
}

package auth

import "strings"

type Role string

const (
	RoleOwner Role = "owner"
	RoleVet   Role = "vet"
	RoleAdmin Role = "admin"
)

func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleOwner:
		return RoleOwner, true
	case RoleVet:
		return RoleVet, true
	case RoleAdmin:
		return RoleAdmin, true
	default:
		return "", false
	}
}

// Claims representa la información extraída del token.
type Claims struct {
	UserID string
	Email  string
	Roles  []Role
}

func (c Claims) HasRole(role Role) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// HasAnyRole es true si el caller tiene al menos uno de los roles.
func (c Claims) HasAnyRole(roles ...Role) bool {
	for _, r := range roles {
		if c.HasRole(r) {
			return true
		}
	}
	return false
}

// IsStaff: vet o admin.
func (c Claims) IsStaff() bool {
	return c.HasAnyRole(RoleVet, RoleAdmin)
}

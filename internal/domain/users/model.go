package users

import (
	"time"

	"pet-clinic/internal/ports/auth"
)

// User es la cuenta con credenciales. PasswordHash nunca sale por la API.
type User struct {
	ID           string
	Email        string
	FullName     string
	Phone        string
	PasswordHash string
	Roles        []auth.Role

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u User) HasRole(role auth.Role) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

func (u User) Claims() auth.Claims {
	roles := make([]auth.Role, len(u.Roles))
	copy(roles, u.Roles)
	return auth.Claims{UserID: u.ID, Email: u.Email, Roles: roles}
}

// Profile es la vista de directorio: lo que otros módulos necesitan de un usuario.
type Profile struct {
	ID       string
	FullName string
	Email    string
	Roles    []auth.Role
}

func (p Profile) HasRole(role auth.Role) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

func (u User) Profile() Profile {
	roles := make([]auth.Role, len(u.Roles))
	copy(roles, u.Roles)
	return Profile{ID: u.ID, FullName: u.FullName, Email: u.Email, Roles: roles}
}

package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin  = "admin"
	RoleSeller = "seller"
)

// User representa un usuario vendedor del portal (pertenece a una Company).
type User struct {
	ID           string
	CompanyID    string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, seller
	IsSuperAdmin bool   // flag de super-administrador, independiente del Role
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdministrator informa si el usuario tiene privilegios de administrador:
// flag de super-admin activo o rol admin. No depende de la empresa.
func (u *User) IsAdministrator() bool {
	if u == nil {
		return false
	}
	return u.IsSuperAdmin || u.Role == RoleAdmin
}

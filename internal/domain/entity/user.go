package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin  = "admin"
	RoleFarmer = "farmer"
)

// User representa un usuario de la aplicación (una cuenta = una finca).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	FarmName     string
	Role         string // admin, farmer
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin      = "admin"
	RoleCostos     = "costos"     // analista de costos: administra catálogos y precios
	RoleResidente  = "residente"  // residente de obra: arma presupuestos
)

// User usuario del back-office. Su ID viaja como actor en las operaciones de
// auditoría (createdBy, approvedBy, updatedBy).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

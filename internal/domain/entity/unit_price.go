package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un precio unitario independiente.
const (
	UnitPriceStatusPending  = "pendiente"
	UnitPriceStatusApproved = "aprobado"
	UnitPriceStatusRejected = "rechazado"
)

// UnitPrice es un precio unitario independiente (fuera de catálogo) para un
// concepto en una región. La resolución lo usa como segundo nivel de respaldo
// cuando ningún catálogo activo cubre el instante consultado; solo cuentan
// los aprobados.
type UnitPrice struct {
	ID         string
	ConceptID  string
	Region     string
	Price      decimal.Decimal
	Status     string // pendiente | aprobado | rechazado
	ValidFrom  time.Time
	ApprovedBy *string
	ApprovedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

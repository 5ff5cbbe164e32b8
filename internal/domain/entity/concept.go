package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos y estados de un concepto de obra.
const (
	ConceptTypeSimple   = "simple"
	ConceptTypeCompound = "compuesto"

	ConceptStatusActive   = "activo"
	ConceptStatusObsolete = "obsoleto"
)

// Concept representa un concepto de obra (material, mano de obra o partida
// compuesta) del catálogo maestro. El árbol se modela con ParentID opcional:
// un concepto puede tener cero o muchos hijos y a lo sumo un padre.
// Code es único entre conceptos activos.
type Concept struct {
	ID             string
	Code           string
	Name           string
	Unit           string // unidad de medida (m2, m3, jornal, pza, ...)
	Category       string
	Subcategory    string
	Type           string          // simple | compuesto
	ParentID       *string         // nil = raíz
	ReferencePrice decimal.Decimal // precio de respaldo cuando no hay catálogo ni precio unitario
	Status         string          // activo | obsoleto
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsActive indica si el concepto sigue vigente.
func (c *Concept) IsActive() bool {
	return c.Status == ConceptStatusActive
}

// CategoryCount conteo de conceptos activos por categoría.
type CategoryCount struct {
	Category string
	Count    int
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una partida.
const (
	BudgetLineStatusActive   = "activa"
	BudgetLineStatusInactive = "inactiva"
)

// BudgetLine es una partida del presupuesto: referencia un concepto y lleva
// su propio precio (explícito o sugerido por la resolución). PartidaNumber es
// único dentro del presupuesto; DisplayOrder define el orden total de todas
// las partidas (activas e inactivas). Unit se copia del concepto al crear y
// no se re-sincroniza después.
type BudgetLine struct {
	ID              string
	BudgetID        string
	ConceptID       string
	PartidaNumber   int
	CustomCode      string
	Unit            string
	Quantity        decimal.Decimal
	UnitPrice       decimal.Decimal
	YieldFactor     decimal.Decimal // rendimiento, por defecto 1
	DiscountPercent decimal.Decimal // 0..100
	IsOptional      bool
	Group           string
	DisplayOrder    int
	Status          string // activa | inactiva
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

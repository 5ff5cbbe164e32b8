package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceCatalog representa un catálogo de precios con alcance de región y
// vigencia propia. Su ciclo de vida (borrador → activo → {suspendido,
// obsoleto}) vive en internal/domain/catalog.
type PriceCatalog struct {
	ID              string
	Name            string
	Type            string // oficial, interno, proveedor, ...
	Region          string // "General" actúa como comodín en la resolución
	City            string
	ValidFrom       time.Time
	ValidTo         *time.Time // nil = vigencia abierta
	CalculationBase string
	AppliesOverhead bool
	OverheadPercent decimal.Decimal
	AppliesProfit   bool
	ProfitPercent   decimal.Decimal
	IsPublic        bool
	OwnerClientID   string
	Status          string // ver catalog.Status
	CreatedBy       string
	ApprovedBy      *string    // se estampa al pasar a activo
	ApprovedAt      *time.Time // ídem
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

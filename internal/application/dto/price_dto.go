package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ResolvePriceResponse resultado de la resolución de precio vigente: el valor
// numérico más la procedencia (catalog_entry | standalone_price |
// reference_price) para que la UI pueda mostrar de dónde salió la sugerencia.
type ResolvePriceResponse struct {
	ConceptID string          `json:"concept_id"`
	Region    string          `json:"region"`
	AsOf      time.Time       `json:"as_of"`
	Price     decimal.Decimal `json:"price"`
	Source    string          `json:"source"`
	CatalogID string          `json:"catalog_id,omitempty"`
	RefID     string          `json:"ref_id,omitempty"`
}

// CreateUnitPriceRequest entrada para registrar un precio unitario
// independiente (nace pendiente de aprobación).
type CreateUnitPriceRequest struct {
	ConceptID string          `json:"concept_id" validate:"required"`
	Region    string          `json:"region" validate:"required"`
	Price     decimal.Decimal `json:"price"`
	ValidFrom time.Time       `json:"valid_from"`
}

// UnitPriceResponse salida de un precio unitario.
type UnitPriceResponse struct {
	ID         string          `json:"id"`
	ConceptID  string          `json:"concept_id"`
	Region     string          `json:"region"`
	Price      decimal.Decimal `json:"price"`
	Status     string          `json:"status"`
	ValidFrom  time.Time       `json:"valid_from"`
	ApprovedBy *string         `json:"approved_by,omitempty"`
	ApprovedAt *time.Time      `json:"approved_at,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

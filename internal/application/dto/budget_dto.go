package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateBudgetRequest entrada para crear un presupuesto (nace en borrador).
type CreateBudgetRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	ClientID string `json:"client_id"`
	Region   string `json:"region"`
}

// BudgetResponse salida de un presupuesto.
type BudgetResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ClientID  string    `json:"client_id"`
	Region    string    `json:"region"`
	Status    string    `json:"status"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateBudgetStatusRequest entrada para cambiar el estado del presupuesto.
type UpdateBudgetStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// AddLineRequest entrada para agregar una partida.
type AddLineRequest struct {
	ConceptID       string           `json:"concept_id" validate:"required"`
	PartidaNumber   *int             `json:"partida_number"` // nil = siguiente disponible
	CustomCode      string           `json:"custom_code"`
	Quantity        decimal.Decimal  `json:"quantity"`
	UnitPrice       decimal.Decimal  `json:"unit_price"`
	YieldFactor     *decimal.Decimal `json:"yield_factor"`     // nil = 1
	DiscountPercent *decimal.Decimal `json:"discount_percent"` // nil = 0
	IsOptional      bool             `json:"is_optional"`
	Group           string           `json:"group"`
	Notes           string           `json:"notes"`
}

// UpdateLineRequest entrada para actualizar una partida. PartidaNumber no es
// modificable después de creada.
type UpdateLineRequest struct {
	CustomCode      *string          `json:"custom_code"`
	Quantity        *decimal.Decimal `json:"quantity"`
	UnitPrice       *decimal.Decimal `json:"unit_price"`
	YieldFactor     *decimal.Decimal `json:"yield_factor"`
	DiscountPercent *decimal.Decimal `json:"discount_percent"`
	IsOptional      *bool            `json:"is_optional"`
	Group           *string          `json:"group"`
	Status          *string          `json:"status"`
	Notes           *string          `json:"notes"`
}

// LineResponse salida de una partida con sus importes calculados.
type LineResponse struct {
	ID              string          `json:"id"`
	BudgetID        string          `json:"budget_id"`
	ConceptID       string          `json:"concept_id"`
	PartidaNumber   int             `json:"partida_number"`
	CustomCode      string          `json:"custom_code"`
	Unit            string          `json:"unit"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	YieldFactor     decimal.Decimal `json:"yield_factor"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	IsOptional      bool            `json:"is_optional"`
	Group           string          `json:"group"`
	DisplayOrder    int             `json:"display_order"`
	Status          string          `json:"status"`
	Notes           string          `json:"notes"`
	BaseAmount      decimal.Decimal `json:"base_amount"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	NetAmount       decimal.Decimal `json:"net_amount"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// LineListResponse partidas de un presupuesto en orden de despliegue.
type LineListResponse struct {
	Items []LineResponse `json:"items"`
}

// LineWithSourceResponse partida creada desde un concepto, con la procedencia
// del precio sugerido.
type LineWithSourceResponse struct {
	Line        LineResponse `json:"line"`
	PriceSource string       `json:"price_source"`
}

// ReorderPair par partida → nuevo orden.
type ReorderPair struct {
	LineID       string `json:"line_id" validate:"required"`
	DisplayOrder int    `json:"display_order" validate:"min=1"`
}

// ReorderRequest entrada para reordenar partidas.
type ReorderRequest struct {
	Items []ReorderPair `json:"items" validate:"required,min=1"`
}

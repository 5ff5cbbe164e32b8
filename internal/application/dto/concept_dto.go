package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateConceptRequest entrada para crear un concepto de obra.
type CreateConceptRequest struct {
	Code           string          `json:"code" validate:"required,min=1,max=50"`
	Name           string          `json:"name" validate:"required,min=1,max=200"`
	Unit           string          `json:"unit" validate:"required"`
	Category       string          `json:"category"`
	Subcategory    string          `json:"subcategory"`
	Type           string          `json:"type"` // simple | compuesto
	ParentID       *string         `json:"parent_id"`
	ReferencePrice decimal.Decimal `json:"reference_price"`
}

// UpdateConceptRequest entrada para actualizar un concepto (Code es inmutable).
type UpdateConceptRequest struct {
	Name           *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Unit           *string          `json:"unit"`
	Category       *string          `json:"category"`
	Subcategory    *string          `json:"subcategory"`
	ParentID       *string          `json:"parent_id"`
	ReferencePrice *decimal.Decimal `json:"reference_price"`
}

// ConceptResponse salida de un concepto.
type ConceptResponse struct {
	ID             string          `json:"id"`
	Code           string          `json:"code"`
	Name           string          `json:"name"`
	Unit           string          `json:"unit"`
	Category       string          `json:"category"`
	Subcategory    string          `json:"subcategory"`
	Type           string          `json:"type"`
	ParentID       *string         `json:"parent_id,omitempty"`
	ReferencePrice decimal.Decimal `json:"reference_price"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ConceptListResponse lista paginada de conceptos.
type ConceptListResponse struct {
	Items []ConceptResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// CategoryCountResponse conteo de conceptos activos por categoría.
type CategoryCountResponse struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

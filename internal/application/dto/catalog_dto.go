package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCatalogRequest entrada para crear un catálogo (nace en borrador).
type CreateCatalogRequest struct {
	Name            string          `json:"name" validate:"required,min=1,max=200"`
	Type            string          `json:"type"`
	Region          string          `json:"region" validate:"required"`
	City            string          `json:"city"`
	ValidFrom       time.Time       `json:"valid_from"`
	ValidTo         *time.Time      `json:"valid_to"`
	CalculationBase string          `json:"calculation_base"`
	AppliesOverhead bool            `json:"applies_overhead"`
	OverheadPercent decimal.Decimal `json:"overhead_percent"`
	AppliesProfit   bool            `json:"applies_profit"`
	ProfitPercent   decimal.Decimal `json:"profit_percent"`
	IsPublic        bool            `json:"is_public"`
	OwnerClientID   string          `json:"owner_client_id"`
}

// UpdateCatalogRequest entrada para actualizar la cabecera de un catálogo.
type UpdateCatalogRequest struct {
	Name            *string          `json:"name" validate:"omitempty,min=1,max=200"`
	City            *string          `json:"city"`
	ValidTo         *time.Time       `json:"valid_to"`
	CalculationBase *string          `json:"calculation_base"`
	OverheadPercent *decimal.Decimal `json:"overhead_percent"`
	ProfitPercent   *decimal.Decimal `json:"profit_percent"`
	IsPublic        *bool            `json:"is_public"`
}

// CatalogResponse salida de un catálogo.
type CatalogResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Type            string          `json:"type"`
	Region          string          `json:"region"`
	City            string          `json:"city"`
	ValidFrom       time.Time       `json:"valid_from"`
	ValidTo         *time.Time      `json:"valid_to,omitempty"`
	CalculationBase string          `json:"calculation_base"`
	AppliesOverhead bool            `json:"applies_overhead"`
	OverheadPercent decimal.Decimal `json:"overhead_percent"`
	AppliesProfit   bool            `json:"applies_profit"`
	ProfitPercent   decimal.Decimal `json:"profit_percent"`
	IsPublic        bool            `json:"is_public"`
	OwnerClientID   string          `json:"owner_client_id"`
	Status          string          `json:"status"`
	CreatedBy       string          `json:"created_by"`
	ApprovedBy      *string         `json:"approved_by,omitempty"`
	ApprovedAt      *time.Time      `json:"approved_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// CatalogListResponse lista paginada de catálogos.
type CatalogListResponse struct {
	Items []CatalogResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// AddCatalogEntryRequest entrada para agregar un precio a un catálogo.
type AddCatalogEntryRequest struct {
	ConceptID string          `json:"concept_id" validate:"required"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	ValidFrom time.Time       `json:"valid_from"`
	ValidTo   *time.Time      `json:"valid_to"`
}

// CatalogEntryResponse salida de una entrada de catálogo.
type CatalogEntryResponse struct {
	ID        string          `json:"id"`
	CatalogID string          `json:"catalog_id"`
	ConceptID string          `json:"concept_id"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	ValidFrom time.Time       `json:"valid_from"`
	ValidTo   *time.Time      `json:"valid_to,omitempty"`
	UpdatedBy string          `json:"updated_by"`
}

// TransitionCatalogRequest entrada para cambiar el estado del catálogo.
type TransitionCatalogRequest struct {
	Status string `json:"status" validate:"required"`
}

// DuplicateCatalogRequest entrada para duplicar un catálogo.
type DuplicateCatalogRequest struct {
	NewName     string `json:"new_name" validate:"required,min=1,max=200"`
	CopyEntries *bool  `json:"copy_entries"` // nil = true
}

// DuplicateCatalogResponse catálogo nuevo más conteo de entradas copiadas.
type DuplicateCatalogResponse struct {
	Catalog    CatalogResponse `json:"catalog"`
	EntryCount int             `json:"entry_count"`
}

// ApplyFactorRequest entrada para la actualización masiva por factor.
type ApplyFactorRequest struct {
	Factor decimal.Decimal `json:"factor" validate:"required"`
}

// ApplyFactorResponse catálogo actualizado más filas afectadas.
type ApplyFactorResponse struct {
	Catalog      CatalogResponse `json:"catalog"`
	UpdatedCount int64           `json:"updated_count"`
}

// CatalogStatsResponse agregado de estadísticas del catálogo.
type CatalogStatsResponse struct {
	EntryCount    int             `json:"entry_count"`
	MinUnitPrice  decimal.Decimal `json:"min_unit_price"`
	MaxUnitPrice  decimal.Decimal `json:"max_unit_price"`
	AvgUnitPrice  decimal.Decimal `json:"avg_unit_price"`
	OpenWindows   int             `json:"open_windows"`
	ClosedWindows int             `json:"closed_windows"`
}

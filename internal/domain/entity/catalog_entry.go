package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CatalogEntry es el precio de un concepto dentro de un catálogo, con su
// propia ventana de vigencia. Un mismo concepto puede tener varias entradas
// en el catálogo siempre que las ventanas no se solapen; a lo sumo una puede
// estar abierta (ValidTo nil) o cubrir un instante dado.
type CatalogEntry struct {
	ID        string
	CatalogID string
	ConceptID string
	UnitPrice decimal.Decimal
	ValidFrom time.Time
	ValidTo   *time.Time // nil = abierta
	UpdatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOpen indica si la entrada tiene ventana de vigencia abierta.
func (e *CatalogEntry) IsOpen() bool {
	return e.ValidTo == nil
}

// Covers indica si la ventana de la entrada cubre el instante dado.
func (e *CatalogEntry) Covers(asOf time.Time) bool {
	if e.ValidFrom.After(asOf) {
		return false
	}
	return e.ValidTo == nil || !e.ValidTo.Before(asOf)
}

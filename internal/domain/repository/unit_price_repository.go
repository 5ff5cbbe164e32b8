package repository

import (
	"time"

	"github.com/jcaicedo/catalogo-obras-api/internal/domain/entity"
	"github.com/jcaicedo/catalogo-obras-api/internal/domain/pricing"
)

// UnitPriceRepository define el puerto de persistencia para precios unitarios
// independientes.
type UnitPriceRepository interface {
	Create(price *entity.UnitPrice) error
	GetByID(id string) (*entity.UnitPrice, error)
	Update(price *entity.UnitPrice) error
	// FindApproved devuelve los candidatos aprobados del concepto para la
	// región indicada o la comodín, vigentes a asOf.
	FindApproved(conceptID, region string, asOf time.Time) ([]pricing.Candidate, error)
}

package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcaicedo/catalogo-obras-api/internal/domain/entity"
	"github.com/jcaicedo/catalogo-obras-api/internal/domain/pricing"
)

// CatalogRepository define el puerto de persistencia para PriceCatalog.
type CatalogRepository interface {
	Create(catalog *entity.PriceCatalog) error
	GetByID(id string) (*entity.PriceCatalog, error)
	Update(catalog *entity.PriceCatalog) error
	Delete(id string) error
	List(region string, limit, offset int) ([]*entity.PriceCatalog, error)
}

// CatalogStats agregado de estadísticas de las entradas de un catálogo.
type CatalogStats struct {
	EntryCount    int
	MinUnitPrice  decimal.Decimal
	MaxUnitPrice  decimal.Decimal
	AvgUnitPrice  decimal.Decimal
	OpenWindows   int // entradas con ValidTo nulo
	ClosedWindows int
}

// CatalogEntryRepository define el puerto de persistencia para CatalogEntry.
type CatalogEntryRepository interface {
	Create(entry *entity.CatalogEntry) error
	GetByID(id string) (*entity.CatalogEntry, error)
	Update(entry *entity.CatalogEntry) error
	ListByCatalog(catalogID string) ([]*entity.CatalogEntry, error)
	// GetOpenByConcept devuelve la entrada con ventana abierta del concepto en
	// el catálogo, o nil si no existe.
	GetOpenByConcept(catalogID, conceptID string) (*entity.CatalogEntry, error)
	// CountByCatalog cuenta las entradas del catálogo.
	CountByCatalog(catalogID string) (int, error)
	// MultiplyPrices multiplica el precio de todas las entradas del catálogo
	// por factor y estampa updatedBy. Devuelve las filas afectadas. Debe
	// ejecutarse dentro de una transacción (ver CatalogTxRunner).
	MultiplyPrices(catalogID string, factor decimal.Decimal, updatedBy string) (int64, error)
	// Stats calcula el agregado de estadísticas del catálogo (solo lectura).
	Stats(catalogID string) (*CatalogStats, error)
	// FindCurrent devuelve los candidatos de catálogos ACTIVOS cuya región es
	// la indicada o la comodín, con ventana cubriendo asOf.
	FindCurrent(conceptID, region string, asOf time.Time) ([]pricing.Candidate, error)
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jcaicedo/catalogo-obras-api/internal/domain/catalog"
	"github.com/jcaicedo/catalogo-obras-api/internal/domain/entity"
	"github.com/jcaicedo/catalogo-obras-api/internal/domain/pricing"
	"github.com/jcaicedo/catalogo-obras-api/internal/domain/repository"
)

var _ repository.CatalogEntryRepository = (*CatalogEntryRepo)(nil)

const entryColumns = `id, catalog_id, concept_id, unit_price, valid_from, valid_to, updated_by, created_at, updated_at`

// CatalogEntryRepo implementación del puerto CatalogEntryRepository sobre
// PostgreSQL.
type CatalogEntryRepo struct {
	q Querier
}

// NewCatalogEntryRepository construye el adaptador de persistencia para
// entradas de catálogo.
func NewCatalogEntryRepository(q Querier) *CatalogEntryRepo {
	return &CatalogEntryRepo{q: q}
}

// Create persiste una entrada nueva.
func (r *CatalogEntryRepo) Create(e *entity.CatalogEntry) error {
	query := `
		INSERT INTO catalog_price_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.CatalogID, e.ConceptID, e.UnitPrice, e.ValidFrom, e.ValidTo,
		e.UpdatedBy, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert catalog entry: %w", err)
	}
	return nil
}

// GetByID obtiene una entrada por ID.
func (r *CatalogEntryRepo) GetByID(id string) (*entity.CatalogEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM catalog_price_entries WHERE id = $1`
	return scanEntryOrNil(r.q.QueryRow(context.Background(), query, id))
}

// Update actualiza una entrada existente.
func (r *CatalogEntryRepo) Update(e *entity.CatalogEntry) error {
	query := `
		UPDATE catalog_price_entries
		SET unit_price = $2, valid_from = $3, valid_to = $4, updated_by = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.UnitPrice, e.ValidFrom, e.ValidTo, e.UpdatedBy, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update catalog entry: %w", err)
	}
	return nil
}

// ListByCatalog devuelve las entradas del catálogo ordenadas por concepto y
// ventana.
func (r *CatalogEntryRepo) ListByCatalog(catalogID string) ([]*entity.CatalogEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM catalog_price_entries
		WHERE catalog_id = $1
		ORDER BY concept_id, valid_from`
	rows, err := r.q.Query(context.Background(), query, catalogID)
	if err != nil {
		return nil, fmt.Errorf("list catalog entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.CatalogEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// GetOpenByConcept devuelve la entrada con ventana abierta del concepto, o
// nil si no existe.
func (r *CatalogEntryRepo) GetOpenByConcept(catalogID, conceptID string) (*entity.CatalogEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM catalog_price_entries
		WHERE catalog_id = $1 AND concept_id = $2 AND valid_to IS NULL`
	return scanEntryOrNil(r.q.QueryRow(context.Background(), query, catalogID, conceptID))
}

// CountByCatalog cuenta las entradas del catálogo.
func (r *CatalogEntryRepo) CountByCatalog(catalogID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM catalog_price_entries WHERE catalog_id = $1`, catalogID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count catalog entries: %w", err)
	}
	return count, nil
}

// MultiplyPrices multiplica todas las entradas del catálogo en un solo UPDATE
// y devuelve las filas afectadas.
func (r *CatalogEntryRepo) MultiplyPrices(catalogID string, factor decimal.Decimal, updatedBy string) (int64, error) {
	query := `
		UPDATE catalog_price_entries
		SET unit_price = unit_price * $2, updated_by = $3, updated_at = NOW()
		WHERE catalog_id = $1`
	tag, err := r.q.Exec(context.Background(), query, catalogID, factor, updatedBy)
	if err != nil {
		return 0, fmt.Errorf("multiply catalog prices: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Stats calcula el agregado de estadísticas del catálogo. Con catálogo vacío
// devuelve ceros.
func (r *CatalogEntryRepo) Stats(catalogID string) (*repository.CatalogStats, error) {
	query := `
		SELECT COUNT(*),
		       COALESCE(MIN(unit_price), 0),
		       COALESCE(MAX(unit_price), 0),
		       COALESCE(AVG(unit_price), 0),
		       COUNT(*) FILTER (WHERE valid_to IS NULL),
		       COUNT(*) FILTER (WHERE valid_to IS NOT NULL)
		FROM catalog_price_entries
		WHERE catalog_id = $1`
	var s repository.CatalogStats
	err := r.q.QueryRow(context.Background(), query, catalogID).Scan(
		&s.EntryCount, &s.MinUnitPrice, &s.MaxUnitPrice, &s.AvgUnitPrice,
		&s.OpenWindows, &s.ClosedWindows,
	)
	if err != nil {
		return nil, fmt.Errorf("catalog stats: %w", err)
	}
	return &s, nil
}

// FindCurrent devuelve los candidatos de catálogos activos (región exacta o
// comodín) cuya ventana de entrada cubre asOf. El desempate lo hace
// pricing.PickBest, no el SQL.
func (r *CatalogEntryRepo) FindCurrent(conceptID, region string, asOf time.Time) ([]pricing.Candidate, error) {
	query := `
		SELECT e.id, e.catalog_id, e.unit_price, e.valid_from, c.approved_at
		FROM catalog_price_entries e
		JOIN price_catalogs c ON c.id = e.catalog_id
		WHERE e.concept_id = $1
		  AND c.status = $2
		  AND (c.region = $3 OR c.region = $4)
		  AND e.valid_from <= $5
		  AND (e.valid_to IS NULL OR e.valid_to >= $5)`
	rows, err := r.q.Query(context.Background(), query,
		conceptID, catalog.StatusActive, region, pricing.RegionGeneral, asOf)
	if err != nil {
		return nil, fmt.Errorf("find current catalog prices: %w", err)
	}
	defer rows.Close()
	var candidates []pricing.Candidate
	for rows.Next() {
		var c pricing.Candidate
		if err := rows.Scan(&c.RefID, &c.CatalogID, &c.UnitPrice, &c.ValidFrom, &c.ApprovedAt); err != nil {
			return nil, fmt.Errorf("scan price candidate: %w", err)
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}

func scanEntryOrNil(row pgx.Row) (*entity.CatalogEntry, error) {
	e, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return e, nil
}

func scanEntry(row pgx.Row) (*entity.CatalogEntry, error) {
	var e entity.CatalogEntry
	err := row.Scan(&e.ID, &e.CatalogID, &e.ConceptID, &e.UnitPrice,
		&e.ValidFrom, &e.ValidTo, &e.UpdatedBy, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan catalog entry: %w", err)
	}
	return &e, nil
}

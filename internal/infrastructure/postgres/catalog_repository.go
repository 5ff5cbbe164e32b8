package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jcaicedo/catalogo-obras-api/internal/domain/entity"
	"github.com/jcaicedo/catalogo-obras-api/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

const catalogColumns = `id, name, type, region, city, valid_from, valid_to, calculation_base,
	applies_overhead, overhead_percent, applies_profit, profit_percent,
	is_public, owner_client_id, status, created_by, approved_by, approved_at,
	created_at, updated_at`

// CatalogRepo implementación del puerto CatalogRepository sobre PostgreSQL.
type CatalogRepo struct {
	q Querier
}

// NewCatalogRepository construye el adaptador de persistencia para catálogos.
func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

// Create persiste un catálogo nuevo.
func (r *CatalogRepo) Create(c *entity.PriceCatalog) error {
	query := `
		INSERT INTO price_catalogs (` + catalogColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, c.Type, c.Region, c.City, c.ValidFrom, c.ValidTo, c.CalculationBase,
		c.AppliesOverhead, c.OverheadPercent, c.AppliesProfit, c.ProfitPercent,
		c.IsPublic, c.OwnerClientID, c.Status, c.CreatedBy, c.ApprovedBy, c.ApprovedAt,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert catalog: %w", err)
	}
	return nil
}

// GetByID obtiene un catálogo por ID.
func (r *CatalogRepo) GetByID(id string) (*entity.PriceCatalog, error) {
	query := `SELECT ` + catalogColumns + ` FROM price_catalogs WHERE id = $1`
	c, err := scanCatalog(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

// Update actualiza un catálogo existente.
func (r *CatalogRepo) Update(c *entity.PriceCatalog) error {
	query := `
		UPDATE price_catalogs
		SET name = $2, type = $3, region = $4, city = $5, valid_from = $6, valid_to = $7,
		    calculation_base = $8, applies_overhead = $9, overhead_percent = $10,
		    applies_profit = $11, profit_percent = $12, is_public = $13,
		    owner_client_id = $14, status = $15, approved_by = $16, approved_at = $17,
		    updated_at = $18
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, c.Type, c.Region, c.City, c.ValidFrom, c.ValidTo,
		c.CalculationBase, c.AppliesOverhead, c.OverheadPercent,
		c.AppliesProfit, c.ProfitPercent, c.IsPublic,
		c.OwnerClientID, c.Status, c.ApprovedBy, c.ApprovedAt,
		c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update catalog: %w", err)
	}
	return nil
}

// Delete borra un catálogo (las entradas caen por ON DELETE CASCADE).
func (r *CatalogRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM price_catalogs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete catalog: %w", err)
	}
	return nil
}

// List lista catálogos; region vacía lista todos.
func (r *CatalogRepo) List(region string, limit, offset int) ([]*entity.PriceCatalog, error) {
	query := `
		SELECT ` + catalogColumns + `
		FROM price_catalogs
		WHERE ($1 = '' OR region = $1)
		ORDER BY valid_from DESC, name
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, region, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list catalogs: %w", err)
	}
	defer rows.Close()
	var list []*entity.PriceCatalog
	for rows.Next() {
		c, err := scanCatalog(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func scanCatalog(row pgx.Row) (*entity.PriceCatalog, error) {
	var c entity.PriceCatalog
	err := row.Scan(&c.ID, &c.Name, &c.Type, &c.Region, &c.City, &c.ValidFrom, &c.ValidTo,
		&c.CalculationBase, &c.AppliesOverhead, &c.OverheadPercent, &c.AppliesProfit,
		&c.ProfitPercent, &c.IsPublic, &c.OwnerClientID, &c.Status, &c.CreatedBy,
		&c.ApprovedBy, &c.ApprovedAt, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan catalog: %w", err)
	}
	return &c, nil
}

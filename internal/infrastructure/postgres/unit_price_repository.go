package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jcaicedo/catalogo-obras-api/internal/domain/entity"
	"github.com/jcaicedo/catalogo-obras-api/internal/domain/pricing"
	"github.com/jcaicedo/catalogo-obras-api/internal/domain/repository"
)

var _ repository.UnitPriceRepository = (*UnitPriceRepo)(nil)

const unitPriceColumns = `id, concept_id, region, price, status, valid_from, approved_by, approved_at, created_at, updated_at`

// UnitPriceRepo implementación del puerto UnitPriceRepository sobre
// PostgreSQL.
type UnitPriceRepo struct {
	q Querier
}

// NewUnitPriceRepository construye el adaptador de persistencia para precios
// unitarios independientes.
func NewUnitPriceRepository(q Querier) *UnitPriceRepo {
	return &UnitPriceRepo{q: q}
}

// Create persiste un precio unitario nuevo.
func (r *UnitPriceRepo) Create(p *entity.UnitPrice) error {
	query := `
		INSERT INTO unit_prices (` + unitPriceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.ConceptID, p.Region, p.Price, p.Status, p.ValidFrom,
		p.ApprovedBy, p.ApprovedAt, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert unit price: %w", err)
	}
	return nil
}

// GetByID obtiene un precio unitario por ID.
func (r *UnitPriceRepo) GetByID(id string) (*entity.UnitPrice, error) {
	query := `SELECT ` + unitPriceColumns + ` FROM unit_prices WHERE id = $1`
	var p entity.UnitPrice
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.ConceptID, &p.Region, &p.Price, &p.Status, &p.ValidFrom,
		&p.ApprovedBy, &p.ApprovedAt, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get unit price: %w", err)
	}
	return &p, nil
}

// Update actualiza un precio unitario existente.
func (r *UnitPriceRepo) Update(p *entity.UnitPrice) error {
	query := `
		UPDATE unit_prices
		SET region = $2, price = $3, status = $4, valid_from = $5,
		    approved_by = $6, approved_at = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Region, p.Price, p.Status, p.ValidFrom,
		p.ApprovedBy, p.ApprovedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update unit price: %w", err)
	}
	return nil
}

// FindApproved devuelve los candidatos aprobados del concepto para la región
// indicada o la comodín, vigentes a asOf.
func (r *UnitPriceRepo) FindApproved(conceptID, region string, asOf time.Time) ([]pricing.Candidate, error) {
	query := `
		SELECT id, price, valid_from, approved_at
		FROM unit_prices
		WHERE concept_id = $1
		  AND status = $2
		  AND (region = $3 OR region = $4)
		  AND valid_from <= $5`
	rows, err := r.q.Query(context.Background(), query,
		conceptID, entity.UnitPriceStatusApproved, region, pricing.RegionGeneral, asOf)
	if err != nil {
		return nil, fmt.Errorf("find approved unit prices: %w", err)
	}
	defer rows.Close()
	var candidates []pricing.Candidate
	for rows.Next() {
		var c pricing.Candidate
		if err := rows.Scan(&c.RefID, &c.UnitPrice, &c.ValidFrom, &c.ApprovedAt); err != nil {
			return nil, fmt.Errorf("scan unit price candidate: %w", err)
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}

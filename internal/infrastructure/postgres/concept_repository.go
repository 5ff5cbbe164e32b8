package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jcaicedo/catalogo-obras-api/internal/domain"
	"github.com/jcaicedo/catalogo-obras-api/internal/domain/entity"
	"github.com/jcaicedo/catalogo-obras-api/internal/domain/repository"
	"github.com/jcaicedo/catalogo-obras-api/pkg/textutil"
)

var _ repository.ConceptRepository = (*ConceptRepo)(nil)

const conceptColumns = `id, code, name, unit, category, subcategory, type, parent_id, reference_price, status, created_at, updated_at`

// ConceptRepo implementación del puerto ConceptRepository sobre PostgreSQL
// (usable con pool o tx). La columna search_text guarda código+nombre
// normalizados para búsqueda insensible a acentos.
type ConceptRepo struct {
	q Querier
}

// NewConceptRepository construye el adaptador de persistencia para conceptos.
func NewConceptRepository(q Querier) *ConceptRepo {
	return &ConceptRepo{q: q}
}

// Create persiste un concepto nuevo.
func (r *ConceptRepo) Create(c *entity.Concept) error {
	query := `
		INSERT INTO concepts (id, code, name, unit, category, subcategory, type, parent_id, reference_price, status, search_text, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Code, c.Name, c.Unit, c.Category, c.Subcategory, c.Type, c.ParentID,
		c.ReferencePrice, c.Status, searchText(c), c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateCode
		}
		return fmt.Errorf("insert concept: %w", err)
	}
	return nil
}

// GetByID obtiene un concepto por ID.
func (r *ConceptRepo) GetByID(id string) (*entity.Concept, error) {
	query := `SELECT ` + conceptColumns + ` FROM concepts WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetActiveByCode busca un concepto activo por código.
func (r *ConceptRepo) GetActiveByCode(code string) (*entity.Concept, error) {
	query := `SELECT ` + conceptColumns + ` FROM concepts WHERE code = $1 AND status = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, code, entity.ConceptStatusActive))
}

// Update actualiza un concepto existente (Code no cambia).
func (r *ConceptRepo) Update(c *entity.Concept) error {
	query := `
		UPDATE concepts
		SET name = $2, unit = $3, category = $4, subcategory = $5, parent_id = $6,
		    reference_price = $7, status = $8, search_text = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, c.Unit, c.Category, c.Subcategory, c.ParentID,
		c.ReferencePrice, c.Status, searchText(c), c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update concept: %w", err)
	}
	return nil
}

// HasChildren indica si algún concepto tiene a id como padre.
func (r *ConceptRepo) HasChildren(id string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM concepts WHERE parent_id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check concept children: %w", err)
	}
	return exists, nil
}

// List lista conceptos activos; search filtra sobre search_text normalizado.
func (r *ConceptRepo) List(search string, limit, offset int) ([]*entity.Concept, error) {
	query := `
		SELECT ` + conceptColumns + `
		FROM concepts
		WHERE status = $1 AND ($2 = '' OR search_text LIKE '%' || $2 || '%')
		ORDER BY code
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query,
		entity.ConceptStatusActive, textutil.Normalize(search), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list concepts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Concept
	for rows.Next() {
		c, err := scanConcept(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// CountByCategory agrupa conceptos activos por categoría.
func (r *ConceptRepo) CountByCategory() ([]entity.CategoryCount, error) {
	query := `
		SELECT category, COUNT(*)
		FROM concepts
		WHERE status = $1
		GROUP BY category
		ORDER BY category`
	rows, err := r.q.Query(context.Background(), query, entity.ConceptStatusActive)
	if err != nil {
		return nil, fmt.Errorf("count concepts by category: %w", err)
	}
	defer rows.Close()
	var counts []entity.CategoryCount
	for rows.Next() {
		var c entity.CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, fmt.Errorf("scan category count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func (r *ConceptRepo) scanOne(row pgx.Row) (*entity.Concept, error) {
	c, err := scanConcept(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

func scanConcept(row pgx.Row) (*entity.Concept, error) {
	var c entity.Concept
	err := row.Scan(&c.ID, &c.Code, &c.Name, &c.Unit, &c.Category, &c.Subcategory,
		&c.Type, &c.ParentID, &c.ReferencePrice, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan concept: %w", err)
	}
	return &c, nil
}

func searchText(c *entity.Concept) string {
	return textutil.Normalize(c.Code + " " + c.Name)
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jcaicedo/catalogo-obras-api/internal/domain"
	"github.com/jcaicedo/catalogo-obras-api/internal/domain/entity"
	"github.com/jcaicedo/catalogo-obras-api/internal/domain/repository"
)

var _ repository.BudgetLineRepository = (*BudgetLineRepo)(nil)

const lineColumns = `id, budget_id, concept_id, partida_number, custom_code, unit, quantity,
	unit_price, yield_factor, discount_percent, is_optional, group_name,
	display_order, status, notes, created_at, updated_at`

// BudgetLineRepo implementación del puerto BudgetLineRepository sobre
// PostgreSQL. El índice único (budget_id, partida_number) respalda la
// numeración max+1 frente a altas concurrentes.
type BudgetLineRepo struct {
	q Querier
}

// NewBudgetLineRepository construye el adaptador de persistencia para partidas.
func NewBudgetLineRepository(q Querier) *BudgetLineRepo {
	return &BudgetLineRepo{q: q}
}

// Create persiste una partida nueva.
func (r *BudgetLineRepo) Create(l *entity.BudgetLine) error {
	query := `
		INSERT INTO budget_line_items (` + lineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(context.Background(), query,
		l.ID, l.BudgetID, l.ConceptID, l.PartidaNumber, l.CustomCode, l.Unit, l.Quantity,
		l.UnitPrice, l.YieldFactor, l.DiscountPercent, l.IsOptional, l.Group,
		l.DisplayOrder, l.Status, l.Notes, l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert budget line: %w", err)
	}
	return nil
}

// GetByID obtiene una partida por ID.
func (r *BudgetLineRepo) GetByID(id string) (*entity.BudgetLine, error) {
	query := `SELECT ` + lineColumns + ` FROM budget_line_items WHERE id = $1`
	l, err := scanLine(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return l, nil
}

// Update actualiza una partida existente (PartidaNumber no cambia).
func (r *BudgetLineRepo) Update(l *entity.BudgetLine) error {
	query := `
		UPDATE budget_line_items
		SET custom_code = $2, unit = $3, quantity = $4, unit_price = $5,
		    yield_factor = $6, discount_percent = $7, is_optional = $8,
		    group_name = $9, status = $10, notes = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		l.ID, l.CustomCode, l.Unit, l.Quantity, l.UnitPrice,
		l.YieldFactor, l.DiscountPercent, l.IsOptional,
		l.Group, l.Status, l.Notes, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update budget line: %w", err)
	}
	return nil
}

// Delete borra físicamente una partida.
func (r *BudgetLineRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM budget_line_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete budget line: %w", err)
	}
	return nil
}

// ListByBudget devuelve todas las partidas del presupuesto ordenadas por
// DisplayOrder.
func (r *BudgetLineRepo) ListByBudget(budgetID string) ([]*entity.BudgetLine, error) {
	query := `
		SELECT ` + lineColumns + `
		FROM budget_line_items
		WHERE budget_id = $1
		ORDER BY display_order`
	rows, err := r.q.Query(context.Background(), query, budgetID)
	if err != nil {
		return nil, fmt.Errorf("list budget lines: %w", err)
	}
	defer rows.Close()
	var list []*entity.BudgetLine
	for rows.Next() {
		l, err := scanLine(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

// MaxPartidaNumber devuelve el mayor número de partida del presupuesto, 0 si
// está vacío. Los números de partidas borradas no se reciclan porque el
// máximo histórico solo crece mientras exista la partida mayor.
func (r *BudgetLineRepo) MaxPartidaNumber(budgetID string) (int, error) {
	var max int
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(MAX(partida_number), 0) FROM budget_line_items WHERE budget_id = $1`,
		budgetID,
	).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("max partida number: %w", err)
	}
	return max, nil
}

// MaxDisplayOrder devuelve el mayor orden de despliegue del presupuesto, 0 si
// está vacío.
func (r *BudgetLineRepo) MaxDisplayOrder(budgetID string) (int, error) {
	var max int
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(MAX(display_order), 0) FROM budget_line_items WHERE budget_id = $1`,
		budgetID,
	).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("max display order: %w", err)
	}
	return max, nil
}

// ExistsPartidaNumber indica si el número ya está tomado en el presupuesto.
func (r *BudgetLineRepo) ExistsPartidaNumber(budgetID string, number int) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM budget_line_items WHERE budget_id = $1 AND partida_number = $2)`,
		budgetID, number,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check partida number: %w", err)
	}
	return exists, nil
}

// UpdateDisplayOrder fija el orden de despliegue de una partida.
func (r *BudgetLineRepo) UpdateDisplayOrder(lineID string, order int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE budget_line_items SET display_order = $2, updated_at = NOW() WHERE id = $1`,
		lineID, order,
	)
	if err != nil {
		return fmt.Errorf("update display order: %w", err)
	}
	return nil
}

func scanLine(row pgx.Row) (*entity.BudgetLine, error) {
	var l entity.BudgetLine
	err := row.Scan(&l.ID, &l.BudgetID, &l.ConceptID, &l.PartidaNumber, &l.CustomCode,
		&l.Unit, &l.Quantity, &l.UnitPrice, &l.YieldFactor, &l.DiscountPercent,
		&l.IsOptional, &l.Group, &l.DisplayOrder, &l.Status, &l.Notes,
		&l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan budget line: %w", err)
	}
	return &l, nil
}

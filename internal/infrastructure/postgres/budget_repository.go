package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jcaicedo/catalogo-obras-api/internal/domain/entity"
	"github.com/jcaicedo/catalogo-obras-api/internal/domain/repository"
)

var _ repository.BudgetRepository = (*BudgetRepo)(nil)

// BudgetRepo implementación del puerto BudgetRepository sobre PostgreSQL.
type BudgetRepo struct {
	q Querier
}

// NewBudgetRepository construye el adaptador de persistencia para presupuestos.
func NewBudgetRepository(q Querier) *BudgetRepo {
	return &BudgetRepo{q: q}
}

// Create persiste un presupuesto nuevo.
func (r *BudgetRepo) Create(b *entity.Budget) error {
	query := `
		INSERT INTO budgets (id, name, client_id, region, status, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		b.ID, b.Name, b.ClientID, b.Region, b.Status, b.CreatedBy, b.CreatedAt, b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert budget: %w", err)
	}
	return nil
}

// GetByID obtiene un presupuesto por ID.
func (r *BudgetRepo) GetByID(id string) (*entity.Budget, error) {
	query := `
		SELECT id, name, client_id, region, status, created_by, created_at, updated_at
		FROM budgets WHERE id = $1`
	var b entity.Budget
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&b.ID, &b.Name, &b.ClientID, &b.Region, &b.Status, &b.CreatedBy, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get budget: %w", err)
	}
	return &b, nil
}

// Update actualiza un presupuesto existente.
func (r *BudgetRepo) Update(b *entity.Budget) error {
	query := `
		UPDATE budgets
		SET name = $2, client_id = $3, region = $4, status = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		b.ID, b.Name, b.ClientID, b.Region, b.Status, b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update budget: %w", err)
	}
	return nil
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jcaicedo/catalogo-obras-api/internal/application/budgets"
	"github.com/jcaicedo/catalogo-obras-api/internal/application/catalogs"
	"github.com/jcaicedo/catalogo-obras-api/internal/domain/repository"
)

// Ensure TxRunner implements catalogs.TxRunner and budgets.TxRunner.
var _ catalogs.TxRunner = (*TxRunner)(nil)
var _ budgets.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunCatalog inicia una transacción, ejecuta fn con repos de catálogo atados
// a la tx y hace Commit o Rollback.
func (r *TxRunner) RunCatalog(ctx context.Context, fn func(
	catalogRepo repository.CatalogRepository,
	entryRepo repository.CatalogEntryRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	catalogRepo := NewCatalogRepository(tx)
	entryRepo := NewCatalogEntryRepository(tx)

	if err := fn(catalogRepo, entryRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunBudget inicia una transacción con repos de presupuesto y partidas (alta
// numerada y reordenamiento).
func (r *TxRunner) RunBudget(ctx context.Context, fn func(
	budgetRepo repository.BudgetRepository,
	lineRepo repository.BudgetLineRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	budgetRepo := NewBudgetRepository(tx)
	lineRepo := NewBudgetLineRepository(tx)

	if err := fn(budgetRepo, lineRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

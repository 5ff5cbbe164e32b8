package budgets

import (
	"context"
	"time"

	"github.com/jcaicedo/catalogo-obras-api/internal/application/dto"
	"github.com/jcaicedo/catalogo-obras-api/internal/domain/repository"
)

// TxRunner ejecuta una función con repositorios de presupuesto atados a una
// misma transacción. El alta de partidas (derivación max+1) y el
// reordenamiento dependen de esto para no dejar numeraciones a medias.
type TxRunner interface {
	RunBudget(ctx context.Context, fn func(
		budgetRepo repository.BudgetRepository,
		lineRepo repository.BudgetLineRepository,
	) error) error
}

// PriceResolver puerto hacia la resolución de precios; AddFromConcept lo usa
// para sugerir el precio unitario de la partida nueva.
type PriceResolver interface {
	FindCurrentPrice(conceptID, region string, asOf time.Time) (*dto.ResolvePriceResponse, error)
}

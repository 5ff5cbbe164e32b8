package repository

import "github.com/jcaicedo/catalogo-obras-api/internal/domain/entity"

// BudgetRepository define el puerto de persistencia para Budget.
type BudgetRepository interface {
	Create(budget *entity.Budget) error
	GetByID(id string) (*entity.Budget, error)
	Update(budget *entity.Budget) error
}

// BudgetLineRepository define el puerto de persistencia para partidas.
type BudgetLineRepository interface {
	Create(line *entity.BudgetLine) error
	GetByID(id string) (*entity.BudgetLine, error)
	Update(line *entity.BudgetLine) error
	// Delete borra la fila (borrado físico; el candado de edición lo aplica el
	// caso de uso).
	Delete(id string) error
	// ListByBudget devuelve todas las partidas del presupuesto ordenadas por
	// DisplayOrder.
	ListByBudget(budgetID string) ([]*entity.BudgetLine, error)
	// MaxPartidaNumber devuelve el mayor número de partida del presupuesto
	// (0 si no hay partidas).
	MaxPartidaNumber(budgetID string) (int, error)
	// MaxDisplayOrder devuelve el mayor orden de despliegue del presupuesto
	// (0 si no hay partidas).
	MaxDisplayOrder(budgetID string) (int, error)
	// ExistsPartidaNumber indica si el número ya está tomado en el presupuesto.
	ExistsPartidaNumber(budgetID string, number int) (bool, error)
	// UpdateDisplayOrder fija el orden de una partida. Debe ejecutarse dentro
	// de una transacción cuando forma parte de un reordenamiento.
	UpdateDisplayOrder(lineID string, order int) error
}

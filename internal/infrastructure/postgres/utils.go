package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation detecta el SQLSTATE 23505 (unique_violation). Los índices
// ux_concepts_active_code, ux_entries_open_window y ux_lines_budget_partida
// respaldan las reglas de unicidad bajo concurrencia; cada repositorio traduce
// la violación a su error de dominio (ErrDuplicateCode, ErrDuplicate).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Package budget contiene las reglas de dominio de presupuestos: el candado
// de edición y el cálculo puro de importes de partida.
package budget

// Status estado del ciclo de vida de un presupuesto.
type Status string

const (
	StatusDraft    Status = "borrador"
	StatusInReview Status = "en_revision"
	StatusApproved Status = "aprobado"
	StatusRejected Status = "rechazado"
	StatusClosed   Status = "cerrado"
)

// IsEditable indica si el presupuesto admite mutaciones de partidas (alta,
// edición, borrado, reordenamiento). Una vez aprobado o cerrado es inmutable.
func (s Status) IsEditable() bool {
	return s == StatusDraft || s == StatusInReview
}

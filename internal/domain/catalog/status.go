// Package catalog define la máquina de estados del ciclo de vida de un
// catálogo de precios. Las reglas viven en una tabla explícita de
// transiciones en lugar de comparaciones de strings dispersas.
package catalog

// Status estado del ciclo de vida de un catálogo.
type Status string

const (
	StatusDraft     Status = "borrador"
	StatusActive    Status = "activo"
	StatusSuspended Status = "suspendido"
	StatusObsolete  Status = "obsoleto"
)

// transitions tabla de transiciones permitidas. Obsoleto es terminal;
// activo ↔ suspendido es reversible.
var transitions = map[Status][]Status{
	StatusDraft:     {StatusActive},
	StatusActive:    {StatusSuspended, StatusObsolete},
	StatusSuspended: {StatusActive, StatusObsolete},
	StatusObsolete:  {},
}

// Valid indica si el valor corresponde a un estado conocido.
func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// CanTransition indica si la transición s → target está permitida.
func (s Status) CanTransition(target Status) bool {
	for _, t := range transitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// CanEdit indica si el catálogo admite ediciones estructurales (cabecera,
// altas de entradas). Suspendido se permite para corrección administrativa.
func (s Status) CanEdit() bool {
	return s == StatusDraft || s == StatusSuspended
}

// CanApplyFactor indica si el catálogo admite la actualización masiva de
// precios por factor. A diferencia de las ediciones estructurales, la
// política la permite también sobre catálogos activos.
func (s Status) CanApplyFactor() bool {
	return s == StatusDraft || s == StatusActive
}

// CanDelete indica si el catálogo puede eliminarse. Solo en borrador.
func (s Status) CanDelete() bool {
	return s == StatusDraft
}

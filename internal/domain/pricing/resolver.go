// Package pricing contiene la regla de desempate de la resolución de precios:
// dado un conjunto de candidatos vigentes, elegir uno solo de forma
// determinista. La búsqueda de candidatos es responsabilidad de los
// repositorios; aquí solo se decide.
package pricing

import (
	"time"

	"github.com/shopspring/decimal"
)

// Source origen del precio resuelto, para que el caller pueda mostrar la
// procedencia de la sugerencia.
type Source string

const (
	SourceCatalogEntry    Source = "catalog_entry"
	SourceStandalonePrice Source = "standalone_price"
	SourceReferencePrice  Source = "reference_price"
)

// RegionGeneral región comodín: sus catálogos y precios aplican a cualquier
// región cuando no hay uno específico.
const RegionGeneral = "General"

// Candidate es un precio vigente candidato a resolver la consulta. ValidFrom
// es el inicio de la ventana de la entrada o precio; ApprovedAt el de
// aprobación del catálogo (o del precio unitario) para el segundo desempate.
type Candidate struct {
	RefID      string // id de la entrada de catálogo o del precio unitario
	CatalogID  string // vacío para precios unitarios independientes
	UnitPrice  decimal.Decimal
	ValidFrom  time.Time
	ApprovedAt *time.Time
}

// PickBest elige el candidato ganador: primero el ValidFrom más reciente y,
// en empate, el ApprovedAt más reciente (nil cuenta como el más antiguo).
// Devuelve false si no hay candidatos.
func PickBest(candidates []Candidate) (Candidate, bool) {
	if len(candidates) == 0 {
		return Candidate{}, false
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if beats(c, best) {
			best = c
		}
	}
	return best, true
}

func beats(a, b Candidate) bool {
	if !a.ValidFrom.Equal(b.ValidFrom) {
		return a.ValidFrom.After(b.ValidFrom)
	}
	return approvedAfter(a.ApprovedAt, b.ApprovedAt)
}

func approvedAfter(a, b *time.Time) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	return a.After(*b)
}

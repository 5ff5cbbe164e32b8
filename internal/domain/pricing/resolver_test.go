package pricing_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcaicedo/catalogo-obras-api/internal/domain/pricing"
)

func day(d int) time.Time {
	return time.Date(2026, time.March, d, 0, 0, 0, 0, time.UTC)
}

func ptr(t time.Time) *time.Time { return &t }

func TestPickBest_SinCandidatos(t *testing.T) {
	_, ok := pricing.PickBest(nil)
	assert.False(t, ok, "sin candidatos no hay ganador")

	_, ok = pricing.PickBest([]pricing.Candidate{})
	assert.False(t, ok)
}

func TestPickBest_UnSoloCandidato(t *testing.T) {
	c := pricing.Candidate{RefID: "e1", UnitPrice: decimal.NewFromInt(100), ValidFrom: day(1)}
	best, ok := pricing.PickBest([]pricing.Candidate{c})

	require.True(t, ok)
	assert.Equal(t, "e1", best.RefID)
}

func TestPickBest_GanaValidFromMasReciente(t *testing.T) {
	candidates := []pricing.Candidate{
		{RefID: "viejo", ValidFrom: day(1)},
		{RefID: "nuevo", ValidFrom: day(10)},
		{RefID: "medio", ValidFrom: day(5)},
	}
	best, ok := pricing.PickBest(candidates)

	require.True(t, ok)
	assert.Equal(t, "nuevo", best.RefID, "gana la ventana que empezó más tarde")
}

func TestPickBest_EmpateDesempataPorApprovedAt(t *testing.T) {
	candidates := []pricing.Candidate{
		{RefID: "aprobado-antes", ValidFrom: day(1), ApprovedAt: ptr(day(2))},
		{RefID: "aprobado-despues", ValidFrom: day(1), ApprovedAt: ptr(day(8))},
	}
	best, ok := pricing.PickBest(candidates)

	require.True(t, ok)
	assert.Equal(t, "aprobado-despues", best.RefID,
		"con ValidFrom empatado gana la aprobación más reciente")
}

func TestPickBest_ApprovedAtNilCuentaComoElMasAntiguo(t *testing.T) {
	candidates := []pricing.Candidate{
		{RefID: "sin-aprobacion", ValidFrom: day(1), ApprovedAt: nil},
		{RefID: "con-aprobacion", ValidFrom: day(1), ApprovedAt: ptr(day(3))},
	}
	best, ok := pricing.PickBest(candidates)

	require.True(t, ok)
	assert.Equal(t, "con-aprobacion", best.RefID)

	// En orden inverso el resultado debe ser el mismo (determinismo).
	best, ok = pricing.PickBest([]pricing.Candidate{candidates[1], candidates[0]})
	require.True(t, ok)
	assert.Equal(t, "con-aprobacion", best.RefID)
}

func TestPickBest_EmpateTotalConservaElPrimero(t *testing.T) {
	candidates := []pricing.Candidate{
		{RefID: "primero", ValidFrom: day(1), ApprovedAt: ptr(day(2))},
		{RefID: "segundo", ValidFrom: day(1), ApprovedAt: ptr(day(2))},
	}
	best, ok := pricing.PickBest(candidates)

	require.True(t, ok)
	assert.Equal(t, "primero", best.RefID, "empate total no debe reordenar")
}

func TestPickBest_ValidFromDominaSobreApprovedAt(t *testing.T) {
	candidates := []pricing.Candidate{
		{RefID: "ventana-vieja", ValidFrom: day(1), ApprovedAt: ptr(day(20))},
		{RefID: "ventana-nueva", ValidFrom: day(10), ApprovedAt: nil},
	}
	best, ok := pricing.PickBest(candidates)

	require.True(t, ok)
	assert.Equal(t, "ventana-nueva", best.RefID,
		"ApprovedAt solo desempata, no supera a ValidFrom")
}

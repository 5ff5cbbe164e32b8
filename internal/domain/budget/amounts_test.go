package budget_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jcaicedo/catalogo-obras-api/internal/domain/budget"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeLineAmounts_SinDescuento(t *testing.T) {
	// 10 m3 a 250.50 con rendimiento 1
	a := budget.ComputeLineAmounts(d("10"), d("250.50"), d("1"), d("0"))

	assert.True(t, d("2505").Equal(a.Base), "base = cantidad * precio, got %s", a.Base)
	assert.True(t, a.Discount.IsZero(), "sin descuento el importe descontado es cero")
	assert.True(t, d("2505").Equal(a.Net))
}

func TestComputeLineAmounts_ConRendimiento(t *testing.T) {
	// El rendimiento escala la base: 8 * 100 * 1.15 = 920
	a := budget.ComputeLineAmounts(d("8"), d("100"), d("1.15"), d("0"))

	assert.True(t, d("920").Equal(a.Base), "got %s", a.Base)
	assert.True(t, d("920").Equal(a.Net))
}

func TestComputeLineAmounts_ConDescuento(t *testing.T) {
	// base 1000, descuento 12.5% → neto 875
	a := budget.ComputeLineAmounts(d("10"), d("100"), d("1"), d("12.5"))

	assert.True(t, d("1000").Equal(a.Base))
	assert.True(t, d("125").Equal(a.Discount), "got %s", a.Discount)
	assert.True(t, d("875").Equal(a.Net), "got %s", a.Net)
}

func TestComputeLineAmounts_DescuentoTotal(t *testing.T) {
	a := budget.ComputeLineAmounts(d("3"), d("99.99"), d("1"), d("100"))

	assert.True(t, a.Net.IsZero(), "descuento del 100%% deja neto cero, got %s", a.Net)
	assert.True(t, a.Base.Equal(a.Discount))
}

func TestComputeLineAmounts_CantidadCero(t *testing.T) {
	a := budget.ComputeLineAmounts(decimal.Zero, d("500"), d("1"), d("10"))

	assert.True(t, a.Base.IsZero())
	assert.True(t, a.Discount.IsZero())
	assert.True(t, a.Net.IsZero())
}

func TestComputeLineAmounts_SinPerdidaDePrecision(t *testing.T) {
	// 3 * 0.1 debe ser exactamente 0.3, no 0.30000000000000004
	a := budget.ComputeLineAmounts(d("3"), d("0.1"), d("1"), d("0"))

	assert.True(t, d("0.3").Equal(a.Base), "decimal no debe perder precisión, got %s", a.Base)
}

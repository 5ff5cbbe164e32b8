package budget

import "github.com/shopspring/decimal"

// LineAmounts importes calculados de una partida.
type LineAmounts struct {
	Base     decimal.Decimal // cantidad * precio unitario * rendimiento
	Discount decimal.Decimal // base * descuento / 100
	Net      decimal.Decimal // base - descuento
}

var hundred = decimal.NewFromInt(100)

// ComputeLineAmounts calcula los importes de una partida (función pura, sin
// efectos). La usan tanto los listados como los totales de presupuesto.
func ComputeLineAmounts(quantity, unitPrice, yieldFactor, discountPercent decimal.Decimal) LineAmounts {
	base := quantity.Mul(unitPrice).Mul(yieldFactor)
	discount := base.Mul(discountPercent).Div(hundred)
	return LineAmounts{
		Base:     base,
		Discount: discount,
		Net:      base.Sub(discount),
	}
}

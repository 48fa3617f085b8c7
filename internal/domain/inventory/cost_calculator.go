package inventory

import "github.com/shopspring/decimal"

// AverageCost devuelve la media aritmética simple (no ponderada por cantidad) de los costos unitarios.
// Sin costos devuelve fallback (el precio sugerido del producto).
func AverageCost(unitCosts []decimal.Decimal, fallback decimal.Decimal) decimal.Decimal {
	if len(unitCosts) == 0 {
		return fallback
	}
	return decimal.Sum(decimal.Zero, unitCosts...).Div(decimal.NewFromInt(int64(len(unitCosts))))
}

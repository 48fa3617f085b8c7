// Package money formatea valores en reales para reportes y exportaciones.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// BRL formatea v como "R$ 1.234,56".
func BRL(v decimal.Decimal) string {
	return printer.Sprintf("R$ %.2f", v.Round(2).InexactFloat64())
}

// Quantity formatea una cantidad con dos decimales y separadores pt-BR.
func Quantity(v decimal.Decimal) string {
	return printer.Sprintf("%.2f", v.Round(2).InexactFloat64())
}

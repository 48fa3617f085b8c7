package entity

import "github.com/shopspring/decimal"

// Product representa un material del catálogo. Code es único.
// No existe actualización: un producto solo se registra o se elimina.
type Product struct {
	Code           string
	Description    string
	Unit           string
	SuggestedPrice decimal.Decimal // precio sugerido de venta, respaldo del costo medio
	MinimumStock   decimal.Decimal
	InitialStock   decimal.Decimal
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry representa una compra (entrada de mercadería).
// ProductCode no es clave foránea; Description y Unit son copias al momento del registro.
// TotalCost se calcula una sola vez al insertar (Quantity * UnitCost) y nunca se recalcula.
type Entry struct {
	ID            int64
	Date          time.Time
	ProductCode   string
	Description   string
	Unit          string
	Quantity      decimal.Decimal
	Supplier      string
	UnitCost      decimal.Decimal
	TotalCost     decimal.Decimal
	InvoiceRef    string // NoInvoice cuando no hay nota fiscal
	PaymentMethod string
	Notes         string
	RecordedBy    string
	RecordedAt    time.Time
}

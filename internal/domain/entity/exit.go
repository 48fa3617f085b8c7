package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Exit representa una venta (salida de mercadería). Mismo formato que Entry,
// con cliente y precio de venta en lugar de proveedor y costo.
type Exit struct {
	ID            int64
	Date          time.Time
	ProductCode   string
	Description   string
	Unit          string
	Quantity      decimal.Decimal
	Customer      string
	UnitPrice     decimal.Decimal
	TotalSale     decimal.Decimal
	InvoiceRef    string
	PaymentMethod string
	Notes         string
	RecordedBy    string
	RecordedAt    time.Time
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateEntryRequest entrada para registrar una compra.
// Description y Unit se toman del producto cuando vienen vacíos.
// HasInvoice=false o InvoiceRef vacío registran "SEM NOTA".
type CreateEntryRequest struct {
	Date          string          `json:"date"` // YYYY-MM-DD; vacío = hoy
	ProductCode   string          `json:"product_code" validate:"required"`
	Description   string          `json:"description"`
	Unit          string          `json:"unit"`
	Quantity      decimal.Decimal `json:"quantity"`
	Supplier      string          `json:"supplier"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
	HasInvoice    *bool           `json:"has_invoice"`
	InvoiceRef    string          `json:"invoice_ref"`
	PaymentMethod string          `json:"payment_method" validate:"required"`
	Notes         string          `json:"notes"`
}

// EntryResponse salida de una compra.
type EntryResponse struct {
	ID            int64           `json:"id"`
	Date          string          `json:"date"`
	ProductCode   string          `json:"product_code"`
	Description   string          `json:"description"`
	Unit          string          `json:"unit"`
	Quantity      decimal.Decimal `json:"quantity"`
	Supplier      string          `json:"supplier"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	InvoiceRef    string          `json:"invoice_ref"`
	PaymentMethod string          `json:"payment_method"`
	Notes         string          `json:"notes"`
	RecordedBy    string          `json:"recorded_by"`
	RecordedAt    time.Time       `json:"recorded_at"`
}

// CreateExitRequest entrada para registrar una venta.
type CreateExitRequest struct {
	Date          string          `json:"date"`
	ProductCode   string          `json:"product_code" validate:"required"`
	Description   string          `json:"description"`
	Unit          string          `json:"unit"`
	Quantity      decimal.Decimal `json:"quantity"`
	Customer      string          `json:"customer"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	HasInvoice    *bool           `json:"has_invoice"`
	InvoiceRef    string          `json:"invoice_ref"`
	PaymentMethod string          `json:"payment_method" validate:"required"`
	Notes         string          `json:"notes"`
}

// ExitResponse salida de una venta.
type ExitResponse struct {
	ID            int64           `json:"id"`
	Date          string          `json:"date"`
	ProductCode   string          `json:"product_code"`
	Description   string          `json:"description"`
	Unit          string          `json:"unit"`
	Quantity      decimal.Decimal `json:"quantity"`
	Customer      string          `json:"customer"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	TotalSale     decimal.Decimal `json:"total_sale"`
	InvoiceRef    string          `json:"invoice_ref"`
	PaymentMethod string          `json:"payment_method"`
	Notes         string          `json:"notes"`
	RecordedBy    string          `json:"recorded_by"`
	RecordedAt    time.Time       `json:"recorded_at"`
}

// CreateExpenseRequest entrada para registrar un gasto.
type CreateExpenseRequest struct {
	Date          string          `json:"date"`
	Category      string          `json:"category" validate:"required"`
	Description   string          `json:"description"`
	Beneficiary   string          `json:"beneficiary"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method" validate:"required"`
	Notes         string          `json:"notes"`
}

// ExpenseResponse salida de un gasto.
type ExpenseResponse struct {
	ID            int64           `json:"id"`
	Date          string          `json:"date"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	Beneficiary   string          `json:"beneficiary"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	Notes         string          `json:"notes"`
	RecordedBy    string          `json:"recorded_by"`
	RecordedAt    time.Time       `json:"recorded_at"`
}

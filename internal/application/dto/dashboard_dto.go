package dto

import "github.com/shopspring/decimal"

// StockRowResponse fila de la valorización de stock.
type StockRowResponse struct {
	Code           string          `json:"code"`
	Description    string          `json:"description"`
	Unit           string          `json:"unit"`
	InitialStock   decimal.Decimal `json:"initial_stock"`
	EntryQty       decimal.Decimal `json:"entry_qty"`
	ExitQty        decimal.Decimal `json:"exit_qty"`
	CurrentStock   decimal.Decimal `json:"current_stock"`
	MinimumStock   decimal.Decimal `json:"minimum_stock"`
	AverageCost    decimal.Decimal `json:"average_cost"`
	StockValue     decimal.Decimal `json:"stock_value"`
	SuggestedPrice decimal.Decimal `json:"suggested_price"`
	Negative       bool            `json:"negative,omitempty"`
	BelowMinimum   bool            `json:"below_minimum"`
}

// StockListResponse tabla completa más su valor total.
type StockListResponse struct {
	Items      []StockRowResponse `json:"items"`
	TotalValue decimal.Decimal    `json:"total_value"`
}

// AlertResponse producto en o por debajo del mínimo.
type AlertResponse struct {
	Code         string          `json:"code"`
	Description  string          `json:"description"`
	Unit         string          `json:"unit"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	MinimumStock decimal.Decimal `json:"minimum_stock"`
	Message      string          `json:"message"`
}

// InvoiceSplitDTO montos con y sin nota fiscal.
type InvoiceSplitDTO struct {
	WithInvoice    decimal.Decimal `json:"with_invoice"`
	WithoutInvoice decimal.Decimal `json:"without_invoice"`
}

// PeriodDTO rango inclusivo en YYYY-MM-DD.
type PeriodDTO struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	User        string          `json:"user"`
	DisplayName string          `json:"display_name"`
	Period      PeriodDTO       `json:"period"`
	Empty       bool            `json:"empty"`
	Purchases   decimal.Decimal `json:"purchases"`
	Sales       decimal.Decimal `json:"sales"`
	Expenses    decimal.Decimal `json:"expenses"`
	GrossProfit decimal.Decimal `json:"gross_profit"`
	NetProfit   decimal.Decimal `json:"net_profit"`

	PurchaseSplit InvoiceSplitDTO `json:"purchase_split"`
	SalesSplit    InvoiceSplitDTO `json:"sales_split"`

	EntryCount   int `json:"entry_count"`
	ExitCount    int `json:"exit_count"`
	ExpenseCount int `json:"expense_count"`

	StockValue decimal.Decimal    `json:"stock_value"`
	Alerts     []AlertResponse    `json:"alerts"`
	InStock    []StockRowResponse `json:"in_stock"` // datos del gráfico de stock
}

// ProductPurchaseDTO compras de un producto en el período, separadas por nota fiscal.
type ProductPurchaseDTO struct {
	Code        string          `json:"code"`
	Description string          `json:"description"`
	Unit        string          `json:"unit"`
	HasInvoice  bool            `json:"has_invoice"`
	Quantity    decimal.Decimal `json:"quantity"`
	Value       decimal.Decimal `json:"value"`
}

// InvoiceReportDTO respuesta de GET /api/reports/invoices.
type InvoiceReportDTO struct {
	Period        PeriodDTO            `json:"period"`
	PurchaseSplit InvoiceSplitDTO      `json:"purchase_split"`
	SalesSplit    InvoiceSplitDTO      `json:"sales_split"`
	Purchases     []ProductPurchaseDTO `json:"purchases"`
}

// TopProductDTO ingresos acumulados por producto.
type TopProductDTO struct {
	Description string          `json:"description"`
	Revenue     decimal.Decimal `json:"revenue"`
}

package dto

import (
	"github.com/mluiza/controle-materiais/internal/domain/entity"
	"github.com/mluiza/controle-materiais/internal/domain/inventory"
)

func FromProduct(p entity.Product) ProductResponse {
	return ProductResponse{
		Code:           p.Code,
		Description:    p.Description,
		Unit:           p.Unit,
		SuggestedPrice: p.SuggestedPrice,
		MinimumStock:   p.MinimumStock,
		InitialStock:   p.InitialStock,
	}
}

func FromEntry(e entity.Entry) EntryResponse {
	return EntryResponse{
		ID: e.ID, Date: e.Date.Format(DateLayout), ProductCode: e.ProductCode,
		Description: e.Description, Unit: e.Unit, Quantity: e.Quantity, Supplier: e.Supplier,
		UnitCost: e.UnitCost, TotalCost: e.TotalCost, InvoiceRef: e.InvoiceRef,
		PaymentMethod: e.PaymentMethod, Notes: e.Notes, RecordedBy: e.RecordedBy, RecordedAt: e.RecordedAt,
	}
}

func FromExit(x entity.Exit) ExitResponse {
	return ExitResponse{
		ID: x.ID, Date: x.Date.Format(DateLayout), ProductCode: x.ProductCode,
		Description: x.Description, Unit: x.Unit, Quantity: x.Quantity, Customer: x.Customer,
		UnitPrice: x.UnitPrice, TotalSale: x.TotalSale, InvoiceRef: x.InvoiceRef,
		PaymentMethod: x.PaymentMethod, Notes: x.Notes, RecordedBy: x.RecordedBy, RecordedAt: x.RecordedAt,
	}
}

func FromExpense(g entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID: g.ID, Date: g.Date.Format(DateLayout), Category: g.Category, Description: g.Description,
		Beneficiary: g.Beneficiary, Amount: g.Amount, PaymentMethod: g.PaymentMethod,
		Notes: g.Notes, RecordedBy: g.RecordedBy, RecordedAt: g.RecordedAt,
	}
}

// FromStockRow convierte una fila del motor de valoración.
func FromStockRow(r inventory.StockRow) StockRowResponse {
	return StockRowResponse{
		Code:           r.Code,
		Description:    r.Description,
		Unit:           r.Unit,
		InitialStock:   r.InitialStock,
		EntryQty:       r.EntryQty,
		ExitQty:        r.ExitQty,
		CurrentStock:   r.CurrentStock,
		MinimumStock:   r.MinimumStock,
		AverageCost:    r.AverageCost,
		StockValue:     r.StockValue,
		SuggestedPrice: r.SuggestedPrice,
		Negative:       r.Negative(),
		BelowMinimum:   r.BelowMinimum(),
	}
}

func FromStockRows(rows []inventory.StockRow) []StockRowResponse {
	out := make([]StockRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromStockRow(r))
	}
	return out
}

func FromAlerts(rows []inventory.StockRow) []AlertResponse {
	out := make([]AlertResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, AlertResponse{
			Code:         r.Code,
			Description:  r.Description,
			Unit:         r.Unit,
			CurrentStock: r.CurrentStock,
			MinimumStock: r.MinimumStock,
			Message:      r.AlertMessage(),
		})
	}
	return out
}

func FromSplit(s inventory.InvoiceSplit) InvoiceSplitDTO {
	return InvoiceSplitDTO{WithInvoice: s.WithInvoice, WithoutInvoice: s.WithoutInvoice}
}

func FromPeriod(p inventory.Period) PeriodDTO {
	return PeriodDTO{Start: p.Start.Format(DateLayout), End: p.End.Format(DateLayout)}
}

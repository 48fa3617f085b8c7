package inventory

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mluiza/controle-materiais/internal/domain/entity"
)

// Period rango de fechas inclusivo en días calendario.
type Period struct {
	Start time.Time
	End   time.Time
}

// NewPeriod normaliza ambos extremos al día calendario.
func NewPeriod(start, end time.Time) Period {
	return Period{Start: DateOnly(start), End: DateOnly(end)}
}

// MonthToDate período desde el día 1 del mes de now hasta now.
func MonthToDate(now time.Time) Period {
	return NewPeriod(time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), now)
}

// DateOnly descarta la hora conservando año, mes y día tal como están en t.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Empty es verdadero cuando Start > End: la intersección con cualquier fecha es vacía.
func (p Period) Empty() bool { return p.Start.After(p.End) }

// Contains compara solo el día calendario de t.
func (p Period) Contains(t time.Time) bool {
	if p.Empty() {
		return false
	}
	d := DateOnly(t)
	return !d.Before(p.Start) && !d.After(p.End)
}

// InvoiceSplit totales con y sin nota fiscal.
type InvoiceSplit struct {
	WithInvoice    decimal.Decimal
	WithoutInvoice decimal.Decimal
}

// Total suma ambas particiones.
func (s InvoiceSplit) Total() decimal.Decimal { return s.WithInvoice.Add(s.WithoutInvoice) }

func (s *InvoiceSplit) add(ref string, amount decimal.Decimal) {
	if HasInvoice(ref) {
		s.WithInvoice = s.WithInvoice.Add(amount)
		return
	}
	s.WithoutInvoice = s.WithoutInvoice.Add(amount)
}

// PeriodSummary totales financieros de un período.
type PeriodSummary struct {
	Period        Period
	Purchases     decimal.Decimal
	Sales         decimal.Decimal
	Expenses      decimal.Decimal
	GrossProfit   decimal.Decimal // ventas − compras
	NetProfit     decimal.Decimal // bruto − gastos
	PurchaseSplit InvoiceSplit
	SalesSplit    InvoiceSplit
	EntryCount    int
	ExitCount     int
	ExpenseCount  int
}

// Empty indica que ningún registro cayó dentro del período.
func (s PeriodSummary) Empty() bool {
	return s.EntryCount == 0 && s.ExitCount == 0 && s.ExpenseCount == 0
}

// HasInvoice es verdadero si ref no está vacía y no es el centinela "sem nota" (sin distinguir mayúsculas).
func HasInvoice(ref string) bool {
	ref = strings.TrimSpace(ref)
	return ref != "" && !strings.EqualFold(ref, entity.NoInvoice)
}

// Aggregate filtra entradas, salidas y gastos por período y calcula totales y particiones por nota fiscal.
// Listas vacías o período vacío (Start > End) producen totales en cero.
func Aggregate(p Period, entries []entity.Entry, exits []entity.Exit, expenses []entity.Expense) PeriodSummary {
	s := PeriodSummary{
		Period:        p,
		Purchases:     decimal.Zero,
		Sales:         decimal.Zero,
		Expenses:      decimal.Zero,
		PurchaseSplit: InvoiceSplit{WithInvoice: decimal.Zero, WithoutInvoice: decimal.Zero},
		SalesSplit:    InvoiceSplit{WithInvoice: decimal.Zero, WithoutInvoice: decimal.Zero},
	}
	if !p.Empty() {
		for _, e := range entries {
			if !p.Contains(e.Date) {
				continue
			}
			s.EntryCount++
			s.Purchases = s.Purchases.Add(e.TotalCost)
			s.PurchaseSplit.add(e.InvoiceRef, e.TotalCost)
		}
		for _, x := range exits {
			if !p.Contains(x.Date) {
				continue
			}
			s.ExitCount++
			s.Sales = s.Sales.Add(x.TotalSale)
			s.SalesSplit.add(x.InvoiceRef, x.TotalSale)
		}
		for _, g := range expenses {
			if !p.Contains(g.Date) {
				continue
			}
			s.ExpenseCount++
			s.Expenses = s.Expenses.Add(g.Amount)
		}
	}
	s.GrossProfit = s.Sales.Sub(s.Purchases)
	s.NetProfit = s.GrossProfit.Sub(s.Expenses)
	return s
}

// ProductPurchaseRow compras de un producto en el período, agrupadas por condición de nota fiscal.
type ProductPurchaseRow struct {
	Code        string
	Description string
	Unit        string
	HasInvoice  bool
	Quantity    decimal.Decimal
	Value       decimal.Decimal
}

// PurchasesByProduct agrupa las entradas del período por (código, descripción, unidad, con/sin nota).
// Las filas se ordenan por código, descripción y luego "con nota" antes que "sin nota".
func PurchasesByProduct(p Period, entries []entity.Entry) []ProductPurchaseRow {
	type key struct {
		code, desc, unit string
		invoice          bool
	}
	acc := make(map[key]*ProductPurchaseRow)
	for _, e := range entries {
		if !p.Contains(e.Date) {
			continue
		}
		k := key{e.ProductCode, e.Description, e.Unit, HasInvoice(e.InvoiceRef)}
		row, ok := acc[k]
		if !ok {
			row = &ProductPurchaseRow{
				Code: k.code, Description: k.desc, Unit: k.unit, HasInvoice: k.invoice,
				Quantity: decimal.Zero, Value: decimal.Zero,
			}
			acc[k] = row
		}
		row.Quantity = row.Quantity.Add(e.Quantity)
		row.Value = row.Value.Add(e.TotalCost)
	}
	out := make([]ProductPurchaseRow, 0, len(acc))
	for _, r := range acc {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Code != b.Code {
			return a.Code < b.Code
		}
		if a.Description != b.Description {
			return a.Description < b.Description
		}
		if a.Unit != b.Unit {
			return a.Unit < b.Unit
		}
		return a.HasInvoice && !b.HasInvoice
	})
	return out
}

// ProductRevenueRow facturación acumulada de un producto.
type ProductRevenueRow struct {
	Description string
	Revenue     decimal.Decimal
}

// TopProducts suma el total de ventas por descripción (todo el histórico) y devuelve los limit mayores.
// limit <= 0 devuelve todos.
func TopProducts(exits []entity.Exit, limit int) []ProductRevenueRow {
	acc := make(map[string]decimal.Decimal)
	for _, x := range exits {
		acc[x.Description] = acc[x.Description].Add(x.TotalSale)
	}
	out := make([]ProductRevenueRow, 0, len(acc))
	for desc, rev := range acc {
		out = append(out, ProductRevenueRow{Description: desc, Revenue: rev})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Revenue.Equal(out[j].Revenue) {
			return out[i].Revenue.GreaterThan(out[j].Revenue)
		}
		return out[i].Description < out[j].Description
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

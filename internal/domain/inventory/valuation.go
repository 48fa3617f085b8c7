// Package inventory contiene el motor de valoración de stock, el evaluador de alertas
// y el agregador financiero por período. Son funciones puras sobre registros ya leídos:
// no fallan ni tienen efectos secundarios, y pueden llamarse de forma concurrente.
package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/mluiza/controle-materiais/internal/domain/entity"
)

// StockRow fila de la foto de inventario para un producto.
type StockRow struct {
	Code           string
	Description    string
	Unit           string
	SuggestedPrice decimal.Decimal
	MinimumStock   decimal.Decimal
	InitialStock   decimal.Decimal
	EntryQty       decimal.Decimal
	ExitQty        decimal.Decimal
	CurrentStock   decimal.Decimal
	AverageCost    decimal.Decimal
	StockValue     decimal.Decimal
}

// Negative indica stock negativo: solo ocurre si se saltó la validación de ventas.
// Se reporta como anomalía, nunca como error.
func (r StockRow) Negative() bool { return r.CurrentStock.IsNegative() }

// BelowMinimum indica stock actual <= mínimo.
func (r StockRow) BelowMinimum() bool { return r.CurrentStock.LessThanOrEqual(r.MinimumStock) }

// ComputeStock cruza productos con las cantidades de entradas y salidas.
//
//	stock  = inicial + Σ entradas − Σ salidas
//	costo  = media simple de costos unitarios de las entradas del código (o precio sugerido)
//	valor  = stock × costo
//
// Devuelve una fila por producto, en el orden de products.
func ComputeStock(products []entity.Product, entries []entity.Entry, exits []entity.Exit) []StockRow {
	rows := make([]StockRow, 0, len(products))
	if len(products) == 0 {
		return rows
	}

	entryQty := make(map[string]decimal.Decimal)
	unitCosts := make(map[string][]decimal.Decimal)
	for _, e := range entries {
		entryQty[e.ProductCode] = entryQty[e.ProductCode].Add(e.Quantity)
		unitCosts[e.ProductCode] = append(unitCosts[e.ProductCode], e.UnitCost)
	}
	exitQty := make(map[string]decimal.Decimal)
	for _, s := range exits {
		exitQty[s.ProductCode] = exitQty[s.ProductCode].Add(s.Quantity)
	}

	for _, p := range products {
		in := entryQty[p.Code]
		out := exitQty[p.Code]
		current := p.InitialStock.Add(in).Sub(out)
		avg := AverageCost(unitCosts[p.Code], p.SuggestedPrice)
		rows = append(rows, StockRow{
			Code:           p.Code,
			Description:    p.Description,
			Unit:           p.Unit,
			SuggestedPrice: p.SuggestedPrice,
			MinimumStock:   p.MinimumStock,
			InitialStock:   p.InitialStock,
			EntryQty:       in,
			ExitQty:        out,
			CurrentStock:   current,
			AverageCost:    avg,
			StockValue:     current.Mul(avg),
		})
	}
	return rows
}

// TotalValue suma el valor de todas las filas.
func TotalValue(rows []StockRow) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.StockValue)
	}
	return total
}

// Find devuelve la fila del código indicado.
func Find(rows []StockRow, code string) (StockRow, bool) {
	for _, r := range rows {
		if r.Code == code {
			return r, true
		}
	}
	return StockRow{}, false
}

// InStock filtra las filas con stock actual > 0 (gráfico de valor en stock del dashboard).
func InStock(rows []StockRow) []StockRow {
	out := make([]StockRow, 0, len(rows))
	for _, r := range rows {
		if r.CurrentStock.IsPositive() {
			out = append(out, r)
		}
	}
	return out
}

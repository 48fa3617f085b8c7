package inventory

import "fmt"

// Alerts devuelve las filas con stock actual <= stock mínimo.
func Alerts(rows []StockRow) []StockRow {
	out := make([]StockRow, 0)
	for _, r := range rows {
		if r.BelowMinimum() {
			out = append(out, r)
		}
	}
	return out
}

// AlertMessage texto de aviso por producto: descripción, stock, unidad y mínimo.
func (r StockRow) AlertMessage() string {
	return fmt.Sprintf("%s: estoque %s %s | mínimo %s",
		r.Description, r.CurrentStock.StringFixed(2), r.Unit, r.MinimumStock.StringFixed(2))
}

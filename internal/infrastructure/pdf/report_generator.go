// Package pdf genera el reporte de stock y del período con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa             │  Período + Fecha de emisión   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Compras / Ventas / Gastos / Lucro bruto y neto     │
//	│  NOTA FISCAL: con nota / sin nota (compras y ventas)         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Código | Descripción | Stock | Mínimo | Costo | Valor│
//	│  ─────────────────────────────────────────────────────────  │
//	│  ALERTAS: productos en o por debajo del mínimo               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/mluiza/controle-materiais/internal/application/analytics"
	"github.com/mluiza/controle-materiais/internal/domain/inventory"
	"github.com/mluiza/controle-materiais/pkg/money"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa analytics.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

var _ analytics.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateReportPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateReportPDF(_ context.Context, r *analytics.Report) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório de estoque", true).
		WithAuthor(r.CompanyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(totalsRows(r.Summary)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(stockRows(r.Stock)...)
	m.AddRows(totalValueRow(inventory.TotalValue(r.Stock)))

	if len(r.Alerts) > 0 {
		m.AddRows(line.NewRow(3))
		m.AddRows(alertRows(r.Alerts)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(r *analytics.Report) core.Row {
	p := r.Summary.Period
	periodo := fmt.Sprintf("Período: %s a %s", p.Start.Format("02/01/2006"), p.End.Format("02/01/2006"))
	return row.New(18).Add(
		col.New(7).Add(
			text.New(nonEmpty(r.CompanyName, "Controle de Materiais"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Relatório de estoque e resultado", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(periodo, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
			}),
			text.New("Emitido em "+r.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
			text.New(r.GeneratedBy, props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

func totalsRows(s inventory.PeriodSummary) []core.Row {
	kv := func(label string, v string, bold bool) core.Row {
		style := fontstyle.Normal
		if bold {
			style = fontstyle.Bold
		}
		return row.New(5).Add(
			col.New(6).Add(text.New(label, props.Text{Size: 9, Style: style, Top: 1})),
			col.New(6).Add(text.New(v, props.Text{Size: 9, Style: style, Align: align.Right, Top: 1})),
		)
	}
	return []core.Row{
		kv("Compras", money.BRL(s.Purchases), false),
		kv("Vendas", money.BRL(s.Sales), false),
		kv("Gastos operacionais", money.BRL(s.Expenses), false),
		kv("Lucro bruto", money.BRL(s.GrossProfit), true),
		kv("Lucro líquido", money.BRL(s.NetProfit), true),
		kv("Compras com nota / sem nota",
			money.BRL(s.PurchaseSplit.WithInvoice)+" / "+money.BRL(s.PurchaseSplit.WithoutInvoice), false),
		kv("Vendas com nota / sem nota",
			money.BRL(s.SalesSplit.WithInvoice)+" / "+money.BRL(s.SalesSplit.WithoutInvoice), false),
	}
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Código", 2, align.Left),
		h("Descrição", 4, align.Left),
		h("Estoque", 2, align.Right),
		h("Mínimo", 1, align.Right),
		h("Custo médio", 1, align.Right),
		h("Valor", 2, align.Right),
	)
}

func stockRows(rows []inventory.StockRow) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, s := range rows {
		var color *props.Color
		if s.BelowMinimum() {
			color = colorAlert
		}
		cell := func(v string, size int, a align.Type) core.Col {
			return col.New(size).Add(text.New(v, props.Text{Size: 8, Align: a, Top: 1, Color: color}))
		}
		result = append(result, row.New(6).Add(
			cell(s.Code, 2, align.Left),
			cell(s.Description, 4, align.Left),
			cell(money.Quantity(s.CurrentStock)+" "+s.Unit, 2, align.Right),
			cell(money.Quantity(s.MinimumStock), 1, align.Right),
			cell(money.BRL(s.AverageCost), 1, align.Right),
			cell(money.BRL(s.StockValue), 2, align.Right),
		))
	}
	return result
}

func totalValueRow(total decimal.Decimal) core.Row {
	return row.New(8).Add(
		col.New(8),
		col.New(2).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorPrimary, Top: 2,
		})),
		col.New(2).Add(text.New(money.BRL(total), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorPrimary, Top: 2,
		})),
	)
}

func alertRows(alerts []inventory.StockRow) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("ALERTAS DE ESTOQUE MÍNIMO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorAlert, Top: 1,
			}),
		)),
	}
	for _, a := range alerts {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(a.AlertMessage(), props.Text{Size: 8, Top: 1, Left: 2}),
		)))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

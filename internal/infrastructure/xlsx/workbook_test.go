package xlsx_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/mluiza/controle-materiais/internal/application/analytics"
	"github.com/mluiza/controle-materiais/internal/domain/entity"
	"github.com/mluiza/controle-materiais/internal/domain/inventory"
	"github.com/mluiza/controle-materiais/internal/infrastructure/xlsx"
)

func sampleReport() *analytics.Report {
	day := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	products := []entity.Product{{Code: "CIM50", Description: "Cimento", Unit: "saco",
		SuggestedPrice: decimal.NewFromInt(35), MinimumStock: decimal.NewFromInt(10)}}
	entries := []entity.Entry{{ID: 1, Date: day, ProductCode: "CIM50", Description: "Cimento", Unit: "saco",
		Quantity: decimal.NewFromInt(40), UnitCost: decimal.NewFromInt(25), TotalCost: decimal.NewFromInt(1000),
		InvoiceRef: "123"}}
	exits := []entity.Exit{{ID: 2, Date: day, ProductCode: "CIM50", Description: "Cimento", Unit: "saco",
		Quantity: decimal.NewFromInt(15), UnitPrice: decimal.NewFromInt(40), TotalSale: decimal.NewFromInt(600),
		InvoiceRef: entity.NoInvoice}}
	rows := inventory.ComputeStock(products, entries, exits)
	p := inventory.NewPeriod(day, day)
	return &analytics.Report{
		CompanyName: "MLT",
		GeneratedAt: time.Date(2025, 3, 9, 14, 5, 0, 0, time.UTC),
		Products:    products,
		Entries:     entries,
		Exits:       exits,
		Stock:       rows,
		Alerts:      inventory.Alerts(rows),
		Summary:     inventory.Aggregate(p, entries, exits, nil),
	}
}

func TestWriteWorkbook_HojasYEncabezados(t *testing.T) {
	data, err := xlsx.NewWorkbookWriter().WriteWorkbook(context.Background(), sampleReport())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{
		xlsx.SheetEntries, xlsx.SheetExits, xlsx.SheetExpenses,
		xlsx.SheetProducts, xlsx.SheetStock, xlsx.SheetSummary,
	}, f.GetSheetList())

	rows, err := f.GetRows(xlsx.SheetStock)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, xlsx.StockHeaders, rows[0])
	assert.Equal(t, "CIM50", rows[1][0])
	assert.Equal(t, "25", rows[1][8])  // estoque_atual
	assert.Equal(t, "625", rows[1][10]) // valor_estoque

	summary, err := f.GetRows(xlsx.SheetSummary)
	require.NoError(t, err)
	assert.Equal(t, []string{"vendas", "600"}, summary[4])
}

func TestWriteWorkbook_SinRegistros(t *testing.T) {
	data, err := xlsx.NewWorkbookWriter().WriteWorkbook(context.Background(), &analytics.Report{})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(xlsx.SheetEntries)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, xlsx.EntryHeaders, rows[0])
}

// Package xlsx genera la planilla de exportación con excelize.
// Una hoja por colección (ENTRADAS, SAIDAS, GASTOS, PRODUTOS), la foto de stock (ESTOQUE)
// y los totales del período (RESUMO). Los encabezados son estables: otros sistemas los leen.
package xlsx

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/mluiza/controle-materiais/internal/application/analytics"
	"github.com/mluiza/controle-materiais/internal/application/dto"
)

// Nombres de hoja.
const (
	SheetEntries  = "ENTRADAS"
	SheetExits    = "SAIDAS"
	SheetExpenses = "GASTOS"
	SheetProducts = "PRODUTOS"
	SheetStock    = "ESTOQUE"
	SheetSummary  = "RESUMO"
)

// Encabezados por hoja.
var (
	EntryHeaders = []string{
		"id", "data", "codigo_produto", "descricao_produto", "unidade", "quantidade", "fornecedor",
		"custo_unitario", "custo_total", "nota_fiscal", "forma_pagamento", "observacoes",
		"usuario_registro", "data_registro",
	}
	ExitHeaders = []string{
		"id", "data", "codigo_produto", "descricao_produto", "unidade", "quantidade", "cliente",
		"preco_unitario", "total_venda", "nota_fiscal", "forma_pagamento", "observacoes",
		"usuario_registro", "data_registro",
	}
	ExpenseHeaders = []string{
		"id", "data", "categoria", "descricao", "fornecedor_beneficiario", "valor",
		"forma_pagamento", "observacoes", "usuario_registro", "data_registro",
	}
	ProductHeaders = []string{
		"codigo", "descricao", "unidade", "preco_sugerido", "estoque_minimo", "estoque_inicial",
	}
	StockHeaders = []string{
		"codigo", "descricao", "unidade", "preco_sugerido", "estoque_minimo", "estoque_inicial",
		"qtd_entradas", "qtd_saidas", "estoque_atual", "custo_medio", "valor_estoque",
	}
	SummaryHeaders = []string{"indicador", "valor"}
)

const stampLayout = "2006-01-02 15:04:05"

// WorkbookWriter implementa analytics.WorkbookWriter.
type WorkbookWriter struct{}

var _ analytics.WorkbookWriter = (*WorkbookWriter)(nil)

func NewWorkbookWriter() *WorkbookWriter { return &WorkbookWriter{} }

// WriteWorkbook arma la planilla completa y devuelve sus bytes.
func (w *WorkbookWriter) WriteWorkbook(_ context.Context, r *analytics.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetEntries); err != nil {
		return nil, fmt.Errorf("renombrar hoja: %w", err)
	}
	for _, name := range []string{SheetExits, SheetExpenses, SheetProducts, SheetStock, SheetSummary} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("crear hoja %s: %w", name, err)
		}
	}
	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("estilo encabezado: %w", err)
	}

	entries := make([][]any, 0, len(r.Entries))
	for _, e := range r.Entries {
		entries = append(entries, []any{
			e.ID, e.Date.Format(dto.DateLayout), e.ProductCode, e.Description, e.Unit, num(e.Quantity),
			e.Supplier, num(e.UnitCost), num(e.TotalCost), e.InvoiceRef, e.PaymentMethod, e.Notes,
			e.RecordedBy, e.RecordedAt.Format(stampLayout),
		})
	}
	exits := make([][]any, 0, len(r.Exits))
	for _, x := range r.Exits {
		exits = append(exits, []any{
			x.ID, x.Date.Format(dto.DateLayout), x.ProductCode, x.Description, x.Unit, num(x.Quantity),
			x.Customer, num(x.UnitPrice), num(x.TotalSale), x.InvoiceRef, x.PaymentMethod, x.Notes,
			x.RecordedBy, x.RecordedAt.Format(stampLayout),
		})
	}
	expenses := make([][]any, 0, len(r.Expenses))
	for _, g := range r.Expenses {
		expenses = append(expenses, []any{
			g.ID, g.Date.Format(dto.DateLayout), g.Category, g.Description, g.Beneficiary, num(g.Amount),
			g.PaymentMethod, g.Notes, g.RecordedBy, g.RecordedAt.Format(stampLayout),
		})
	}
	products := make([][]any, 0, len(r.Products))
	for _, p := range r.Products {
		products = append(products, []any{
			p.Code, p.Description, p.Unit, num(p.SuggestedPrice), num(p.MinimumStock), num(p.InitialStock),
		})
	}
	stock := make([][]any, 0, len(r.Stock))
	for _, s := range r.Stock {
		stock = append(stock, []any{
			s.Code, s.Description, s.Unit, num(s.SuggestedPrice), num(s.MinimumStock), num(s.InitialStock),
			num(s.EntryQty), num(s.ExitQty), num(s.CurrentStock), num(s.AverageCost), num(s.StockValue),
		})
	}

	sheets := []struct {
		name    string
		headers []string
		rows    [][]any
	}{
		{SheetEntries, EntryHeaders, entries},
		{SheetExits, ExitHeaders, exits},
		{SheetExpenses, ExpenseHeaders, expenses},
		{SheetProducts, ProductHeaders, products},
		{SheetStock, StockHeaders, stock},
		{SheetSummary, SummaryHeaders, summaryRows(r)},
	}
	for _, s := range sheets {
		if err := writeSheet(f, s.name, s.headers, s.rows, header); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializar xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func summaryRows(r *analytics.Report) [][]any {
	s := r.Summary
	return [][]any{
		{"periodo_inicio", s.Period.Start.Format(dto.DateLayout)},
		{"periodo_fim", s.Period.End.Format(dto.DateLayout)},
		{"compras", num(s.Purchases)},
		{"vendas", num(s.Sales)},
		{"gastos", num(s.Expenses)},
		{"lucro_bruto", num(s.GrossProfit)},
		{"lucro_liquido", num(s.NetProfit)},
		{"compras_com_nota", num(s.PurchaseSplit.WithInvoice)},
		{"compras_sem_nota", num(s.PurchaseSplit.WithoutInvoice)},
		{"vendas_com_nota", num(s.SalesSplit.WithInvoice)},
		{"vendas_sem_nota", num(s.SalesSplit.WithoutInvoice)},
		{"qtd_entradas", s.EntryCount},
		{"qtd_saidas", s.ExitCount},
		{"qtd_gastos", s.ExpenseCount},
		{"alertas_estoque", len(r.Alerts)},
		{"gerado_em", r.GeneratedAt.Format(stampLayout)},
	}
}

func writeSheet(f *excelize.File, sheet string, headers []string, rows [][]any, headerStyle int) error {
	head := make([]any, len(headers))
	for i, h := range headers {
		head[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &head); err != nil {
		return fmt.Errorf("encabezado %s: %w", sheet, err)
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("estilo %s: %w", sheet, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("fila %d de %s: %w", i+2, sheet, err)
		}
	}
	return nil
}

func num(v decimal.Decimal) float64 { return v.InexactFloat64() }

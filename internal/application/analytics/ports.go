package analytics

import (
	"context"
	"time"

	"github.com/mluiza/controle-materiais/internal/domain/entity"
	"github.com/mluiza/controle-materiais/internal/domain/inventory"
)

// Report datos planos para exportar: registros crudos, foto de stock y totales del período.
type Report struct {
	CompanyName string
	GeneratedAt time.Time
	GeneratedBy string
	Products    []entity.Product
	Entries     []entity.Entry
	Exits       []entity.Exit
	Expenses    []entity.Expense
	Stock       []inventory.StockRow
	Alerts      []inventory.StockRow
	Summary     inventory.PeriodSummary
}

// WorkbookWriter genera la planilla XLSX.
type WorkbookWriter interface {
	WriteWorkbook(ctx context.Context, r *Report) ([]byte, error)
}

// ReportPDFGenerator genera el reporte de stock y período en PDF.
type ReportPDFGenerator interface {
	GenerateReportPDF(ctx context.Context, r *Report) ([]byte, error)
}

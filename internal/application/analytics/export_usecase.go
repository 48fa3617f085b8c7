package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/mluiza/controle-materiais/internal/domain/inventory"
	"github.com/mluiza/controle-materiais/internal/domain/repository"
)

// ExportUseCase arma el Report y delega el formato en los adaptadores XLSX y PDF.
type ExportUseCase struct {
	store       *repository.Store
	workbook    WorkbookWriter
	pdf         ReportPDFGenerator
	companyName string
	now         func() time.Time
}

func NewExportUseCase(store *repository.Store, workbook WorkbookWriter, pdf ReportPDFGenerator, companyName string) *ExportUseCase {
	return &ExportUseCase{store: store, workbook: workbook, pdf: pdf, companyName: companyName, now: time.Now}
}

// BuildReport lee todas las colecciones y calcula stock, alertas y totales del período de la sesión.
func (uc *ExportUseCase) BuildReport(ctx context.Context, s Session) (*Report, error) {
	snap, err := loadSnapshot(ctx, uc.store)
	if err != nil {
		return nil, err
	}
	rows := inventory.ComputeStock(snap.products, snap.entries, snap.exits)
	return &Report{
		CompanyName: uc.companyName,
		GeneratedAt: uc.now(),
		GeneratedBy: s.DisplayName,
		Products:    snap.products,
		Entries:     snap.entries,
		Exits:       snap.exits,
		Expenses:    snap.expenses,
		Stock:       rows,
		Alerts:      inventory.Alerts(rows),
		Summary:     inventory.Aggregate(s.Period, snap.entries, snap.exits, snap.expenses),
	}, nil
}

// ExportWorkbook devuelve la planilla y su nombre de archivo (MLT_YYYYMMDD_HHMM.xlsx).
func (uc *ExportUseCase) ExportWorkbook(ctx context.Context, s Session) ([]byte, string, error) {
	r, err := uc.BuildReport(ctx, s)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.workbook.WriteWorkbook(ctx, r)
	if err != nil {
		return nil, "", fmt.Errorf("generar xlsx: %w", err)
	}
	return data, WorkbookFileName(r.GeneratedAt), nil
}

// ExportPDF devuelve el reporte PDF y su nombre de archivo.
func (uc *ExportUseCase) ExportPDF(ctx context.Context, s Session) ([]byte, string, error) {
	r, err := uc.BuildReport(ctx, s)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.pdf.GenerateReportPDF(ctx, r)
	if err != nil {
		return nil, "", fmt.Errorf("generar pdf: %w", err)
	}
	return data, ReportFileName(r.GeneratedAt), nil
}

// WorkbookFileName nombre de la planilla exportada.
func WorkbookFileName(t time.Time) string {
	return fmt.Sprintf("MLT_%s.xlsx", t.Format("20060102_1504"))
}

// ReportFileName nombre del reporte PDF exportado.
func ReportFileName(t time.Time) string {
	return fmt.Sprintf("MLT_%s.pdf", t.Format("20060102_1504"))
}

// Package analytics contiene los casos de uso de lectura: dashboard, tabla de stock,
// reportes por período y exportaciones. Todo se recalcula desde los registros en cada llamada.
package analytics

import (
	"context"

	"github.com/mluiza/controle-materiais/internal/application/dto"
	"github.com/mluiza/controle-materiais/internal/domain"
	"github.com/mluiza/controle-materiais/internal/domain/inventory"
	"github.com/mluiza/controle-materiais/internal/domain/repository"
)

// DefaultTopProducts cantidad de productos del ranking cuando no se indica límite.
const DefaultTopProducts = 10

// DashboardUseCase arma el resumen del período, la tabla de stock y los reportes.
type DashboardUseCase struct {
	store *repository.Store
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(store *repository.Store) *DashboardUseCase {
	return &DashboardUseCase{store: store}
}

// GetSummary KPIs del período de la sesión más valor de stock, alertas y datos del gráfico.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, s Session) (*dto.DashboardSummaryDTO, error) {
	snap, err := loadSnapshot(ctx, uc.store)
	if err != nil {
		return nil, err
	}
	sum := inventory.Aggregate(s.Period, snap.entries, snap.exits, snap.expenses)
	rows := inventory.ComputeStock(snap.products, snap.entries, snap.exits)

	return &dto.DashboardSummaryDTO{
		User:          s.User,
		DisplayName:   s.DisplayName,
		Period:        dto.FromPeriod(s.Period),
		Empty:         sum.Empty(),
		Purchases:     sum.Purchases,
		Sales:         sum.Sales,
		Expenses:      sum.Expenses,
		GrossProfit:   sum.GrossProfit,
		NetProfit:     sum.NetProfit,
		PurchaseSplit: dto.FromSplit(sum.PurchaseSplit),
		SalesSplit:    dto.FromSplit(sum.SalesSplit),
		EntryCount:    sum.EntryCount,
		ExitCount:     sum.ExitCount,
		ExpenseCount:  sum.ExpenseCount,
		StockValue:    inventory.TotalValue(rows),
		Alerts:        dto.FromAlerts(inventory.Alerts(rows)),
		InStock:       dto.FromStockRows(inventory.InStock(rows)),
	}, nil
}

// GetStock tabla de stock completa.
func (uc *DashboardUseCase) GetStock(ctx context.Context) (*dto.StockListResponse, error) {
	rows, err := uc.stockRows(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.StockListResponse{Items: dto.FromStockRows(rows), TotalValue: inventory.TotalValue(rows)}, nil
}

// GetAlerts productos en o por debajo del mínimo.
func (uc *DashboardUseCase) GetAlerts(ctx context.Context) ([]dto.AlertResponse, error) {
	rows, err := uc.stockRows(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromAlerts(inventory.Alerts(rows)), nil
}

// GetStockByCode stock disponible de un producto (formulario de venta).
func (uc *DashboardUseCase) GetStockByCode(ctx context.Context, code string) (*dto.StockRowResponse, error) {
	rows, err := uc.stockRows(ctx)
	if err != nil {
		return nil, err
	}
	row, ok := inventory.Find(rows, code)
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := dto.FromStockRow(row)
	return &out, nil
}

// GetInvoiceReport compras y ventas del período separadas por nota fiscal, y compras por producto.
func (uc *DashboardUseCase) GetInvoiceReport(ctx context.Context, s Session) (*dto.InvoiceReportDTO, error) {
	snap, err := loadSnapshot(ctx, uc.store)
	if err != nil {
		return nil, err
	}
	sum := inventory.Aggregate(s.Period, snap.entries, snap.exits, snap.expenses)
	rows := inventory.PurchasesByProduct(s.Period, snap.entries)

	purchases := make([]dto.ProductPurchaseDTO, 0, len(rows))
	for _, r := range rows {
		purchases = append(purchases, dto.ProductPurchaseDTO{
			Code: r.Code, Description: r.Description, Unit: r.Unit,
			HasInvoice: r.HasInvoice, Quantity: r.Quantity, Value: r.Value,
		})
	}
	return &dto.InvoiceReportDTO{
		Period:        dto.FromPeriod(s.Period),
		PurchaseSplit: dto.FromSplit(sum.PurchaseSplit),
		SalesSplit:    dto.FromSplit(sum.SalesSplit),
		Purchases:     purchases,
	}, nil
}

// GetTopProducts ranking histórico de facturación por producto. limit <= 0 usa DefaultTopProducts.
func (uc *DashboardUseCase) GetTopProducts(ctx context.Context, limit int) ([]dto.TopProductDTO, error) {
	if limit <= 0 {
		limit = DefaultTopProducts
	}
	exits, err := uc.store.Exits.List(ctx)
	if err != nil {
		return nil, err
	}
	rows := inventory.TopProducts(exits, limit)
	out := make([]dto.TopProductDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.TopProductDTO{Description: r.Description, Revenue: r.Revenue})
	}
	return out, nil
}

func (uc *DashboardUseCase) stockRows(ctx context.Context) ([]inventory.StockRow, error) {
	snap, err := loadSnapshot(ctx, uc.store)
	if err != nil {
		return nil, err
	}
	return inventory.ComputeStock(snap.products, snap.entries, snap.exits), nil
}

package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mluiza/controle-materiais/internal/application/dto"
	"github.com/mluiza/controle-materiais/internal/domain"
	"github.com/mluiza/controle-materiais/internal/domain/entity"
	domaininv "github.com/mluiza/controle-materiais/internal/domain/inventory"
)

// RegisterExit registra una venta. Si la cantidad supera el stock calculado del código devuelve
// domain.ErrInsufficientStock sin insertar nada. Tras la venta, si el producto queda en o por debajo
// del mínimo, publica una alerta; un fallo al publicar solo se registra en el log.
func (uc *MovementUseCase) RegisterExit(ctx context.Context, user string, in dto.CreateExitRequest) (*dto.ExitResponse, error) {
	date, err := dto.ParseDate(in.Date, domaininv.DateOnly(uc.now()))
	if err != nil {
		return nil, err
	}
	if !in.Quantity.IsPositive() || in.UnitPrice.IsNegative() || !entity.IsValidPaymentMethod(in.PaymentMethod) {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.lookupProduct(ctx, in.ProductCode)
	if err != nil {
		return nil, err
	}
	desc, unit, err := describe(product, in.Description, in.Unit)
	if err != nil {
		return nil, err
	}

	row, err := uc.currentStock(ctx, *product)
	if err != nil {
		return nil, err
	}
	if in.Quantity.GreaterThan(row.CurrentStock) {
		return nil, fmt.Errorf("%w: disponible %s %s", domain.ErrInsufficientStock,
			row.CurrentStock.StringFixed(2), row.Unit)
	}

	x := &entity.Exit{
		Date:          date,
		ProductCode:   product.Code,
		Description:   desc,
		Unit:          unit,
		Quantity:      in.Quantity,
		Customer:      strings.TrimSpace(in.Customer),
		UnitPrice:     in.UnitPrice,
		TotalSale:     in.Quantity.Mul(in.UnitPrice),
		InvoiceRef:    invoiceRef(in.HasInvoice, in.InvoiceRef),
		PaymentMethod: in.PaymentMethod,
		Notes:         strings.TrimSpace(in.Notes),
		RecordedBy:    user,
	}
	if err := uc.exits.Create(ctx, x); err != nil {
		return nil, err
	}

	row.ExitQty = row.ExitQty.Add(x.Quantity)
	row.CurrentStock = row.CurrentStock.Sub(x.Quantity)
	row.StockValue = row.CurrentStock.Mul(row.AverageCost)
	if row.BelowMinimum() {
		uc.publishAlert(ctx, user, row)
	}

	out := dto.FromExit(*x)
	return &out, nil
}

// ListExits todas las ventas, la más reciente primero.
func (uc *MovementUseCase) ListExits(ctx context.Context) ([]dto.ExitResponse, error) {
	exits, err := uc.exits.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ExitResponse, 0, len(exits))
	for _, x := range exits {
		out = append(out, dto.FromExit(x))
	}
	return out, nil
}

func (uc *MovementUseCase) DeleteExit(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ErrInvalidInput
	}
	return uc.exits.Delete(ctx, id)
}

// currentStock recalcula el stock del producto desde todos sus movimientos.
func (uc *MovementUseCase) currentStock(ctx context.Context, product entity.Product) (domaininv.StockRow, error) {
	entries, err := uc.entries.List(ctx)
	if err != nil {
		return domaininv.StockRow{}, err
	}
	exits, err := uc.exits.List(ctx)
	if err != nil {
		return domaininv.StockRow{}, err
	}
	rows := domaininv.ComputeStock([]entity.Product{product}, entries, exits)
	return rows[0], nil
}

func (uc *MovementUseCase) publishAlert(ctx context.Context, user string, row domaininv.StockRow) {
	if uc.publisher == nil {
		return
	}
	event := StockAlertEvent{
		ID:           uuid.NewString(),
		Code:         row.Code,
		Description:  row.Description,
		Unit:         row.Unit,
		CurrentStock: row.CurrentStock,
		MinimumStock: row.MinimumStock,
		Message:      row.AlertMessage(),
		TriggeredBy:  user,
		OccurredAt:   uc.now(),
	}
	if err := uc.publisher.PublishStockAlert(ctx, event); err != nil {
		uc.log.Warn().Err(err).Str("code", row.Code).Msg("no se pudo publicar la alerta de stock")
	}
}

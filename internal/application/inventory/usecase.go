package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/mluiza/controle-materiais/internal/application/dto"
	"github.com/mluiza/controle-materiais/internal/domain"
	"github.com/mluiza/controle-materiais/internal/domain/entity"
	domaininv "github.com/mluiza/controle-materiais/internal/domain/inventory"
	"github.com/mluiza/controle-materiais/internal/domain/repository"
	"github.com/mluiza/controle-materiais/pkg/logger"
)

// MovementUseCase registra compras (entradas) y ventas (salidas).
// Cada inserción es independiente: no hay transacción que abarque la validación de stock y el alta.
type MovementUseCase struct {
	products  repository.ProductRepository
	entries   repository.EntryRepository
	exits     repository.ExitRepository
	publisher AlertPublisher
	log       *logger.Logger
	now       func() time.Time
}

// NewMovementUseCase construye el caso de uso. publisher puede ser nil.
func NewMovementUseCase(
	products repository.ProductRepository,
	entries repository.EntryRepository,
	exits repository.ExitRepository,
	publisher AlertPublisher,
	log *logger.Logger,
) *MovementUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &MovementUseCase{
		products:  products,
		entries:   entries,
		exits:     exits,
		publisher: publisher,
		log:       log.Component("inventory"),
		now:       time.Now,
	}
}

// RegisterEntry registra una compra. TotalCost = Quantity × UnitCost se calcula aquí y no cambia después.
func (uc *MovementUseCase) RegisterEntry(ctx context.Context, user string, in dto.CreateEntryRequest) (*dto.EntryResponse, error) {
	date, err := dto.ParseDate(in.Date, domaininv.DateOnly(uc.now()))
	if err != nil {
		return nil, err
	}
	if !in.Quantity.IsPositive() || in.UnitCost.IsNegative() || !entity.IsValidPaymentMethod(in.PaymentMethod) {
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

	e := &entity.Entry{
		Date:          date,
		ProductCode:   product.Code,
		Description:   desc,
		Unit:          unit,
		Quantity:      in.Quantity,
		Supplier:      strings.TrimSpace(in.Supplier),
		UnitCost:      in.UnitCost,
		TotalCost:     in.Quantity.Mul(in.UnitCost),
		InvoiceRef:    invoiceRef(in.HasInvoice, in.InvoiceRef),
		PaymentMethod: in.PaymentMethod,
		Notes:         strings.TrimSpace(in.Notes),
		RecordedBy:    user,
	}
	if err := uc.entries.Create(ctx, e); err != nil {
		return nil, err
	}
	out := dto.FromEntry(*e)
	return &out, nil
}

// ListEntries todas las compras, la más reciente primero.
func (uc *MovementUseCase) ListEntries(ctx context.Context) ([]dto.EntryResponse, error) {
	entries, err := uc.entries.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.FromEntry(e))
	}
	return out, nil
}

func (uc *MovementUseCase) DeleteEntry(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ErrInvalidInput
	}
	return uc.entries.Delete(ctx, id)
}

func (uc *MovementUseCase) lookupProduct(ctx context.Context, code string) (*entity.Product, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.products.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// describe completa descripción y unidad con los datos del producto cuando vienen vacías.
func describe(p *entity.Product, desc, unit string) (string, string, error) {
	desc = strings.TrimSpace(desc)
	if desc == "" {
		desc = p.Description
	}
	if unit == "" {
		unit = p.Unit
	}
	if !entity.IsValidUnit(unit) {
		return "", "", domain.ErrInvalidInput
	}
	return desc, unit, nil
}

// invoiceRef devuelve entity.NoInvoice cuando no hay nota o la referencia está en blanco.
func invoiceRef(has *bool, ref string) string {
	ref = strings.TrimSpace(ref)
	if (has != nil && !*has) || ref == "" {
		return entity.NoInvoice
	}
	return ref
}

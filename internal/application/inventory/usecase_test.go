package inventory_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mluiza/controle-materiais/internal/application/dto"
	"github.com/mluiza/controle-materiais/internal/application/inventory"
	"github.com/mluiza/controle-materiais/internal/domain"
	"github.com/mluiza/controle-materiais/internal/domain/entity"
	domaininv "github.com/mluiza/controle-materiais/internal/domain/inventory"
	"github.com/mluiza/controle-materiais/internal/domain/repository"
	"github.com/mluiza/controle-materiais/internal/infrastructure/memory"
	"github.com/mluiza/controle-materiais/pkg/logger"
)

// ─── Helpers ──────────────────────────────────────────────────────────────────

type fakePublisher struct {
	mu     sync.Mutex
	events []inventory.StockAlertEvent
	err    error
}

func (f *fakePublisher) PublishStockAlert(_ context.Context, e inventory.StockAlertEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, e)
	return f.err
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func setup(t *testing.T, pub inventory.AlertPublisher) (*inventory.MovementUseCase, *repository.Store) {
	t.Helper()
	store := memory.New().Repositories()
	require.NoError(t, store.Products.Create(context.Background(), &entity.Product{
		Code: "CIM50", Description: "Cimento 50kg", Unit: "saco",
		SuggestedPrice: d("35"), MinimumStock: d("10"), InitialStock: d("0"),
	}))
	uc := inventory.NewMovementUseCase(store.Products, store.Entries, store.Exits, pub, logger.Nop())
	return uc, store
}

func currentStock(t *testing.T, store *repository.Store, code string) decimal.Decimal {
	t.Helper()
	ctx := context.Background()
	products, _ := store.Products.List(ctx)
	entries, _ := store.Entries.List(ctx)
	exits, _ := store.Exits.List(ctx)
	row, ok := domaininv.Find(domaininv.ComputeStock(products, entries, exits), code)
	require.True(t, ok)
	return row.CurrentStock
}

// ─── Entradas ─────────────────────────────────────────────────────────────────

func TestRegisterEntry_CompletaDatosDelProducto(t *testing.T) {
	uc, _ := setup(t, nil)
	out, err := uc.RegisterEntry(context.Background(), "admin", dto.CreateEntryRequest{
		Date: "2025-03-10", ProductCode: "CIM50", Quantity: d("40"), UnitCost: d("25"),
		PaymentMethod: "PIX", InvoiceRef: "  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Cimento 50kg", out.Description)
	assert.Equal(t, "saco", out.Unit)
	assert.Equal(t, entity.NoInvoice, out.InvoiceRef)
	assert.True(t, out.TotalCost.Equal(d("1000")))
	assert.Equal(t, "admin", out.RecordedBy)
	assert.Equal(t, "2025-03-10", out.Date)
}

func TestRegisterEntry_SinNotaExplicita(t *testing.T) {
	uc, _ := setup(t, nil)
	no := false
	out, err := uc.RegisterEntry(context.Background(), "admin", dto.CreateEntryRequest{
		Date: "2025-03-10", ProductCode: "CIM50", Quantity: d("1"), UnitCost: d("25"),
		PaymentMethod: "PIX", HasInvoice: &no, InvoiceRef: "999",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.NoInvoice, out.InvoiceRef)
}

func TestRegisterMovimientos_FechaVaciaEsHoy(t *testing.T) {
	uc, _ := setup(t, nil)
	ctx := context.Background()
	today := time.Now().Format(dto.DateLayout)

	entry, err := uc.RegisterEntry(ctx, "admin", dto.CreateEntryRequest{
		ProductCode: "CIM50", Quantity: d("5"), UnitCost: d("25"), PaymentMethod: "PIX",
	})
	require.NoError(t, err)
	assert.Equal(t, today, entry.Date)

	exit, err := uc.RegisterExit(ctx, "admin", dto.CreateExitRequest{
		ProductCode: "CIM50", Quantity: d("1"), UnitPrice: d("35"), PaymentMethod: "PIX",
	})
	require.NoError(t, err)
	assert.Equal(t, today, exit.Date)
}

func TestRegisterEntry_Validaciones(t *testing.T) {
	uc, _ := setup(t, nil)
	ctx := context.Background()
	cases := []struct {
		name string
		in   dto.CreateEntryRequest
		want error
	}{
		{"cantidad cero", dto.CreateEntryRequest{ProductCode: "CIM50", Quantity: d("0"), UnitCost: d("1"), PaymentMethod: "PIX"}, domain.ErrInvalidInput},
		{"forma de pago", dto.CreateEntryRequest{ProductCode: "CIM50", Quantity: d("1"), UnitCost: d("1"), PaymentMethod: "Bitcoin"}, domain.ErrInvalidInput},
		{"fecha", dto.CreateEntryRequest{Date: "10/03/2025", ProductCode: "CIM50", Quantity: d("1"), UnitCost: d("1"), PaymentMethod: "PIX"}, domain.ErrInvalidInput},
		{"producto inexistente", dto.CreateEntryRequest{ProductCode: "NOPE", Quantity: d("1"), UnitCost: d("1"), PaymentMethod: "PIX"}, domain.ErrNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.RegisterEntry(ctx, "admin", tc.in)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// ─── Salidas ──────────────────────────────────────────────────────────────────

func TestRegisterExit_StockInsuficienteNoInserta(t *testing.T) {
	uc, store := setup(t, nil)
	ctx := context.Background()
	_, err := uc.RegisterEntry(ctx, "admin", dto.CreateEntryRequest{
		Date: "2025-03-01", ProductCode: "CIM50", Quantity: d("40"), UnitCost: d("25"), PaymentMethod: "PIX",
	})
	require.NoError(t, err)

	_, err = uc.RegisterExit(ctx, "admin", dto.CreateExitRequest{
		Date: "2025-03-02", ProductCode: "CIM50", Quantity: d("100"), UnitPrice: d("35"), PaymentMethod: "PIX",
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "40.00")

	exits, _ := store.Exits.List(ctx)
	assert.Empty(t, exits)
	assert.True(t, currentStock(t, store, "CIM50").Equal(d("40")))
}

func TestRegisterExit_PublicaAlertaBajoMinimo(t *testing.T) {
	pub := &fakePublisher{}
	uc, store := setup(t, pub)
	ctx := context.Background()
	_, err := uc.RegisterEntry(ctx, "admin", dto.CreateEntryRequest{
		Date: "2025-03-01", ProductCode: "CIM50", Quantity: d("40"), UnitCost: d("25"), PaymentMethod: "PIX",
	})
	require.NoError(t, err)

	out, err := uc.RegisterExit(ctx, "vendedor", dto.CreateExitRequest{
		Date: "2025-03-02", ProductCode: "CIM50", Quantity: d("15"), UnitPrice: d("35"), PaymentMethod: "PIX",
	})
	require.NoError(t, err)
	assert.True(t, out.TotalSale.Equal(d("525")))
	assert.Empty(t, pub.events, "25 en stock sigue por encima del mínimo 10")

	_, err = uc.RegisterExit(ctx, "vendedor", dto.CreateExitRequest{
		Date: "2025-03-03", ProductCode: "CIM50", Quantity: d("15"), UnitPrice: d("35"), PaymentMethod: "PIX",
	})
	require.NoError(t, err)
	require.Len(t, pub.events, 1)
	assert.Equal(t, "CIM50", pub.events[0].Code)
	assert.True(t, pub.events[0].CurrentStock.Equal(d("10")))
	assert.Equal(t, "vendedor", pub.events[0].TriggeredBy)
	assert.True(t, currentStock(t, store, "CIM50").Equal(d("10")))
}

func TestRegisterExit_FalloAlPublicarNoFallaLaVenta(t *testing.T) {
	pub := &fakePublisher{err: errors.New("broker caído")}
	uc, _ := setup(t, pub)
	ctx := context.Background()
	_, err := uc.RegisterEntry(ctx, "admin", dto.CreateEntryRequest{
		Date: "2025-03-01", ProductCode: "CIM50", Quantity: d("5"), UnitCost: d("25"), PaymentMethod: "PIX",
	})
	require.NoError(t, err)

	_, err = uc.RegisterExit(ctx, "admin", dto.CreateExitRequest{
		Date: "2025-03-02", ProductCode: "CIM50", Quantity: d("5"), UnitPrice: d("35"), PaymentMethod: "PIX",
	})
	require.NoError(t, err)
	assert.Len(t, pub.events, 1)
}

func TestDeleteExit_RestauraStock(t *testing.T) {
	uc, store := setup(t, nil)
	ctx := context.Background()
	_, err := uc.RegisterEntry(ctx, "admin", dto.CreateEntryRequest{
		Date: "2025-03-01", ProductCode: "CIM50", Quantity: d("20"), UnitCost: d("25"), PaymentMethod: "PIX",
	})
	require.NoError(t, err)
	out, err := uc.RegisterExit(ctx, "admin", dto.CreateExitRequest{
		Date: "2025-03-02", ProductCode: "CIM50", Quantity: d("5"), UnitPrice: d("35"), PaymentMethod: "PIX",
	})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteExit(ctx, out.ID))
	assert.True(t, currentStock(t, store, "CIM50").Equal(d("20")))
	assert.ErrorIs(t, uc.DeleteExit(ctx, 0), domain.ErrInvalidInput)
}

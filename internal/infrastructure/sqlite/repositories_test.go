package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mluiza/controle-materiais/internal/domain"
	"github.com/mluiza/controle-materiais/internal/domain/entity"
	"github.com/mluiza/controle-materiais/internal/domain/repository"
	"github.com/mluiza/controle-materiais/internal/infrastructure/sqlite"
)

func openStore(t *testing.T) *repository.Store {
	t.Helper()
	store, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "controle.db"))
	require.NoError(t, err)
	t.Cleanup(store.Close)
	return store
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestProductRepo_CrearListarYDuplicado(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)

	cim := &entity.Product{Code: "CIM50", Description: "Cimento 50kg", Unit: "saco",
		SuggestedPrice: d("32.5"), MinimumStock: d("20"), InitialStock: d("100")}
	require.NoError(t, store.Products.Create(ctx, cim))
	require.NoError(t, store.Products.Create(ctx, &entity.Product{Code: "AREIA", Description: "Areia média", Unit: "m³"}))

	err := store.Products.Create(ctx, &entity.Product{Code: "CIM50", Description: "Outro", Unit: "un"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	list, err := store.Products.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "AREIA", list[0].Code)
	assert.True(t, list[1].SuggestedPrice.Equal(d("32.5")))
	assert.True(t, list[1].InitialStock.Equal(d("100")))

	got, err := store.Products.GetByCode(ctx, "NOPE")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, store.Products.DeleteByCode(ctx, "AREIA"))
	list, _ = store.Products.List(ctx)
	assert.Len(t, list, 1)
}

func TestEntryRepo_FechasYOrden(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)

	for _, day := range []int{5, 20, 12} {
		e := &entity.Entry{
			Date: time.Date(2025, 3, day, 0, 0, 0, 0, time.UTC), ProductCode: "CIM50",
			Quantity: d("10"), UnitCost: d("25"), TotalCost: d("250"), InvoiceRef: entity.NoInvoice,
		}
		require.NoError(t, store.Entries.Create(ctx, e))
		assert.NotZero(t, e.ID)
		assert.False(t, e.RecordedAt.IsZero())
	}

	list, err := store.Entries.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, 20, list[0].Date.Day())
	assert.Equal(t, 5, list[2].Date.Day())
	assert.True(t, list[0].TotalCost.Equal(d("250")))

	require.NoError(t, store.Entries.Delete(ctx, list[0].ID))
	list, _ = store.Entries.List(ctx)
	assert.Len(t, list, 2)
}

func TestExitAndExpenseRepo_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)

	x := &entity.Exit{Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), ProductCode: "CIM50",
		Quantity: d("2.5"), UnitPrice: d("40"), TotalSale: d("100"), InvoiceRef: "12345"}
	require.NoError(t, store.Exits.Create(ctx, x))
	exits, err := store.Exits.List(ctx)
	require.NoError(t, err)
	require.Len(t, exits, 1)
	assert.True(t, exits[0].Quantity.Equal(d("2.5")))
	assert.Equal(t, "12345", exits[0].InvoiceRef)

	g := &entity.Expense{Date: time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), Category: "Combustíveis", Amount: d("150.75")}
	require.NoError(t, store.Expenses.Create(ctx, g))
	expenses, err := store.Expenses.List(ctx)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.True(t, expenses[0].Amount.Equal(d("150.75")))
}

func TestUserRepo_CrearBuscarContar(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)

	n, err := store.Users.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	u := &entity.User{Username: "admin", PasswordHash: "hash", DisplayName: "Administrador"}
	require.NoError(t, store.Users.Create(ctx, u))
	assert.ErrorIs(t, store.Users.Create(ctx, &entity.User{Username: "admin", PasswordHash: "x", DisplayName: "X"}), domain.ErrDuplicate)

	got, err := store.Users.FindByUsername(ctx, "admin")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Administrador", got.DisplayName)

	n, _ = store.Users.Count(ctx)
	assert.Equal(t, 1, n)
}

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mluiza/controle-materiais/internal/domain"
	"github.com/mluiza/controle-materiais/internal/domain/entity"
	"github.com/mluiza/controle-materiais/internal/domain/repository"
	"github.com/mluiza/controle-materiais/internal/infrastructure/postgres"
	"github.com/mluiza/controle-materiais/pkg/config"
)

// Integración contra una base real: DATABASE_URL=postgres://... go test ./internal/infrastructure/postgres/
// La base puede tener otros datos, por eso cada prueba usa códigos únicos y filtra por ellos.

func openStore(t *testing.T) *repository.Store {
	t.Helper()
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL no definida")
	}
	store, err := postgres.Open(context.Background(), config.DBConfig{Driver: config.DriverPostgres, DatabaseURL: url})
	require.NoError(t, err)
	t.Cleanup(store.Close)
	return store
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func uniq(prefix string) string { return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano()) }

func TestProductRepo_CrearListarYDuplicado(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)
	cimCode, areiaCode := uniq("CIM50"), uniq("AREIA")
	t.Cleanup(func() {
		_ = store.Products.DeleteByCode(ctx, cimCode)
		_ = store.Products.DeleteByCode(ctx, areiaCode)
	})

	cim := &entity.Product{Code: cimCode, Description: "Cimento 50kg", Unit: "saco",
		SuggestedPrice: d("32.5"), MinimumStock: d("20"), InitialStock: d("100")}
	require.NoError(t, store.Products.Create(ctx, cim))
	require.NoError(t, store.Products.Create(ctx, &entity.Product{Code: areiaCode, Description: "Areia média", Unit: "m³"}))

	err := store.Products.Create(ctx, &entity.Product{Code: cimCode, Description: "Outro", Unit: "un"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	got, err := store.Products.GetByCode(ctx, cimCode)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.SuggestedPrice.Equal(d("32.5")))
	assert.True(t, got.InitialStock.Equal(d("100")))
	assert.Equal(t, "saco", got.Unit)

	list, err := store.Products.List(ctx)
	require.NoError(t, err)
	var codes []string
	for _, p := range list {
		if p.Code == cimCode || p.Code == areiaCode {
			codes = append(codes, p.Code)
		}
	}
	assert.Equal(t, []string{areiaCode, cimCode}, codes)

	missing, err := store.Products.GetByCode(ctx, uniq("NOPE"))
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, store.Products.DeleteByCode(ctx, areiaCode))
	missing, err = store.Products.GetByCode(ctx, areiaCode)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestEntryRepo_FechasYOrden(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)
	code := uniq("CIM50")

	for _, day := range []int{5, 20, 12} {
		e := &entity.Entry{
			Date: time.Date(2025, 3, day, 0, 0, 0, 0, time.UTC), ProductCode: code,
			Quantity: d("10"), UnitCost: d("25"), TotalCost: d("250"), InvoiceRef: entity.NoInvoice,
		}
		require.NoError(t, store.Entries.Create(ctx, e))
		assert.NotZero(t, e.ID)
		assert.False(t, e.RecordedAt.IsZero())
		id := e.ID
		t.Cleanup(func() { _ = store.Entries.Delete(ctx, id) })
	}

	mine := func() []entity.Entry {
		list, err := store.Entries.List(ctx)
		require.NoError(t, err)
		var out []entity.Entry
		for _, e := range list {
			if e.ProductCode == code {
				out = append(out, e)
			}
		}
		return out
	}

	list := mine()
	require.Len(t, list, 3)
	assert.Equal(t, 20, list[0].Date.Day())
	assert.Equal(t, 5, list[2].Date.Day())
	assert.True(t, list[0].TotalCost.Equal(d("250")))
	assert.Equal(t, entity.NoInvoice, list[0].InvoiceRef)

	require.NoError(t, store.Entries.Delete(ctx, list[0].ID))
	assert.Len(t, mine(), 2)
}

func TestExitAndExpenseRepo_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)
	code, note := uniq("CIM50"), uniq("nota")

	x := &entity.Exit{Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), ProductCode: code,
		Quantity: d("2.5"), UnitPrice: d("40"), TotalSale: d("100"), InvoiceRef: "12345"}
	require.NoError(t, store.Exits.Create(ctx, x))
	t.Cleanup(func() { _ = store.Exits.Delete(ctx, x.ID) })

	exits, err := store.Exits.List(ctx)
	require.NoError(t, err)
	var gotExit *entity.Exit
	for i := range exits {
		if exits[i].ProductCode == code {
			gotExit = &exits[i]
		}
	}
	require.NotNil(t, gotExit)
	assert.True(t, gotExit.Quantity.Equal(d("2.5")))
	assert.True(t, gotExit.TotalSale.Equal(d("100")))
	assert.Equal(t, "12345", gotExit.InvoiceRef)

	g := &entity.Expense{Date: time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), Category: "Combustíveis",
		Amount: d("150.75"), Notes: note}
	require.NoError(t, store.Expenses.Create(ctx, g))
	t.Cleanup(func() { _ = store.Expenses.Delete(ctx, g.ID) })

	expenses, err := store.Expenses.List(ctx)
	require.NoError(t, err)
	var gotExpense *entity.Expense
	for i := range expenses {
		if expenses[i].Notes == note {
			gotExpense = &expenses[i]
		}
	}
	require.NotNil(t, gotExpense)
	assert.True(t, gotExpense.Amount.Equal(d("150.75")))
	assert.Equal(t, "Combustíveis", gotExpense.Category)
	assert.Equal(t, 2, gotExpense.Date.Day())
}

func TestUserRepo_CrearBuscarContar(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)
	username := uniq("admin")

	before, err := store.Users.Count(ctx)
	require.NoError(t, err)

	u := &entity.User{Username: username, PasswordHash: "hash", DisplayName: "Administrador"}
	require.NoError(t, store.Users.Create(ctx, u))
	assert.ErrorIs(t, store.Users.Create(ctx, &entity.User{Username: username, PasswordHash: "x", DisplayName: "X"}), domain.ErrDuplicate)

	got, err := store.Users.FindByUsername(ctx, username)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Administrador", got.DisplayName)

	missing, err := store.Users.FindByUsername(ctx, uniq("nadie"))
	require.NoError(t, err)
	assert.Nil(t, missing)

	n, err := store.Users.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, before+1, n)
}

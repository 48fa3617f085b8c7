package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mluiza/controle-materiais/internal/application/dto"
	"github.com/mluiza/controle-materiais/internal/application/usecase"
	"github.com/mluiza/controle-materiais/internal/domain"
	"github.com/mluiza/controle-materiais/internal/infrastructure/memory"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestProductUseCase_DuplicadoMantieneCatalogo(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewProductUseCase(memory.New().Repositories().Products)

	_, err := uc.Create(ctx, dto.CreateProductRequest{Code: "CIM50", Description: "Cimento", Unit: "saco", SuggestedPrice: d("30")})
	require.NoError(t, err)
	before, _ := uc.List(ctx)

	_, err = uc.Create(ctx, dto.CreateProductRequest{Code: "CIM50", Description: "Outro", Unit: "un"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	after, _ := uc.List(ctx)
	assert.Len(t, after, len(before))
	assert.Equal(t, "Cimento", after[0].Description)
}

func TestProductUseCase_Validaciones(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewProductUseCase(memory.New().Repositories().Products)

	cases := map[string]dto.CreateProductRequest{
		"sin código":       {Description: "X", Unit: "un"},
		"unidad inválida":  {Code: "A", Description: "X", Unit: "galão"},
		"precio negativo":  {Code: "A", Description: "X", Unit: "un", SuggestedPrice: d("-1")},
		"mínimo negativo":  {Code: "A", Description: "X", Unit: "un", MinimumStock: d("-1")},
		"sin descripción":  {Code: "A", Unit: "un"},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := uc.Create(ctx, in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestProductUseCase_DeleteInexistente(t *testing.T) {
	uc := usecase.NewProductUseCase(memory.New().Repositories().Products)
	assert.ErrorIs(t, uc.Delete(context.Background(), "NOPE"), domain.ErrNotFound)
}

func TestProductUseCase_DeleteRecortaCodigo(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewProductUseCase(memory.New().Repositories().Products)

	_, err := uc.Create(ctx, dto.CreateProductRequest{Code: " CIM50 ", Description: "Cimento", Unit: "saco"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, "  CIM50\t"))
	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestExpenseUseCase_MontoNegativo(t *testing.T) {
	uc := usecase.NewExpenseUseCase(memory.New().Repositories().Expenses)
	_, err := uc.Create(context.Background(), "admin", dto.CreateExpenseRequest{
		Category: "Combustíveis", Amount: d("-0.01"), PaymentMethod: "PIX",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExpenseUseCase_FechaVaciaEsHoy(t *testing.T) {
	uc := usecase.NewExpenseUseCase(memory.New().Repositories().Expenses)
	out, err := uc.Create(context.Background(), "admin", dto.CreateExpenseRequest{
		Category: "Combustíveis", Amount: d("10"), PaymentMethod: "PIX",
	})
	require.NoError(t, err)
	assert.Equal(t, time.Now().Format(dto.DateLayout), out.Date)
}

func TestExpenseUseCase_CrearYListar(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewExpenseUseCase(memory.New().Repositories().Expenses)

	out, err := uc.Create(ctx, "admin", dto.CreateExpenseRequest{
		Date: "2025-03-05", Category: "Combustíveis", Amount: d("320.50"), PaymentMethod: "PIX",
	})
	require.NoError(t, err)
	assert.NotZero(t, out.ID)
	assert.Equal(t, "admin", out.RecordedBy)

	_, err = uc.Create(ctx, "admin", dto.CreateExpenseRequest{Date: "2025-03-05", Category: "Lazer", Amount: d("1"), PaymentMethod: "PIX"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Amount.Equal(d("320.50")))
}

func TestCatalog(t *testing.T) {
	c := usecase.Catalog()
	assert.Contains(t, c.Units, "m³")
	assert.Contains(t, c.PaymentMethods, "PIX")
	assert.Len(t, c.ExpenseCategories, 10)
}

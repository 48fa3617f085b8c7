package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mluiza/controle-materiais/internal/domain"
	"github.com/mluiza/controle-materiais/internal/domain/entity"
	"github.com/mluiza/controle-materiais/internal/infrastructure/memory"
)

func TestProductRepo_DuplicadoNoModificaCatalogo(t *testing.T) {
	ctx := context.Background()
	repos := memory.New().Repositories()

	p := &entity.Product{Code: "CIM50", Description: "Cimento", Unit: "saco", SuggestedPrice: decimal.NewFromInt(30)}
	require.NoError(t, repos.Products.Create(ctx, p))

	dup := &entity.Product{Code: "CIM50", Description: "Outro", Unit: "un"}
	assert.ErrorIs(t, repos.Products.Create(ctx, dup), domain.ErrDuplicate)

	list, err := repos.Products.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Cimento", list[0].Description)
}

func TestEntryRepo_OrdenMasRecientePrimero(t *testing.T) {
	ctx := context.Background()
	repos := memory.New().Repositories()
	for _, dd := range []int{3, 10, 1} {
		e := &entity.Entry{ProductCode: "A", Date: time.Date(2025, 1, dd, 0, 0, 0, 0, time.UTC)}
		require.NoError(t, repos.Entries.Create(ctx, e))
		assert.NotZero(t, e.ID)
		assert.False(t, e.RecordedAt.IsZero())
	}
	list, err := repos.Entries.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, 10, list[0].Date.Day())
	assert.Equal(t, 1, list[2].Date.Day())

	require.NoError(t, repos.Entries.Delete(ctx, list[0].ID))
	list, _ = repos.Entries.List(ctx)
	assert.Len(t, list, 2)
}

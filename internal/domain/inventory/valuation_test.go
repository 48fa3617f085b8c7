package inventory_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mluiza/controle-materiais/internal/domain/entity"
	"github.com/mluiza/controle-materiais/internal/domain/inventory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func day(y int, m time.Month, dd int) time.Time { return time.Date(y, m, dd, 0, 0, 0, 0, time.UTC) }

func product(code, price, min, initial string) entity.Product {
	return entity.Product{
		Code: code, Description: "Produto " + code, Unit: "saco",
		SuggestedPrice: d(price), MinimumStock: d(min), InitialStock: d(initial),
	}
}

func entry(code, qty, unitCost string) entity.Entry {
	q, c := d(qty), d(unitCost)
	return entity.Entry{ProductCode: code, Quantity: q, UnitCost: c, TotalCost: q.Mul(c), Date: day(2025, 3, 10)}
}

func exit(code, qty, unitPrice string) entity.Exit {
	q, p := d(qty), d(unitPrice)
	return entity.Exit{ProductCode: code, Quantity: q, UnitPrice: p, TotalSale: q.Mul(p), Date: day(2025, 3, 12)}
}

// ──────────────────────────────────────────────────────────────────────────────
// ComputeStock
// ──────────────────────────────────────────────────────────────────────────────

// Escenario CIM50: inicial 10, una entrada de 20 a 25,00 y una salida de 5.
func TestComputeStock_EscenarioCIM50(t *testing.T) {
	rows := inventory.ComputeStock(
		[]entity.Product{product("CIM50", "32.00", "5", "10")},
		[]entity.Entry{entry("CIM50", "20", "25.00")},
		[]entity.Exit{exit("CIM50", "5", "32.00")},
	)
	require.Len(t, rows, 1)
	r := rows[0]
	assert.True(t, r.CurrentStock.Equal(d("25")), "stock actual: %s", r.CurrentStock)
	assert.True(t, r.AverageCost.Equal(d("25.00")), "costo medio: %s", r.AverageCost)
	assert.True(t, r.StockValue.Equal(d("625.00")), "valor: %s", r.StockValue)
	assert.True(t, r.EntryQty.Equal(d("20")))
	assert.True(t, r.ExitQty.Equal(d("5")))
}

// Sin entradas ni salidas: stock = inicial y valor = inicial × precio sugerido.
func TestComputeStock_SinMovimientosUsaPrecioSugerido(t *testing.T) {
	rows := inventory.ComputeStock([]entity.Product{product("AREIA", "120.50", "2", "4")}, nil, nil)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].CurrentStock.Equal(d("4")))
	assert.True(t, rows[0].AverageCost.Equal(d("120.50")))
	assert.True(t, rows[0].StockValue.Equal(d("482.00")))
}

func TestComputeStock_ListaVaciaDevuelveVacio(t *testing.T) {
	rows := inventory.ComputeStock(nil, []entity.Entry{entry("X", "1", "1")}, nil)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

// La media es aritmética simple (no ponderada) y solo considera entradas del mismo código;
// las entradas duplicadas cuentan todas.
func TestComputeStock_MediaSimpleSinPonderar(t *testing.T) {
	rows := inventory.ComputeStock(
		[]entity.Product{product("TIJ", "1.00", "0", "0"), product("BRITA", "90", "0", "0")},
		[]entity.Entry{
			entry("TIJ", "100", "1.00"),
			entry("TIJ", "1", "2.00"),
			entry("TIJ", "1", "2.00"),
			entry("BRITA", "3", "1000"),
		},
		nil,
	)
	require.Len(t, rows, 2)
	// (1 + 2 + 2) / 3; la ponderada daría ~1.0196
	want := d("5").Div(d("3"))
	assert.True(t, rows[0].AverageCost.Equal(want), "costo medio TIJ: %s", rows[0].AverageCost)
	assert.True(t, rows[0].CurrentStock.Equal(d("102")))
	assert.True(t, rows[1].AverageCost.Equal(d("1000")))
}

// Stock negativo (validación de ventas saltada) se reporta, no falla.
func TestComputeStock_StockNegativoEsAnomalia(t *testing.T) {
	rows := inventory.ComputeStock(
		[]entity.Product{product("CAL", "10", "1", "0")},
		nil,
		[]entity.Exit{exit("CAL", "3", "15")},
	)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].CurrentStock.Equal(d("-3")))
	assert.True(t, rows[0].Negative())
	assert.True(t, rows[0].StockValue.Equal(d("-30")))
}

// stock = inicial + Σentradas − Σsalidas para cualquier permutación de los registros.
func TestComputeStock_IndependienteDelOrden(t *testing.T) {
	products := []entity.Product{product("A", "5", "0", "7"), product("B", "3", "0", "0")}
	entries := []entity.Entry{entry("A", "1.5", "4"), entry("B", "10", "2"), entry("A", "2", "6"), entry("C", "9", "9")}
	exits := []entity.Exit{exit("A", "0.5", "9"), exit("B", "4", "3"), exit("A", "1", "9")}

	base := inventory.ComputeStock(products, entries, exits)
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		e := append([]entity.Entry(nil), entries...)
		x := append([]entity.Exit(nil), exits...)
		rng.Shuffle(len(e), func(a, b int) { e[a], e[b] = e[b], e[a] })
		rng.Shuffle(len(x), func(a, b int) { x[a], x[b] = x[b], x[a] })
		got := inventory.ComputeStock(products, e, x)
		for j := range base {
			assert.True(t, base[j].CurrentStock.Equal(got[j].CurrentStock))
			assert.True(t, base[j].AverageCost.Equal(got[j].AverageCost))
		}
	}
	assert.True(t, base[0].CurrentStock.Equal(d("9")), "A: 7 + 3.5 − 1.5")
	assert.True(t, base[1].CurrentStock.Equal(d("6")), "B: 0 + 10 − 4")
}

func TestTotalValueYFind(t *testing.T) {
	rows := inventory.ComputeStock(
		[]entity.Product{product("A", "2", "0", "3"), product("B", "4", "0", "1")},
		nil, nil,
	)
	assert.True(t, inventory.TotalValue(rows).Equal(d("10")))

	r, ok := inventory.Find(rows, "B")
	require.True(t, ok)
	assert.True(t, r.CurrentStock.Equal(d("1")))
	_, ok = inventory.Find(rows, "Z")
	assert.False(t, ok)
}

func TestInStock_SoloPositivos(t *testing.T) {
	rows := inventory.ComputeStock(
		[]entity.Product{product("A", "1", "0", "3"), product("B", "1", "0", "0"), product("C", "1", "0", "0")},
		nil,
		[]entity.Exit{exit("C", "1", "1")},
	)
	in := inventory.InStock(rows)
	require.Len(t, in, 1)
	assert.Equal(t, "A", in[0].Code)
}

func TestAverageCost_Fallback(t *testing.T) {
	assert.True(t, inventory.AverageCost(nil, d("7.5")).Equal(d("7.5")))
	assert.True(t, inventory.AverageCost([]decimal.Decimal{d("1"), d("2")}, d("100")).Equal(d("1.5")))
}

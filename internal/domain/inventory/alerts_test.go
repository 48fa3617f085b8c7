package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mluiza/controle-materiais/internal/domain/entity"
	"github.com/mluiza/controle-materiais/internal/domain/inventory"
)

// El conjunto de alertas es exactamente { P : stock(P) <= mínimo(P) }, incluido el caso de igualdad.
func TestAlerts_FiltraStockMenorOIgualAlMinimo(t *testing.T) {
	rows := inventory.ComputeStock(
		[]entity.Product{
			product("IGUAL", "1", "10", "10"),
			product("DEBAJO", "1", "10", "3"),
			product("ARRIBA", "1", "10", "11"),
			product("NEG", "1", "0", "0"),
		},
		nil,
		[]entity.Exit{exit("NEG", "1", "1")},
	)
	alerts := inventory.Alerts(rows)
	codes := make([]string, 0, len(alerts))
	for _, a := range alerts {
		codes = append(codes, a.Code)
	}
	assert.Equal(t, []string{"IGUAL", "DEBAJO", "NEG"}, codes)
}

func TestAlerts_VacioCuandoNingunoViola(t *testing.T) {
	rows := inventory.ComputeStock([]entity.Product{product("A", "1", "1", "5")}, nil, nil)
	alerts := inventory.Alerts(rows)
	assert.NotNil(t, alerts)
	assert.Empty(t, alerts)
	assert.Empty(t, inventory.Alerts(nil))
}

func TestAlertMessage(t *testing.T) {
	rows := inventory.ComputeStock([]entity.Product{{
		Code: "CIM50", Description: "Cimento 50kg", Unit: "saco",
		SuggestedPrice: d("30"), MinimumStock: d("20"), InitialStock: d("4"),
	}}, nil, nil)
	require.Len(t, rows, 1)
	assert.Equal(t, "Cimento 50kg: estoque 4.00 saco | mínimo 20.00", rows[0].AlertMessage())
}

package csvimport_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/mluiza/controle-materiais/internal/infrastructure/csvimport"
)

func TestParseDecimal(t *testing.T) {
	cases := map[string]string{
		"1.234,56":  "1234.56",
		"12,5":      "12.5",
		"12.5":      "12.5",
		"R$ 35,00":  "35",
		"":          "0",
		"  7 ":      "7",
	}
	for in, want := range cases {
		got, err := csvimport.ParseDecimal(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got.String(), in)
	}

	_, err := csvimport.ParseDecimal("abc")
	assert.Error(t, err)
}

func TestReadProducts_UTF8(t *testing.T) {
	in := "\xEF\xBB\xBFcodigo;descricao;unidade;preco_sugerido;estoque_minimo;estoque_inicial\n" +
		"CIM50;Cimento CP-II 50kg;saco;35,90;10;40\n" +
		"\n" +
		"AREIA;Areia média;m³;120;5\n"

	got, err := csvimport.ReadProducts(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "CIM50", got[0].Code)
	assert.Equal(t, "35.9", got[0].SuggestedPrice.String())
	assert.Equal(t, "40", got[0].InitialStock.String())

	assert.Equal(t, "Areia média", got[1].Description)
	assert.Equal(t, "m³", got[1].Unit)
	assert.True(t, got[1].InitialStock.IsZero())
}

func TestReadProducts_Windows1252(t *testing.T) {
	utf := "codigo;descricao;unidade\nTIJ;Tijolo cerâmico;un\n"
	enc, err := charmap.Windows1252.NewEncoder().Bytes([]byte(utf))
	require.NoError(t, err)

	got, err := csvimport.ReadProducts(bytes.NewReader(enc))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Tijolo cerâmico", got[0].Description)
}

func TestReadProducts_ColumnasFaltantes(t *testing.T) {
	_, err := csvimport.ReadProducts(strings.NewReader("codigo;descricao\nX;Y\n"))
	assert.Error(t, err)
}

func TestReadProducts_NumeroInvalido(t *testing.T) {
	_, err := csvimport.ReadProducts(strings.NewReader("h\nX;Y;un;dez\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "línea 2")
}

func TestReadUsers(t *testing.T) {
	in := "usuario;senha;nome_completo\nmaria;maria2024;Maria Luiza\nvitoria;v123\n"
	got, err := csvimport.ReadUsers(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Maria Luiza", got[0].DisplayName)
	assert.Equal(t, "vitoria", got[1].DisplayName)
}

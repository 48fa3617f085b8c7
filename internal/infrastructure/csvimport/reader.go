// Package csvimport lee las planillas de carga inicial (productos y usuarios) exportadas
// desde Excel: separador ";", coma decimal y codificación Windows-1252 o UTF-8.
package csvimport

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/mluiza/controle-materiais/internal/application/dto"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// UserRow fila de la planilla de usuarios.
type UserRow struct {
	Username    string
	Password    string
	DisplayName string
}

// ReadProducts lee codigo;descricao;unidade;preco_sugerido;estoque_minimo;estoque_inicial.
// La primera fila es encabezado. Las columnas numéricas vacías valen cero.
func ReadProducts(r io.Reader) ([]dto.CreateProductRequest, error) {
	records, err := readRecords(r, 3)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CreateProductRequest, 0, len(records))
	for i, rec := range records {
		line := i + 2
		nums := make([]decimal.Decimal, 3)
		for k := range nums {
			col := 3 + k
			if col >= len(rec) {
				continue
			}
			v, err := ParseDecimal(rec[col])
			if err != nil {
				return nil, fmt.Errorf("línea %d, columna %d: %w", line, col+1, err)
			}
			nums[k] = v
		}
		out = append(out, dto.CreateProductRequest{
			Code:           rec[0],
			Description:    rec[1],
			Unit:           rec[2],
			SuggestedPrice: nums[0],
			MinimumStock:   nums[1],
			InitialStock:   nums[2],
		})
	}
	return out, nil
}

// ReadUsers lee usuario;senha;nome_completo. Sin nombre se usa el usuario.
func ReadUsers(r io.Reader) ([]UserRow, error) {
	records, err := readRecords(r, 2)
	if err != nil {
		return nil, err
	}
	out := make([]UserRow, 0, len(records))
	for _, rec := range records {
		u := UserRow{Username: rec[0], Password: rec[1], DisplayName: rec[0]}
		if len(rec) > 2 && rec[2] != "" {
			u.DisplayName = rec[2]
		}
		out = append(out, u)
	}
	return out, nil
}

// ParseDecimal acepta "1.234,56", "12,5" y "12.5".
func ParseDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "R$"))
	if s == "" {
		return decimal.Zero, nil
	}
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	return decimal.NewFromString(s)
}

// readRecords decodifica, salta el encabezado y las filas vacías, y exige minCols columnas.
func readRecords(r io.Reader, minCols int) ([][]string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	cr := csv.NewReader(decode(raw))
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	all, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv: %w", err)
	}
	if len(all) == 0 {
		return nil, nil
	}
	out := make([][]string, 0, len(all)-1)
	for i, rec := range all[1:] {
		for k := range rec {
			rec[k] = strings.TrimSpace(rec[k])
		}
		if len(rec) == 0 || (len(rec) == 1 && rec[0] == "") {
			continue
		}
		if len(rec) < minCols {
			return nil, fmt.Errorf("línea %d: se esperaban al menos %d columnas", i+2, minCols)
		}
		out = append(out, rec)
	}
	return out, nil
}

// decode devuelve el contenido en UTF-8: sin BOM si ya lo es, si no lo convierte desde Windows-1252.
func decode(raw []byte) io.Reader {
	raw = bytes.TrimPrefix(raw, utf8BOM)
	if utf8.Valid(raw) {
		return bytes.NewReader(raw)
	}
	return transform.NewReader(bytes.NewReader(raw), charmap.Windows1252.NewDecoder())
}

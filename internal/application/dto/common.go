package dto

import (
	"strings"
	"time"

	"github.com/mluiza/controle-materiais/internal/domain"
)

// DateLayout formato de fechas en la API (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ParseDate interpreta una fecha YYYY-MM-DD como día calendario (UTC).
// Vacío devuelve fallback.
func ParseDate(s string, fallback time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, domain.ErrInvalidInput
	}
	return t, nil
}

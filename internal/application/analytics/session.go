package analytics

import (
	"time"

	"github.com/mluiza/controle-materiais/internal/application/dto"
	"github.com/mluiza/controle-materiais/internal/domain"
	"github.com/mluiza/controle-materiais/internal/domain/inventory"
)

// Session contexto explícito de una interacción: usuario autenticado y período elegido.
// Se construye por request; no hay estado de sesión global.
type Session struct {
	User        string
	DisplayName string
	Period      inventory.Period
}

// ParsePeriod interpreta start/end (YYYY-MM-DD). Si falta alguno se usa el mes en curso:
// start = día 1, end = hoy. start > end es válido y produce totales en cero.
func ParsePeriod(start, end string, now time.Time) (inventory.Period, error) {
	def := inventory.MonthToDate(now)
	s, err := dto.ParseDate(start, def.Start)
	if err != nil {
		return inventory.Period{}, domain.ErrInvalidInput
	}
	e, err := dto.ParseDate(end, def.End)
	if err != nil {
		return inventory.Period{}, domain.ErrInvalidInput
	}
	return inventory.NewPeriod(s, e), nil
}

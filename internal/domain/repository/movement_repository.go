package repository

import (
	"context"

	"github.com/mluiza/controle-materiais/internal/domain/entity"
)

// EntryRepository puerto de persistencia para entradas (compras).
// Las listas se devuelven de la fecha más reciente a la más antigua.
type EntryRepository interface {
	// Create asigna ID y RecordedAt.
	Create(ctx context.Context, entry *entity.Entry) error
	List(ctx context.Context) ([]entity.Entry, error)
	Delete(ctx context.Context, id int64) error
}

// ExitRepository puerto de persistencia para salidas (ventas).
type ExitRepository interface {
	Create(ctx context.Context, exit *entity.Exit) error
	List(ctx context.Context) ([]entity.Exit, error)
	Delete(ctx context.Context, id int64) error
}

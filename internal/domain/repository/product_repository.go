package repository

import (
	"context"

	"github.com/mluiza/controle-materiais/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para el catálogo (DIP).
// Solo inserción y borrado: el catálogo no tiene actualización.
type ProductRepository interface {
	// Create devuelve domain.ErrDuplicate si el código ya existe; el catálogo queda sin cambios.
	Create(ctx context.Context, product *entity.Product) error
	// GetByCode devuelve nil, nil si no existe.
	GetByCode(ctx context.Context, code string) (*entity.Product, error)
	// List devuelve los productos ordenados por código.
	List(ctx context.Context) ([]entity.Product, error)
	DeleteByCode(ctx context.Context, code string) error
}

package postgres

import (
	"context"
	"fmt"

	"github.com/mluiza/controle-materiais/internal/domain/repository"
	"github.com/mluiza/controle-materiais/pkg/config"
)

// Open conecta, aplica migraciones y devuelve los repositorios sobre el pool.
func Open(ctx context.Context, cfg config.DBConfig) (*repository.Store, error) {
	pool, err := NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := RunMigrations(pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migraciones postgres: %w", err)
	}
	return &repository.Store{
		Products: NewProductRepository(pool),
		Entries:  NewEntryRepository(pool),
		Exits:    NewExitRepository(pool),
		Expenses: NewExpenseRepository(pool),
		Users:    NewUserRepository(pool),
		Close:    pool.Close,
	}, nil
}

// Package store elige el backend de persistencia según DB_DRIVER.
package store

import (
	"context"
	"fmt"

	"github.com/mluiza/controle-materiais/internal/domain/repository"
	"github.com/mluiza/controle-materiais/internal/infrastructure/memory"
	"github.com/mluiza/controle-materiais/internal/infrastructure/postgres"
	"github.com/mluiza/controle-materiais/internal/infrastructure/sqlite"
	"github.com/mluiza/controle-materiais/pkg/config"
)

// Open abre los repositorios del backend configurado.
func Open(ctx context.Context, cfg config.DBConfig) (*repository.Store, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return postgres.Open(ctx, cfg)
	case config.DriverSQLite:
		return sqlite.Open(ctx, cfg.SQLitePath)
	case config.DriverMemory:
		return memory.New().Repositories(), nil
	default:
		return nil, fmt.Errorf("DB_DRIVER desconocido: %q", cfg.Driver)
	}
}

// seed carga productos y usuarios iniciales desde planillas CSV exportadas de Excel.
//
// Uso: go run ./cmd/seed -products produtos.csv [-users usuarios.csv]
//
// produtos.csv: codigo;descricao;unidade;preco_sugerido;estoque_minimo;estoque_inicial
// usuarios.csv: usuario;senha;nome_completo
//
// Usa el mismo backend que la API (DB_DRIVER, SQLITE_PATH, DATABASE_URL...).
// Los códigos y usuarios existentes se informan y se saltan.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mluiza/controle-materiais/internal/application/auth"
	"github.com/mluiza/controle-materiais/internal/application/usecase"
	"github.com/mluiza/controle-materiais/internal/domain"
	"github.com/mluiza/controle-materiais/internal/infrastructure/csvimport"
	"github.com/mluiza/controle-materiais/internal/infrastructure/store"
	"github.com/mluiza/controle-materiais/pkg/config"
	"github.com/mluiza/controle-materiais/pkg/logger"
)

func main() {
	productsPath := flag.String("products", "", "CSV de productos")
	usersPath := flag.String("users", "", "CSV de usuarios")
	flag.Parse()
	if *productsPath == "" && *usersPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Component("seed")

	if err := run(context.Background(), cfg.DB, log, *productsPath, *usersPath); err != nil {
		log.Error().Err(err).Msg("carga interrumpida")
		os.Exit(1)
	}
}

// run abre el almacenamiento, carga las planillas indicadas y lo cierra siempre, aun con error.
func run(ctx context.Context, db config.DBConfig, log *logger.Logger, productsPath, usersPath string) error {
	repos, err := store.Open(ctx, db)
	if err != nil {
		return fmt.Errorf("abrir almacenamiento (%s): %w", db.Driver, err)
	}
	defer repos.Close()

	if productsPath != "" {
		rows, err := readFile(productsPath, csvimport.ReadProducts)
		if err != nil {
			return fmt.Errorf("leer productos %s: %w", productsPath, err)
		}
		uc := usecase.NewProductUseCase(repos.Products)
		created, skipped := 0, 0
		for _, in := range rows {
			if _, err := uc.Create(ctx, in); err != nil {
				if errors.Is(err, domain.ErrDuplicate) || errors.Is(err, domain.ErrInvalidInput) {
					log.Warn().Err(err).Str("code", in.Code).Msg("producto omitido")
					skipped++
					continue
				}
				return fmt.Errorf("crear producto %q: %w", in.Code, err)
			}
			created++
		}
		log.Info().Int("created", created).Int("skipped", skipped).Msg("productos cargados")
	}

	if usersPath != "" {
		rows, err := readFile(usersPath, csvimport.ReadUsers)
		if err != nil {
			return fmt.Errorf("leer usuarios %s: %w", usersPath, err)
		}
		uc := auth.NewAuthUseCase(repos.Users, auth.JWTConfig{})
		created := 0
		for _, u := range rows {
			if _, err := uc.CreateUser(ctx, u.Username, u.Password, u.DisplayName); err != nil {
				if errors.Is(err, domain.ErrDuplicate) || errors.Is(err, domain.ErrInvalidInput) {
					log.Warn().Err(err).Str("username", u.Username).Msg("usuario omitido")
					continue
				}
				return fmt.Errorf("crear usuario %q: %w", u.Username, err)
			}
			created++
		}
		log.Info().Int("created", created).Msg("usuarios cargados")
	}
	return nil
}

func readFile[T any](path string, read func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return read(f)
}

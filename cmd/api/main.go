// @title                       Controle de Materiais API
// @version                     1.0
// @description                 Estoque, compras, vendas, gastos e relatórios de uma loja de materiais de construção.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/mluiza/controle-materiais/docs"
	appanalytics "github.com/mluiza/controle-materiais/internal/application/analytics"
	"github.com/mluiza/controle-materiais/internal/application/auth"
	"github.com/mluiza/controle-materiais/internal/application/inventory"
	"github.com/mluiza/controle-materiais/internal/application/usecase"
	infraamqp "github.com/mluiza/controle-materiais/internal/infrastructure/amqp"
	infrapdf "github.com/mluiza/controle-materiais/internal/infrastructure/pdf"
	"github.com/mluiza/controle-materiais/internal/infrastructure/store"
	infraxlsx "github.com/mluiza/controle-materiais/internal/infrastructure/xlsx"
	httpRouter "github.com/mluiza/controle-materiais/internal/interfaces/http"
	"github.com/mluiza/controle-materiais/pkg/config"
	"github.com/mluiza/controle-materiais/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	// run devuelve el error en vez de salir: los defer (almacenamiento, RabbitMQ) siempre se ejecutan.
	if err := run(cfg, log); err != nil {
		log.Error().Err(err).Msg("aplicación finalizada con error")
		os.Exit(1)
	}
	log.Info().Msg("aplicación detenida")
}

func run(cfg *config.Config, log *logger.Logger) error {
	ctx := context.Background()
	repos, err := store.Open(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("abrir almacenamiento (%s): %w", cfg.DB.Driver, err)
	}
	defer repos.Close()

	authUC := auth.NewAuthUseCase(repos.Users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	created, err := authUC.EnsureAdmin(ctx, cfg.Auth.AdminPassword)
	if err != nil {
		return fmt.Errorf("crear usuario inicial: %w", err)
	}
	if created {
		log.Info().Str("username", auth.AdminUsername).Msg("usuario inicial creado")
	}

	// Alertas de stock: sin AMQP_URL no se publica nada.
	var publisher inventory.AlertPublisher = infraamqp.NoopPublisher{}
	if cfg.AMQP.URL != "" {
		p, err := infraamqp.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange, cfg.AMQP.Queue, log)
		if err != nil {
			return fmt.Errorf("conexión a RabbitMQ: %w", err)
		}
		defer p.Close()
		publisher = p
	}

	productUC := usecase.NewProductUseCase(repos.Products)
	expenseUC := usecase.NewExpenseUseCase(repos.Expenses)
	movementUC := inventory.NewMovementUseCase(repos.Products, repos.Entries, repos.Exits, publisher, log)
	dashboardUC := appanalytics.NewDashboardUseCase(repos)
	exportUC := appanalytics.NewExportUseCase(repos,
		infraxlsx.NewWorkbookWriter(),
		infrapdf.NewMarotoReportGenerator(),
		cfg.App.CompanyName,
	)

	app := fiber.New(httpRouter.AppConfig(cfg.App.Name))
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath:    "/",
		FileContent: []byte(docs.SwaggerInfo.ReadDoc()),
		Path:        "docs",
		Title:       "Controle de Materiais API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		ExpenseUC:   expenseUC,
		MovementUC:  movementUC,
		DashboardUC: dashboardUC,
		ExportUC:    exportUC,
		JWTSecret:   cfg.JWT.Secret,
		Logger:      log.Component("http"),
	})

	listenErr := make(chan error, 1)
	go func() {
		listenErr <- app.Listen(cfg.HTTP.Addr())
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-listenErr:
		return fmt.Errorf("servidor HTTP: %w", err)
	case <-quit:
	}

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		return fmt.Errorf("apagado del servidor: %w", err)
	}
	return nil
}

package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mluiza/controle-materiais/internal/application/analytics"
	"github.com/mluiza/controle-materiais/internal/application/auth"
	"github.com/mluiza/controle-materiais/internal/application/inventory"
	"github.com/mluiza/controle-materiais/internal/application/usecase"
	"github.com/mluiza/controle-materiais/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	ExpenseUC   *usecase.ExpenseUseCase
	MovementUC  *inventory.MovementUseCase
	DashboardUC *analytics.DashboardUseCase
	ExportUC    *analytics.ExportUseCase
	JWTSecret   string
	Logger      *logger.Logger
}

// AppConfig configuración de Fiber para la API. UnescapePath decodifica los
// parámetros de ruta: los códigos de producto pueden tener espacios o acentos.
func AppConfig(appName string) fiber.Config {
	return fiber.Config{
		AppName:      appName,
		UnescapePath: true,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	}
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, log)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	productHandler := NewProductHandler(deps.ProductUC, log)
	protected.Get("/catalog", productHandler.Catalog)
	products := protected.Group("/products")
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Delete("/:code", productHandler.Delete)

	movementHandler := NewMovementHandler(deps.MovementUC, log)
	entries := protected.Group("/entries")
	entries.Get("/", movementHandler.ListEntries)
	entries.Post("/", movementHandler.CreateEntry)
	entries.Delete("/:id", movementHandler.DeleteEntry)

	exits := protected.Group("/exits")
	exits.Get("/", movementHandler.ListExits)
	exits.Post("/", movementHandler.CreateExit)
	exits.Delete("/:id", movementHandler.DeleteExit)

	expenseHandler := NewExpenseHandler(deps.ExpenseUC, log)
	expenses := protected.Group("/expenses")
	expenses.Get("/", expenseHandler.List)
	expenses.Post("/", expenseHandler.Create)
	expenses.Delete("/:id", expenseHandler.Delete)

	// Stock y reportes
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, log)
	stock := protected.Group("/stock")
	stock.Get("/", dashboardHandler.GetStock)
	stock.Get("/:code", dashboardHandler.GetStockByCode)
	protected.Get("/alerts", dashboardHandler.GetAlerts)
	protected.Get("/dashboard/summary", dashboardHandler.GetSummary)
	protected.Get("/reports/invoices", dashboardHandler.GetInvoiceReport)
	protected.Get("/reports/top-products", dashboardHandler.GetTopProducts)

	// Exportaciones
	exportHandler := NewExportHandler(deps.ExportUC, log)
	protected.Get("/export/xlsx", exportHandler.Workbook)
	protected.Get("/export/pdf", exportHandler.PDF)
}

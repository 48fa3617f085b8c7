package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/mluiza/controle-materiais/internal/application/analytics"
	"github.com/mluiza/controle-materiais/pkg/logger"
)

// DashboardHandler resumen del período, tabla de stock, alertas y reportes.
type DashboardHandler struct {
	uc  *appanalytics.DashboardUseCase
	log *logger.Logger
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, log: log}
}

// sessionFrom arma la sesión de la petición: usuario del token y período de ?start=&end=.
func sessionFrom(c *fiber.Ctx) (appanalytics.Session, error) {
	p, err := appanalytics.ParsePeriod(c.Query("start"), c.Query("end"), time.Now())
	if err != nil {
		return appanalytics.Session{}, err
	}
	return appanalytics.Session{User: GetUsername(c), DisplayName: GetDisplayName(c), Period: p}, nil
}

// GetSummary godoc
// @Summary      Resumen financiero del período
// @Description  Compras, ventas, gastos, lucro y separación con/sin nota. Sin fechas usa el mes en curso.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        start  query  string  false  "Inicio (YYYY-MM-DD)"
// @Param        end    query  string  false  "Fin (YYYY-MM-DD)"
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	s, err := sessionFrom(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.uc.GetSummary(c.Context(), s)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetStock godoc
// @Summary      Tabla de stock valorizada
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StockListResponse
// @Router       /api/stock [get]
func (h *DashboardHandler) GetStock(c *fiber.Ctx) error {
	out, err := h.uc.GetStock(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetAlerts godoc
// @Summary      Productos en o por debajo del stock mínimo
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.AlertResponse
// @Router       /api/alerts [get]
func (h *DashboardHandler) GetAlerts(c *fiber.Ctx) error {
	out, err := h.uc.GetAlerts(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetStockByCode godoc
// @Summary      Stock disponible de un producto
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        code  path  string  true  "Código"
// @Success      200  {object}  dto.StockRowResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/{code} [get]
func (h *DashboardHandler) GetStockByCode(c *fiber.Ctx) error {
	out, err := h.uc.GetStockByCode(c.Context(), c.Params("code"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetInvoiceReport godoc
// @Summary      Compras y ventas con/sin nota fiscal en el período
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        start  query  string  false  "Inicio (YYYY-MM-DD)"
// @Param        end    query  string  false  "Fin (YYYY-MM-DD)"
// @Success      200  {object}  dto.InvoiceReportDTO
// @Router       /api/reports/invoices [get]
func (h *DashboardHandler) GetInvoiceReport(c *fiber.Ctx) error {
	s, err := sessionFrom(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.uc.GetInvoiceReport(c.Context(), s)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetTopProducts godoc
// @Summary      Productos con mayor facturación acumulada
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Cantidad (default 10)"
// @Success      200  {array}  dto.TopProductDTO
// @Router       /api/reports/top-products [get]
func (h *DashboardHandler) GetTopProducts(c *fiber.Ctx) error {
	out, err := h.uc.GetTopProducts(c.Context(), c.QueryInt("limit", appanalytics.DefaultTopProducts))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

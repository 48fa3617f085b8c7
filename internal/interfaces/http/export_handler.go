package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/mluiza/controle-materiais/internal/application/analytics"
	"github.com/mluiza/controle-materiais/pkg/logger"
)

// Content types de las descargas.
const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF  = "application/pdf"
)

// ExportHandler descargas de planilla y reporte PDF.
type ExportHandler struct {
	uc  *appanalytics.ExportUseCase
	log *logger.Logger
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *appanalytics.ExportUseCase, log *logger.Logger) *ExportHandler {
	return &ExportHandler{uc: uc, log: log}
}

// Workbook godoc
// @Summary      Exportar planilla XLSX
// @Description  Hojas ENTRADAS, SAIDAS, GASTOS, PRODUTOS, ESTOQUE y RESUMO del período.
// @Tags         export
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        start  query  string  false  "Inicio (YYYY-MM-DD)"
// @Param        end    query  string  false  "Fin (YYYY-MM-DD)"
// @Success      200  {file}  binary
// @Router       /api/export/xlsx [get]
func (h *ExportHandler) Workbook(c *fiber.Ctx) error {
	s, err := sessionFrom(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	data, name, err := h.uc.ExportWorkbook(c.Context(), s)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return sendFile(c, contentTypeXLSX, name, data)
}

// PDF godoc
// @Summary      Exportar reporte PDF
// @Description  Tabla de stock valorizada, alertas y totales del período.
// @Tags         export
// @Security     Bearer
// @Produce      application/pdf
// @Param        start  query  string  false  "Inicio (YYYY-MM-DD)"
// @Param        end    query  string  false  "Fin (YYYY-MM-DD)"
// @Success      200  {file}  binary
// @Router       /api/export/pdf [get]
func (h *ExportHandler) PDF(c *fiber.Ctx) error {
	s, err := sessionFrom(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	data, name, err := h.uc.ExportPDF(c.Context(), s)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return sendFile(c, contentTypePDF, name, data)
}

func sendFile(c *fiber.Ctx, contentType, name string, data []byte) error {
	c.Attachment(name)
	c.Set(fiber.HeaderContentType, contentType)
	return c.Send(data)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mluiza/controle-materiais/internal/application/dto"
	"github.com/mluiza/controle-materiais/internal/application/inventory"
	"github.com/mluiza/controle-materiais/pkg/logger"
)

// MovementHandler compras (entradas) y ventas (salidas).
type MovementHandler struct {
	uc  *inventory.MovementUseCase
	log *logger.Logger
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *inventory.MovementUseCase, log *logger.Logger) *MovementHandler {
	return &MovementHandler{uc: uc, log: log}
}

// ─── Entradas ─────────────────────────────────────────────────────────────────

// CreateEntry godoc
// @Summary      Registrar compra
// @Tags         entries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEntryRequest  true  "Compra"
// @Success      201   {object}  dto.EntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/entries [post]
func (h *MovementHandler) CreateEntry(c *fiber.Ctx) error {
	var in dto.CreateEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.RegisterEntry(c.Context(), GetUsername(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListEntries godoc
// @Summary      Listar compras (más recientes primero)
// @Tags         entries
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.EntryResponse
// @Router       /api/entries [get]
func (h *MovementHandler) ListEntries(c *fiber.Ctx) error {
	out, err := h.uc.ListEntries(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// DeleteEntry godoc
// @Summary      Eliminar compra
// @Tags         entries
// @Security     Bearer
// @Param        id  path  int  true  "ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/entries/{id} [delete]
func (h *MovementHandler) DeleteEntry(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	if err := h.uc.DeleteEntry(c.Context(), id); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ─── Salidas ──────────────────────────────────────────────────────────────────

// CreateExit godoc
// @Summary      Registrar venta
// @Description  Rechaza la venta si la cantidad supera el stock disponible.
// @Tags         exits
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateExitRequest  true  "Venta"
// @Success      201   {object}  dto.ExitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/exits [post]
func (h *MovementHandler) CreateExit(c *fiber.Ctx) error {
	var in dto.CreateExitRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.RegisterExit(c.Context(), GetUsername(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListExits godoc
// @Summary      Listar ventas (más recientes primero)
// @Tags         exits
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ExitResponse
// @Router       /api/exits [get]
func (h *MovementHandler) ListExits(c *fiber.Ctx) error {
	out, err := h.uc.ListExits(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// DeleteExit godoc
// @Summary      Eliminar venta
// @Tags         exits
// @Security     Bearer
// @Param        id  path  int  true  "ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/exits/{id} [delete]
func (h *MovementHandler) DeleteExit(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	if err := h.uc.DeleteExit(c.Context(), id); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

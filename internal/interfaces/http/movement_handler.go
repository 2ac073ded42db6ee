package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/bxrgzz/StockFlow-Manager/internal/application/dto"
	"github.com/bxrgzz/StockFlow-Manager/internal/application/inventory"
	"github.com/bxrgzz/StockFlow-Manager/internal/domain"
)

// MovementHandler maneja las peticiones HTTP del ledger de movimientos.
type MovementHandler struct {
	uc *inventory.MovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *inventory.MovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// List godoc
// @Summary      Listar movimientos
// @Description  Todos los movimientos enriquecidos con productName/productSku,
// @Description  más recientes primero.
// @Tags         movements
// @Produce      json
// @Success      200  {array}   dto.MovementWithProductResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return internalError(c)
	}
	return c.JSON(out)
}

// Recent godoc
// @Summary      Listar movimientos recientes
// @Tags         movements
// @Produce      json
// @Param        limit  query  int  false  "Cantidad de movimientos"  default(10)
// @Success      200    {array}   dto.MovementWithProductResponse
// @Failure      500    {object}  dto.ErrorResponse
// @Router       /api/movements/recent [get]
func (h *MovementHandler) Recent(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", inventory.DefaultRecentLimit)
	out, err := h.uc.ListRecent(c.Context(), limit)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar movimiento de stock
// @Description  previousStock y newStock los calcula el servidor; cualquier
// @Description  valor enviado por el cliente se ignora.
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InsertMovementRequest  true  "productId, type (entrada|saida), quantity, responsible, notes"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	var in dto.InsertMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validationMessage(err)})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: domain.ErrNotFound.Error()})
		case errors.Is(err, domain.ErrInsufficientStock):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: domain.ErrInsufficientStock.Error()})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: domain.ErrInvalidInput.Error()})
		}
		return internalError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

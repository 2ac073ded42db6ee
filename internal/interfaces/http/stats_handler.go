package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bxrgzz/StockFlow-Manager/internal/application/usecase"
)

// StatsHandler maneja el endpoint de estadísticas del dashboard.
type StatsHandler struct {
	uc *usecase.StatsUseCase
}

// NewStatsHandler construye el handler.
func NewStatsHandler(uc *usecase.StatsUseCase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

// GetStats godoc
// @Summary      Estadísticas del dashboard
// @Description  Totales de productos, productos en alerta y movimientos del
// @Description  día calendario local partidos por tipo. Sin caché.
// @Tags         stats
// @Produce      json
// @Success      200  {object}  dto.StatsResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stats [get]
func (h *StatsHandler) GetStats(c *fiber.Ctx) error {
	out, err := h.uc.GetStats(c.Context())
	if err != nil {
		return internalError(c)
	}
	return c.JSON(out)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/invoicer-api/internal/application/analytics"
)

// DashboardHandler maneja el resumen del dashboard.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary GET /api/dashboard/summary
//
// @Summary      KPIs, serie de ingresos mensuales y actividad reciente
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

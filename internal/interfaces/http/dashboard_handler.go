package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/custodia-api/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del módulo de agregación.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Resumen de custodia
// @Description  Conteos sobre los activos activos: total, por ubicación, por condición,
//
//	por categoría y por unidad. Invariante: en bodega + en unidades == total.
//
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.Summary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

// GetRecentTransfers godoc
// @Summary      Transferencias recientes
// @Tags         dashboard
// @Produce      json
// @Param        limit  query  int  false  "Cantidad de transferencias"  default(20)
// @Success      200  {array}   dto.TransferResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/dashboard/recent-transfers [get]
func (h *DashboardHandler) GetRecentTransfers(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", analytics.DefaultRecentLimit)
	out, err := h.uc.RecentTransfers(c.Context(), limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

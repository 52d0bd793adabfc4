package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/application/planner"
)

// PlanningHandler maneja las corridas del motor de planificación de compras.
type PlanningHandler struct {
	planRun *planner.PlanRunUseCase
}

// NewPlanningHandler construye el handler.
func NewPlanningHandler(planRun *planner.PlanRunUseCase) *PlanningHandler {
	return &PlanningHandler{planRun: planRun}
}

// Run godoc
// @Summary      Ejecutar una corrida de planificación de compras
// @Description  Netea demanda por SKU, rankea proveedores, planifica contenedores y genera un borrador de PO.
// @Tags         planning
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PlanRunRequest  true  "Parámetros de la corrida (skus vacío planifica todo lo bajo punto de reorden)"
// @Success      201   {object}  dto.PlanRunResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/planning/runs [post]
func (h *PlanningHandler) Run(c *fiber.Ctx) error {
	var in dto.PlanRunRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.planRun.Run(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

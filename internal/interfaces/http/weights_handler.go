package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/application/planner"
)

// WeightsHandler maneja los pesos de scoring por categoría de producto.
type WeightsHandler struct {
	uc *planner.WeightsUseCase
}

// NewWeightsHandler construye el handler.
func NewWeightsHandler(uc *planner.WeightsUseCase) *WeightsHandler {
	return &WeightsHandler{uc: uc}
}

// Get godoc
// @Summary      Obtener pesos de scoring de una categoría
// @Tags         planning
// @Produce      json
// @Param        category  path  string  true  "Categoría de producto"
// @Success      200  {object}  dto.ScoringWeightsDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/planning/weights/{category} [get]
func (h *WeightsHandler) Get(c *fiber.Ctx) error {
	category := c.Params("category")
	if category == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_CATEGORY", Message: "category es requerido"})
	}
	out, err := h.uc.Get(c.UserContext(), category)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Reemplazar pesos de scoring de una categoría
// @Description  Los cuatro pesos deben sumar 1.0 ± 0.01; conjuntos fuera de tolerancia se rechazan sin normalizar.
// @Tags         planning
// @Accept       json
// @Produce      json
// @Param        category  path  string                 true  "Categoría de producto"
// @Param        body      body  dto.ScoringWeightsDTO  true  "Pesos nuevos"
// @Success      200  {object}  dto.ScoringWeightsDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/planning/weights/{category} [put]
func (h *WeightsHandler) Update(c *fiber.Ctx) error {
	category := c.Params("category")
	if category == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_CATEGORY", Message: "category es requerido"})
	}
	var in dto.ScoringWeightsDTO
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), category, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

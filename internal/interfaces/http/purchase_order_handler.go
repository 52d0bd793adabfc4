package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/application/usecase"
)

// PurchaseOrderHandler maneja las consultas de borradores de orden de compra.
// La creación de borradores es exclusiva de POST /api/planning/runs.
type PurchaseOrderHandler struct {
	uc *usecase.PurchaseOrderUseCase
}

// NewPurchaseOrderHandler construye el handler.
func NewPurchaseOrderHandler(uc *usecase.PurchaseOrderUseCase) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{uc: uc}
}

// List godoc
// @Summary      Listar borradores de orden de compra
// @Tags         purchase-orders
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {array}  dto.PurchaseOrderDTO
// @Router       /api/purchase-orders [get]
func (h *PurchaseOrderHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.List(c.UserContext(), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByNumber godoc
// @Summary      Obtener borrador por número
// @Tags         purchase-orders
// @Produce      json
// @Param        number  path  string  true  "Número visible (PO-YYYYMMDD-XXXX)"
// @Success      200  {object}  dto.PurchaseOrderDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/{number} [get]
func (h *PurchaseOrderHandler) GetByNumber(c *fiber.Ctx) error {
	number := c.Params("number")
	if number == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_NUMBER", Message: "number es requerido"})
	}
	out, err := h.uc.GetByNumber(c.UserContext(), number)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

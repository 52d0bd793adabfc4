package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Compras-api/internal/application/usecase"
)

// ContainerHandler maneja las consultas del catálogo de contenedores.
type ContainerHandler struct {
	uc *usecase.ContainerUseCase
}

// NewContainerHandler construye el handler.
func NewContainerHandler(uc *usecase.ContainerUseCase) *ContainerHandler {
	return &ContainerHandler{uc: uc}
}

// List godoc
// @Summary      Listar tipos de contenedor
// @Tags         containers
// @Produce      json
// @Success      200  {array}  dto.ContainerSpecResponse
// @Router       /api/containers [get]
func (h *ContainerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

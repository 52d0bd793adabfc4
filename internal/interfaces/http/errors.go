package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/domain"
)

// respondError traduce errores de dominio a respuestas HTTP.
// 400: entradas inválidas (parámetros, pesos fuera de tolerancia, embarque vacío).
// 404: recurso o insumo inexistente. 409: duplicados. Resto: 500.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidParameter):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMETER", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidWeights):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_WEIGHTS", Message: err.Error()})
	case errors.Is(err, domain.ErrEmptyShipment):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_SHIPMENT", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrNoSuppliersFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_SUPPLIERS", Message: err.Error()})
	case errors.Is(err, domain.ErrNoContainerSpecs):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_CONTAINER_SPECS", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrDuplicate        = errors.New("recurso duplicado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrInvalidParameter = errors.New("parámetro de planificación inválido")
	ErrInvalidWeights   = errors.New("los pesos de scoring no suman 1.0")
	ErrNoSuppliersFound = errors.New("sin proveedores para el SKU")
	ErrNoContainerSpecs = errors.New("catálogo de contenedores vacío")
	ErrEmptyShipment    = errors.New("embarque sin peso ni volumen")
)

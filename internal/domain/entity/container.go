package entity

import "github.com/shopspring/decimal"

// ContainerSpec especificación de un tipo de contenedor del catálogo logístico.
type ContainerSpec struct {
	Type        string // ej. "20ft", "40ft", "40hc"
	MaxWeightKg decimal.Decimal
	MaxCBM      decimal.Decimal
	BaseCostUSD decimal.Decimal // flete base por contenedor
}

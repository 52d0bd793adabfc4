package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un SKU del catálogo maestro con sus dimensiones físicas.
// Datos de referencia inmutables durante una corrida de planificación;
// MOQ puede ser sobreescrito por oferta de proveedor (SupplierOffer.MOQOverride).
type Product struct {
	ID           string
	SKU          string // código único
	Name         string
	Category     string // categoría de compra; determina los pesos de scoring
	MOQ          int64  // cantidad mínima de pedido por defecto
	UnitWeightKg decimal.Decimal
	UnitCBM      decimal.Decimal // metros cúbicos por unidad
	UnitPriceUSD decimal.Decimal // precio de lista; la oferta del proveedor manda
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryPosition posición de inventario de un SKU, sincronizada desde el ERP.
// Solo lectura para el motor de decisión; la mutación ocurre fuera (sync externo).
type InventoryPosition struct {
	SKU          string
	CurrentStock decimal.Decimal
	InTransit    decimal.Decimal // unidades ya pedidas, en camino
	SafetyStock  decimal.Decimal
	BufferStock  decimal.Decimal
	ReorderPoint decimal.Decimal
	SyncedAt     time.Time
}

// Available stock disponible para netear demanda: actual + en tránsito - safety.
// Puede ser negativo (faltante), lo que aumenta la necesidad neta.
func (p InventoryPosition) Available() decimal.Decimal {
	return p.CurrentStock.Add(p.InTransit).Sub(p.SafetyStock)
}

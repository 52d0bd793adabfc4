package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// LineItem línea de un borrador de orden de compra (salida del neteo + selección de proveedor).
type LineItem struct {
	SKU        string
	SupplierID string
	QtyOrdered int64
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal // QtyOrdered * UnitPrice
	Rationale  string          // resumen de por qué se eligió el proveedor
}

// PurchaseOrder borrador de orden de compra generado por una corrida de planificación.
// El motor siempre crea estado "draft"; el flujo de aprobación vive fuera de este servicio.
type PurchaseOrder struct {
	ID                  string
	Number              string // ej. "PO-20260901-4F2A"
	RunID               string
	Status              string // draft
	CreatedBy           string
	Lines               []LineItem
	SubtotalUSD         decimal.Decimal
	EstimatedFreightUSD decimal.Decimal
	TotalUSD            decimal.Decimal
	Notes               string
	ContainerPlan       json.RawMessage // plan recomendado serializado, para auditoría
	CreatedAt           time.Time
}

// DecisionLog registro de auditoría de una etapa del motor (neteo, scoring o contenedores).
// Inputs y Output se guardan como JSON para reconstruir la corrida completa.
type DecisionLog struct {
	ID        string
	RunID     string
	Stage     string // demand_netting, supplier_ranking, container_planning, po_compiled
	SKU       string // vacío para etapas a nivel de embarque
	Inputs    json.RawMessage
	Output    json.RawMessage
	CreatedAt time.Time
}

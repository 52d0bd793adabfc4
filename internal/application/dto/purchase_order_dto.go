package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItemDTO línea del borrador de orden de compra.
type LineItemDTO struct {
	SKU        string          `json:"sku"`
	SupplierID string          `json:"supplier_id"`
	QtyOrdered int64           `json:"qty_ordered"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Rationale  string          `json:"rationale,omitempty"`
}

// PurchaseOrderDTO borrador de orden de compra.
type PurchaseOrderDTO struct {
	ID                  string          `json:"id"`
	Number              string          `json:"po_number"`
	RunID               string          `json:"run_id"`
	Status              string          `json:"status"`
	CreatedBy           string          `json:"created_by"`
	Lines               []LineItemDTO   `json:"line_items"`
	SubtotalUSD         decimal.Decimal `json:"subtotal_usd"`
	EstimatedFreightUSD decimal.Decimal `json:"estimated_freight_usd"`
	TotalUSD            decimal.Decimal `json:"total_usd"`
	Notes               string          `json:"notes,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
}

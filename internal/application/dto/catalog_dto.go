package dto

import "github.com/shopspring/decimal"

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	MOQ          int64           `json:"moq"`
	UnitWeightKg decimal.Decimal `json:"unit_weight_kg"`
	UnitCBM      decimal.Decimal `json:"unit_cbm"`
	UnitPriceUSD decimal.Decimal `json:"unit_price_usd"`
}

// ProductResponse producto del catálogo maestro.
type ProductResponse struct {
	ID           string          `json:"id"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	MOQ          int64           `json:"moq"`
	UnitWeightKg decimal.Decimal `json:"unit_weight_kg"`
	UnitCBM      decimal.Decimal `json:"unit_cbm"`
	UnitPriceUSD decimal.Decimal `json:"unit_price_usd"`
}

// SupplierResponse proveedor con sus métricas de desempeño.
type SupplierResponse struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Region              string          `json:"region"`
	LeadTimeDays        int             `json:"lead_time_days"`
	QualityScore        decimal.Decimal `json:"quality_score"`
	DeliveryPerformance decimal.Decimal `json:"delivery_performance"`
	CostRating          decimal.Decimal `json:"cost_rating"`
}

// SupplierOfferResponse oferta de un proveedor para un SKU.
type SupplierOfferResponse struct {
	SupplierID  string          `json:"supplier_id"`
	SKU         string          `json:"sku"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	MOQOverride *int64          `json:"moq_override,omitempty"`
}

// ContainerSpecResponse tipo de contenedor del catálogo logístico.
type ContainerSpecResponse struct {
	Type        string          `json:"type"`
	MaxWeightKg decimal.Decimal `json:"max_weight_kg"`
	MaxCBM      decimal.Decimal `json:"max_cbm"`
	BaseCostUSD decimal.Decimal `json:"base_cost_usd"`
}

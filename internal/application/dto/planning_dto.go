package dto

import "github.com/shopspring/decimal"

// PlanRunRequest body para POST /api/planning/runs.
// SKUs vacío planifica todos los SKUs bajo punto de reorden; HorizonMonths cero
// usa el default de configuración; PreferredContainerType vacío equivale a "auto".
type PlanRunRequest struct {
	SKUs                   []string `json:"skus,omitempty"`
	HorizonMonths          int      `json:"horizon_months,omitempty"`
	PreferredContainerType string   `json:"preferred_container_type,omitempty"`
	TriggeredBy            string   `json:"triggered_by,omitempty"`
}

// NetRequirementDTO necesidad neta calculada para un SKU, con los insumos del cálculo.
type NetRequirementDTO struct {
	SKU                      string          `json:"sku"`
	NetQty                   int64           `json:"net_qty"`
	Urgency                  string          `json:"urgency"`
	MOQApplied               bool            `json:"moq_applied,omitempty"`
	InsufficientForecastData bool            `json:"insufficient_forecast_data,omitempty"`
	SummedForecast           decimal.Decimal `json:"summed_forecast"`
	Available                decimal.Decimal `json:"available"`
	BufferStock              decimal.Decimal `json:"buffer_stock"`
}

// ScoredSupplierDTO proveedor evaluado para un SKU (escala 0-100).
type ScoredSupplierDTO struct {
	SupplierID    string          `json:"supplier_id"`
	SupplierName  string          `json:"supplier_name"`
	LeadTimeDays  int             `json:"lead_time_days"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	QualityScore  decimal.Decimal `json:"quality_score"`
	DeliveryScore decimal.Decimal `json:"delivery_score"`
	LeadTimeScore decimal.Decimal `json:"lead_time_score"`
	CostScore     decimal.Decimal `json:"cost_score"`
	MOQFitPct     decimal.Decimal `json:"moq_fit_pct"`
	TotalScore    decimal.Decimal `json:"score"`
}

// ContainerGroupDTO grupo homogéneo de contenedores dentro de una estrategia.
type ContainerGroupDTO struct {
	ContainerType        string          `json:"container_type"`
	NumContainers        int64           `json:"num_containers"`
	WeightKg             decimal.Decimal `json:"weight_kg"`
	CBM                  decimal.Decimal `json:"cbm"`
	WeightUtilisationPct decimal.Decimal `json:"weight_utilisation_pct"`
	VolumeUtilisationPct decimal.Decimal `json:"volume_utilisation_pct"`
	UtilisationPct       decimal.Decimal `json:"binding_utilisation_pct"`
	BindingResource      string          `json:"binding_resource"`
	CostUSD              decimal.Decimal `json:"cost_usd"`
}

// ContainerPlanDTO una estrategia de embarque evaluada.
type ContainerPlanDTO struct {
	Strategy            string              `json:"strategy"`
	Groups              []ContainerGroupDTO `json:"groups"`
	NumContainers       int64               `json:"num_containers"`
	MinUtilisationPct   decimal.Decimal     `json:"min_utilisation_pct"`
	EstimatedFreightUSD decimal.Decimal     `json:"estimated_freight_usd"`
}

// ContainerPlanResultDTO plan recomendado más todas las estrategias evaluadas.
type ContainerPlanResultDTO struct {
	Recommended    ContainerPlanDTO   `json:"recommended_plan"`
	Strategies     []ContainerPlanDTO `json:"strategies"`
	TotalWeightKg  decimal.Decimal    `json:"total_weight_kg"`
	TotalCBM       decimal.Decimal    `json:"total_cbm"`
	Mode           string             `json:"mode"` // FCL o LCL
	BelowThreshold bool               `json:"below_threshold,omitempty"`
}

// SKUPlanDTO resultado por SKU dentro de una corrida: neteo, ranking y selección.
type SKUPlanDTO struct {
	Requirement NetRequirementDTO   `json:"requirement"`
	Candidates  []ScoredSupplierDTO `json:"candidates,omitempty"` // top 3 para auditoría
	Selected    *ScoredSupplierDTO  `json:"selected,omitempty"`
}

// SkippedSKUDTO SKU excluido de la corrida con su motivo (nunca en silencio).
type SkippedSKUDTO struct {
	SKU    string `json:"sku"`
	Reason string `json:"reason"`
}

// PlanRunResponse resultado completo de una corrida de planificación.
type PlanRunResponse struct {
	RunID         string                  `json:"run_id"`
	PurchaseOrder *PurchaseOrderDTO       `json:"purchase_order,omitempty"`
	SKUPlans      []SKUPlanDTO            `json:"sku_plans"`
	Skipped       []SkippedSKUDTO         `json:"skipped,omitempty"`
	ContainerPlan *ContainerPlanResultDTO `json:"container_plan,omitempty"`
}

// ScoringWeightsDTO pesos de scoring de una categoría; deben sumar 1.0 ± 0.01.
type ScoringWeightsDTO struct {
	Category       string          `json:"category"`
	QualityWeight  decimal.Decimal `json:"quality_weight"`
	DeliveryWeight decimal.Decimal `json:"delivery_weight"`
	LeadTimeWeight decimal.Decimal `json:"lead_time_weight"`
	CostWeight     decimal.Decimal `json:"cost_weight"`
}

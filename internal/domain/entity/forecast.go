package entity

import "github.com/shopspring/decimal"

// ForecastPoint un mes de forecast de demanda para un SKU.
// Period usa formato "YYYY-MM"; el orden lexicográfico coincide con el cronológico.
type ForecastPoint struct {
	SKU         string
	Period      string // ej. "2026-09"
	ForecastQty decimal.Decimal
	ActualQty   *decimal.Decimal // nil hasta que cierre el mes
}

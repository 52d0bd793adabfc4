package entity

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Compras-api/internal/domain"
)

// Tolerancia sobre la suma de pesos: deben sumar 1.0 ± 0.01.
var weightSumTolerance = decimal.NewFromFloat(0.01)

// ScoringWeights pesos de scoring de proveedores por categoría de producto.
// Inmutable tras construcción: NewScoringWeights rechaza conjuntos inválidos,
// nunca los normaliza en silencio.
type ScoringWeights struct {
	category string
	quality  decimal.Decimal
	delivery decimal.Decimal
	leadTime decimal.Decimal
	cost     decimal.Decimal
}

// NewScoringWeights construye el conjunto de pesos validando que los cuatro sumen 1.0 ± 0.01.
// Devuelve domain.ErrInvalidWeights si la suma queda fuera de tolerancia.
func NewScoringWeights(category string, quality, delivery, leadTime, cost decimal.Decimal) (ScoringWeights, error) {
	w := ScoringWeights{
		category: category,
		quality:  quality,
		delivery: delivery,
		leadTime: leadTime,
		cost:     cost,
	}
	if err := w.Validate(); err != nil {
		return ScoringWeights{}, err
	}
	return w, nil
}

// Validate verifica la invariante de suma. El valor cero del tipo (suma 0) es inválido,
// de modo que un ScoringWeights no construido con NewScoringWeights tampoco pasa.
func (w ScoringWeights) Validate() error {
	sum := w.quality.Add(w.delivery).Add(w.leadTime).Add(w.cost)
	if sum.Sub(decimal.NewFromInt(1)).Abs().GreaterThan(weightSumTolerance) {
		return domain.ErrInvalidWeights
	}
	return nil
}

// Category categoría de producto a la que aplican los pesos.
func (w ScoringWeights) Category() string { return w.category }

// Quality peso del sub-score de calidad.
func (w ScoringWeights) Quality() decimal.Decimal { return w.quality }

// Delivery peso del sub-score de cumplimiento de entregas.
func (w ScoringWeights) Delivery() decimal.Decimal { return w.delivery }

// LeadTime peso del sub-score de tiempo de entrega.
func (w ScoringWeights) LeadTime() decimal.Decimal { return w.leadTime }

// Cost peso del sub-score de costo.
func (w ScoringWeights) Cost() decimal.Decimal { return w.cost }

package planning

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
)

var (
	hundred = decimal.NewFromInt(100)

	// Escala del lead time: 7 días puntúa 100, 28 días puntúa 0, con clamp en los extremos.
	leadTimeBaseDays = decimal.NewFromInt(7)
	leadTimeSpanDays = decimal.NewFromInt(21)
)

// CandidateOffer oferta de proveedor junto con el proveedor que la emite (join catálogo).
type CandidateOffer struct {
	Offer    entity.SupplierOffer
	Supplier entity.Supplier
}

// ScoredSupplier proveedor evaluado para un SKU. Los sub-scores van en escala 0-100;
// TotalScore es el promedio ponderado redondeado a un decimal.
type ScoredSupplier struct {
	SupplierID    string
	SupplierName  string
	Region        string
	LeadTimeDays  int
	UnitPrice     decimal.Decimal
	EffectiveMOQ  int64
	QualityScore  decimal.Decimal
	DeliveryScore decimal.Decimal
	LeadTimeScore decimal.Decimal
	CostScore     decimal.Decimal
	MOQFitPct     decimal.Decimal // informativo: no entra en el score ponderado
	TotalScore    decimal.Decimal
}

// RankSuppliers evalúa y ordena los proveedores candidatos para un SKU.
//
// Orden: TotalScore descendente, empates por SupplierID ascendente. La salida es
// totalmente determinista para entradas idénticas; el primer elemento es el recomendado.
//
// Errores: domain.ErrInvalidParameter si orderQty <= 0, domain.ErrNoSuppliersFound si no
// hay ofertas, domain.ErrInvalidWeights si los pesos no cumplen la invariante de suma
// (un ScoringWeights de valor cero tampoco la cumple).
func RankSuppliers(sku string, orderQty int64, offers []CandidateOffer, productMOQ int64, weights entity.ScoringWeights) ([]ScoredSupplier, error) {
	if orderQty <= 0 {
		return nil, fmt.Errorf("order_qty %d para %s: %w", orderQty, sku, domain.ErrInvalidParameter)
	}
	if err := weights.Validate(); err != nil {
		return nil, fmt.Errorf("pesos de %q: %w", weights.Category(), err)
	}
	if len(offers) == 0 {
		return nil, fmt.Errorf("sku %s: %w", sku, domain.ErrNoSuppliersFound)
	}

	qty := decimal.NewFromInt(orderQty)
	scored := make([]ScoredSupplier, 0, len(offers))
	for _, c := range offers {
		ltScore := leadTimeScore(c.Supplier.LeadTimeDays)

		effectiveMOQ := c.Offer.EffectiveMOQ(productMOQ)
		moqFit := hundred
		if effectiveMOQ > 0 && orderQty < effectiveMOQ {
			moqFit = qty.Div(decimal.NewFromInt(effectiveMOQ)).Mul(hundred)
		}

		total := c.Supplier.QualityScore.Mul(weights.Quality()).
			Add(c.Supplier.DeliveryPerformance.Mul(weights.Delivery())).
			Add(ltScore.Mul(weights.LeadTime())).
			Add(c.Supplier.CostRating.Mul(weights.Cost()))

		scored = append(scored, ScoredSupplier{
			SupplierID:    c.Supplier.ID,
			SupplierName:  c.Supplier.Name,
			Region:        c.Supplier.Region,
			LeadTimeDays:  c.Supplier.LeadTimeDays,
			UnitPrice:     c.Offer.UnitPrice,
			EffectiveMOQ:  effectiveMOQ,
			QualityScore:  c.Supplier.QualityScore,
			DeliveryScore: c.Supplier.DeliveryPerformance,
			LeadTimeScore: ltScore,
			CostScore:     c.Supplier.CostRating,
			MOQFitPct:     moqFit.Round(1),
			TotalScore:    total.Round(1),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		cmp := scored[i].TotalScore.Cmp(scored[j].TotalScore)
		if cmp != 0 {
			return cmp > 0
		}
		return scored[i].SupplierID < scored[j].SupplierID
	})

	return scored, nil
}

// leadTimeScore mapea días de lead time a escala 0-100: 7 días = 100, 28 días = 0,
// con clamp en ambos extremos (no se extrapola). Se multiplica antes de dividir:
// (días-7)·100/21 es exacto en los anclajes, mientras que precalcular 100/21
// trunca y deja un residuo en 28 días.
func leadTimeScore(leadTimeDays int) decimal.Decimal {
	days := decimal.NewFromInt(int64(leadTimeDays))
	score := hundred.Sub(days.Sub(leadTimeBaseDays).Mul(hundred).Div(leadTimeSpanDays))
	if score.IsNegative() {
		return decimal.Zero
	}
	if score.GreaterThan(hundred) {
		return hundred
	}
	return score
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

var _ repository.ForecastRepository = (*ForecastRepo)(nil)

// ForecastRepo lectura de la serie de forecast mensual por SKU.
type ForecastRepo struct {
	q Querier
}

// NewForecastRepository construye el adaptador. Pasar pool o tx (Querier).
func NewForecastRepository(q Querier) *ForecastRepo {
	return &ForecastRepo{q: q}
}

// ListBySKU devuelve hasta limit puntos con período >= fromPeriod, ordenados por período.
// El formato "YYYY-MM" hace que el orden lexicográfico sea el cronológico.
func (r *ForecastRepo) ListBySKU(ctx context.Context, sku, fromPeriod string, limit int) ([]entity.ForecastPoint, error) {
	query := `
		SELECT sku, period, forecast_qty, actual_qty
		FROM forecasts
		WHERE sku = $1 AND period >= $2
		ORDER BY period
		LIMIT $3`
	rows, err := r.q.Query(ctx, query, sku, fromPeriod, limit)
	if err != nil {
		return nil, fmt.Errorf("list forecast for %s: %w", sku, err)
	}
	defer rows.Close()

	var points []entity.ForecastPoint
	for rows.Next() {
		var p entity.ForecastPoint
		if err := rows.Scan(&p.SKU, &p.Period, &p.ForecastQty, &p.ActualQty); err != nil {
			return nil, fmt.Errorf("scan forecast point: %w", err)
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

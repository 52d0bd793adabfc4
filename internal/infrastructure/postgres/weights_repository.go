package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

var _ repository.WeightsRepository = (*WeightsRepo)(nil)

// WeightsRepo pesos de scoring por categoría sobre PostgreSQL.
// Las filas pasan por NewScoringWeights al leerse: una fila que no suma 1.0 ± 0.01
// (editada a mano en la base, por ejemplo) sale como domain.ErrInvalidWeights en
// vez de entrar al motor.
type WeightsRepo struct {
	q Querier
}

// NewWeightsRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWeightsRepository(q Querier) *WeightsRepo {
	return &WeightsRepo{q: q}
}

// GetByCategory obtiene los pesos de una categoría.
func (r *WeightsRepo) GetByCategory(ctx context.Context, category string) (entity.ScoringWeights, error) {
	query := `
		SELECT category, quality_weight, delivery_weight, lead_time_weight, cost_weight
		FROM scoring_weights WHERE category = $1`
	var (
		cat                               string
		quality, delivery, leadTime, cost decimal.Decimal
	)
	err := r.q.QueryRow(ctx, query, category).Scan(&cat, &quality, &delivery, &leadTime, &cost)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.ScoringWeights{}, domain.ErrNotFound
		}
		return entity.ScoringWeights{}, fmt.Errorf("get weights for %s: %w", category, err)
	}
	w, err := entity.NewScoringWeights(cat, quality, delivery, leadTime, cost)
	if err != nil {
		return entity.ScoringWeights{}, fmt.Errorf("weights for %s stored invalid: %w", category, err)
	}
	return w, nil
}

// Upsert inserta o reemplaza los pesos de la categoría.
func (r *WeightsRepo) Upsert(ctx context.Context, weights entity.ScoringWeights) error {
	query := `
		INSERT INTO scoring_weights (category, quality_weight, delivery_weight, lead_time_weight, cost_weight, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (category) DO UPDATE SET
			quality_weight = EXCLUDED.quality_weight,
			delivery_weight = EXCLUDED.delivery_weight,
			lead_time_weight = EXCLUDED.lead_time_weight,
			cost_weight = EXCLUDED.cost_weight,
			updated_at = now()`
	_, err := r.q.Exec(ctx, query,
		weights.Category(), weights.Quality(), weights.Delivery(), weights.LeadTime(), weights.Cost(),
	)
	if err != nil {
		return fmt.Errorf("upsert weights for %s: %w", weights.Category(), err)
	}
	return nil
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

var _ repository.DecisionLogRepository = (*DecisionLogRepo)(nil)

// DecisionLogRepo registro de auditoría de las etapas del motor sobre PostgreSQL.
type DecisionLogRepo struct {
	q Querier
}

// NewDecisionLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDecisionLogRepository(q Querier) *DecisionLogRepo {
	return &DecisionLogRepo{q: q}
}

// Create inserta un registro de etapa.
func (r *DecisionLogRepo) Create(ctx context.Context, log *entity.DecisionLog) error {
	query := `
		INSERT INTO decision_logs (id, run_id, stage, sku, inputs, output, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		log.ID, log.RunID, log.Stage, log.SKU, log.Inputs, log.Output, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert decision log: %w", err)
	}
	return nil
}

// ListByRun devuelve los registros de una corrida en orden de inserción.
func (r *DecisionLogRepo) ListByRun(ctx context.Context, runID string) ([]*entity.DecisionLog, error) {
	query := `
		SELECT id, run_id, stage, sku, inputs, output, created_at
		FROM decision_logs WHERE run_id = $1 ORDER BY created_at, stage`
	rows, err := r.q.Query(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("list decision logs: %w", err)
	}
	defer rows.Close()

	var list []*entity.DecisionLog
	for rows.Next() {
		var l entity.DecisionLog
		if err := rows.Scan(&l.ID, &l.RunID, &l.Stage, &l.SKU, &l.Inputs, &l.Output, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan decision log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

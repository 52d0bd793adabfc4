package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

var _ repository.ContainerSpecRepository = (*ContainerSpecRepo)(nil)

// ContainerSpecRepo catálogo de tipos de contenedor sobre PostgreSQL.
type ContainerSpecRepo struct {
	q Querier
}

// NewContainerSpecRepository construye el adaptador. Pasar pool o tx (Querier).
func NewContainerSpecRepository(q Querier) *ContainerSpecRepo {
	return &ContainerSpecRepo{q: q}
}

// List devuelve el catálogo completo, orden por capacidad de volumen ascendente.
func (r *ContainerSpecRepo) List(ctx context.Context) ([]entity.ContainerSpec, error) {
	query := `
		SELECT type, max_weight_kg, max_cbm, base_cost_usd
		FROM container_specs ORDER BY max_cbm`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list container specs: %w", err)
	}
	defer rows.Close()

	var list []entity.ContainerSpec
	for rows.Next() {
		var s entity.ContainerSpec
		if err := rows.Scan(&s.Type, &s.MaxWeightKg, &s.MaxCBM, &s.BaseCostUSD); err != nil {
			return nil, fmt.Errorf("scan container spec: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo lectura de posiciones de inventario sincronizadas desde el ERP.
// Este servicio nunca escribe en inventory_positions; el sync externo es el único escritor.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

const inventoryColumns = `sku, current_stock, in_transit, safety_stock, buffer_stock, reorder_point, synced_at`

// ListBySKUs devuelve las posiciones de los SKUs pedidos, orden por SKU.
func (r *InventoryRepo) ListBySKUs(ctx context.Context, skus []string) ([]*entity.InventoryPosition, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_positions WHERE sku = ANY($1) ORDER BY sku`
	rows, err := r.q.Query(ctx, query, skus)
	if err != nil {
		return nil, fmt.Errorf("list inventory by skus: %w", err)
	}
	defer rows.Close()
	return scanPositions(rows)
}

// ListBelowReorderPoint devuelve las posiciones con stock actual bajo el punto de reorden.
func (r *InventoryRepo) ListBelowReorderPoint(ctx context.Context) ([]*entity.InventoryPosition, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_positions WHERE current_stock < reorder_point ORDER BY sku`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list inventory below reorder point: %w", err)
	}
	defer rows.Close()
	return scanPositions(rows)
}

func scanPositions(rows pgx.Rows) ([]*entity.InventoryPosition, error) {
	var list []*entity.InventoryPosition
	for rows.Next() {
		var p entity.InventoryPosition
		if err := rows.Scan(&p.SKU, &p.CurrentStock, &p.InTransit, &p.SafetyStock,
			&p.BufferStock, &p.ReorderPoint, &p.SyncedAt); err != nil {
			return nil, fmt.Errorf("scan inventory position: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo persistencia de borradores de orden de compra (cabecera + líneas).
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

const poColumns = `id, po_number, run_id, status, created_by, subtotal_usd, estimated_freight_usd, total_usd, notes, container_plan, created_at`

// Create inserta la orden con sus líneas. Para atomicidad usar el TxRunner.
func (r *PurchaseOrderRepo) Create(ctx context.Context, po *entity.PurchaseOrder) error {
	query := `
		INSERT INTO purchase_orders (` + poColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		po.ID, po.Number, po.RunID, po.Status, po.CreatedBy,
		po.SubtotalUSD, po.EstimatedFreightUSD, po.TotalUSD,
		po.Notes, po.ContainerPlan, po.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert purchase order: %w", err)
	}

	lineQuery := `
		INSERT INTO purchase_order_lines (po_id, line_no, sku, supplier_id, qty_ordered, unit_price, total_price, rationale)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for i, l := range po.Lines {
		_, err := r.q.Exec(ctx, lineQuery,
			po.ID, i+1, l.SKU, l.SupplierID, l.QtyOrdered, l.UnitPrice, l.TotalPrice, l.Rationale,
		)
		if err != nil {
			return fmt.Errorf("insert purchase order line %d: %w", i+1, err)
		}
	}
	return nil
}

// GetByNumber obtiene una orden por su número visible, con líneas en su orden original.
func (r *PurchaseOrderRepo) GetByNumber(ctx context.Context, number string) (*entity.PurchaseOrder, error) {
	query := `SELECT ` + poColumns + ` FROM purchase_orders WHERE po_number = $1`
	var po entity.PurchaseOrder
	err := r.q.QueryRow(ctx, query, number).Scan(
		&po.ID, &po.Number, &po.RunID, &po.Status, &po.CreatedBy,
		&po.SubtotalUSD, &po.EstimatedFreightUSD, &po.TotalUSD,
		&po.Notes, &po.ContainerPlan, &po.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get purchase order: %w", err)
	}

	lines, err := r.linesOf(ctx, po.ID)
	if err != nil {
		return nil, err
	}
	po.Lines = lines
	return &po, nil
}

// List lista órdenes con paginación, más reciente primero, con sus líneas.
func (r *PurchaseOrderRepo) List(ctx context.Context, limit, offset int) ([]*entity.PurchaseOrder, error) {
	query := `SELECT ` + poColumns + ` FROM purchase_orders ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()

	var list []*entity.PurchaseOrder
	for rows.Next() {
		var po entity.PurchaseOrder
		if err := rows.Scan(&po.ID, &po.Number, &po.RunID, &po.Status, &po.CreatedBy,
			&po.SubtotalUSD, &po.EstimatedFreightUSD, &po.TotalUSD,
			&po.Notes, &po.ContainerPlan, &po.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		list = append(list, &po)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, po := range list {
		lines, err := r.linesOf(ctx, po.ID)
		if err != nil {
			return nil, err
		}
		po.Lines = lines
	}
	return list, nil
}

func (r *PurchaseOrderRepo) linesOf(ctx context.Context, poID string) ([]entity.LineItem, error) {
	query := `
		SELECT sku, supplier_id, qty_ordered, unit_price, total_price, rationale
		FROM purchase_order_lines WHERE po_id = $1 ORDER BY line_no`
	rows, err := r.q.Query(ctx, query, poID)
	if err != nil {
		return nil, fmt.Errorf("list purchase order lines: %w", err)
	}
	defer rows.Close()

	var lines []entity.LineItem
	for rows.Next() {
		var l entity.LineItem
		if err := rows.Scan(&l.SKU, &l.SupplierID, &l.QtyOrdered, &l.UnitPrice, &l.TotalPrice, &l.Rationale); err != nil {
			return nil, fmt.Errorf("scan purchase order line: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

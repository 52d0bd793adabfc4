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

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo catálogo de proveedores y sus ofertas por SKU sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

const supplierColumns = `id, name, region, lead_time_days, quality_score, delivery_performance, cost_rating`

// GetByID obtiene un proveedor por ID.
func (r *SupplierRepo) GetByID(ctx context.Context, id string) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE id = $1`
	var s entity.Supplier
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.Region, &s.LeadTimeDays,
		&s.QualityScore, &s.DeliveryPerformance, &s.CostRating,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// List lista proveedores con paginación, orden por nombre.
func (r *SupplierRepo) List(ctx context.Context, limit, offset int) ([]*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.Region, &s.LeadTimeDays,
			&s.QualityScore, &s.DeliveryPerformance, &s.CostRating); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// ListOffersBySKU devuelve las ofertas del SKU con su proveedor ya resuelto,
// orden por supplier_id para que el ranking sea reproducible.
func (r *SupplierRepo) ListOffersBySKU(ctx context.Context, sku string) ([]repository.OfferWithSupplier, error) {
	query := `
		SELECT o.supplier_id, o.sku, o.unit_price, o.moq_override,
		       s.id, s.name, s.region, s.lead_time_days, s.quality_score, s.delivery_performance, s.cost_rating
		FROM supplier_offers o
		JOIN suppliers s ON s.id = o.supplier_id
		WHERE o.sku = $1
		ORDER BY o.supplier_id`
	rows, err := r.q.Query(ctx, query, sku)
	if err != nil {
		return nil, fmt.Errorf("list offers for %s: %w", sku, err)
	}
	defer rows.Close()

	var list []repository.OfferWithSupplier
	for rows.Next() {
		var ows repository.OfferWithSupplier
		if err := rows.Scan(
			&ows.Offer.SupplierID, &ows.Offer.SKU, &ows.Offer.UnitPrice, &ows.Offer.MOQOverride,
			&ows.Supplier.ID, &ows.Supplier.Name, &ows.Supplier.Region, &ows.Supplier.LeadTimeDays,
			&ows.Supplier.QualityScore, &ows.Supplier.DeliveryPerformance, &ows.Supplier.CostRating,
		); err != nil {
			return nil, fmt.Errorf("scan offer: %w", err)
		}
		list = append(list, ows)
	}
	return list, rows.Err()
}

// ListOffersBySupplier devuelve las ofertas de un proveedor, orden por SKU.
func (r *SupplierRepo) ListOffersBySupplier(ctx context.Context, supplierID string) ([]entity.SupplierOffer, error) {
	query := `
		SELECT supplier_id, sku, unit_price, moq_override
		FROM supplier_offers WHERE supplier_id = $1 ORDER BY sku`
	rows, err := r.q.Query(ctx, query, supplierID)
	if err != nil {
		return nil, fmt.Errorf("list offers of supplier %s: %w", supplierID, err)
	}
	defer rows.Close()

	var list []entity.SupplierOffer
	for rows.Next() {
		var o entity.SupplierOffer
		if err := rows.Scan(&o.SupplierID, &o.SKU, &o.UnitPrice, &o.MOQOverride); err != nil {
			return nil, fmt.Errorf("scan offer: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

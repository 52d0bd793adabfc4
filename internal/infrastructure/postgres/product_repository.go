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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, sku, name, category, moq, unit_weight_kg, unit_cbm, unit_price_usd, created_at, updated_at`

// Create persiste un nuevo producto del catálogo maestro.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.SKU, product.Name, product.Category, product.MOQ,
		product.UnitWeightKg, product.UnitCBM, product.UnitPriceUSD,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetBySKU obtiene un producto por SKU.
func (r *ProductRepo) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE sku = $1`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, sku).Scan(
		&p.ID, &p.SKU, &p.Name, &p.Category, &p.MOQ,
		&p.UnitWeightKg, &p.UnitCBM, &p.UnitPriceUSD, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get product by sku: %w", err)
	}
	return &p, nil
}

// ListBySKUs lista los productos de los SKUs dados; con skus vacío devuelve todos.
func (r *ProductRepo) ListBySKUs(ctx context.Context, skus []string) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY sku`
	var (
		rows pgx.Rows
		err  error
	)
	if len(skus) > 0 {
		query = `SELECT ` + productColumns + ` FROM products WHERE sku = ANY($1) ORDER BY sku`
		rows, err = r.q.Query(ctx, query, skus)
	} else {
		rows, err = r.q.Query(ctx, query)
	}
	if err != nil {
		return nil, fmt.Errorf("list products by skus: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// List lista productos con paginación, orden por SKU.
func (r *ProductRepo) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY sku LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

func scanProducts(rows pgx.Rows) ([]*entity.Product, error) {
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.SKU, &p.Name, &p.Category, &p.MOQ,
			&p.UnitWeightKg, &p.UnitCBM, &p.UnitPriceUSD, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

package repository

import (
	"context"

	"github.com/jhoicas/Compras-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para el catálogo de productos (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	// ListBySKUs devuelve los productos de los SKUs dados; con skus vacío devuelve todos.
	ListBySKUs(ctx context.Context, skus []string) ([]*entity.Product, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)
}

// InventoryRepository lectura de posiciones de inventario sincronizadas desde el ERP.
// Las implementaciones son read-only: la mutación ocurre en el sync externo.
type InventoryRepository interface {
	// ListBySKUs devuelve las posiciones de los SKUs pedidos.
	ListBySKUs(ctx context.Context, skus []string) ([]*entity.InventoryPosition, error)
	// ListBelowReorderPoint devuelve las posiciones con stock actual bajo el punto de reorden.
	ListBelowReorderPoint(ctx context.Context) ([]*entity.InventoryPosition, error)
}

// ForecastRepository lectura de la serie de forecast mensual por SKU.
type ForecastRepository interface {
	// ListBySKU devuelve hasta limit puntos con período >= fromPeriod, ordenados por período.
	ListBySKU(ctx context.Context, sku, fromPeriod string, limit int) ([]entity.ForecastPoint, error)
}

// OfferWithSupplier oferta de un proveedor para un SKU con el proveedor ya resuelto (join).
type OfferWithSupplier struct {
	Offer    entity.SupplierOffer
	Supplier entity.Supplier
}

// SupplierRepository catálogo de proveedores y sus ofertas por SKU.
type SupplierRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Supplier, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Supplier, error)
	// ListOffersBySKU devuelve las ofertas del SKU con su proveedor, orden por supplier_id.
	ListOffersBySKU(ctx context.Context, sku string) ([]OfferWithSupplier, error)
	ListOffersBySupplier(ctx context.Context, supplierID string) ([]entity.SupplierOffer, error)
}

// WeightsRepository pesos de scoring por categoría de producto.
type WeightsRepository interface {
	GetByCategory(ctx context.Context, category string) (entity.ScoringWeights, error)
	Upsert(ctx context.Context, weights entity.ScoringWeights) error
}

// ContainerSpecRepository catálogo estático de tipos de contenedor.
type ContainerSpecRepository interface {
	List(ctx context.Context) ([]entity.ContainerSpec, error)
}

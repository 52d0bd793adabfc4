package entity

import "github.com/shopspring/decimal"

// Supplier proveedor del catálogo con sus métricas de desempeño (escala 0-100).
type Supplier struct {
	ID                  string
	Name                string
	Region              string
	LeadTimeDays        int
	QualityScore        decimal.Decimal // 0-100
	DeliveryPerformance decimal.Decimal // 0-100, % de entregas a tiempo
	CostRating          decimal.Decimal // 0-100, mayor = más barato
}

// SupplierOffer oferta de un proveedor para un SKU concreto (relación N:M).
// MOQOverride, si está presente, reemplaza el MOQ del producto.
type SupplierOffer struct {
	SupplierID  string
	SKU         string
	UnitPrice   decimal.Decimal
	MOQOverride *int64
}

// EffectiveMOQ devuelve el MOQ aplicable a la oferta: el override si existe, si no el del producto.
func (o SupplierOffer) EffectiveMOQ(productMOQ int64) int64 {
	if o.MOQOverride != nil {
		return *o.MOQOverride
	}
	return productMOQ
}

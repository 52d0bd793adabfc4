package planning

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
)

// Urgencia de reposición de un SKU.
const (
	UrgencyCritical = "critical" // stock actual en o por debajo del safety stock
	UrgencyNormal   = "normal"
)

// NetRequirement necesidad neta de compra de un SKU, con los insumos del cálculo
// para trazabilidad (el registro de decisión los persiste tal cual).
type NetRequirement struct {
	SKU                      string
	NetQty                   int64
	Urgency                  string
	MOQApplied               bool // la cantidad se elevó al MOQ del producto
	InsufficientForecastData bool // había menos puntos de forecast que el horizonte pedido
	SummedForecast           decimal.Decimal
	Available                decimal.Decimal // stock actual + en tránsito - safety
	BufferStock              decimal.Decimal
	PeriodsUsed              int
}

// NetDemand calcula la necesidad neta de un SKU neteando el forecast contra el inventario.
//
// Suma el forecast de los primeros horizonMonths períodos desde fromPeriod (inclusive),
// resta el disponible (actual + en tránsito - safety, puede ser negativo) y suma el buffer.
// El resultado fraccionario se redondea hacia arriba: pedir de menos es el peor error.
// Si la cantidad queda entre 0 y el MOQ del producto, se eleva al MOQ.
//
// Con menos períodos de forecast que el horizonte, netea contra lo que hay y marca
// InsufficientForecastData (no fatal). horizonMonths <= 0 es domain.ErrInvalidParameter.
func NetDemand(product entity.Product, inv entity.InventoryPosition, forecast []entity.ForecastPoint, fromPeriod string, horizonMonths int) (NetRequirement, error) {
	if horizonMonths <= 0 {
		return NetRequirement{}, fmt.Errorf("horizon_months %d: %w", horizonMonths, domain.ErrInvalidParameter)
	}

	points := make([]entity.ForecastPoint, 0, len(forecast))
	for _, p := range forecast {
		if p.SKU == product.SKU && p.Period >= fromPeriod {
			points = append(points, p)
		}
	}
	// "YYYY-MM": el orden lexicográfico es el cronológico
	sort.Slice(points, func(i, j int) bool { return points[i].Period < points[j].Period })
	if len(points) > horizonMonths {
		points = points[:horizonMonths]
	}

	summed := decimal.Zero
	for _, p := range points {
		summed = summed.Add(p.ForecastQty)
	}

	available := inv.Available()
	net := summed.Sub(available).Add(inv.BufferStock)
	if net.IsNegative() {
		net = decimal.Zero
	}
	netQty := net.Ceil().IntPart()

	moqApplied := false
	if netQty > 0 && netQty < product.MOQ {
		netQty = product.MOQ
		moqApplied = true
	}

	urgency := UrgencyNormal
	if inv.CurrentStock.LessThanOrEqual(inv.SafetyStock) {
		urgency = UrgencyCritical
	}

	return NetRequirement{
		SKU:                      product.SKU,
		NetQty:                   netQty,
		Urgency:                  urgency,
		MOQApplied:               moqApplied,
		InsufficientForecastData: len(points) < horizonMonths,
		SummedForecast:           summed,
		Available:                available,
		BufferStock:              inv.BufferStock,
		PeriodsUsed:              len(points),
	}, nil
}

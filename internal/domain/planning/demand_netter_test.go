package planning_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/planning"
)

func producto(sku string, moq int64) entity.Product {
	return entity.Product{
		ID:  "prod-" + sku,
		SKU: sku,
		MOQ: moq,
	}
}

func posicion(sku string, actual, transito, safety, buffer int64) entity.InventoryPosition {
	return entity.InventoryPosition{
		SKU:          sku,
		CurrentStock: decimal.NewFromInt(actual),
		InTransit:    decimal.NewFromInt(transito),
		SafetyStock:  decimal.NewFromInt(safety),
		BufferStock:  decimal.NewFromInt(buffer),
	}
}

func puntos(sku, desde string, cantidades ...int64) []entity.ForecastPoint {
	meses := []string{"2026-09", "2026-10", "2026-11", "2026-12", "2027-01", "2027-02"}
	idx := 0
	for i, m := range meses {
		if m == desde {
			idx = i
			break
		}
	}
	out := make([]entity.ForecastPoint, 0, len(cantidades))
	for i, q := range cantidades {
		out = append(out, entity.ForecastPoint{
			SKU:         sku,
			Period:      meses[idx+i],
			ForecastQty: decimal.NewFromInt(q),
		})
	}
	return out
}

// Escenario de referencia: stock 50, tránsito 0, safety 10, buffer 5,
// forecast [40,40,40] a 3 meses → disponible 40, forecast 120, neto 85.
func TestNetDemand_EscenarioBase(t *testing.T) {
	req, err := planning.NetDemand(
		producto("SKU-001", 1),
		posicion("SKU-001", 50, 0, 10, 5),
		puntos("SKU-001", "2026-09", 40, 40, 40),
		"2026-09", 3,
	)
	require.NoError(t, err)

	assert.Equal(t, int64(85), req.NetQty)
	assert.True(t, req.Available.Equal(decimal.NewFromInt(40)), "disponible = 50+0-10")
	assert.True(t, req.SummedForecast.Equal(decimal.NewFromInt(120)))
	assert.False(t, req.InsufficientForecastData)
	assert.False(t, req.MOQApplied)
	assert.Equal(t, planning.UrgencyNormal, req.Urgency)
	assert.Equal(t, 3, req.PeriodsUsed)
}

func TestNetDemand_SinNecesidadCuandoDisponibleCubre(t *testing.T) {
	// disponible (200+0-10=190) >= forecast (120) + buffer (5) → neto 0
	req, err := planning.NetDemand(
		producto("SKU-001", 1),
		posicion("SKU-001", 200, 0, 10, 5),
		puntos("SKU-001", "2026-09", 40, 40, 40),
		"2026-09", 3,
	)
	require.NoError(t, err)
	assert.Equal(t, int64(0), req.NetQty)
}

func TestNetDemand_DisponibleNegativoAumentaNecesidad(t *testing.T) {
	// actual 5, safety 30 → disponible -25; neto = 40 - (-25) + 0 = 65
	req, err := planning.NetDemand(
		producto("SKU-002", 1),
		posicion("SKU-002", 5, 0, 30, 0),
		puntos("SKU-002", "2026-09", 40),
		"2026-09", 1,
	)
	require.NoError(t, err)
	assert.True(t, req.Available.Equal(decimal.NewFromInt(-25)))
	assert.Equal(t, int64(65), req.NetQty)
	assert.Equal(t, planning.UrgencyCritical, req.Urgency)
}

func TestNetDemand_RedondeoHaciaArriba(t *testing.T) {
	// forecast fraccionario: 10.2 unidades netas deben pedir 11 (pedir de menos es peor)
	forecast := []entity.ForecastPoint{{
		SKU:         "SKU-003",
		Period:      "2026-09",
		ForecastQty: decimal.NewFromFloat(10.2),
	}}
	req, err := planning.NetDemand(
		producto("SKU-003", 1),
		posicion("SKU-003", 0, 0, 0, 0),
		forecast,
		"2026-09", 1,
	)
	require.NoError(t, err)
	assert.Equal(t, int64(11), req.NetQty)
}

func TestNetDemand_PisoMOQ(t *testing.T) {
	// neto crudo 40 < MOQ 100 → se eleva a 100 con la marca MOQApplied
	req, err := planning.NetDemand(
		producto("SKU-004", 100),
		posicion("SKU-004", 0, 0, 0, 0),
		puntos("SKU-004", "2026-09", 40),
		"2026-09", 1,
	)
	require.NoError(t, err)
	assert.Equal(t, int64(100), req.NetQty)
	assert.True(t, req.MOQApplied)
}

func TestNetDemand_MOQNoAplicaConNetoCero(t *testing.T) {
	req, err := planning.NetDemand(
		producto("SKU-004", 100),
		posicion("SKU-004", 500, 0, 0, 0),
		puntos("SKU-004", "2026-09", 40),
		"2026-09", 1,
	)
	require.NoError(t, err)
	assert.Equal(t, int64(0), req.NetQty, "neto cero nunca se eleva al MOQ")
	assert.False(t, req.MOQApplied)
}

func TestNetDemand_ForecastInsuficiente(t *testing.T) {
	// horizonte 3 con solo 2 períodos: netea contra lo que hay y marca el flag
	req, err := planning.NetDemand(
		producto("SKU-005", 1),
		posicion("SKU-005", 0, 0, 0, 0),
		puntos("SKU-005", "2026-09", 30, 30),
		"2026-09", 3,
	)
	require.NoError(t, err)
	assert.Equal(t, int64(60), req.NetQty)
	assert.True(t, req.InsufficientForecastData)
	assert.Equal(t, 2, req.PeriodsUsed)
}

func TestNetDemand_IgnoraPeriodosPasadosYExcedentes(t *testing.T) {
	// un período anterior a fromPeriod y uno más allá del horizonte no cuentan
	forecast := puntos("SKU-006", "2026-09", 99, 40, 40, 40, 99)
	forecast[0].Period = "2026-08" // pasado

	req, err := planning.NetDemand(
		producto("SKU-006", 1),
		posicion("SKU-006", 0, 0, 0, 0),
		forecast,
		"2026-09", 3,
	)
	require.NoError(t, err)
	assert.True(t, req.SummedForecast.Equal(decimal.NewFromInt(120)), "solo los 3 períodos del horizonte desde 2026-09")
}

func TestNetDemand_HorizonteInvalido(t *testing.T) {
	for _, h := range []int{0, -1} {
		_, err := planning.NetDemand(
			producto("SKU-007", 1),
			posicion("SKU-007", 0, 0, 0, 0),
			nil,
			"2026-09", h,
		)
		require.ErrorIs(t, err, domain.ErrInvalidParameter)
	}
}

func TestNetDemand_EnTransitoCuentaComoDisponible(t *testing.T) {
	// 0 en bodega pero 120 en tránsito cubre el forecast completo
	req, err := planning.NetDemand(
		producto("SKU-008", 1),
		posicion("SKU-008", 0, 120, 0, 0),
		puntos("SKU-008", "2026-09", 40, 40, 40),
		"2026-09", 3,
	)
	require.NoError(t, err)
	assert.Equal(t, int64(0), req.NetQty)
}

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

func spec40ft() entity.ContainerSpec {
	return entity.ContainerSpec{
		Type:        "40ft",
		MaxWeightKg: decimal.NewFromInt(26000),
		MaxCBM:      decimal.NewFromInt(58),
		BaseCostUSD: decimal.NewFromInt(2000),
	}
}

func spec20ft() entity.ContainerSpec {
	return entity.ContainerSpec{
		Type:        "20ft",
		MaxWeightKg: decimal.NewFromInt(20000),
		MaxCBM:      decimal.NewFromInt(28),
		BaseCostUSD: decimal.NewFromInt(1200),
	}
}

// carga construye una línea única con el peso y volumen totales indicados.
func carga(pesoKg, cbm float64) []planning.CargoLine {
	return []planning.CargoLine{{
		SKU:          "SKU-001",
		Qty:          1,
		UnitWeightKg: decimal.NewFromFloat(pesoKg),
		UnitCBM:      decimal.NewFromFloat(cbm),
	}}
}

// Escenario de referencia: 18.000 kg y 55 cbm en un 40ft → 1 contenedor,
// utilización 94,8% con el volumen como recurso limitante, FCL.
func TestPlanContainers_EscenarioBase(t *testing.T) {
	res, err := planning.PlanContainers(carga(18000, 55), []entity.ContainerSpec{spec40ft()}, planning.ContainerTypeAuto)
	require.NoError(t, err)

	require.Len(t, res.Strategies, 1)
	rec := res.Recommended
	require.Len(t, rec.Groups, 1)

	g := rec.Groups[0]
	assert.Equal(t, "40ft", g.Type)
	assert.Equal(t, int64(1), g.Count)
	assert.Equal(t, "volume", g.BindingResource)
	assert.True(t, g.UtilisationPct.Equal(decimal.NewFromFloat(94.8)), "got %s", g.UtilisationPct)
	assert.True(t, g.WeightUtilisationPct.Equal(decimal.NewFromFloat(69.2)), "got %s", g.WeightUtilisationPct)
	assert.True(t, rec.EstimatedFreightUSD.Equal(decimal.NewFromInt(2000)))
	assert.Equal(t, planning.ShipmentModeFCL, res.Mode)
	assert.False(t, res.BelowThreshold)
}

func TestPlanContainers_SeleccionaElMasBaratoQueCalifica(t *testing.T) {
	// 10.000 kg / 100 cbm:
	//  - single_40ft: 2 contenedores, util 100/116 = 86,2% → califica, USD 4000
	//  - single_20ft: 4 contenedores, util 100/112 = 89,3% → califica, USD 4800
	//  - mixta 40ft+20ft: grupo pequeño al 75% → no califica
	res, err := planning.PlanContainers(carga(10000, 100), []entity.ContainerSpec{spec20ft(), spec40ft()}, planning.ContainerTypeAuto)
	require.NoError(t, err)

	require.Len(t, res.Strategies, 3, "dos de tipo único más la mixta")
	assert.Equal(t, "single_40ft", res.Recommended.Strategy)
	assert.True(t, res.Recommended.EstimatedFreightUSD.Equal(decimal.NewFromInt(4000)))
	assert.Equal(t, planning.ShipmentModeFCL, res.Mode)
	assert.False(t, res.BelowThreshold)
}

func TestPlanContainers_EstrategiaMixta(t *testing.T) {
	res, err := planning.PlanContainers(carga(10000, 100), []entity.ContainerSpec{spec20ft(), spec40ft()}, planning.ContainerTypeAuto)
	require.NoError(t, err)

	var mixta *planning.ContainerPlan
	for i := range res.Strategies {
		if res.Strategies[i].Strategy == "mixed_40ft+20ft" {
			mixta = &res.Strategies[i]
		}
	}
	require.NotNil(t, mixta, "con dos specs debe evaluarse la mixta")
	require.Len(t, mixta.Groups, 2)

	grande, pequeno := mixta.Groups[0], mixta.Groups[1]
	assert.Equal(t, "40ft", grande.Type)
	assert.Equal(t, int64(1), grande.Count, "solo cabe un 40ft completo (100/58 → floor 1)")
	assert.True(t, grande.UtilisationPct.Equal(decimal.NewFromInt(100)), "el grande va lleno: got %s", grande.UtilisationPct)

	assert.Equal(t, "20ft", pequeno.Type)
	assert.Equal(t, int64(2), pequeno.Count, "remanente de 42 cbm en 20ft de 28 cbm")
	assert.True(t, mixta.EstimatedFreightUSD.Equal(decimal.NewFromInt(4400)))
}

func TestPlanContainers_MixtaDegeneradaSeDescarta(t *testing.T) {
	// 116 cbm = exactamente 2 contenedores 40ft llenos: sin remanente,
	// la mixta degenera en single_40ft y no debe aparecer.
	res, err := planning.PlanContainers(carga(10000, 116), []entity.ContainerSpec{spec20ft(), spec40ft()}, planning.ContainerTypeAuto)
	require.NoError(t, err)

	for _, s := range res.Strategies {
		assert.NotContains(t, s.Strategy, "mixed", "estrategia inesperada: %s", s.Strategy)
	}
	require.Len(t, res.Strategies, 2)
}

func TestPlanContainers_MixtaSinUnGrandeCompletoSeDescarta(t *testing.T) {
	// 30 cbm no llena ni un 40ft (floor 0): la mixta equivale al tipo pequeño solo.
	res, err := planning.PlanContainers(carga(1000, 30), []entity.ContainerSpec{spec20ft(), spec40ft()}, planning.ContainerTypeAuto)
	require.NoError(t, err)
	for _, s := range res.Strategies {
		assert.NotContains(t, s.Strategy, "mixed")
	}
}

func TestPlanContainers_BajoUmbralEligeMayorUtilizacion(t *testing.T) {
	// 5.000 kg / 20 cbm: 40ft al 34,5%, 20ft al 71,4% — ninguno llega al 80%.
	res, err := planning.PlanContainers(carga(5000, 20), []entity.ContainerSpec{spec20ft(), spec40ft()}, planning.ContainerTypeAuto)
	require.NoError(t, err)

	assert.True(t, res.BelowThreshold)
	assert.Equal(t, planning.ShipmentModeLCL, res.Mode)
	assert.Equal(t, "single_20ft", res.Recommended.Strategy, "gana la mayor utilización mínima")
}

func TestPlanContainers_UtilizacionNuncaSupera100(t *testing.T) {
	cargas := [][]planning.CargoLine{
		carga(18000, 55),
		carga(26000, 58),  // exactamente un 40ft lleno
		carga(26001, 58),  // un kilo por encima → 2 contenedores
		carga(90000, 10),  // peso limitante
		carga(100, 500),   // volumen limitante
		carga(0.5, 0.001), // carga mínima → 1 contenedor
	}
	specs := []entity.ContainerSpec{spec20ft(), spec40ft()}

	cien := decimal.NewFromInt(100)
	for _, c := range cargas {
		res, err := planning.PlanContainers(c, specs, planning.ContainerTypeAuto)
		require.NoError(t, err)
		for _, s := range res.Strategies {
			for _, g := range s.Groups {
				assert.True(t, g.UtilisationPct.LessThanOrEqual(cien),
					"estrategia %s grupo %s: %s%%", s.Strategy, g.Type, g.UtilisationPct)
				assert.GreaterOrEqual(t, g.Count, int64(1))
			}
		}
	}
}

func TestPlanContainers_TipoPreferidoRestringe(t *testing.T) {
	res, err := planning.PlanContainers(carga(10000, 100), []entity.ContainerSpec{spec20ft(), spec40ft()}, "20ft")
	require.NoError(t, err)

	require.Len(t, res.Strategies, 1)
	assert.Equal(t, "single_20ft", res.Recommended.Strategy)
}

func TestPlanContainers_TipoPreferidoDesconocido(t *testing.T) {
	_, err := planning.PlanContainers(carga(10000, 100), []entity.ContainerSpec{spec40ft()}, "45hc")
	require.ErrorIs(t, err, domain.ErrInvalidParameter)
}

func TestPlanContainers_SinCatalogo(t *testing.T) {
	_, err := planning.PlanContainers(carga(10000, 100), nil, planning.ContainerTypeAuto)
	require.ErrorIs(t, err, domain.ErrNoContainerSpecs)
}

func TestPlanContainers_EmbarqueVacio(t *testing.T) {
	_, err := planning.PlanContainers(nil, []entity.ContainerSpec{spec40ft()}, planning.ContainerTypeAuto)
	require.ErrorIs(t, err, domain.ErrEmptyShipment)

	_, err = planning.PlanContainers(carga(0, 0), []entity.ContainerSpec{spec40ft()}, planning.ContainerTypeAuto)
	require.ErrorIs(t, err, domain.ErrEmptyShipment)
}

func TestPlanContainers_Idempotente(t *testing.T) {
	lines := []planning.CargoLine{
		{SKU: "SKU-001", Qty: 120, UnitWeightKg: decimal.NewFromFloat(12.5), UnitCBM: decimal.NewFromFloat(0.08)},
		{SKU: "SKU-002", Qty: 300, UnitWeightKg: decimal.NewFromFloat(4.2), UnitCBM: decimal.NewFromFloat(0.031)},
	}
	specs := []entity.ContainerSpec{spec20ft(), spec40ft()}

	primera, err := planning.PlanContainers(lines, specs, planning.ContainerTypeAuto)
	require.NoError(t, err)
	segunda, err := planning.PlanContainers(lines, specs, planning.ContainerTypeAuto)
	require.NoError(t, err)
	assert.Equal(t, primera, segunda)
}

func TestPlanContainers_SumaLineasMultiples(t *testing.T) {
	lines := []planning.CargoLine{
		{SKU: "SKU-001", Qty: 100, UnitWeightKg: decimal.NewFromInt(90), UnitCBM: decimal.NewFromFloat(0.3)},
		{SKU: "SKU-002", Qty: 200, UnitWeightKg: decimal.NewFromInt(45), UnitCBM: decimal.NewFromFloat(0.125)},
	}
	// total: 9000+9000 = 18.000 kg; 30+25 = 55 cbm → mismo escenario de referencia
	res, err := planning.PlanContainers(lines, []entity.ContainerSpec{spec40ft()}, planning.ContainerTypeAuto)
	require.NoError(t, err)
	assert.True(t, res.TotalWeightKg.Equal(decimal.NewFromInt(18000)))
	assert.True(t, res.TotalCBM.Equal(decimal.NewFromInt(55)))
	assert.True(t, res.Recommended.Groups[0].UtilisationPct.Equal(decimal.NewFromFloat(94.8)))
}

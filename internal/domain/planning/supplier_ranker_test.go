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

func pesosValidos(t *testing.T, calidad, entrega, leadTime, costo float64) entity.ScoringWeights {
	t.Helper()
	w, err := entity.NewScoringWeights(
		"general",
		decimal.NewFromFloat(calidad),
		decimal.NewFromFloat(entrega),
		decimal.NewFromFloat(leadTime),
		decimal.NewFromFloat(costo),
	)
	require.NoError(t, err)
	return w
}

func candidato(id, nombre string, calidad, entrega int64, leadTimeDays int, costRating int64, precio float64) planning.CandidateOffer {
	return planning.CandidateOffer{
		Offer: entity.SupplierOffer{
			SupplierID: id,
			SKU:        "SKU-001",
			UnitPrice:  decimal.NewFromFloat(precio),
		},
		Supplier: entity.Supplier{
			ID:                  id,
			Name:                nombre,
			LeadTimeDays:        leadTimeDays,
			QualityScore:        decimal.NewFromInt(calidad),
			DeliveryPerformance: decimal.NewFromInt(entrega),
			CostRating:          decimal.NewFromInt(costRating),
		},
	}
}

// Escenario de referencia: pesos {calidad .5, entrega .3, lead time .1, costo .1}.
// A {90, 80, 7d, 60} → lead time 100, total 85.0.
// B {70, 70, 14d, 90} → lead time 66.67, total 71.7.
func TestRankSuppliers_EscenarioBase(t *testing.T) {
	weights := pesosValidos(t, 0.5, 0.3, 0.1, 0.1)
	offers := []planning.CandidateOffer{
		candidato("sup-b", "Proveedor B", 70, 70, 14, 90, 9.5),
		candidato("sup-a", "Proveedor A", 90, 80, 7, 60, 12.0),
	}

	ranked, err := planning.RankSuppliers("SKU-001", 100, offers, 1, weights)
	require.NoError(t, err)
	require.Len(t, ranked, 2)

	assert.Equal(t, "sup-a", ranked[0].SupplierID, "A debe quedar primero")
	assert.True(t, ranked[0].TotalScore.Equal(decimal.NewFromFloat(85.0)), "score A: got %s", ranked[0].TotalScore)
	assert.True(t, ranked[0].LeadTimeScore.Equal(decimal.NewFromInt(100)))

	assert.Equal(t, "sup-b", ranked[1].SupplierID)
	assert.True(t, ranked[1].TotalScore.Equal(decimal.NewFromFloat(71.7)), "score B: got %s", ranked[1].TotalScore)
}

func TestRankSuppliers_LeadTimeConClamp(t *testing.T) {
	weights := pesosValidos(t, 0, 0, 1, 0)
	offers := []planning.CandidateOffer{
		candidato("sup-rapido", "Exprés", 0, 0, 3, 0, 1),  // < 7 días: clamp a 100
		candidato("sup-lento", "Marítimo", 0, 0, 45, 0, 1), // > 28 días: clamp a 0
		candidato("sup-medio", "Medio", 0, 0, 28, 0, 1),    // justo 28 días: 0
	}

	ranked, err := planning.RankSuppliers("SKU-001", 10, offers, 1, weights)
	require.NoError(t, err)

	porID := map[string]planning.ScoredSupplier{}
	for _, s := range ranked {
		porID[s.SupplierID] = s
	}
	assert.True(t, porID["sup-rapido"].LeadTimeScore.Equal(decimal.NewFromInt(100)))
	assert.True(t, porID["sup-lento"].LeadTimeScore.Equal(decimal.Zero))
	assert.True(t, porID["sup-medio"].LeadTimeScore.Equal(decimal.Zero))
}

func TestRankSuppliers_EmpatePorIDAscendente(t *testing.T) {
	weights := pesosValidos(t, 0.25, 0.25, 0.25, 0.25)
	// Idénticos en todo: el orden debe ser por id ascendente, estable entre corridas.
	offers := []planning.CandidateOffer{
		candidato("sup-z", "Zeta", 80, 80, 7, 80, 5),
		candidato("sup-a", "Alfa", 80, 80, 7, 80, 5),
		candidato("sup-m", "Medio", 80, 80, 7, 80, 5),
	}

	ranked, err := planning.RankSuppliers("SKU-001", 10, offers, 1, weights)
	require.NoError(t, err)
	require.Len(t, ranked, 3)
	assert.Equal(t, "sup-a", ranked[0].SupplierID)
	assert.Equal(t, "sup-m", ranked[1].SupplierID)
	assert.Equal(t, "sup-z", ranked[2].SupplierID)
}

func TestRankSuppliers_MOQFitInformativo(t *testing.T) {
	weights := pesosValidos(t, 0.25, 0.25, 0.25, 0.25)

	conOverride := candidato("sup-o", "Override", 80, 80, 7, 80, 5)
	override := int64(200)
	conOverride.Offer.MOQOverride = &override

	sinOverride := candidato("sup-p", "Producto", 80, 80, 7, 80, 5)

	ranked, err := planning.RankSuppliers("SKU-001", 50, []planning.CandidateOffer{conOverride, sinOverride}, 100, weights)
	require.NoError(t, err)

	porID := map[string]planning.ScoredSupplier{}
	for _, s := range ranked {
		porID[s.SupplierID] = s
	}

	// override 200: fit 50/200 = 25%; MOQ de producto 100: fit 50%
	assert.True(t, porID["sup-o"].MOQFitPct.Equal(decimal.NewFromInt(25)), "got %s", porID["sup-o"].MOQFitPct)
	assert.True(t, porID["sup-p"].MOQFitPct.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, int64(200), porID["sup-o"].EffectiveMOQ)

	// el fit es informativo: scores idénticos pese a fits distintos
	assert.True(t, porID["sup-o"].TotalScore.Equal(porID["sup-p"].TotalScore))
}

func TestRankSuppliers_MOQFitCompletoCuandoCubre(t *testing.T) {
	weights := pesosValidos(t, 0.25, 0.25, 0.25, 0.25)
	ranked, err := planning.RankSuppliers("SKU-001", 500, []planning.CandidateOffer{
		candidato("sup-a", "Alfa", 80, 80, 7, 80, 5),
	}, 100, weights)
	require.NoError(t, err)
	assert.True(t, ranked[0].MOQFitPct.Equal(decimal.NewFromInt(100)))
}

func TestRankSuppliers_SinOfertas(t *testing.T) {
	weights := pesosValidos(t, 0.25, 0.25, 0.25, 0.25)
	_, err := planning.RankSuppliers("SKU-001", 10, nil, 1, weights)
	require.ErrorIs(t, err, domain.ErrNoSuppliersFound)
}

func TestRankSuppliers_CantidadInvalida(t *testing.T) {
	weights := pesosValidos(t, 0.25, 0.25, 0.25, 0.25)
	for _, qty := range []int64{0, -5} {
		_, err := planning.RankSuppliers("SKU-001", qty, []planning.CandidateOffer{
			candidato("sup-a", "Alfa", 80, 80, 7, 80, 5),
		}, 1, weights)
		require.ErrorIs(t, err, domain.ErrInvalidParameter)
	}
}

func TestRankSuppliers_PesosValorCeroRechazados(t *testing.T) {
	var zero entity.ScoringWeights
	_, err := planning.RankSuppliers("SKU-001", 10, []planning.CandidateOffer{
		candidato("sup-a", "Alfa", 80, 80, 7, 80, 5),
	}, 1, zero)
	require.ErrorIs(t, err, domain.ErrInvalidWeights)
}

func TestRankSuppliers_Determinismo(t *testing.T) {
	weights := pesosValidos(t, 0.4, 0.3, 0.2, 0.1)
	offers := []planning.CandidateOffer{
		candidato("sup-c", "Ce", 75, 92, 12, 55, 3.1),
		candidato("sup-a", "Alfa", 88, 70, 9, 81, 4.4),
		candidato("sup-b", "Be", 88, 70, 9, 81, 4.4),
	}

	primera, err := planning.RankSuppliers("SKU-001", 40, offers, 10, weights)
	require.NoError(t, err)
	segunda, err := planning.RankSuppliers("SKU-001", 40, offers, 10, weights)
	require.NoError(t, err)
	assert.Equal(t, primera, segunda, "misma entrada, misma salida byte a byte")
}

// Subir el peso de costo nunca degrada el rank de un proveedor más barato
// frente a un competidor idéntico en lo demás.
func TestRankSuppliers_MonotoniaDelPesoDeCosto(t *testing.T) {
	barato := candidato("sup-barato", "Barato", 80, 80, 7, 95, 2)
	caro := candidato("sup-caro", "Caro", 80, 80, 7, 40, 9)
	offers := []planning.CandidateOffer{caro, barato}

	posicionDe := func(ranked []planning.ScoredSupplier, id string) int {
		for i, s := range ranked {
			if s.SupplierID == id {
				return i
			}
		}
		t.Fatalf("no está %s", id)
		return -1
	}

	bajo := pesosValidos(t, 0.45, 0.45, 0.05, 0.05)
	alto := pesosValidos(t, 0.25, 0.25, 0.05, 0.45)

	conBajo, err := planning.RankSuppliers("SKU-001", 10, offers, 1, bajo)
	require.NoError(t, err)
	conAlto, err := planning.RankSuppliers("SKU-001", 10, offers, 1, alto)
	require.NoError(t, err)

	assert.LessOrEqual(t,
		posicionDe(conAlto, "sup-barato"),
		posicionDe(conBajo, "sup-barato"),
		"más peso de costo no puede empeorar al barato",
	)
}

package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
)

func pesos(t *testing.T, quality, delivery, leadTime, cost float64) (entity.ScoringWeights, error) {
	t.Helper()
	return entity.NewScoringWeights("electronics",
		decimal.NewFromFloat(quality), decimal.NewFromFloat(delivery),
		decimal.NewFromFloat(leadTime), decimal.NewFromFloat(cost))
}

func TestNewScoringWeights_SumaExacta(t *testing.T) {
	w, err := pesos(t, 0.4, 0.3, 0.2, 0.1)
	require.NoError(t, err)
	assert.Equal(t, "electronics", w.Category())
	assert.True(t, w.Quality().Equal(decimal.NewFromFloat(0.4)))
}

func TestNewScoringWeights_DentroDeTolerancia(t *testing.T) {
	// suma 1.01, justo en el borde de la tolerancia
	_, err := pesos(t, 0.41, 0.3, 0.2, 0.1)
	require.NoError(t, err)

	// suma 0.99, borde inferior
	_, err = pesos(t, 0.39, 0.3, 0.2, 0.1)
	require.NoError(t, err)
}

func TestNewScoringWeights_FueraDeTolerancia(t *testing.T) {
	// suma 1.02
	_, err := pesos(t, 0.42, 0.3, 0.2, 0.1)
	require.ErrorIs(t, err, domain.ErrInvalidWeights)

	// suma 0.98
	_, err = pesos(t, 0.38, 0.3, 0.2, 0.1)
	require.ErrorIs(t, err, domain.ErrInvalidWeights)
}

func TestNewScoringWeights_NoNormaliza(t *testing.T) {
	// un conjunto inválido se rechaza, nunca se reescala en silencio
	_, err := pesos(t, 0.8, 0.6, 0.4, 0.2)
	require.ErrorIs(t, err, domain.ErrInvalidWeights)
}

func TestScoringWeights_ValorCeroEsInvalido(t *testing.T) {
	var w entity.ScoringWeights
	require.ErrorIs(t, w.Validate(), domain.ErrInvalidWeights)
}

package planner

import (
	"context"
	"fmt"

	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

// WeightsUseCase lectura y actualización de los pesos de scoring por categoría.
// La validación de la invariante de suma ocurre aquí, en la frontera: un conjunto
// fuera de tolerancia nunca llega al ranker ni a la base de datos.
type WeightsUseCase struct {
	repo repository.WeightsRepository
}

// NewWeightsUseCase construye el caso de uso.
func NewWeightsUseCase(repo repository.WeightsRepository) *WeightsUseCase {
	return &WeightsUseCase{repo: repo}
}

// Get devuelve los pesos de la categoría.
func (uc *WeightsUseCase) Get(ctx context.Context, category string) (*dto.ScoringWeightsDTO, error) {
	w, err := uc.repo.GetByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	return toWeightsDTO(w), nil
}

// Update reemplaza los pesos de la categoría. Devuelve domain.ErrInvalidWeights
// si los cuatro pesos no suman 1.0 ± 0.01 (no se normaliza en silencio).
func (uc *WeightsUseCase) Update(ctx context.Context, category string, in dto.ScoringWeightsDTO) (*dto.ScoringWeightsDTO, error) {
	w, err := entity.NewScoringWeights(category, in.QualityWeight, in.DeliveryWeight, in.LeadTimeWeight, in.CostWeight)
	if err != nil {
		return nil, fmt.Errorf("pesos de %q: %w", category, err)
	}
	if err := uc.repo.Upsert(ctx, w); err != nil {
		return nil, err
	}
	return toWeightsDTO(w), nil
}

func toWeightsDTO(w entity.ScoringWeights) *dto.ScoringWeightsDTO {
	return &dto.ScoringWeightsDTO{
		Category:       w.Category(),
		QualityWeight:  w.Quality(),
		DeliveryWeight: w.Delivery(),
		LeadTimeWeight: w.LeadTime(),
		CostWeight:     w.Cost(),
	}
}

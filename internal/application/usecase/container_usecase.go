package usecase

import (
	"context"

	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

// ContainerUseCase consulta del catálogo de tipos de contenedor.
type ContainerUseCase struct {
	repo repository.ContainerSpecRepository
}

// NewContainerUseCase construye el caso de uso.
func NewContainerUseCase(repo repository.ContainerSpecRepository) *ContainerUseCase {
	return &ContainerUseCase{repo: repo}
}

// List devuelve el catálogo completo (es pequeño: no se pagina).
func (uc *ContainerUseCase) List(ctx context.Context) ([]dto.ContainerSpecResponse, error) {
	specs, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ContainerSpecResponse, 0, len(specs))
	for _, s := range specs {
		out = append(out, dto.ContainerSpecResponse{
			Type:        s.Type,
			MaxWeightKg: s.MaxWeightKg,
			MaxCBM:      s.MaxCBM,
			BaseCostUSD: s.BaseCostUSD,
		})
	}
	return out, nil
}

package usecase

import (
	"context"

	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

// SupplierUseCase consultas del catálogo de proveedores y sus ofertas.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// GetByID consulta un proveedor.
func (uc *SupplierUseCase) GetByID(ctx context.Context, id string) (*dto.SupplierResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toSupplierResponse(s), nil
}

// List lista proveedores paginados.
func (uc *SupplierUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.SupplierResponse, error) {
	page.DefaultPage()
	suppliers, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, *toSupplierResponse(s))
	}
	return out, nil
}

// ListOffers devuelve las ofertas vigentes de un proveedor.
func (uc *SupplierUseCase) ListOffers(ctx context.Context, supplierID string) ([]dto.SupplierOfferResponse, error) {
	if _, err := uc.repo.GetByID(ctx, supplierID); err != nil {
		return nil, err
	}
	offers, err := uc.repo.ListOffersBySupplier(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierOfferResponse, 0, len(offers))
	for _, o := range offers {
		out = append(out, dto.SupplierOfferResponse{
			SupplierID:  o.SupplierID,
			SKU:         o.SKU,
			UnitPrice:   o.UnitPrice,
			MOQOverride: o.MOQOverride,
		})
	}
	return out, nil
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:                  s.ID,
		Name:                s.Name,
		Region:              s.Region,
		LeadTimeDays:        s.LeadTimeDays,
		QualityScore:        s.QualityScore,
		DeliveryPerformance: s.DeliveryPerformance,
		CostRating:          s.CostRating,
	}
}

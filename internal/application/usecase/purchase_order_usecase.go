package usecase

import (
	"context"

	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

// PurchaseOrderUseCase consultas de borradores de orden de compra ya generados.
// La creación es exclusiva del orquestador de planificación.
type PurchaseOrderUseCase struct {
	repo repository.PurchaseOrderRepository
}

// NewPurchaseOrderUseCase construye el caso de uso.
func NewPurchaseOrderUseCase(repo repository.PurchaseOrderRepository) *PurchaseOrderUseCase {
	return &PurchaseOrderUseCase{repo: repo}
}

// GetByNumber consulta un borrador por su número visible (PO-YYYYMMDD-XXXX).
func (uc *PurchaseOrderUseCase) GetByNumber(ctx context.Context, number string) (*dto.PurchaseOrderDTO, error) {
	po, err := uc.repo.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	out := toPurchaseOrderDTO(po)
	return &out, nil
}

// List lista borradores paginados, más reciente primero.
func (uc *PurchaseOrderUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.PurchaseOrderDTO, error) {
	page.DefaultPage()
	pos, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PurchaseOrderDTO, 0, len(pos))
	for _, po := range pos {
		out = append(out, toPurchaseOrderDTO(po))
	}
	return out, nil
}

func toPurchaseOrderDTO(po *entity.PurchaseOrder) dto.PurchaseOrderDTO {
	lines := make([]dto.LineItemDTO, len(po.Lines))
	for i, l := range po.Lines {
		lines[i] = dto.LineItemDTO{
			SKU:        l.SKU,
			SupplierID: l.SupplierID,
			QtyOrdered: l.QtyOrdered,
			UnitPrice:  l.UnitPrice,
			TotalPrice: l.TotalPrice.Round(2),
			Rationale:  l.Rationale,
		}
	}
	return dto.PurchaseOrderDTO{
		ID:                  po.ID,
		Number:              po.Number,
		RunID:               po.RunID,
		Status:              po.Status,
		CreatedBy:           po.CreatedBy,
		Lines:               lines,
		SubtotalUSD:         po.SubtotalUSD,
		EstimatedFreightUSD: po.EstimatedFreightUSD,
		TotalUSD:            po.TotalUSD,
		Notes:               po.Notes,
		CreatedAt:           po.CreatedAt,
	}
}

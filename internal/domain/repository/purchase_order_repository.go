package repository

import (
	"context"

	"github.com/jhoicas/Compras-api/internal/domain/entity"
)

// PurchaseOrderRepository persistencia de borradores de orden de compra.
type PurchaseOrderRepository interface {
	// Create inserta la orden con sus líneas. Falla con domain.ErrDuplicate si el número existe.
	Create(ctx context.Context, po *entity.PurchaseOrder) error
	GetByNumber(ctx context.Context, number string) (*entity.PurchaseOrder, error)
	List(ctx context.Context, limit, offset int) ([]*entity.PurchaseOrder, error)
}

// DecisionLogRepository registro de auditoría de las etapas del motor de decisión.
type DecisionLogRepository interface {
	Create(ctx context.Context, log *entity.DecisionLog) error
	ListByRun(ctx context.Context, runID string) ([]*entity.DecisionLog, error)
}

package planner

import (
	"context"

	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza que el borrador de PO y sus registros de decisión se escriban de forma atómica.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		poRepo repository.PurchaseOrderRepository,
		logRepo repository.DecisionLogRepository,
	) error) error
}

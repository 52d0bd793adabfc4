package planner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/planning"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
	"github.com/jhoicas/Compras-api/pkg/logger"
)

// Categoría de respaldo cuando el producto no tiene pesos propios.
const defaultWeightsCategory = "default"

// Defaults parámetros por defecto de una corrida (vienen de configuración).
type Defaults struct {
	HorizonMonths          int
	PreferredContainerType string
}

// PlanRunUseCase orquesta una corrida completa de planificación de compras:
// neteo de demanda por SKU → ranking de proveedores → plan de contenedores →
// borrador de orden de compra. Los tres cálculos son funciones puras del paquete
// planning; este caso de uso solo mueve datos y persiste el resultado.
type PlanRunUseCase struct {
	productRepo   repository.ProductRepository
	inventoryRepo repository.InventoryRepository
	forecastRepo  repository.ForecastRepository
	supplierRepo  repository.SupplierRepository
	weightsRepo   repository.WeightsRepository
	containerRepo repository.ContainerSpecRepository
	txRunner      TxRunner
	defaults      Defaults
	log           *logger.Logger
	now           func() time.Time
}

// NewPlanRunUseCase construye el orquestador.
func NewPlanRunUseCase(
	productRepo repository.ProductRepository,
	inventoryRepo repository.InventoryRepository,
	forecastRepo repository.ForecastRepository,
	supplierRepo repository.SupplierRepository,
	weightsRepo repository.WeightsRepository,
	containerRepo repository.ContainerSpecRepository,
	txRunner TxRunner,
	defaults Defaults,
	log *logger.Logger,
) *PlanRunUseCase {
	return &PlanRunUseCase{
		productRepo:   productRepo,
		inventoryRepo: inventoryRepo,
		forecastRepo:  forecastRepo,
		supplierRepo:  supplierRepo,
		weightsRepo:   weightsRepo,
		containerRepo: containerRepo,
		txRunner:      txRunner,
		defaults:      defaults,
		log:           log,
		now:           time.Now,
	}
}

// Run ejecuta la corrida. Con SKUs vacío planifica todo lo que esté bajo punto de reorden.
//
// Los SKUs se procesan en orden lexicográfico para que corridas con datos idénticos
// produzcan salidas idénticas. Un SKU sin proveedores o sin pesos se reporta en
// Skipped con su motivo y no tumba el resto del lote; si ningún SKU produce líneas,
// la corrida termina sin PO y sin plan de contenedores.
func (uc *PlanRunUseCase) Run(ctx context.Context, in dto.PlanRunRequest) (*dto.PlanRunResponse, error) {
	runID := uuid.New().String()
	horizon := in.HorizonMonths
	if horizon == 0 {
		horizon = uc.defaults.HorizonMonths
	}
	if horizon <= 0 {
		return nil, fmt.Errorf("horizon_months %d: %w", horizon, domain.ErrInvalidParameter)
	}
	preferred := in.PreferredContainerType
	if preferred == "" {
		preferred = uc.defaults.PreferredContainerType
	}
	triggeredBy := in.TriggeredBy
	if triggeredBy == "" {
		triggeredBy = "system"
	}
	fromPeriod := uc.now().UTC().Format("2006-01")

	log := uc.log.With().Str("run_id", runID).Logger()
	log.Info().Int("horizon_months", horizon).Strs("skus", in.SKUs).Msg("iniciando corrida de planificación")

	// ── Inventario y productos ────────────────────────────────────────────────
	var positions []*entity.InventoryPosition
	var err error
	if len(in.SKUs) > 0 {
		positions, err = uc.inventoryRepo.ListBySKUs(ctx, in.SKUs)
	} else {
		positions, err = uc.inventoryRepo.ListBelowReorderPoint(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("cargar inventario: %w", err)
	}
	if len(positions) == 0 {
		return nil, fmt.Errorf("sin posiciones de inventario para planificar: %w", domain.ErrNotFound)
	}

	posBySKU := make(map[string]*entity.InventoryPosition, len(positions))
	skus := make([]string, 0, len(positions))
	for _, p := range positions {
		posBySKU[p.SKU] = p
		skus = append(skus, p.SKU)
	}
	sort.Strings(skus)

	products, err := uc.productRepo.ListBySKUs(ctx, skus)
	if err != nil {
		return nil, fmt.Errorf("cargar productos: %w", err)
	}
	productBySKU := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		productBySKU[p.SKU] = p
	}

	resp := &dto.PlanRunResponse{RunID: runID}
	var logs []*entity.DecisionLog
	var lineItems []entity.LineItem
	var cargo []planning.CargoLine

	// ── Por SKU: neteo → ranking → línea de pedido ───────────────────────────
	for _, sku := range skus {
		product, ok := productBySKU[sku]
		if !ok {
			uc.skip(resp, &log, sku, "sin ficha de producto en el catálogo")
			continue
		}

		forecast, err := uc.forecastRepo.ListBySKU(ctx, sku, fromPeriod, horizon)
		if err != nil {
			return nil, fmt.Errorf("cargar forecast de %s: %w", sku, err)
		}

		req, err := planning.NetDemand(*product, *posBySKU[sku], forecast, fromPeriod, horizon)
		if err != nil {
			return nil, fmt.Errorf("netear demanda de %s: %w", sku, err)
		}
		logs = append(logs, uc.decisionLog(runID, "demand_netting", sku,
			map[string]any{"horizon_months": horizon, "from_period": fromPeriod},
			req))

		skuPlan := dto.SKUPlanDTO{Requirement: toNetRequirementDTO(req)}
		if req.NetQty == 0 {
			// Sin necesidad neta: el SKU no sigue a proveedores ni contenedores.
			resp.SKUPlans = append(resp.SKUPlans, skuPlan)
			continue
		}

		weights, err := uc.weightsFor(ctx, product.Category)
		if err != nil {
			uc.skip(resp, &log, sku, "sin pesos de scoring para la categoría "+product.Category)
			continue
		}

		offers, err := uc.supplierRepo.ListOffersBySKU(ctx, sku)
		if err != nil {
			return nil, fmt.Errorf("cargar ofertas de %s: %w", sku, err)
		}
		candidates := make([]planning.CandidateOffer, 0, len(offers))
		for _, o := range offers {
			candidates = append(candidates, planning.CandidateOffer{Offer: o.Offer, Supplier: o.Supplier})
		}

		ranked, err := planning.RankSuppliers(sku, req.NetQty, candidates, product.MOQ, weights)
		if err != nil {
			if errors.Is(err, domain.ErrNoSuppliersFound) {
				uc.skip(resp, &log, sku, "sin proveedores con oferta para el SKU")
				continue
			}
			return nil, fmt.Errorf("rankear proveedores de %s: %w", sku, err)
		}
		logs = append(logs, uc.decisionLog(runID, "supplier_ranking", sku,
			map[string]any{"order_qty": req.NetQty, "category": product.Category},
			ranked))

		selected := ranked[0]
		rationale := fmt.Sprintf(
			"Seleccionado %s (score %s/100): USD %s/unidad, %d días de lead time, ajuste MOQ %s%%",
			selected.SupplierName, selected.TotalScore, selected.UnitPrice,
			selected.LeadTimeDays, selected.MOQFitPct,
		)

		qty := decimal.NewFromInt(req.NetQty)
		lineItems = append(lineItems, entity.LineItem{
			SKU:        sku,
			SupplierID: selected.SupplierID,
			QtyOrdered: req.NetQty,
			UnitPrice:  selected.UnitPrice,
			TotalPrice: qty.Mul(selected.UnitPrice),
			Rationale:  rationale,
		})
		cargo = append(cargo, planning.CargoLine{
			SKU:          sku,
			Qty:          req.NetQty,
			UnitWeightKg: product.UnitWeightKg,
			UnitCBM:      product.UnitCBM,
		})

		top := ranked
		if len(top) > 3 {
			top = top[:3] // top 3 para auditoría
		}
		skuPlan.Candidates = toScoredSupplierDTOs(top)
		sel := toScoredSupplierDTO(selected)
		skuPlan.Selected = &sel
		resp.SKUPlans = append(resp.SKUPlans, skuPlan)
	}

	if len(lineItems) == 0 {
		log.Warn().Int("skipped", len(resp.Skipped)).Msg("corrida sin líneas de pedido: no se genera PO")
		return resp, nil
	}

	// ── Plan de contenedores sobre el agregado completo ──────────────────────
	specs, err := uc.containerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar catálogo de contenedores: %w", err)
	}
	plan, err := planning.PlanContainers(cargo, specs, preferred)
	if err != nil {
		return nil, fmt.Errorf("planificar contenedores: %w", err)
	}
	logs = append(logs, uc.decisionLog(runID, "container_planning", "",
		map[string]any{"line_items": len(cargo), "preferred_container_type": preferred},
		plan.Recommended))

	// ── Borrador de PO ───────────────────────────────────────────────────────
	subtotal := decimal.Zero
	for _, li := range lineItems {
		subtotal = subtotal.Add(li.TotalPrice)
	}
	freight := plan.Recommended.EstimatedFreightUSD
	total := subtotal.Add(freight)

	planJSON, err := json.Marshal(toContainerPlanDTO(plan.Recommended))
	if err != nil {
		return nil, fmt.Errorf("serializar plan de contenedores: %w", err)
	}

	now := uc.now().UTC()
	po := &entity.PurchaseOrder{
		ID:                  uuid.New().String(),
		Number:              uc.poNumber(now),
		RunID:               runID,
		Status:              "draft",
		CreatedBy:           triggeredBy,
		Lines:               lineItems,
		SubtotalUSD:         subtotal.Round(2),
		EstimatedFreightUSD: freight.Round(2),
		TotalUSD:            total.Round(2),
		Notes: fmt.Sprintf(
			"Borrador con %d líneas. Subtotal USD %s, flete estimado USD %s, total USD %s. %dx %s al %s%% de utilización (%s).",
			len(lineItems), subtotal.Round(2), freight.Round(2), total.Round(2),
			plan.Recommended.NumContainers, plan.Recommended.Strategy,
			plan.Recommended.MinUtilisationPct.Round(1), plan.Mode,
		),
		ContainerPlan: planJSON,
		CreatedAt:     now,
	}
	logs = append(logs, uc.decisionLog(runID, "po_compiled", "",
		map[string]any{"line_items": len(lineItems), "subtotal_usd": po.SubtotalUSD},
		map[string]any{"po_number": po.Number, "total_usd": po.TotalUSD, "status": po.Status}))

	err = uc.txRunner.Run(ctx, func(poRepo repository.PurchaseOrderRepository, logRepo repository.DecisionLogRepository) error {
		if err := poRepo.Create(ctx, po); err != nil {
			return err
		}
		for _, l := range logs {
			if err := logRepo.Create(ctx, l); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("persistir borrador de PO: %w", err)
	}

	log.Info().
		Str("po_number", po.Number).
		Int("line_items", len(lineItems)).
		Str("total_usd", po.TotalUSD.String()).
		Str("mode", plan.Mode).
		Msg("corrida completada")

	poDTO := toPurchaseOrderDTO(po)
	planDTO := toContainerPlanResultDTO(plan)
	resp.PurchaseOrder = &poDTO
	resp.ContainerPlan = &planDTO
	return resp, nil
}

// weightsFor resuelve los pesos de la categoría, con caída a la categoría "default".
func (uc *PlanRunUseCase) weightsFor(ctx context.Context, category string) (entity.ScoringWeights, error) {
	w, err := uc.weightsRepo.GetByCategory(ctx, category)
	if err == nil {
		return w, nil
	}
	if !errors.Is(err, domain.ErrNotFound) || category == defaultWeightsCategory {
		return entity.ScoringWeights{}, err
	}
	return uc.weightsRepo.GetByCategory(ctx, defaultWeightsCategory)
}

// skip registra la exclusión de un SKU: warning en el log y motivo en la respuesta.
func (uc *PlanRunUseCase) skip(resp *dto.PlanRunResponse, log *zerolog.Logger, sku, reason string) {
	log.Warn().Str("sku", sku).Str("reason", reason).Msg("SKU excluido de la corrida")
	resp.Skipped = append(resp.Skipped, dto.SkippedSKUDTO{SKU: sku, Reason: reason})
}

// decisionLog arma un registro de auditoría de etapa; los payloads se serializan a JSON
// (claves ordenadas, salida determinista para entradas idénticas). Un fallo de
// serialización deja el campo vacío y queda registrado en el log, nunca en silencio.
func (uc *PlanRunUseCase) decisionLog(runID, stage, sku string, inputs, output any) *entity.DecisionLog {
	in, err := json.Marshal(inputs)
	if err != nil {
		uc.log.Error().Err(err).Str("run_id", runID).Str("stage", stage).Msg("serializar insumos del registro de decisión")
	}
	out, err := json.Marshal(output)
	if err != nil {
		uc.log.Error().Err(err).Str("run_id", runID).Str("stage", stage).Msg("serializar salida del registro de decisión")
	}
	return &entity.DecisionLog{
		ID:        uuid.New().String(),
		RunID:     runID,
		Stage:     stage,
		SKU:       sku,
		Inputs:    in,
		Output:    out,
		CreatedAt: uc.now().UTC(),
	}
}

// poNumber genera el consecutivo visible del borrador: PO-YYYYMMDD-XXXX.
func (uc *PlanRunUseCase) poNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:4])
	return "PO-" + now.Format("20060102") + "-" + suffix
}

package planner

import (
	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/planning"
)

func toNetRequirementDTO(r planning.NetRequirement) dto.NetRequirementDTO {
	return dto.NetRequirementDTO{
		SKU:                      r.SKU,
		NetQty:                   r.NetQty,
		Urgency:                  r.Urgency,
		MOQApplied:               r.MOQApplied,
		InsufficientForecastData: r.InsufficientForecastData,
		SummedForecast:           r.SummedForecast,
		Available:                r.Available,
		BufferStock:              r.BufferStock,
	}
}

func toScoredSupplierDTO(s planning.ScoredSupplier) dto.ScoredSupplierDTO {
	return dto.ScoredSupplierDTO{
		SupplierID:    s.SupplierID,
		SupplierName:  s.SupplierName,
		LeadTimeDays:  s.LeadTimeDays,
		UnitPrice:     s.UnitPrice,
		QualityScore:  s.QualityScore,
		DeliveryScore: s.DeliveryScore,
		LeadTimeScore: s.LeadTimeScore.Round(1),
		CostScore:     s.CostScore,
		MOQFitPct:     s.MOQFitPct,
		TotalScore:    s.TotalScore,
	}
}

func toScoredSupplierDTOs(scored []planning.ScoredSupplier) []dto.ScoredSupplierDTO {
	out := make([]dto.ScoredSupplierDTO, len(scored))
	for i, s := range scored {
		out[i] = toScoredSupplierDTO(s)
	}
	return out
}

func toContainerGroupDTO(g planning.ContainerGroup) dto.ContainerGroupDTO {
	return dto.ContainerGroupDTO{
		ContainerType:        g.Type,
		NumContainers:        g.Count,
		WeightKg:             g.WeightKg,
		CBM:                  g.CBM,
		WeightUtilisationPct: g.WeightUtilisationPct,
		VolumeUtilisationPct: g.VolumeUtilisationPct,
		UtilisationPct:       g.UtilisationPct,
		BindingResource:      g.BindingResource,
		CostUSD:              g.CostUSD,
	}
}

func toContainerPlanDTO(p planning.ContainerPlan) dto.ContainerPlanDTO {
	groups := make([]dto.ContainerGroupDTO, len(p.Groups))
	for i, g := range p.Groups {
		groups[i] = toContainerGroupDTO(g)
	}
	return dto.ContainerPlanDTO{
		Strategy:            p.Strategy,
		Groups:              groups,
		NumContainers:       p.NumContainers,
		MinUtilisationPct:   p.MinUtilisationPct,
		EstimatedFreightUSD: p.EstimatedFreightUSD,
	}
}

func toContainerPlanResultDTO(r planning.PlanResult) dto.ContainerPlanResultDTO {
	strategies := make([]dto.ContainerPlanDTO, len(r.Strategies))
	for i, s := range r.Strategies {
		strategies[i] = toContainerPlanDTO(s)
	}
	return dto.ContainerPlanResultDTO{
		Recommended:    toContainerPlanDTO(r.Recommended),
		Strategies:     strategies,
		TotalWeightKg:  r.TotalWeightKg,
		TotalCBM:       r.TotalCBM,
		Mode:           r.Mode,
		BelowThreshold: r.BelowThreshold,
	}
}

func toLineItemDTO(l entity.LineItem) dto.LineItemDTO {
	return dto.LineItemDTO{
		SKU:        l.SKU,
		SupplierID: l.SupplierID,
		QtyOrdered: l.QtyOrdered,
		UnitPrice:  l.UnitPrice,
		TotalPrice: l.TotalPrice.Round(2),
		Rationale:  l.Rationale,
	}
}

func toPurchaseOrderDTO(po *entity.PurchaseOrder) dto.PurchaseOrderDTO {
	lines := make([]dto.LineItemDTO, len(po.Lines))
	for i, l := range po.Lines {
		lines[i] = toLineItemDTO(l)
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

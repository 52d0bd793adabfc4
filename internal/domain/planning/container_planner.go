package planning

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
)

// Umbral de utilización mínima para considerar un plan como FCL y para la
// regla de selección de estrategia.
var fclThresholdPct = decimal.NewFromInt(80)

// Modo de embarque del plan recomendado.
const (
	ShipmentModeFCL = "FCL" // Full Container Load: utilización mínima >= 80%
	ShipmentModeLCL = "LCL"
)

// Tipo de contenedor preferido "auto": evaluar todo el catálogo.
const ContainerTypeAuto = "auto"

// CargoLine agregado físico de una línea de pedido: cantidad y dimensiones unitarias.
// La carga se trata como divisible entre contenedores (peso y volumen fungibles),
// no como paletizado discreto.
type CargoLine struct {
	SKU          string
	Qty          int64
	UnitWeightKg decimal.Decimal
	UnitCBM      decimal.Decimal
}

// ContainerGroup grupo homogéneo de contenedores dentro de una estrategia.
// UtilisationPct corresponde al recurso limitante (BindingResource), el que
// satura primero entre peso y volumen.
type ContainerGroup struct {
	Type                 string
	Count                int64
	WeightKg             decimal.Decimal
	CBM                  decimal.Decimal
	WeightUtilisationPct decimal.Decimal
	VolumeUtilisationPct decimal.Decimal
	UtilisationPct       decimal.Decimal
	BindingResource      string // "weight" o "volume"
	CostUSD              decimal.Decimal
}

// ContainerPlan una estrategia de embarque evaluada.
type ContainerPlan struct {
	Strategy            string
	Groups              []ContainerGroup
	NumContainers       int64
	TotalWeightKg       decimal.Decimal
	TotalCBM            decimal.Decimal
	MinUtilisationPct   decimal.Decimal // la menor utilización entre sus grupos
	EstimatedFreightUSD decimal.Decimal
}

// PlanResult resultado completo de la planificación: todas las estrategias evaluadas
// más la recomendada según la regla de selección costo/utilización.
type PlanResult struct {
	Strategies     []ContainerPlan
	Recommended    ContainerPlan
	TotalWeightKg  decimal.Decimal
	TotalCBM       decimal.Decimal
	Mode           string // FCL o LCL, según la utilización mínima del plan recomendado
	BelowThreshold bool   // ninguna estrategia alcanzó el umbral del 80%
}

// packingStrategy variante de empaque evaluable. ok=false cuando la estrategia
// degenera en otra ya cubierta y debe descartarse.
type packingStrategy interface {
	evaluate(totalWeight, totalCBM decimal.Decimal) (plan ContainerPlan, ok bool)
}

// PlanContainers calcula el plan de contenedores para el agregado de líneas de pedido.
//
// Evalúa una estrategia de tipo único por cada spec del catálogo y, con dos o más
// specs, una estrategia mixta (llenar completos del tipo más grande y el remanente
// en el más pequeño). preferredType restringe la evaluación a un único tipo del
// catálogo; ContainerTypeAuto evalúa todo.
//
// Selección: la estrategia más barata cuya utilización mínima alcance el 80%;
// si ninguna lo alcanza, la de mayor utilización mínima y BelowThreshold=true.
//
// Errores: domain.ErrNoContainerSpecs con catálogo vacío, domain.ErrEmptyShipment
// si el total de peso y volumen es cero, domain.ErrInvalidParameter si preferredType
// no existe en el catálogo.
func PlanContainers(lines []CargoLine, specs []entity.ContainerSpec, preferredType string) (PlanResult, error) {
	if len(specs) == 0 {
		return PlanResult{}, domain.ErrNoContainerSpecs
	}

	if preferredType != "" && preferredType != ContainerTypeAuto {
		filtered := specs[:0:0]
		for _, s := range specs {
			if s.Type == preferredType {
				filtered = append(filtered, s)
			}
		}
		if len(filtered) == 0 {
			return PlanResult{}, fmt.Errorf("tipo de contenedor %q no está en el catálogo: %w", preferredType, domain.ErrInvalidParameter)
		}
		specs = filtered
	}

	totalWeight := decimal.Zero
	totalCBM := decimal.Zero
	for _, l := range lines {
		qty := decimal.NewFromInt(l.Qty)
		totalWeight = totalWeight.Add(qty.Mul(l.UnitWeightKg))
		totalCBM = totalCBM.Add(qty.Mul(l.UnitCBM))
	}
	if totalWeight.LessThanOrEqual(decimal.Zero) && totalCBM.LessThanOrEqual(decimal.Zero) {
		return PlanResult{}, domain.ErrEmptyShipment
	}

	// Orden determinista del catálogo: mayor volumen primero, empates por tipo.
	ordered := make([]entity.ContainerSpec, len(specs))
	copy(ordered, specs)
	sort.Slice(ordered, func(i, j int) bool {
		cmp := ordered[i].MaxCBM.Cmp(ordered[j].MaxCBM)
		if cmp != 0 {
			return cmp > 0
		}
		return ordered[i].Type < ordered[j].Type
	})

	strategies := make([]packingStrategy, 0, len(ordered)+1)
	for _, s := range ordered {
		strategies = append(strategies, singleTypeStrategy{spec: s})
	}
	if len(ordered) >= 2 {
		strategies = append(strategies, mixedStrategy{
			large: ordered[0],
			small: ordered[len(ordered)-1],
		})
	}

	plans := make([]ContainerPlan, 0, len(strategies))
	for _, s := range strategies {
		if plan, ok := s.evaluate(totalWeight, totalCBM); ok {
			plans = append(plans, plan)
		}
	}

	recommended, belowThreshold := selectPlan(plans)

	mode := ShipmentModeLCL
	if recommended.MinUtilisationPct.GreaterThanOrEqual(fclThresholdPct) {
		mode = ShipmentModeFCL
	}

	// Redondeo a un decimal solo aquí, en la frontera de presentación;
	// la selección ya ocurrió sobre valores de precisión completa.
	for i := range plans {
		plans[i] = roundedPlan(plans[i])
	}
	recommended = roundedPlan(recommended)

	return PlanResult{
		Strategies:     plans,
		Recommended:    recommended,
		TotalWeightKg:  totalWeight.Round(2),
		TotalCBM:       totalCBM.Round(3),
		Mode:           mode,
		BelowThreshold: belowThreshold,
	}, nil
}

// singleTypeStrategy toda la carga en contenedores de un único tipo.
type singleTypeStrategy struct {
	spec entity.ContainerSpec
}

func (s singleTypeStrategy) evaluate(totalWeight, totalCBM decimal.Decimal) (ContainerPlan, bool) {
	group := buildGroup(s.spec, totalWeight, totalCBM)
	return ContainerPlan{
		Strategy:            "single_" + s.spec.Type,
		Groups:              []ContainerGroup{group},
		NumContainers:       group.Count,
		TotalWeightKg:       totalWeight,
		TotalCBM:            totalCBM,
		MinUtilisationPct:   group.UtilisationPct,
		EstimatedFreightUSD: group.CostUSD,
	}, true
}

// mixedStrategy contenedores completos del tipo grande y el remanente en el pequeño.
// Degenera (ok=false) cuando no cabe ni un grande completo o cuando no queda remanente.
type mixedStrategy struct {
	large entity.ContainerSpec
	small entity.ContainerSpec
}

func (s mixedStrategy) evaluate(totalWeight, totalCBM decimal.Decimal) (ContainerPlan, bool) {
	ratio := bindingRatio(s.large, totalWeight, totalCBM)
	full := ratio.Floor()
	if full.IsZero() {
		// La carga no llena ni un contenedor grande: equivale a la estrategia
		// del tipo pequeño solo.
		return ContainerPlan{}, false
	}

	// Fracción de la carga que va en los grandes completos: full/ratio del total,
	// de modo que el recurso limitante de los grandes queda exactamente al 100%.
	fraction := full.Div(ratio)
	largeWeight := totalWeight.Mul(fraction)
	largeCBM := totalCBM.Mul(fraction)
	residualWeight := totalWeight.Sub(largeWeight)
	residualCBM := totalCBM.Sub(largeCBM)
	if residualWeight.LessThanOrEqual(decimal.Zero) && residualCBM.LessThanOrEqual(decimal.Zero) {
		// Sin remanente: degenera en la estrategia de solo grandes.
		return ContainerPlan{}, false
	}

	// El conteo de grandes ya se conoce (full); recalcularlo por techo sobre los
	// residuos de la división reintroduciría error numérico.
	largeGroup := groupWithCount(s.large, full.IntPart(), largeWeight, largeCBM)
	smallGroup := buildGroup(s.small, residualWeight, residualCBM)

	minUtil := largeGroup.UtilisationPct
	if smallGroup.UtilisationPct.LessThan(minUtil) {
		minUtil = smallGroup.UtilisationPct
	}

	return ContainerPlan{
		Strategy:            "mixed_" + s.large.Type + "+" + s.small.Type,
		Groups:              []ContainerGroup{largeGroup, smallGroup},
		NumContainers:       largeGroup.Count + smallGroup.Count,
		TotalWeightKg:       totalWeight,
		TotalCBM:            totalCBM,
		MinUtilisationPct:   minUtil,
		EstimatedFreightUSD: largeGroup.CostUSD.Add(smallGroup.CostUSD),
	}, true
}

// buildGroup calcula el grupo de contenedores de un tipo para una carga dada:
// count = max(1, ceil(máximo entre ratio de peso y ratio de volumen)); la utilización
// del recurso limitante nunca supera el 100% porque el conteo usa techo.
func buildGroup(spec entity.ContainerSpec, weight, cbm decimal.Decimal) ContainerGroup {
	count := bindingRatio(spec, weight, cbm).Ceil().IntPart()
	if count < 1 {
		count = 1
	}
	return groupWithCount(spec, count, weight, cbm)
}

// groupWithCount construye el grupo con un conteo ya decidido.
func groupWithCount(spec entity.ContainerSpec, count int64, weight, cbm decimal.Decimal) ContainerGroup {
	capW := spec.MaxWeightKg.Mul(decimal.NewFromInt(count))
	capV := spec.MaxCBM.Mul(decimal.NewFromInt(count))

	weightUtil := decimal.Zero
	if capW.IsPositive() {
		weightUtil = weight.Div(capW).Mul(hundred)
	}
	volumeUtil := decimal.Zero
	if capV.IsPositive() {
		volumeUtil = cbm.Div(capV).Mul(hundred)
	}

	utilisation := weightUtil
	binding := "weight"
	if volumeUtil.GreaterThan(weightUtil) {
		utilisation = volumeUtil
		binding = "volume"
	}

	return ContainerGroup{
		Type:                 spec.Type,
		Count:                count,
		WeightKg:             weight,
		CBM:                  cbm,
		WeightUtilisationPct: weightUtil,
		VolumeUtilisationPct: volumeUtil,
		UtilisationPct:       utilisation,
		BindingResource:      binding,
		CostUSD:              spec.BaseCostUSD.Mul(decimal.NewFromInt(count)),
	}
}

// bindingRatio cociente del recurso limitante: max(peso/capacidad, volumen/capacidad)
// para un solo contenedor del tipo dado.
func bindingRatio(spec entity.ContainerSpec, weight, cbm decimal.Decimal) decimal.Decimal {
	ratioW := decimal.Zero
	if spec.MaxWeightKg.IsPositive() {
		ratioW = weight.Div(spec.MaxWeightKg)
	}
	ratioV := decimal.Zero
	if spec.MaxCBM.IsPositive() {
		ratioV = cbm.Div(spec.MaxCBM)
	}
	if ratioV.GreaterThan(ratioW) {
		return ratioV
	}
	return ratioW
}

// selectPlan aplica la regla de selección: la más barata con utilización mínima >= 80%
// (empates por mayor utilización y luego nombre); si ninguna alcanza el umbral, la de
// mayor utilización mínima (empates por menor costo y luego nombre) con belowThreshold.
func selectPlan(plans []ContainerPlan) (ContainerPlan, bool) {
	qualified := make([]ContainerPlan, 0, len(plans))
	for _, p := range plans {
		if p.MinUtilisationPct.GreaterThanOrEqual(fclThresholdPct) {
			qualified = append(qualified, p)
		}
	}

	if len(qualified) > 0 {
		sort.Slice(qualified, func(i, j int) bool {
			cmp := qualified[i].EstimatedFreightUSD.Cmp(qualified[j].EstimatedFreightUSD)
			if cmp != 0 {
				return cmp < 0
			}
			cmp = qualified[i].MinUtilisationPct.Cmp(qualified[j].MinUtilisationPct)
			if cmp != 0 {
				return cmp > 0
			}
			return qualified[i].Strategy < qualified[j].Strategy
		})
		return qualified[0], false
	}

	fallback := make([]ContainerPlan, len(plans))
	copy(fallback, plans)
	sort.Slice(fallback, func(i, j int) bool {
		cmp := fallback[i].MinUtilisationPct.Cmp(fallback[j].MinUtilisationPct)
		if cmp != 0 {
			return cmp > 0
		}
		cmp = fallback[i].EstimatedFreightUSD.Cmp(fallback[j].EstimatedFreightUSD)
		if cmp != 0 {
			return cmp < 0
		}
		return fallback[i].Strategy < fallback[j].Strategy
	})
	return fallback[0], true
}

// roundedPlan redondea utilizaciones a un decimal y montos a dos para reporte.
func roundedPlan(p ContainerPlan) ContainerPlan {
	groups := make([]ContainerGroup, len(p.Groups))
	for i, g := range p.Groups {
		g.WeightKg = g.WeightKg.Round(2)
		g.CBM = g.CBM.Round(3)
		g.WeightUtilisationPct = g.WeightUtilisationPct.Round(1)
		g.VolumeUtilisationPct = g.VolumeUtilisationPct.Round(1)
		g.UtilisationPct = g.UtilisationPct.Round(1)
		g.CostUSD = g.CostUSD.Round(2)
		groups[i] = g
	}
	p.Groups = groups
	p.TotalWeightKg = p.TotalWeightKg.Round(2)
	p.TotalCBM = p.TotalCBM.Round(3)
	p.MinUtilisationPct = p.MinUtilisationPct.Round(1)
	p.EstimatedFreightUSD = p.EstimatedFreightUSD.Round(2)
	return p
}

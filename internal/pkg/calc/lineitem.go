package calc

import (
	"github.com/ougirez/tendermarkup/internal/domain"
	"github.com/ougirez/tendermarkup/internal/domain/dto"
)

// LineItemCost is the commercial result for a single BOQ line.
// FullCommercialCost and Coefficient are what gets persisted; Buckets shows where
// the line lands in its position's totals.
type LineItemCost struct {
	BaseCost           float64     `json:"baseCost"`
	FullCommercialCost float64     `json:"fullCommercialCost"`
	Coefficient        float64     `json:"coefficient"`
	Buckets            dto.Buckets `json:"buckets"`
}

// ComputeLineItemCommercialCost prices one BOQ line. The formula is selected by the
// role's item type; IsAuxiliary only changes how a material's result is split
// between the material and work buckets. An unknown item type is priced as a work.
// Absent parameters fall back per ResolveLineItemRates.
func ComputeLineItemCommercialCost(baseCost float64, role domain.LineItemRole, params domain.MarkupParameters) LineItemCost {
	r := ResolveLineItemRates(params)

	res := LineItemCost{BaseCost: baseCost}
	switch role.ItemType {
	case domain.ItemTypeMaterial:
		res.FullCommercialCost = MaterialCommercialCost(baseCost, r)
		res.Buckets.Materials, res.Buckets.Works = redirect(baseCost, res.FullCommercialCost, role.IsAuxiliary)
	case domain.ItemTypeSubMaterial:
		res.FullCommercialCost = SubMaterialCommercialCost(baseCost, r)
		res.Buckets.SubMaterials, res.Buckets.SubWorks = redirect(baseCost, res.FullCommercialCost, role.IsAuxiliary)
	case domain.ItemTypeSubWork:
		res.FullCommercialCost = SubWorkCommercialCost(baseCost, r)
		res.Buckets.SubWorks = res.FullCommercialCost
	default:
		res.FullCommercialCost = WorkCommercialCost(baseCost, r)
		res.Buckets.Works = res.FullCommercialCost
	}
	res.Coefficient = Coefficient(baseCost, res.FullCommercialCost)

	return res
}

// Coefficient is full/base, or 1 for a zero base.
func Coefficient(baseCost, fullCommercialCost float64) float64 {
	if baseCost == 0 {
		return 1
	}
	return fullCommercialCost / baseCost
}

// redirect splits a material's commercial cost into (material, work) contributions.
// A main material keeps its base cost and hands the markup to works; an auxiliary
// one hands over everything.
func redirect(baseCost, full float64, auxiliary bool) (float64, float64) {
	if auxiliary {
		return 0, full
	}
	return baseCost, full - baseCost
}

// WorkCommercialCost prices an own-forces work line.
func WorkCommercialCost(baseCost float64, r Rates) float64 {
	mechanization := Scale.Apply(baseCost, r.MechanizationService)
	mbpGsm := Scale.Apply(baseCost, r.MbpGsm)
	warranty := Scale.Apply(baseCost, r.WarrantyPeriod)
	works16 := Scale.Apply(baseCost+mechanization, r.Works16Markup)
	growth := Scale.Apply(baseCost+works16+mechanization+mbpGsm, r.WorksCostGrowth)

	subtotal := baseCost + mechanization + mbpGsm + warranty + works16 + growth
	return ownForcesChain(subtotal, r)
}

// MaterialCommercialCost prices an own-forces material line.
func MaterialCommercialCost(baseCost float64, r Rates) float64 {
	growth := Scale.Apply(baseCost, r.MaterialsCostGrowth)
	return ownForcesChain(baseCost+growth, r)
}

// SubWorkCommercialCost prices a subcontracted work line.
func SubWorkCommercialCost(baseCost float64, r Rates) float64 {
	growth := Scale.Apply(baseCost, r.SubcontractWorksCostGrowth)
	return subcontractChain(baseCost+growth, r)
}

// SubMaterialCommercialCost prices a subcontracted material line.
func SubMaterialCommercialCost(baseCost float64, r Rates) float64 {
	growth := Scale.Apply(baseCost, r.SubcontractMaterialsCostGrowth)
	return subcontractChain(baseCost+growth, r)
}

// ownForcesChain: contingency → ООЗ → ОФЗ → profit, each on the running total.
func ownForcesChain(subtotal float64, r Rates) float64 {
	total := subtotal
	total += Scale.Apply(total, r.ContingencyCosts)
	total += Scale.Apply(total, r.OverheadOwnForces)
	total += Scale.Apply(total, r.GeneralCostsWithoutSubcontract)
	total += Scale.Apply(total, r.ProfitOwnForces)
	return total
}

// subcontractChain: subcontract overhead → subcontract profit. Contingency and ОФЗ
// do not apply to subcontract.
func subcontractChain(subtotal float64, r Rates) float64 {
	total := subtotal
	total += Scale.Apply(total, r.OverheadSubcontract)
	total += Scale.Apply(total, r.ProfitSubcontract)
	return total
}

// SumBuckets adds up line contributions, e.g. into a position's totals.
func SumBuckets(items ...dto.Buckets) dto.Buckets {
	var total dto.Buckets
	for _, b := range items {
		total = total.Add(b)
	}
	return total
}

package calc

import "github.com/ougirez/tendermarkup/internal/domain"

// FinancialBreakdown is the whole-tender cascade result. Every amount comes from
// exactly one step of ComputeTenderFinancials; the inputs are echoed back.
type FinancialBreakdown struct {
	BaseCosts domain.BaseCosts `json:"baseCosts"`
	Rates     Rates            `json:"rates"`

	WorksAfter16           float64 `json:"worksAfter16"`
	WorksWithGrowth        float64 `json:"worksWithGrowth"`
	MaterialsWithGrowth    float64 `json:"materialsWithGrowth"`
	SubmaterialsWithGrowth float64 `json:"submaterialsWithGrowth"`
	SubworksWithGrowth     float64 `json:"subworksWithGrowth"`
	SubtotalAfterGrowth    float64 `json:"subtotalAfterGrowth"`

	ContingencyBase float64 `json:"contingencyBase"`
	ContingencyCost float64 `json:"contingencyCost"`

	OwnForcesBase           float64 `json:"ownForcesBase"`
	SubcontractBase         float64 `json:"subcontractBase"`
	OverheadSubcontractBase float64 `json:"overheadSubcontractBase"`

	OverheadOwnForces   float64 `json:"overheadOwnForces"`
	OverheadSubcontract float64 `json:"overheadSubcontract"`
	GeneralCosts        float64 `json:"generalCosts"`

	ProfitOwnForces     float64 `json:"profitOwnForces"`
	ProfitSubcontract   float64 `json:"profitSubcontract"`
	TotalProfit         float64 `json:"totalProfit"`
	TotalCostWithProfit float64 `json:"totalCostWithProfit"`
}

// ComputeTenderFinancials runs the whole-tender cascade. The step order and the
// base of every step are fixed; changing either changes the commercial total.
// The function is total: no input is rejected.
func ComputeTenderFinancials(costs domain.BaseCosts, params domain.MarkupParameters) FinancialBreakdown {
	r := ResolveRates(params)
	b := FinancialBreakdown{BaseCosts: costs, Rates: r}

	// Works16Markup defaults to 160 here, so the scaled value is already a total.
	b.WorksAfter16 = Scale.Apply(costs.Works, r.Works16Markup)
	b.WorksWithGrowth = Grow.Apply(b.WorksAfter16, r.WorksCostGrowth)
	b.MaterialsWithGrowth = Grow.Apply(costs.Materials, r.MaterialsCostGrowth)
	b.SubmaterialsWithGrowth = Grow.Apply(costs.SubMaterials, r.SubcontractMaterialsCostGrowth)
	b.SubworksWithGrowth = Grow.Apply(costs.SubWorks, r.SubcontractWorksCostGrowth)
	b.SubtotalAfterGrowth = b.MaterialsWithGrowth + b.WorksWithGrowth + b.SubmaterialsWithGrowth + b.SubworksWithGrowth

	// subcontract stays out of the contingency base
	b.ContingencyBase = b.WorksWithGrowth + b.MaterialsWithGrowth
	b.ContingencyCost = Scale.Apply(b.ContingencyBase, r.ContingencyCosts)

	b.OwnForcesBase = b.MaterialsWithGrowth + b.WorksWithGrowth
	b.SubcontractBase = b.SubmaterialsWithGrowth + b.SubworksWithGrowth

	// raw base costs, not the grown ones
	b.OverheadSubcontractBase = costs.SubMaterials + costs.SubWorks
	b.OverheadSubcontract = Scale.Apply(b.OverheadSubcontractBase, r.OverheadSubcontract)

	b.OverheadOwnForces = Scale.Apply(b.OwnForcesBase, r.OverheadOwnForces)
	// ОФЗ is charged on own forces only
	b.GeneralCosts = Scale.Apply(b.OwnForcesBase, r.GeneralCostsWithoutSubcontract)

	b.ProfitOwnForces = Scale.Apply(b.OwnForcesBase, r.ProfitOwnForces)
	b.ProfitSubcontract = Scale.Apply(b.SubcontractBase, r.ProfitSubcontract)
	b.TotalProfit = b.ProfitOwnForces + b.ProfitSubcontract

	b.TotalCostWithProfit = b.SubtotalAfterGrowth +
		b.ContingencyCost +
		b.OverheadOwnForces +
		b.OverheadSubcontract +
		b.GeneralCosts +
		b.TotalProfit

	return b
}

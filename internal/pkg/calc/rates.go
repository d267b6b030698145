package calc

import "github.com/ougirez/tendermarkup/internal/domain"

// Rates are MarkupParameters with every percentage resolved.
type Rates struct {
	Works16Markup                  float64 `json:"works16Markup"`
	MechanizationService           float64 `json:"mechanizationService"`
	MbpGsm                         float64 `json:"mbpGsm"`
	WarrantyPeriod                 float64 `json:"warrantyPeriod"`
	WorksCostGrowth                float64 `json:"worksCostGrowth"`
	MaterialsCostGrowth            float64 `json:"materialsCostGrowth"`
	SubcontractWorksCostGrowth     float64 `json:"subcontractWorksCostGrowth"`
	SubcontractMaterialsCostGrowth float64 `json:"subcontractMaterialsCostGrowth"`
	ContingencyCosts               float64 `json:"contingencyCosts"`
	OverheadOwnForces              float64 `json:"overheadOwnForces"`
	OverheadSubcontract            float64 `json:"overheadSubcontract"`
	GeneralCostsWithoutSubcontract float64 `json:"generalCostsWithoutSubcontract"`
	ProfitOwnForces                float64 `json:"profitOwnForces"`
	ProfitSubcontract              float64 `json:"profitSubcontract"`
}

// DefaultRates are substituted for absent parameters at calculation time.
//
// NOTE: Works16Markup here is 160 while PersistedDefaults stores 60 for a new
// tender. Both values are kept as they are; do not reconcile one to the other.
var DefaultRates = Rates{
	Works16Markup:                  160,
	MechanizationService:           0,
	MbpGsm:                         0,
	WarrantyPeriod:                 0,
	WorksCostGrowth:                5,
	MaterialsCostGrowth:            3,
	SubcontractWorksCostGrowth:     7,
	SubcontractMaterialsCostGrowth: 4,
	ContingencyCosts:               2,
	OverheadOwnForces:              8,
	OverheadSubcontract:            6,
	GeneralCostsWithoutSubcontract: 5,
	ProfitOwnForces:                12,
	ProfitSubcontract:              8,
}

// PersistedWorks16Markup is the works16Markup stored for a new tender. Per-item
// pricing treats works16 as an increment, so it also falls back to this value.
const PersistedWorks16Markup = 60

// PersistedDefaults returns the parameter set stored for a newly created tender.
func PersistedDefaults() domain.MarkupParameters {
	r := DefaultRates
	r.Works16Markup = PersistedWorks16Markup
	return r.Parameters()
}

// ResolveRates substitutes DefaultRates for every nil parameter.
func ResolveRates(p domain.MarkupParameters) Rates {
	d := DefaultRates
	return Rates{
		Works16Markup:                  orDefault(p.Works16Markup, d.Works16Markup),
		MechanizationService:           orDefault(p.MechanizationService, d.MechanizationService),
		MbpGsm:                         orDefault(p.MbpGsm, d.MbpGsm),
		WarrantyPeriod:                 orDefault(p.WarrantyPeriod, d.WarrantyPeriod),
		WorksCostGrowth:                orDefault(p.WorksCostGrowth, d.WorksCostGrowth),
		MaterialsCostGrowth:            orDefault(p.MaterialsCostGrowth, d.MaterialsCostGrowth),
		SubcontractWorksCostGrowth:     orDefault(p.SubcontractWorksCostGrowth, d.SubcontractWorksCostGrowth),
		SubcontractMaterialsCostGrowth: orDefault(p.SubcontractMaterialsCostGrowth, d.SubcontractMaterialsCostGrowth),
		ContingencyCosts:               orDefault(p.ContingencyCosts, d.ContingencyCosts),
		OverheadOwnForces:              orDefault(p.OverheadOwnForces, d.OverheadOwnForces),
		OverheadSubcontract:            orDefault(p.OverheadSubcontract, d.OverheadSubcontract),
		GeneralCostsWithoutSubcontract: orDefault(p.GeneralCostsWithoutSubcontract, d.GeneralCostsWithoutSubcontract),
		ProfitOwnForces:                orDefault(p.ProfitOwnForces, d.ProfitOwnForces),
		ProfitSubcontract:              orDefault(p.ProfitSubcontract, d.ProfitSubcontract),
	}
}

// ResolveLineItemRates is ResolveRates for per-item pricing: an absent
// works16Markup becomes PersistedWorks16Markup instead of 160.
func ResolveLineItemRates(p domain.MarkupParameters) Rates {
	r := ResolveRates(p)
	if p.Works16Markup == nil {
		r.Works16Markup = PersistedWorks16Markup
	}
	return r
}

// Parameters converts resolved rates back into a fully populated parameter set.
func (r Rates) Parameters() domain.MarkupParameters {
	return domain.MarkupParameters{
		Works16Markup:                  domain.Percent(r.Works16Markup),
		MechanizationService:           domain.Percent(r.MechanizationService),
		MbpGsm:                         domain.Percent(r.MbpGsm),
		WarrantyPeriod:                 domain.Percent(r.WarrantyPeriod),
		WorksCostGrowth:                domain.Percent(r.WorksCostGrowth),
		MaterialsCostGrowth:            domain.Percent(r.MaterialsCostGrowth),
		SubcontractWorksCostGrowth:     domain.Percent(r.SubcontractWorksCostGrowth),
		SubcontractMaterialsCostGrowth: domain.Percent(r.SubcontractMaterialsCostGrowth),
		ContingencyCosts:               domain.Percent(r.ContingencyCosts),
		OverheadOwnForces:              domain.Percent(r.OverheadOwnForces),
		OverheadSubcontract:            domain.Percent(r.OverheadSubcontract),
		GeneralCostsWithoutSubcontract: domain.Percent(r.GeneralCostsWithoutSubcontract),
		ProfitOwnForces:                domain.Percent(r.ProfitOwnForces),
		ProfitSubcontract:              domain.Percent(r.ProfitSubcontract),
	}
}

func orDefault(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

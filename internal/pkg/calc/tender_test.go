package calc

import (
	"math"
	"testing"

	"github.com/ougirez/tendermarkup/internal/domain"
)

const tolerance = 1e-6

func withinTolerance(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestFormApply(t *testing.T) {
	tests := []struct {
		name     string
		form     Form
		base     float64
		pct      float64
		expected float64
	}{
		{"Scale produces increment", Scale, 1000, 5, 50},
		{"Grow produces total", Grow, 1000, 5, 1050},
		{"Scale above 100 percent", Scale, 100000, 160, 160000},
		{"Grow with zero percent", Grow, 1234.5, 0, 1234.5},
		{"Scale with zero percent", Scale, 1234.5, 0, 0},
		{"Zero base", Grow, 0, 40, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.form.Apply(tt.base, tt.pct)
			if !withinTolerance(got, tt.expected) {
				t.Errorf("%s.Apply(%v, %v) = %v, expected %v", tt.form, tt.base, tt.pct, got, tt.expected)
			}
		})
	}
}

func TestComputeTenderFinancialsReferenceScenario(t *testing.T) {
	b := ComputeTenderFinancials(domain.BaseCosts{Works: 100000, Materials: 50000}, domain.MarkupParameters{})

	expected := map[string]struct{ got, want float64 }{
		"worksAfter16":           {b.WorksAfter16, 160000},
		"worksWithGrowth":        {b.WorksWithGrowth, 168000},
		"materialsWithGrowth":    {b.MaterialsWithGrowth, 51500},
		"submaterialsWithGrowth": {b.SubmaterialsWithGrowth, 0},
		"subworksWithGrowth":     {b.SubworksWithGrowth, 0},
		"subtotalAfterGrowth":    {b.SubtotalAfterGrowth, 219500},
		"contingencyBase":        {b.ContingencyBase, 219500},
		"contingencyCost":        {b.ContingencyCost, 4390},
		"ownForcesBase":          {b.OwnForcesBase, 219500},
		"overheadOwnForces":      {b.OverheadOwnForces, 17560},
		"overheadSubcontract":    {b.OverheadSubcontract, 0},
		"generalCosts":           {b.GeneralCosts, 10975},
		"profitOwnForces":        {b.ProfitOwnForces, 26340},
		"profitSubcontract":      {b.ProfitSubcontract, 0},
		"totalProfit":            {b.TotalProfit, 26340},
		"totalCostWithProfit":    {b.TotalCostWithProfit, 278765},
	}

	for name, v := range expected {
		if !withinTolerance(v.got, v.want) {
			t.Errorf("%s = %v, expected %v", name, v.got, v.want)
		}
	}

	if b.BaseCosts.Works != 100000 || b.BaseCosts.Materials != 50000 {
		t.Errorf("expected base costs to be echoed, got %+v", b.BaseCosts)
	}
	if b.Rates != DefaultRates {
		t.Errorf("expected default rates to be echoed, got %+v", b.Rates)
	}
}

func TestComputeTenderFinancialsSubcontract(t *testing.T) {
	b := ComputeTenderFinancials(domain.BaseCosts{SubMaterials: 5000, SubWorks: 10000}, domain.MarkupParameters{})

	tests := []struct {
		name     string
		got      float64
		expected float64
	}{
		{"Sub-materials grow by 4%", b.SubmaterialsWithGrowth, 5200},
		{"Sub-works grow by 7%", b.SubworksWithGrowth, 10700},
		{"Subcontract base uses grown values", b.SubcontractBase, 15900},
		{"Subcontract overhead uses raw base", b.OverheadSubcontract, 900},
		{"Subcontract excluded from contingency", b.ContingencyCost, 0},
		{"Subcontract excluded from general costs", b.GeneralCosts, 0},
		{"Subcontract profit", b.ProfitSubcontract, 1272},
		{"Total", b.TotalCostWithProfit, 15900 + 900 + 1272},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !withinTolerance(tt.got, tt.expected) {
				t.Errorf("got %v, expected %v", tt.got, tt.expected)
			}
		})
	}
}

func TestComputeTenderFinancialsExplicitParameters(t *testing.T) {
	params := domain.MarkupParameters{
		Works16Markup:    domain.Percent(100),
		WorksCostGrowth:  domain.Percent(10),
		ContingencyCosts: domain.Percent(0),
	}
	b := ComputeTenderFinancials(domain.BaseCosts{Works: 1000}, params)

	if !withinTolerance(b.WorksAfter16, 1000) {
		t.Errorf("worksAfter16 = %v, expected 1000", b.WorksAfter16)
	}
	if !withinTolerance(b.WorksWithGrowth, 1100) {
		t.Errorf("worksWithGrowth = %v, expected 1100", b.WorksWithGrowth)
	}
	if b.ContingencyCost != 0 {
		t.Errorf("contingencyCost = %v, expected 0 for explicit zero", b.ContingencyCost)
	}
	// 1100 + 8% + 5% + 12%
	if !withinTolerance(b.TotalCostWithProfit, 1100*1.25) {
		t.Errorf("totalCostWithProfit = %v, expected %v", b.TotalCostWithProfit, 1100*1.25)
	}
}

func TestComputeTenderFinancialsZeroBase(t *testing.T) {
	paramSets := map[string]domain.MarkupParameters{
		"defaults":  {},
		"persisted": PersistedDefaults(),
		"large":     DefaultRates.withAll(250).Parameters(),
	}

	for name, params := range paramSets {
		t.Run(name, func(t *testing.T) {
			b := ComputeTenderFinancials(domain.BaseCosts{}, params)
			amounts := []float64{
				b.WorksAfter16, b.WorksWithGrowth, b.MaterialsWithGrowth, b.SubmaterialsWithGrowth,
				b.SubworksWithGrowth, b.SubtotalAfterGrowth, b.ContingencyBase, b.ContingencyCost,
				b.OwnForcesBase, b.SubcontractBase, b.OverheadSubcontractBase, b.OverheadOwnForces,
				b.OverheadSubcontract, b.GeneralCosts, b.ProfitOwnForces, b.ProfitSubcontract,
				b.TotalProfit, b.TotalCostWithProfit,
			}
			for i, v := range amounts {
				if v != 0 {
					t.Errorf("amount #%d = %v, expected 0", i, v)
				}
			}
		})
	}
}

func TestComputeTenderFinancialsMonotonic(t *testing.T) {
	base := domain.BaseCosts{Materials: 1200, Works: 3400, SubMaterials: 560, SubWorks: 780}
	bump := func(c domain.BaseCosts, field int, delta float64) domain.BaseCosts {
		switch field {
		case 0:
			c.Materials += delta
		case 1:
			c.Works += delta
		case 2:
			c.SubMaterials += delta
		case 3:
			c.SubWorks += delta
		}
		return c
	}

	paramSets := []domain.MarkupParameters{{}, PersistedDefaults(), DefaultRates.withAll(0).Parameters()}
	for _, params := range paramSets {
		before := ComputeTenderFinancials(base, params).TotalCostWithProfit
		for field := 0; field < 4; field++ {
			for _, delta := range []float64{0, 0.01, 1, 1000} {
				after := ComputeTenderFinancials(bump(base, field, delta), params).TotalCostWithProfit
				if after < before {
					t.Errorf("field %d +%v decreased total: %v -> %v", field, delta, before, after)
				}
			}
		}
	}
}

func TestComputeTenderFinancialsIdempotent(t *testing.T) {
	costs := domain.BaseCosts{Materials: 123.45, Works: 678.9, SubMaterials: 10.11, SubWorks: 12.13}
	params := domain.MarkupParameters{Works16Markup: domain.Percent(60), ProfitSubcontract: domain.Percent(9.5)}

	first := ComputeTenderFinancials(costs, params)
	second := ComputeTenderFinancials(costs, params)
	if first != second {
		t.Fatalf("expected identical breakdowns, got %+v and %+v", first, second)
	}
}

func TestResolveRates(t *testing.T) {
	if got := ResolveRates(domain.MarkupParameters{}); got != DefaultRates {
		t.Errorf("ResolveRates(empty) = %+v, expected defaults", got)
	}

	got := ResolveRates(domain.MarkupParameters{ProfitOwnForces: domain.Percent(0), MbpGsm: domain.Percent(3)})
	if got.ProfitOwnForces != 0 {
		t.Errorf("explicit zero must not fall back to default, got %v", got.ProfitOwnForces)
	}
	if got.MbpGsm != 3 {
		t.Errorf("MbpGsm = %v, expected 3", got.MbpGsm)
	}
	if got.OverheadOwnForces != DefaultRates.OverheadOwnForces {
		t.Errorf("OverheadOwnForces = %v, expected default", got.OverheadOwnForces)
	}

	if back := ResolveRates(DefaultRates.Parameters()); back != DefaultRates {
		t.Errorf("Parameters() does not resolve back to the same rates: %+v", back)
	}
}

// The calculation fallback and the stored default for a new tender differ on
// works16Markup. This test pins both.
func TestWorks16MarkupDefaultsDiverge(t *testing.T) {
	if DefaultRates.Works16Markup != 160 {
		t.Errorf("calculation default works16Markup = %v, expected 160", DefaultRates.Works16Markup)
	}
	persisted := PersistedDefaults()
	if persisted.Works16Markup == nil || *persisted.Works16Markup != 60 {
		t.Errorf("persisted default works16Markup = %v, expected 60", persisted.Works16Markup)
	}
	if *persisted.ProfitOwnForces != DefaultRates.ProfitOwnForces {
		t.Errorf("other persisted defaults should match calculation defaults")
	}
}

func (r Rates) withAll(v float64) Rates {
	return Rates{v, v, v, v, v, v, v, v, v, v, v, v, v, v}
}

package domain

// BaseCosts: четыре независимых итога ПЗ по области расчёта (тендер или одна позиция).
type BaseCosts struct {
	Materials    float64 `json:"materials" mapstructure:"materials"`
	Works        float64 `json:"works" mapstructure:"works"`
	SubMaterials float64 `json:"submaterials" mapstructure:"submaterials"`
	SubWorks     float64 `json:"subworks" mapstructure:"subworks"`
}

// MarkupParameters: 14 процентов наценки. nil означает «не задано», при расчёте
// подставляется значение по умолчанию.
type MarkupParameters struct {
	Works16Markup                  *float64 `db:"works_16_markup" json:"works16Markup,omitempty" mapstructure:"works16Markup" validate:"omitempty,finite,gte=0"`
	MechanizationService           *float64 `db:"mechanization_service" json:"mechanizationService,omitempty" mapstructure:"mechanizationService" validate:"omitempty,finite,gte=0"`
	MbpGsm                         *float64 `db:"mbp_gsm" json:"mbpGsm,omitempty" mapstructure:"mbpGsm" validate:"omitempty,finite,gte=0"`
	WarrantyPeriod                 *float64 `db:"warranty_period" json:"warrantyPeriod,omitempty" mapstructure:"warrantyPeriod" validate:"omitempty,finite,gte=0"`
	WorksCostGrowth                *float64 `db:"works_cost_growth" json:"worksCostGrowth,omitempty" mapstructure:"worksCostGrowth" validate:"omitempty,finite,gte=0"`
	MaterialsCostGrowth            *float64 `db:"materials_cost_growth" json:"materialsCostGrowth,omitempty" mapstructure:"materialsCostGrowth" validate:"omitempty,finite,gte=0"`
	SubcontractWorksCostGrowth     *float64 `db:"subcontract_works_cost_growth" json:"subcontractWorksCostGrowth,omitempty" mapstructure:"subcontractWorksCostGrowth" validate:"omitempty,finite,gte=0"`
	SubcontractMaterialsCostGrowth *float64 `db:"subcontract_materials_cost_growth" json:"subcontractMaterialsCostGrowth,omitempty" mapstructure:"subcontractMaterialsCostGrowth" validate:"omitempty,finite,gte=0"`
	ContingencyCosts               *float64 `db:"contingency_costs" json:"contingencyCosts,omitempty" mapstructure:"contingencyCosts" validate:"omitempty,finite,gte=0"`
	OverheadOwnForces              *float64 `db:"overhead_own_forces" json:"overheadOwnForces,omitempty" mapstructure:"overheadOwnForces" validate:"omitempty,finite,gte=0"`
	OverheadSubcontract            *float64 `db:"overhead_subcontract" json:"overheadSubcontract,omitempty" mapstructure:"overheadSubcontract" validate:"omitempty,finite,gte=0"`
	GeneralCostsWithoutSubcontract *float64 `db:"general_costs_without_subcontract" json:"generalCostsWithoutSubcontract,omitempty" mapstructure:"generalCostsWithoutSubcontract" validate:"omitempty,finite,gte=0"`
	ProfitOwnForces                *float64 `db:"profit_own_forces" json:"profitOwnForces,omitempty" mapstructure:"profitOwnForces" validate:"omitempty,finite,gte=0"`
	ProfitSubcontract              *float64 `db:"profit_subcontract" json:"profitSubcontract,omitempty" mapstructure:"profitSubcontract" validate:"omitempty,finite,gte=0"`
}

// Percent is a helper for building MarkupParameters literals.
func Percent(v float64) *float64 {
	return &v
}

type ItemType string

const (
	ItemTypeWork        ItemType = "work"
	ItemTypeMaterial    ItemType = "material"
	ItemTypeSubWork     ItemType = "sub_work"
	ItemTypeSubMaterial ItemType = "sub_material"
)

func (t ItemType) Valid() bool {
	switch t {
	case ItemTypeWork, ItemTypeMaterial, ItemTypeSubWork, ItemTypeSubMaterial:
		return true
	}
	return false
}

// IsSubcontract сообщает, идёт ли позиция через субподряд.
func (t ItemType) IsSubcontract() bool {
	return t == ItemTypeSubWork || t == ItemTypeSubMaterial
}

// LineItemRole описывает участие строки BOQ в каскаде.
// IsAuxiliary учитывается только для material и sub_material.
type LineItemRole struct {
	ItemType    ItemType `json:"itemType"`
	IsAuxiliary bool     `json:"isAuxiliary"`
}

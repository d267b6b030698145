package store

import (
	"errors"

	"github.com/ougirez/tendermarkup/internal/pkg/constants"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

const (
	tableTenders              = "tenders"
	tableBOQItems             = "boq_items"
	tableMarkupConfigurations = "markup_configurations"
	tableMarkupTemplates      = "markup_templates"
)

// столбцы процентов, общие для конфигураций и шаблонов
var markupParameterColumns = []string{
	"works_16_markup",
	"mechanization_service",
	"mbp_gsm",
	"warranty_period",
	"works_cost_growth",
	"materials_cost_growth",
	"subcontract_works_cost_growth",
	"subcontract_materials_cost_growth",
	"contingency_costs",
	"overhead_own_forces",
	"overhead_subcontract",
	"general_costs_without_subcontract",
	"profit_own_forces",
	"profit_subcontract",
}

var mapping = map[error]error{pgx.ErrNoRows: constants.ErrDBNotFound}

func wrapErr(err error) error {
	for k, v := range mapping {
		if errors.Is(err, k) {
			return v
		}
	}
	return err
}

// builder возвращает squirrel SQL Builder обьект.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func withColumns(cols ...[]string) []string {
	var res []string
	for _, c := range cols {
		res = append(res, c...)
	}
	return res
}

// Package output renders calculation results for the terminal.
package output

import (
	"fmt"
	"io"
	"sort"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/ougirez/tendermarkup/internal/domain"
	"github.com/ougirez/tendermarkup/internal/domain/dto"
	"github.com/ougirez/tendermarkup/internal/pkg/calc"
	"github.com/ougirez/tendermarkup/internal/service/markup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type row struct {
	label  string
	amount float64
}

// PrettyBreakdown печатает каскад по всему тендеру, по строке на шаг.
func PrettyBreakdown(w io.Writer, b calc.FinancialBreakdown) error {
	p := message.NewPrinter(language.English)

	rows := []row{
		{"Materials (base)", b.BaseCosts.Materials},
		{"Works (base)", b.BaseCosts.Works},
		{"Sub-materials (base)", b.BaseCosts.SubMaterials},
		{"Sub-works (base)", b.BaseCosts.SubWorks},
		{"Works after 1.6", b.WorksAfter16},
		{"Works with growth", b.WorksWithGrowth},
		{"Materials with growth", b.MaterialsWithGrowth},
		{"Sub-materials with growth", b.SubmaterialsWithGrowth},
		{"Sub-works with growth", b.SubworksWithGrowth},
		{"Subtotal after growth", b.SubtotalAfterGrowth},
		{"Contingency", b.ContingencyCost},
		{"Overhead own forces", b.OverheadOwnForces},
		{"Overhead subcontract", b.OverheadSubcontract},
		{"General costs", b.GeneralCosts},
		{"Profit own forces", b.ProfitOwnForces},
		{"Profit subcontract", b.ProfitSubcontract},
		{"Total profit", b.TotalProfit},
	}

	if _, err := fmt.Fprintf(w, "%-26s | %s\n%-26s | %s\n", "Step", "Amount", "____", "______"); err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := p.Fprintf(w, "%-26s | %.2f\n", r.label, r.amount); err != nil {
			return err
		}
	}
	_, err := p.Fprintf(w, "%-26s | %.2f\n", "TOTAL", b.TotalCostWithProfit)
	return err
}

// LineItemRow is one priced BOQ line of a scenario.
type LineItemRow struct {
	Name string              `json:"name"`
	Role domain.LineItemRole `json:"role"`
	calc.LineItemCost
}

// PrettyLineItems печатает построчный расчёт и итог по колонкам.
func PrettyLineItems(w io.Writer, rows []LineItemRow, totals dto.Buckets) error {
	p := message.NewPrinter(language.English)

	if _, err := fmt.Fprintf(w, "\n%-24s | %-12s | %12s | %12s | %8s\n", "Line item", "Type", "Base", "Commercial", "Coef"); err != nil {
		return err
	}
	for _, r := range rows {
		kind := string(r.Role.ItemType)
		if r.Role.IsAuxiliary {
			kind += "*"
		}
		if _, err := p.Fprintf(w, "%-24s | %-12s | %12.2f | %12.2f | %8.4f\n", r.Name, kind, r.BaseCost, r.FullCommercialCost, r.Coefficient); err != nil {
			return err
		}
	}
	_, err := p.Fprintf(w, "Materials %.2f, works %.2f, sub-materials %.2f, sub-works %.2f\n",
		totals.Materials, totals.Works, totals.SubMaterials, totals.SubWorks)
	return err
}

// PrettySummary печатает итог тендера с разбивкой.
func PrettySummary(w io.Writer, s *markup.TenderSummary) error {
	p := message.NewPrinter(language.English)
	if _, err := p.Fprintf(w, "--- %s (%s) ---\n", s.Title, s.TenderID); err != nil {
		return err
	}
	if err := PrettyBreakdown(w, s.Breakdown); err != nil {
		return err
	}
	_, err := p.Fprintf(w, "Commercial total %.2f cached at %s\n", s.CommercialTotal, s.CalculatedAt.Format("2006-01-02 15:04:05"))
	return err
}

// PrettyPositions prints per-position buckets ordered by position id.
func PrettyPositions(w io.Writer, positions dto.PositionBuckets) error {
	p := message.NewPrinter(language.English)

	ids := make([]uuid.UUID, 0, len(positions))
	for id := range positions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })

	if _, err := fmt.Fprintf(w, "%-36s | %14s | %14s | %14s | %14s\n", "Position", "Materials", "Works", "Sub-materials", "Sub-works"); err != nil {
		return err
	}
	for _, id := range ids {
		b := positions[id]
		if _, err := p.Fprintf(w, "%-36s | %14.2f | %14.2f | %14.2f | %14.2f\n", id, b.Materials, b.Works, b.SubMaterials, b.SubWorks); err != nil {
			return err
		}
	}
	return nil
}

// PrettyBackfill prints the back-fill counters followed by position totals.
func PrettyBackfill(w io.Writer, r *markup.BackfillReport) error {
	if _, err := fmt.Fprintf(w, "Updated: %d, already current: %d\n", r.Updated, r.Skipped); err != nil {
		return err
	}
	return PrettyPositions(w, r.Positions)
}

// JSON writes v as indented JSON.
func JSON(w io.Writer, v interface{}) error {
	data, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("sonic.MarshalIndent: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

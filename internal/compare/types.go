package compare

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/cltcalc/internal/domain"
	"github.com/rgehrsitz/cltcalc/pkg/money"
	"github.com/shopspring/decimal"
)

// ComparisonResult is one termination category evaluated for the shared input
type ComparisonResult struct {
	Category domain.TerminationCategory `json:"category"`
	Label    string                     `json:"label"`
	Result   *domain.RescissionResult   `json:"-"`

	// Key Metrics
	NoticePay        decimal.Decimal `json:"notice_pay"`
	FGTSFine         decimal.Decimal `json:"fgts_fine"`
	GrossTotal       decimal.Decimal `json:"gross_total"`
	TotalDeductions  decimal.Decimal `json:"total_deductions"`
	NetTotal         decimal.Decimal `json:"net_total"`
	FGTSWithdrawable decimal.Decimal `json:"fgts_withdrawable"`
	TotalToReceive   decimal.Decimal `json:"total_to_receive"`
	Unemployment     bool            `json:"unemployment_insurance"`
	CanWithdrawFGTS  bool            `json:"can_withdraw_fgts"`

	// Comparison to Base
	ReceiveDiffFromBase decimal.Decimal `json:"receive_diff_from_base"`
	ReceivePctFromBase  decimal.Decimal `json:"receive_pct_from_base"`
	NetDiffFromBase     decimal.Decimal `json:"net_diff_from_base"`
}

// ComparisonSet is a base category and the alternatives compared against it
type ComparisonSet struct {
	BaseCategory       domain.TerminationCategory `json:"base_category"`
	BaseResult         *ComparisonResult          `json:"base_result"`
	AlternativeResults []ComparisonResult         `json:"alternative_results"`
	Recommendations    []string                   `json:"recommendations"`
	InputPath          string                     `json:"input_path,omitempty"`
}

// All returns the base followed by the alternatives
func (cs *ComparisonSet) All() []ComparisonResult {
	all := make([]ComparisonResult, 0, len(cs.AlternativeResults)+1)
	if cs.BaseResult != nil {
		all = append(all, *cs.BaseResult)
	}
	return append(all, cs.AlternativeResults...)
}

// MetricsCalculator extracts key metrics from rescission results
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics copies the comparison metrics out of a rescission result
func (mc *MetricsCalculator) CalculateMetrics(result *domain.RescissionResult) ComparisonResult {
	return ComparisonResult{
		Category:         result.Input.Category,
		Label:            result.Input.Category.Label(),
		Result:           result,
		NoticePay:        result.NoticePay,
		FGTSFine:         result.FGTSFine,
		GrossTotal:       result.GrossTotal,
		TotalDeductions:  result.TotalDeductions,
		NetTotal:         result.NetTotal,
		FGTSWithdrawable: result.FGTSWithdrawable,
		TotalToReceive:   result.TotalToReceive,
		Unemployment:     result.Details.EligibleForUnemploymentInsurance,
		CanWithdrawFGTS:  result.Details.CanWithdrawFGTS,
	}
}

// CalculateComparison computes the deltas of a category against the base
func (mc *MetricsCalculator) CalculateComparison(alt, base ComparisonResult) ComparisonResult {
	alt.ReceiveDiffFromBase = alt.TotalToReceive.Sub(base.TotalToReceive)
	alt.NetDiffFromBase = alt.NetTotal.Sub(base.NetTotal)

	if !base.TotalToReceive.IsZero() {
		alt.ReceivePctFromBase = alt.ReceiveDiffFromBase.
			Div(base.TotalToReceive).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}

	return alt
}

// GenerateRecommendations summarizes the comparison
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if compSet.BaseResult == nil || len(compSet.AlternativeResults) == 0 {
		return recommendations
	}

	// Highest amount available to the worker, FGTS withdrawal included
	best := compSet.BaseResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.TotalToReceive.GreaterThan(best.TotalToReceive) {
			best = alt
		}
	}
	if best != compSet.BaseResult {
		recommendations = append(recommendations,
			fmt.Sprintf("Maior valor a receber: %s, %s a mais que %s",
				best.Label, money.FormatBRL(best.ReceiveDiffFromBase), compSet.BaseResult.Label))
	} else {
		recommendations = append(recommendations,
			fmt.Sprintf("%s já é a modalidade de maior valor a receber", compSet.BaseResult.Label))
	}

	// Categories that keep the unemployment benefit
	var insured []string
	for _, r := range compSet.All() {
		if r.Unemployment {
			insured = append(insured, r.Label)
		}
	}
	if len(insured) > 0 {
		recommendations = append(recommendations,
			fmt.Sprintf("Seguro-desemprego disponível em %d modalidade(s): %s", len(insured), strings.Join(insured, "; ")))
	}

	// Largest FGTS penalty paid by the employer
	var fined *ComparisonResult
	for _, r := range compSet.All() {
		if r.FGTSFine.IsPositive() && (fined == nil || r.FGTSFine.GreaterThan(fined.FGTSFine)) {
			r := r
			fined = &r
		}
	}
	if fined != nil {
		recommendations = append(recommendations,
			fmt.Sprintf("Maior multa do FGTS: %s (%s)", fined.Label, money.FormatBRL(fined.FGTSFine)))
	}

	return recommendations
}

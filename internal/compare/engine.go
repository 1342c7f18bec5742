package compare

import (
	"fmt"

	"github.com/rgehrsitz/cltcalc/internal/calculation"
	"github.com/rgehrsitz/cltcalc/internal/domain"
)

// CompareEngine runs one rescission input under several termination categories
type CompareEngine struct {
	CalcEngine        *calculation.CalculationEngine
	MetricsCalculator *MetricsCalculator
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(calcEngine *calculation.CalculationEngine) *CompareEngine {
	return &CompareEngine{
		CalcEngine:        calcEngine,
		MetricsCalculator: NewMetricsCalculator(),
	}
}

// CompareOptions configures comparison behavior
type CompareOptions struct {
	BaseCategory domain.TerminationCategory   // Defaults to the input's category, then no_cause
	Categories   []domain.TerminationCategory // Defaults to every other category
}

// Compare evaluates the input under the base category and each alternative
func (ce *CompareEngine) Compare(input domain.RescissionInput, options CompareOptions) (*ComparisonSet, error) {
	base := options.BaseCategory
	if base == "" {
		base = input.Category
	}
	if base == "" {
		base = domain.TerminationNoCause
	}
	if !base.IsValid() {
		return nil, fmt.Errorf("unknown base category %q", base)
	}

	categories := options.Categories
	if len(categories) == 0 {
		for _, c := range domain.AllTerminationCategories {
			if c != base {
				categories = append(categories, c)
			}
		}
	}

	baseResult, err := ce.run(input, base)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate base category: %w", err)
	}

	alternatives := []ComparisonResult{}
	for _, category := range categories {
		if category == base {
			continue
		}
		if !category.IsValid() {
			return nil, fmt.Errorf("unknown category %q", category)
		}

		altResult, err := ce.run(input, category)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate category %s: %w", category, err)
		}
		alternatives = append(alternatives, ce.MetricsCalculator.CalculateComparison(altResult, baseResult))
	}

	compSet := &ComparisonSet{
		BaseCategory:       base,
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet, nil
}

func (ce *CompareEngine) run(input domain.RescissionInput, category domain.TerminationCategory) (ComparisonResult, error) {
	input.Category = category
	result, err := ce.CalcEngine.CalculateRescission(input)
	if err != nil {
		return ComparisonResult{}, err
	}
	return ce.MetricsCalculator.CalculateMetrics(result), nil
}

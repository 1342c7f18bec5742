package main

import (
	"fmt"

	"github.com/rgehrsitz/cltcalc/internal/config"
	"github.com/rgehrsitz/cltcalc/internal/domain"
	"github.com/rgehrsitz/cltcalc/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func withholdingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withholding",
		Short: "INSS and IRRF withheld from a monthly salary",
		Example: `  cltcalc withholding --salary 3000
  cltcalc withholding --salary 8500.50 --dependents 2 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			salaryText, _ := cmd.Flags().GetString("salary")
			salary, err := decimal.NewFromString(salaryText)
			if err != nil {
				return fmt.Errorf("invalid --salary %q: %w", salaryText, err)
			}
			otherText, _ := cmd.Flags().GetString("other-deductions")
			other, err := decimal.NewFromString(otherText)
			if err != nil {
				return fmt.Errorf("invalid --other-deductions %q: %w", otherText, err)
			}
			dependents, _ := cmd.Flags().GetInt("dependents")

			request := &domain.CalculationRequest{
				Calculator: domain.CalculatorWithholding,
				Withholding: &domain.WithholdingInput{
					GrossSalary:     salary,
					Dependents:      dependents,
					OtherDeductions: other,
				},
			}
			if err := config.NewInputParser().ValidateRequest(request); err != nil {
				return err
			}

			engine, err := newEngine(cmd)
			if err != nil {
				return err
			}
			outcome, err := engine.Run(request)
			if err != nil {
				return err
			}

			format, _ := cmd.Flags().GetString("format")
			return emit(cmd, outcome, format, "")
		},
	}

	cmd.Flags().String("salary", "", "Gross monthly salary, e.g. 3000.00")
	cmd.Flags().Int("dependents", 0, "Number of IRRF dependents")
	cmd.Flags().String("other-deductions", "0", "Other IRRF base deductions, e.g. court-ordered alimony")
	cmd.Flags().StringP("format", "f", "text", fmt.Sprintf("Output format %v", output.FormatterNames))
	_ = cmd.MarkFlagRequired("salary")
	return cmd
}

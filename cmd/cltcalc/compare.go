package main

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/cltcalc/internal/compare"
	"github.com/rgehrsitz/cltcalc/internal/config"
	"github.com/rgehrsitz/cltcalc/internal/domain"
	"github.com/spf13/cobra"
)

func compareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [input-file]",
		Short: "Compare a rescission under every termination category",
		Long: `Runs the rescission in a request file once per termination category and
compares what the worker receives in each case.

Examples:
  cltcalc compare rescisao.yaml
  cltcalc compare rescisao.yaml --base resignation --with no_cause,mutual_agreement
  cltcalc compare rescisao.yaml --format csv
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			request, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			if request.Calculator != domain.CalculatorRescission {
				return fmt.Errorf("compare needs a rescission request, %s has calculator %q", args[0], request.Calculator)
			}

			engine, err := newEngine(cmd)
			if err != nil {
				return err
			}

			base, _ := cmd.Flags().GetString("base")
			with, _ := cmd.Flags().GetString("with")
			options := compare.CompareOptions{
				BaseCategory: domain.TerminationCategory(base),
				Categories:   parseCategoryList(with),
			}

			compSet, err := compare.NewCompareEngine(engine).Compare(*request.Rescission, options)
			if err != nil {
				return err
			}
			compSet.InputPath = args[0]

			format, _ := cmd.Flags().GetString("format")
			formatter := compare.GetFormatterByName(format)
			if formatter == nil {
				return fmt.Errorf("unknown format %q (valid: %v)", format, compare.FormatterNames)
			}
			out, err := formatter.Format(compSet)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().String("base", "", "Base category (default: the request's category)")
	cmd.Flags().String("with", "", "Comma-separated categories to compare (default: all others)")
	cmd.Flags().StringP("format", "f", "table", fmt.Sprintf("Output format %v", compare.FormatterNames))
	return cmd
}

func parseCategoryList(s string) []domain.TerminationCategory {
	var out []domain.TerminationCategory
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, domain.TerminationCategory(part))
		}
	}
	return out
}

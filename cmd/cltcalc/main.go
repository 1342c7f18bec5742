package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/rgehrsitz/cltcalc/internal/calculation"
	"github.com/rgehrsitz/cltcalc/internal/config"
	"github.com/rgehrsitz/cltcalc/internal/domain"
	"github.com/rgehrsitz/cltcalc/internal/output"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cltcalc %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

// newRootCmd builds the command tree; tests build a fresh one per case
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cltcalc",
		Short: "Brazilian labor entitlement calculator",
		Long: `Calculates CLT labor entitlements: rescission, vacation, thirteenth salary,
FGTS, salary premiums, unemployment insurance and INSS/IRRF withholding.

Requests are YAML files naming a calculator and its inputs. Amounts and
brackets come from the built-in regulatory tables unless a regulatory.yaml
is given with --regulatory-config or CLTCALC_REGULATORY.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initLogging(cmd)
		},
	}

	root.PersistentFlags().Bool("debug", false, "Log calculation steps (same as --log-level debug)")
	root.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (default from LOG_LEVEL or info)")
	root.PersistentFlags().String("regulatory-config", "", "Regulatory tables YAML overriding the built-in values")

	root.AddCommand(calculateCmd())
	root.AddCommand(validateCmd())
	root.AddCommand(compareCmd())
	root.AddCommand(withholdingCmd())
	root.AddCommand(rulesCmd())
	root.AddCommand(versionCmd())
	return root
}

var rootCmd = newRootCmd()

// initLogging configures slog on stderr so stdout carries only reports
func initLogging(cmd *cobra.Command) *slog.Logger {
	settings := config.Load()
	level := settings.LogLevel
	if s, _ := cmd.Flags().GetString("log-level"); s != "" {
		level = config.ParseLevel(s)
	}
	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		level = slog.LevelDebug
	}
	return config.InitLogger(cmd.ErrOrStderr(), level)
}

// newEngine resolves the rule set for cmd and wires the slog logger in
func newEngine(cmd *cobra.Command) (*calculation.CalculationEngine, error) {
	path, _ := cmd.Flags().GetString("regulatory-config")
	rules, err := config.ResolveRegulatory(path)
	if err != nil {
		return nil, err
	}
	if path != "" {
		slog.Info("loaded regulatory config", "path", path, "data_year", rules.Metadata.DataYear)
	}

	engine := calculation.NewCalculationEngineWithConfig(*rules)
	engine.SetLogger(config.NewEngineLogger(slog.Default()))
	return engine, nil
}

// emit formats outcome to stdout, or to a timestamped file under dir
func emit(cmd *cobra.Command, outcome *domain.CalculationOutcome, format, dir string) error {
	f := output.GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("unknown format %q (valid: %v)", format, output.FormatterNames)
	}

	if dir != "" {
		path, err := output.WriteFormatted(f, outcome, dir, output.ExtensionFor(f))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
		return nil
	}

	data, err := f.Format(outcome)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func calculateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calculate [input-file]",
		Short: "Run the calculator named in a request file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			request, err := parser.LoadFromFile(args[0])
			if err != nil {
				return err
			}

			engine, err := newEngine(cmd)
			if err != nil {
				return err
			}

			slog.Debug("running calculator", "calculator", request.Calculator, "file", args[0])
			outcome, err := engine.Run(request)
			if err != nil {
				return err
			}

			format, _ := cmd.Flags().GetString("format")
			dir, _ := cmd.Flags().GetString("output-dir")
			return emit(cmd, outcome, format, dir)
		},
	}
	cmd.Flags().StringP("format", "f", "text", fmt.Sprintf("Output format %v", output.FormatterNames))
	cmd.Flags().StringP("output-dir", "o", "", "Write the report to a file in this directory instead of stdout")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [input-file]",
		Short: "Validate a request file without calculating",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			request, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Request file %s is valid (calculator: %s)\n", args[0], request.Calculator)
			return nil
		},
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/cltcalc/internal/calculation"
	"github.com/rgehrsitz/cltcalc/internal/config"
	"github.com/rgehrsitz/cltcalc/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:          "cltcalc-tui [request-file]",
	Short:        "Interactive labor entitlement calculator",
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// The terminal belongs to the UI, so logs go to a file or nowhere
		var logOut io.Writer = io.Discard
		if logFile, _ := cmd.Flags().GetString("log-file"); logFile != "" {
			f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return err
			}
			defer f.Close()
			logOut = f
		}
		logger := config.InitLogger(logOut, config.Load().LogLevel)

		regulatoryPath, _ := cmd.Flags().GetString("regulatory-config")
		rules, err := config.ResolveRegulatory(regulatoryPath)
		if err != nil {
			return err
		}
		engine := calculation.NewCalculationEngineWithConfig(*rules)
		engine.SetLogger(config.NewEngineLogger(logger))

		requestPath := ""
		if len(args) == 1 {
			requestPath = args[0]
			if _, err := os.Stat(requestPath); os.IsNotExist(err) {
				return fmt.Errorf("request file not found: %s", requestPath)
			}
		}

		p := tea.NewProgram(tui.NewModel(engine, requestPath), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("error running TUI: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().String("regulatory-config", "", "Regulatory tables YAML overriding the built-in values")
	rootCmd.Flags().String("log-file", "", "Append JSON logs to this file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

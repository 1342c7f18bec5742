package main

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/rgehrsitz/cltcalc/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func rulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Print the active regulatory tables",
		Long: `Prints the rule set calculations would use: the built-in tables merged with
--regulatory-config or CLTCALC_REGULATORY when given. The YAML output is a
valid regulatory config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("regulatory-config")
			rules, err := config.ResolveRegulatory(path)
			if err != nil {
				return err
			}

			format, _ := cmd.Flags().GetString("format")
			var data []byte
			switch format {
			case "yaml", "":
				data, err = yaml.Marshal(rules)
			case "json":
				data, err = json.MarshalIndent(rules, "", "  ")
				data = append(data, '\n')
			default:
				return fmt.Errorf("unknown format %q (valid: yaml, json)", format)
			}
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringP("format", "f", "yaml", "Output format: yaml or json")
	return cmd
}

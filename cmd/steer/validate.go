package main

import (
	"fmt"

	"github.com/aretw0/steer/pkg/config"
	"github.com/aretw0/steer/pkg/scenario"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a tuning or scenario file",
	Long: `Loads a tuning file (YAML or JSON) and reports out-of-range values or
unknown strategy names. With --scenario the file is checked as a scenario,
including its inline tuning and assist definitions.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		isScenario, _ := cmd.Flags().GetBool("scenario")
		if err := runValidate(args[0], isScenario); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Configuration is valid! ✅")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().Bool("scenario", false, "Treat the file as a scenario")
}

func runValidate(path string, isScenario bool) error {
	if !isScenario {
		_, err := config.Load(path)
		return err
	}

	sc, err := scenario.Load(path)
	if err != nil {
		return err
	}
	// Building the engine runs the same topology checks as serve and simulate.
	_, err = sc.Engine()
	return err
}

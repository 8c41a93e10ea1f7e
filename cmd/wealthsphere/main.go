package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/elampron/wealthsphere/internal/calculation"
	"github.com/elampron/wealthsphere/internal/config"
	"github.com/elampron/wealthsphere/internal/logging"
	"github.com/elampron/wealthsphere/internal/output"
)

var (
	inputFile  string
	formatName string
	outputFile string
	verbose    bool
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "wealthsphere",
	Short: "Household financial projection engine",
	Long: `wealthsphere projects a household's net worth and cash flow year by
year: account growth, RRSP to RRIF conversions, RRIF minimum withdrawals,
and ordered decumulation of savings to cover spending shortfalls.`,
	SilenceUsage: true,
}

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Run a projection from a plan file",
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, err := config.NewInputParser().LoadFromFile(inputFile)
		if err != nil {
			return err
		}

		engine := calculation.NewProjectionEngine()
		if verbose {
			engine.SetLogger(logging.New(os.Stderr, logLevel))
		}

		projection, err := engine.Run(context.Background(), plan)
		if err != nil {
			return err
		}

		formatter := output.GetFormatterByName(formatName)
		if formatter == nil {
			return fmt.Errorf("unknown format %q (available: %v)", formatName, output.AvailableFormats())
		}
		data, err := formatter.Format(projection)
		if err != nil {
			return fmt.Errorf("formatting failed: %w", err)
		}

		if outputFile != "" {
			if err := os.WriteFile(outputFile, data, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outputFile, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", outputFile)
			return nil
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a plan file without running a projection",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.NewInputParser().LoadFromFile(inputFile); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", inputFile)
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{projectCmd, validateCmd} {
		cmd.Flags().StringVarP(&inputFile, "input", "i", "", "plan YAML file (required)")
		_ = cmd.MarkFlagRequired("input")
	}
	projectCmd.Flags().StringVarP(&formatName, "format", "f", "console", "output format: console, csv, json, html")
	projectCmd.Flags().StringVarP(&outputFile, "output", "o", "", "write output to file instead of stdout")
	projectCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log engine decisions to stderr")
	projectCmd.Flags().StringVar(&logLevel, "log-level", "debug", "log level when --verbose is set")

	rootCmd.AddCommand(projectCmd, validateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

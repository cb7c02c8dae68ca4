// Command aircooler generates air-cooled heat exchanger performance
// charts from a test-bench Excel workbook: UA and heat duty versus mass
// flow with design-threshold exceedance shading, and seasonal fan power
// versus mass flow against the rated fan power.
//
// Usage:
//
//	aircooler --rated-power 30 --design-duty 3350000 --design-ua 280 \
//	  "A01-2601 Air Cooler Data - Input.xlsx"
//
// Thresholds and options may also come from AIRCOOLER_* environment
// variables; flags win.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/aircooler-perf/internal/adapter/chartpng"
	"github.com/couchcryptid/aircooler-perf/internal/adapter/excel"
	"github.com/couchcryptid/aircooler-perf/internal/config"
	"github.com/couchcryptid/aircooler-perf/internal/observability"
	"github.com/couchcryptid/aircooler-perf/internal/pipeline"
)

var (
	ratedPower float64
	designDuty float64
	designUA   float64
	outDir     string
	sheet      string
	aliasFile  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "aircooler [input.xlsx]",
		Short:         "Generate air-cooler performance charts from a test-bench workbook",
		Args:          cobra.ExactArgs(1),
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().Float64Var(&ratedPower, "rated-power", 0, "Rated fan power (kW)")
	rootCmd.Flags().Float64Var(&designDuty, "design-duty", 0, "Design air cooler duty (kcal/hr)")
	rootCmd.Flags().Float64Var(&designUA, "design-ua", 0, "Design UA (kcal/hr.m².°C)")
	rootCmd.Flags().StringVarP(&outDir, "out-dir", "o", "", "Directory for output charts (default current directory)")
	rootCmd.Flags().StringVar(&sheet, "sheet", "", "Worksheet name (default: auto-detect by header)")
	rootCmd.Flags().StringVar(&aliasFile, "aliases", "", "YAML column alias-table override")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "aircooler:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	applyFlagOverrides(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := observability.NewLogger(cfg)

	aliases, err := cfg.AliasTable()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	loader := excel.NewLoader(args[0], cfg.Sheet, aliases, logger)
	renderer := chartpng.New(cfg.OutDir, logger)
	p := pipeline.New(loader, renderer, aliases, cfg.Thresholds(), logger)

	if _, err := p.Run(cmd.Context()); err != nil {
		logger.Error("run failed", "error", err)
		return err
	}
	return nil
}

// applyFlagOverrides copies explicitly-set flags over environment
// values.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("rated-power") {
		cfg.RatedPower = ratedPower
	}
	if flags.Changed("design-duty") {
		cfg.DesignDuty = designDuty
	}
	if flags.Changed("design-ua") {
		cfg.DesignUA = designUA
	}
	if flags.Changed("out-dir") {
		cfg.OutDir = outDir
	}
	if flags.Changed("sheet") {
		cfg.Sheet = sheet
	}
	if flags.Changed("aliases") {
		cfg.AliasFile = aliasFile
	}
}

// Package main provides the CLI entry point for lossrank.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sbadata/lossrank/pkg/lossrank"
	"github.com/sbadata/lossrank/pkg/lossrank/logging"
)

var (
	outputPath string
	sheetName  string
	topN       int
	logLevel   string
	logFormat  string
)

func main() {
	defaults := lossrank.DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "lossrank [input.xlsx]",
		Short: "Rank states by total verified disaster-loan loss",
		Long: `lossrank reads SBA disaster-loan records from an Excel workbook,
sums verified loss per state, and writes a ranked text report.`,
		Args: cobra.MaximumNArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", defaults.OutputPath, "Report file path")
	rootCmd.Flags().StringVar(&sheetName, "sheet", defaults.SheetName, "Workbook sheet holding the loan records")
	rootCmd.Flags().IntVar(&topN, "top", defaults.TopN, "Number of ranked states to report")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&logFormat, "log-format", "text", "Log format: text, json")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg := lossrank.DefaultConfig()
	if len(args) > 0 {
		cfg.InputPath = args[0]
	}
	cfg.OutputPath = outputPath
	cfg.SheetName = sheetName
	cfg.TopN = topN

	log := logging.Setup(os.Stderr, logLevel, logFormat)
	return lossrank.Run(cfg, log)
}

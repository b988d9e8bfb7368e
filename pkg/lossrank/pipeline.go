package lossrank

import (
	"log/slog"

	"github.com/sbadata/lossrank/pkg/lossrank/logging"
	"github.com/sbadata/lossrank/pkg/lossrank/parser"
)

// Run executes the full pipeline: extract, aggregate, validate, report.
// The first failing stage aborts the run and its error is returned
// untranslated; no partial report is written.
func Run(cfg Config, log *slog.Logger) error {
	logging.Header(log, "Pipeline: extract, aggregate, validate, report")
	log.Info("pipeline start",
		"input", cfg.InputPath,
		"sheet", cfg.SheetName,
		"top_n", cfg.TopN)

	records, err := parser.Extract(cfg.InputPath, cfg.SheetName, log)
	if err != nil {
		return err
	}

	totals := Aggregate(records)
	log.Info("aggregation complete", "states", totals.Len())

	if err := Validate(totals); err != nil {
		return err
	}

	if err := WriteReport(totals, cfg.OutputPath, cfg.SheetName, cfg.TopN); err != nil {
		return err
	}
	log.Info("report written", "path", cfg.OutputPath)

	log.Info("pipeline end")
	return nil
}

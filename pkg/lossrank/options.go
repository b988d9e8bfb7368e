// Package lossrank implements the verified-loss aggregation pipeline for
// SBA disaster-loan workbooks: extract, aggregate, validate, report.
package lossrank

// Config carries the fixed parameters of a pipeline run.
type Config struct {
	// InputPath is the workbook holding the disaster-loan records.
	InputPath string
	// SheetName is the sheet the data region is read from.
	SheetName string
	// OutputPath is where the ranked text report is written.
	OutputPath string
	// TopN caps the number of ranked states in the report.
	TopN int
}

// DefaultConfig returns the standard run parameters.
func DefaultConfig() Config {
	return Config{
		InputPath:  "data/raw/sba_disaster_loans_fy22.xlsx",
		SheetName:  "FY22 Home",
		OutputPath: "data/processed/verified_loss_by_state.txt",
		TopN:       10,
	}
}

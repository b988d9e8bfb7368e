// Package parser reads the disaster-loan data region out of an Excel
// workbook.
package parser

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/sbadata/lossrank/pkg/lossrank/models"
)

const (
	// dataStartRow is the first data row of the report sheet (1-based).
	// Rows above it hold the agency's title block and column headers.
	dataStartRow = 6
	// stateCol and lossCol are 0-based offsets of columns H and I.
	stateCol = 7
	lossCol  = 8
)

// ErrFileNotFound indicates the input workbook does not exist.
var ErrFileNotFound = errors.New("file not found")

// SheetNotFoundError reports a missing sheet together with the names that
// are actually present, so the operator can fix the configuration.
type SheetNotFoundError struct {
	Requested string
	Available []string
}

func (e *SheetNotFoundError) Error() string {
	return fmt.Sprintf("sheet %q not found (available: %s)",
		e.Requested, strings.Join(e.Available, ", "))
}

// Extract reads the data region of the named sheet and returns one record
// per accepted row. A row is accepted when its state cell is non-blank and
// its loss cell is non-blank; malformed loss text degrades to 0.0 rather
// than rejecting the row.
func Extract(path, sheetName string, log *slog.Logger) ([]models.Record, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	idx, err := f.GetSheetIndex(sheetName)
	if err != nil || idx < 0 {
		return nil, &SheetNotFoundError{Requested: sheetName, Available: f.GetSheetList()}
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
	}

	var records []models.Record
	scanned, skipped := 0, 0
	for i := dataStartRow - 1; i < len(rows); i++ {
		scanned++
		row := rows[i]

		state, ok := stateOf(row)
		if !ok {
			skipped++
			log.Debug("skipping row without state", "row", i+1)
			continue
		}

		loss, ok := cellAt(row, lossCol).Coerce()
		if !ok {
			skipped++
			log.Debug("skipping row with blank loss", "row", i+1, "state", state)
			continue
		}

		records = append(records, models.Record{State: state, Loss: loss})
	}

	log.Info("extraction complete",
		"sheet", sheetName,
		"rows_scanned", scanned,
		"records", len(records),
		"skipped", skipped)

	return records, nil
}

// cellAt returns the cell at the 0-based column offset, treating rows that
// end before the column as empty.
func cellAt(row []string, col int) models.Cell {
	if col >= len(row) {
		return models.EmptyCell()
	}
	return models.CellOf(row[col])
}

// stateOf returns the trimmed state code, or ok=false when the cell is
// absent or blank.
func stateOf(row []string) (string, bool) {
	if stateCol >= len(row) {
		return "", false
	}
	state := strings.TrimSpace(row[stateCol])
	if state == "" {
		return "", false
	}
	return state, true
}

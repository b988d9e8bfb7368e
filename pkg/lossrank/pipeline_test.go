package lossrank

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/sbadata/lossrank/pkg/lossrank/parser"
)

// writeWorkbook builds an input workbook with the data region starting at
// row 6, states in column H and verified loss in column I.
func writeWorkbook(t *testing.T, sheet string, cells map[string]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	_, err := f.NewSheet(sheet)
	require.NoError(t, err)

	for ref, value := range cells {
		require.NoError(t, f.SetCellValue(sheet, ref, value))
	}

	path := filepath.Join(t.TempDir(), "loans.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestRunEndToEnd(t *testing.T) {
	input := writeWorkbook(t, "FY22 Home", map[string]interface{}{
		"H6": "UT", "I6": 100.0,
		"H7": "CA", "I7": "1,500.25",
		"H8": "UT", "I8": 200.0,
		"H9": "TX", "I9": 50.0,
	})
	output := filepath.Join(t.TempDir(), "processed", "report.txt")

	cfg := Config{
		InputPath:  input,
		SheetName:  "FY22 Home",
		OutputPath: output,
		TopN:       10,
	}
	require.NoError(t, Run(cfg, slog.New(slog.NewTextHandler(io.Discard, nil))))

	content, err := os.ReadFile(output)
	require.NoError(t, err)

	report := string(content)
	assert.Contains(t, report, "States counted: 3\n")
	assert.Contains(t, report, "   1 | CA    |           1,500.25\n")
	assert.Contains(t, report, "   2 | UT    |             300.00\n")
	assert.Contains(t, report, "   3 | TX    |              50.00\n")
}

func TestRunIsIdempotent(t *testing.T) {
	input := writeWorkbook(t, "FY22 Home", map[string]interface{}{
		"H6": "UT", "I6": 100.0,
		"H7": "CA", "I7": 250.0,
	})
	output := filepath.Join(t.TempDir(), "report.txt")

	cfg := Config{
		InputPath:  input,
		SheetName:  "FY22 Home",
		OutputPath: output,
		TopN:       10,
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	require.NoError(t, Run(cfg, log))
	first, err := os.ReadFile(output)
	require.NoError(t, err)

	require.NoError(t, Run(cfg, log))
	second, err := os.ReadFile(output)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRunMissingSheetWritesNoReport(t *testing.T) {
	input := writeWorkbook(t, "FY22 Home", map[string]interface{}{
		"H6": "UT", "I6": 100.0,
	})
	output := filepath.Join(t.TempDir(), "report.txt")

	cfg := Config{
		InputPath:  input,
		SheetName:  "FY23 Home",
		OutputPath: output,
		TopN:       10,
	}
	err := Run(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	var sheetErr *parser.SheetNotFoundError
	require.True(t, errors.As(err, &sheetErr))
	assert.NoFileExists(t, output)
}

func TestRunEmptyResultWritesNoReport(t *testing.T) {
	// Data region exists but every row is filtered out.
	input := writeWorkbook(t, "FY22 Home", map[string]interface{}{
		"H6": "   ", "I6": 100.0, // blank state
		"H7": "TX", "I7": "  ", // blank loss
	})
	output := filepath.Join(t.TempDir(), "report.txt")

	cfg := Config{
		InputPath:  input,
		SheetName:  "FY22 Home",
		OutputPath: output,
		TopN:       10,
	}
	err := Run(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.ErrorIs(t, err, ErrEmptyResult)
	assert.NoFileExists(t, output)
}

func TestRunNegativeTotalWritesNoReport(t *testing.T) {
	input := writeWorkbook(t, "FY22 Home", map[string]interface{}{
		"H6": "UT", "I6": 100.0,
		"H7": "UT", "I7": -150.0,
	})
	output := filepath.Join(t.TempDir(), "report.txt")

	cfg := Config{
		InputPath:  input,
		SheetName:  "FY22 Home",
		OutputPath: output,
		TopN:       10,
	}
	err := Run(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	var negErr *NegativeTotalError
	require.True(t, errors.As(err, &negErr))
	assert.Equal(t, "UT", negErr.State)
	assert.NoFileExists(t, output)
}

func TestRunMissingFile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InputPath = filepath.Join(t.TempDir(), "absent.xlsx")
	cfg.OutputPath = filepath.Join(t.TempDir(), "report.txt")

	err := Run(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.ErrorIs(t, err, parser.ErrFileNotFound)
}

package lossrank

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/sbadata/lossrank/pkg/lossrank/models"
)

const reportTitle = "SBA Disaster Loan Report: Total Verified Loss by State"

// Rank orders states by total verified loss, highest first. The sort is
// stable over first-seen order, so states with equal totals keep the order
// in which they appeared in the input.
func Rank(totals *models.Totals) []models.RankedEntry {
	entries := make([]models.RankedEntry, 0, totals.Len())
	for _, state := range totals.States() {
		total, _ := totals.Get(state)
		entries = append(entries, models.RankedEntry{State: state, Total: total})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Total > entries[j].Total
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// FormatReport renders the full report text for the given aggregate,
// truncated to the topN highest totals.
func FormatReport(totals *models.Totals, sheetName string, topN int) string {
	entries := Rank(totals)
	if topN < len(entries) {
		entries = entries[:topN]
	}

	var b strings.Builder
	fmt.Fprintln(&b, reportTitle)
	fmt.Fprintln(&b, strings.Repeat("=", 48))
	fmt.Fprintf(&b, "Sheet: %s\n", sheetName)
	fmt.Fprintf(&b, "States counted: %d\n", totals.Len())
	fmt.Fprintf(&b, "Top N: %d\n", topN)
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "Rank | State | Total Verified Loss")
	fmt.Fprintln(&b, strings.Repeat("-", 40))
	for _, e := range entries {
		fmt.Fprintf(&b, "%4d | %-5s | %18s\n",
			e.Rank, e.State, humanize.FormatFloat("#,###.##", e.Total))
	}
	return b.String()
}

// WriteReport renders the report and writes it to outputPath, creating the
// destination directory if needed. The whole content is prepared up front
// and written in one pass; the file handle is closed on every path.
func WriteReport(totals *models.Totals, outputPath, sheetName string, topN int) error {
	content := FormatReport(totals, sheetName, topN)

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(content); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return f.Close()
}

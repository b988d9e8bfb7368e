// Package models defines data structures for the verified-loss pipeline.
package models

import (
	"strconv"
	"strings"
)

// CellKind discriminates the closed set of cell shapes the workbook
// reader can hand over.
type CellKind int

const (
	// CellEmpty is an absent or empty cell.
	CellEmpty CellKind = iota
	// CellNumber is a cell holding a numeric value.
	CellNumber
	// CellText is a cell holding arbitrary text.
	CellText
)

// Cell is a tagged variant of a single spreadsheet cell value.
type Cell struct {
	Kind   CellKind
	Number float64
	Text   string
}

// EmptyCell returns an absent cell.
func EmptyCell() Cell {
	return Cell{Kind: CellEmpty}
}

// NumberCell returns a numeric cell.
func NumberCell(f float64) Cell {
	return Cell{Kind: CellNumber, Number: f}
}

// TextCell returns a text cell.
func TextCell(s string) Cell {
	return Cell{Kind: CellText, Text: s}
}

// CellOf classifies a raw cell string as returned by the workbook reader.
// An empty string is an empty cell, a value that parses as a float is a
// number, anything else is text.
func CellOf(raw string) Cell {
	if raw == "" {
		return EmptyCell()
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return NumberCell(f)
	}
	return TextCell(raw)
}

// Coerce converts the cell to a loss amount. Numbers pass through
// unchanged. Text is trimmed, stripped of thousands-separator commas, and
// parsed; malformed text degrades to 0.0 rather than failing the row.
// Empty cells and whitespace-only text report ok=false: a blank measure
// means absent, not zero, and the caller must skip the row.
func (c Cell) Coerce() (float64, bool) {
	switch c.Kind {
	case CellNumber:
		return c.Number, true
	case CellText:
		s := strings.TrimSpace(c.Text)
		if s == "" {
			return 0, false
		}
		s = strings.ReplaceAll(s, ",", "")
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, true
		}
		return f, true
	default:
		return 0, false
	}
}

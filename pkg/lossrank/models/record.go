package models

// Record is one accepted input row: a state code and its verified loss.
type Record struct {
	State string
	Loss  float64
}

// RankedEntry is one line of the final report.
type RankedEntry struct {
	// Rank is 1-based, highest total first.
	Rank  int
	State string
	Total float64
}

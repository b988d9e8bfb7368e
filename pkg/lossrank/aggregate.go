package lossrank

import "github.com/sbadata/lossrank/pkg/lossrank/models"

// Aggregate sums verified loss per state. Pure accumulation: an empty
// record sequence yields an empty aggregate, and deciding whether that is
// acceptable is the validator's job.
func Aggregate(records []models.Record) *models.Totals {
	totals := models.NewTotals()
	for _, r := range records {
		totals.Add(r.State, r.Loss)
	}
	return totals
}

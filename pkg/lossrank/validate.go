package lossrank

import "github.com/sbadata/lossrank/pkg/lossrank/models"

// Validate confirms the aggregate is fit to report: at least one state,
// and no negative totals. The aggregate is not modified.
func Validate(totals *models.Totals) error {
	if totals.Len() == 0 {
		return ErrEmptyResult
	}
	for _, state := range totals.States() {
		total, _ := totals.Get(state)
		if total < 0 {
			return &NegativeTotalError{State: state, Total: total}
		}
	}
	return nil
}

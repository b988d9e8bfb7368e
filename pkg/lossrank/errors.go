package lossrank

import (
	"errors"
	"fmt"
)

// ErrEmptyResult indicates no states were aggregated from the input,
// meaning the workbook was empty or every row was filtered out.
var ErrEmptyResult = errors.New("no states aggregated from input")

// NegativeTotalError reports a state whose summed verified loss is
// negative, which cannot occur with well-formed input data.
type NegativeTotalError struct {
	State string
	Total float64
}

func (e *NegativeTotalError) Error() string {
	return fmt.Sprintf("state %q has negative total verified loss: %.2f", e.State, e.Total)
}

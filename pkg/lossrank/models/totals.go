package models

// Totals accumulates verified loss per state while remembering the order
// in which states were first seen. Ranking uses a stable sort over that
// order, so equal totals keep their encounter order; the iteration order
// must therefore stay deterministic.
type Totals struct {
	sums  map[string]float64
	order []string
}

// NewTotals returns an empty aggregate.
func NewTotals() *Totals {
	return &Totals{sums: make(map[string]float64)}
}

// Add accumulates loss into the state's running total, creating the state
// at 0.0 if unseen.
func (t *Totals) Add(state string, loss float64) {
	if _, ok := t.sums[state]; !ok {
		t.order = append(t.order, state)
	}
	t.sums[state] += loss
}

// Get returns the state's total and whether the state is present.
func (t *Totals) Get(state string) (float64, bool) {
	total, ok := t.sums[state]
	return total, ok
}

// States returns the state codes in first-seen order.
func (t *Totals) States() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Len returns the number of distinct states.
func (t *Totals) Len() int {
	return len(t.order)
}

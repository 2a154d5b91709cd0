// Package model defines the price-series types consumed by the indicator
// engines. A price history is a chronological slice; insertion order is
// significant and preserved end-to-end.
package model

// Sample represents one trading session: the closing price plus the
// session's low and high. The engines expect Low <= Close <= High but do
// not enforce it; violating the invariant produces meaningless output,
// not an error.
type Sample struct {
	Close float64 `json:"close"`
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
}

// Closes extracts the close prices from samples, preserving order.
func Closes(samples []Sample) []float64 {
	closes := make([]float64, len(samples))
	for i, s := range samples {
		closes[i] = s.Close
	}
	return closes
}

// Package indicator provides batch technical indicator calculations over
// chronological price data.
//
// Every function takes the full known history and returns the full indicator
// series in the same chronological order, or an error before any value is
// produced — there are no partial results and no retained state, so all
// functions are safe to call concurrently on independent inputs.
//
// Numeric degeneracies are propagated, not repaired: a zero-denominator
// ratio (an all-gain run feeding RSI, a flat stochastic window) yields
// non-finite float64 values in the output. Callers that want to treat those
// as errors can scan the result with math.IsInf / math.IsNaN.
package indicator

import "math"

// DefaultPeriod is the canonical lookback used by both RSI and the
// stochastic oscillator when callers have no reason to pick another.
const DefaultPeriod = 14

// countNonFinite reports how many values in the series are NaN or infinite.
func countNonFinite(values []float64) int {
	n := 0
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			n++
		}
	}
	return n
}

package indicator

import "fmt"

// MACDSeries holds the three MACD output series. Line starts at input
// index slow-1, Signal and Histogram at input index slow+signal-2; within
// the struct the three slices are trailing-aligned, so
// Histogram[i] == Line[len(Line)-len(Histogram)+i] - Signal[i].
type MACDSeries struct {
	Line      []float64
	Signal    []float64
	Histogram []float64
}

// MACD calculates moving average convergence/divergence: the line is
// EMA(fast) - EMA(slow), the signal is an EMA(signal) of the line and the
// histogram is their difference. Requires fast < slow and at least
// slow + signal - 1 prices.
func MACD(prices []float64, fast, slow, signal int) (MACDSeries, error) {
	if fast <= 0 || slow <= 0 || signal <= 0 {
		return MACDSeries{}, ErrInvalidPeriod
	}
	if fast >= slow {
		return MACDSeries{}, fmt.Errorf("fast period %d must be shorter than slow period %d", fast, slow)
	}
	required := slow + signal - 1
	if len(prices) < required {
		return MACDSeries{}, &InsufficientDataError{Received: len(prices), Required: required}
	}

	fastEMA, err := EMA(prices, fast)
	if err != nil {
		return MACDSeries{}, err
	}
	slowEMA, err := EMA(prices, slow)
	if err != nil {
		return MACDSeries{}, err
	}

	// Both EMA series end at the last price; the slow one starts later.
	offset := slow - fast
	line := make([]float64, len(slowEMA))
	for i := range slowEMA {
		line[i] = fastEMA[offset+i] - slowEMA[i]
	}

	sig, err := EMA(line, signal)
	if err != nil {
		return MACDSeries{}, err
	}

	hist := make([]float64, len(sig))
	for i := range sig {
		hist[i] = line[signal-1+i] - sig[i]
	}

	return MACDSeries{Line: line, Signal: sig, Histogram: hist}, nil
}

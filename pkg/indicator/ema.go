package indicator

// EMA calculates the exponential moving average of prices. The first value
// is the simple average of the first period prices; each later value folds
// the next price in with multiplier 2/(period+1):
//
//	EMA = (price - prev) * multiplier + prev
//
// The output has len(prices) - period + 1 entries, aligned with the SMA
// seed at index period-1 of the input.
func EMA(prices []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, ErrInvalidPeriod
	}
	if len(prices) < period {
		return nil, &InsufficientDataError{Received: len(prices), Required: period}
	}

	var sum float64
	for _, p := range prices[:period] {
		sum += p
	}
	cur := sum / float64(period)

	out := make([]float64, 0, len(prices)-period+1)
	out = append(out, cur)

	multiplier := 2.0 / float64(period+1)
	for _, p := range prices[period:] {
		cur = (p-cur)*multiplier + cur
		out = append(out, cur)
	}
	return out, nil
}

package indicator

// SMMA calculates the smoothed moving average (Wilder-style smoothing) of
// prices. The first value is the simple average of the first period
// prices; each later value is
//
//	SMMA = (prev*(period-1) + price) / period
//
// The output has len(prices) - period + 1 entries.
func SMMA(prices []float64, period int) ([]float64, error) {
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

	p := float64(period)
	for _, price := range prices[period:] {
		cur = (cur*(p-1) + price) / p
		out = append(out, cur)
	}
	return out, nil
}

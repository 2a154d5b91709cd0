package indicator

// SMA calculates the simple moving average of prices over a rolling
// window. Uses a running sum, so the cost is O(n) regardless of period.
// The output has len(prices) - period + 1 entries, one per full window.
func SMA(prices []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, ErrInvalidPeriod
	}
	if len(prices) < period {
		return nil, &InsufficientDataError{Received: len(prices), Required: period}
	}

	out := make([]float64, 0, len(prices)-period+1)
	var sum float64
	for i, p := range prices {
		sum += p
		if i >= period {
			sum -= prices[i-period]
		}
		if i >= period-1 {
			out = append(out, sum/float64(period))
		}
	}
	return out, nil
}

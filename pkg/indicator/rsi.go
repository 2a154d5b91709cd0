package indicator

// RSI calculates the Relative Strength Index over prices using Wilder's
// smoothing method. It needs period+1 prices to seed the first value and
// emits one value per price thereafter, so the output has
// len(prices) - period entries.
//
// The first value comes from the plain ratio of the seed averages; every
// later value comes from the Wilder recurrence. The two formula paths are
// deliberately distinct and neither clamps: a zero average loss pushes the
// value to 100 (or NaN when the average gain is also zero) and that result
// is returned as-is.
func RSI(prices []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, ErrInvalidPeriod
	}
	if len(prices) < period+1 {
		return nil, &InsufficientDataError{Received: len(prices), Required: period + 1}
	}

	// Seed phase: total gains and losses over the first period deltas.
	// A zero delta contributes to neither sum.
	var gains, losses float64
	for i := 1; i <= period; i++ {
		delta := prices[i] - prices[i-1]
		if delta > 0 {
			gains += delta
		} else if delta < 0 {
			losses -= delta
		}
	}

	p := float64(period)
	avgGain := gains / p
	avgLoss := losses / p

	out := make([]float64, 0, len(prices)-period)
	out = append(out, 100.0-100.0/(1.0+avgGain/avgLoss))

	// Wilder recurrence. A zero delta still decays both averages by
	// (period-1)/period.
	for i := period + 1; i < len(prices); i++ {
		delta := prices[i] - prices[i-1]
		gain, loss := 0.0, 0.0
		if delta > 0 {
			gain = delta
		} else if delta < 0 {
			loss = -delta
		}
		avgGain = (avgGain*(p-1) + gain) / p
		avgLoss = (avgLoss*(p-1) + loss) / p
		out = append(out, 100.0-100.0/(1.0+avgGain/avgLoss))
	}

	return out, nil
}

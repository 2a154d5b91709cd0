package indicator

import "math"

// BollingerSeries holds the three Bollinger band lines. All three have the
// same length and alignment as SMA(prices, period).
type BollingerSeries struct {
	Upper  []float64
	Middle []float64
	Lower  []float64
}

// BollingerBands calculates Bollinger bands: the middle line is
// SMA(period) and the outer bands sit width population standard deviations
// away from it. width is conventionally 2.
func BollingerBands(prices []float64, period int, width float64) (BollingerSeries, error) {
	if period <= 0 || width <= 0 {
		return BollingerSeries{}, ErrInvalidPeriod
	}
	if len(prices) < period {
		return BollingerSeries{}, &InsufficientDataError{Received: len(prices), Required: period}
	}

	n := len(prices) - period + 1
	out := BollingerSeries{
		Upper:  make([]float64, 0, n),
		Middle: make([]float64, 0, n),
		Lower:  make([]float64, 0, n),
	}
	p := float64(period)
	for i := period - 1; i < len(prices); i++ {
		win := prices[i-period+1 : i+1]

		var sum float64
		for _, v := range win {
			sum += v
		}
		mean := sum / p

		var variance float64
		for _, v := range win {
			d := v - mean
			variance += d * d
		}
		sd := math.Sqrt(variance / p)

		out.Middle = append(out.Middle, mean)
		out.Upper = append(out.Upper, mean+width*sd)
		out.Lower = append(out.Lower, mean-width*sd)
	}
	return out, nil
}

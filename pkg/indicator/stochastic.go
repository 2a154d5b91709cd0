package indicator

import (
	"ta-engine/internal/window"
	"ta-engine/pkg/model"
)

// DefaultDPeriod is the conventional smoothing span for the %D line.
const DefaultDPeriod = 3

// StochasticOscillator calculates the %K line over samples: for every
// window of period sessions it compares the latest close against the
// lowest low and highest high of that window,
//
//	%K = (close - low14) / (high14 - low14) * 100
//
// One value is produced per full window, so the output has
// len(samples) - period + 1 entries.
//
// The trailing extrema come from a monotonic-deque tracker, which reports
// the same values as a per-window rescan in O(n) total. A flat window
// (high14 == low14) divides by zero; the non-finite result is kept.
func StochasticOscillator(samples []model.Sample, period int) ([]float64, error) {
	if period <= 0 {
		return nil, ErrInvalidPeriod
	}
	if len(samples) < period {
		return nil, &InsufficientDataError{Received: len(samples), Required: period}
	}

	out := make([]float64, 0, len(samples)-period+1)
	lows := window.NewMin(period)
	highs := window.NewMax(period)
	for i, s := range samples {
		lows.Push(s.Low)
		highs.Push(s.High)
		if i < period-1 {
			continue
		}
		low, high := lows.Value(), highs.Value()
		out = append(out, (s.Close-low)/(high-low)*100.0)
	}

	return out, nil
}

// StochasticKD calculates the full stochastic: the %K line plus %D, a
// simple moving average of %K over dPeriod values. The %D series starts
// once dPeriod %K values exist, so it has len(k) - dPeriod + 1 entries.
func StochasticKD(samples []model.Sample, period, dPeriod int) (k, d []float64, err error) {
	if dPeriod <= 0 {
		return nil, nil, ErrInvalidPeriod
	}
	k, err = StochasticOscillator(samples, period)
	if err != nil {
		return nil, nil, err
	}
	if len(k) < dPeriod {
		return nil, nil, &InsufficientDataError{
			Received: len(samples),
			Required: period + dPeriod - 1,
		}
	}
	d, err = SMA(k, dPeriod)
	if err != nil {
		return nil, nil, err
	}
	return k, d, nil
}

package indicator

import (
	"math"

	"ta-engine/pkg/model"
)

// ATR calculates the average true range over samples with Wilder
// smoothing. The true range of a session is the largest of
//
//	high - low, |high - prevClose|, |low - prevClose|
//
// so it is defined from the second sample onward; period true ranges seed
// the first output with their simple average and later values use the
// Wilder recurrence. The output has len(samples) - period entries and
// requires period+1 samples.
func ATR(samples []model.Sample, period int) ([]float64, error) {
	if period <= 0 {
		return nil, ErrInvalidPeriod
	}
	if len(samples) < period+1 {
		return nil, &InsufficientDataError{Received: len(samples), Required: period + 1}
	}

	p := float64(period)
	var seed float64
	for i := 1; i <= period; i++ {
		seed += trueRange(samples[i], samples[i-1].Close)
	}
	cur := seed / p

	out := make([]float64, 0, len(samples)-period)
	out = append(out, cur)
	for i := period + 1; i < len(samples); i++ {
		tr := trueRange(samples[i], samples[i-1].Close)
		cur = (cur*(p-1) + tr) / p
		out = append(out, cur)
	}
	return out, nil
}

func trueRange(s model.Sample, prevClose float64) float64 {
	tr := s.High - s.Low
	if v := math.Abs(s.High - prevClose); v > tr {
		tr = v
	}
	if v := math.Abs(s.Low - prevClose); v > tr {
		tr = v
	}
	return tr
}

// Package window provides a rolling-window extremum tracker backed by a
// monotonic deque. Pushing n values costs O(n) total regardless of the
// window size, against O(n*period) for a per-window rescan, and reports
// exactly the same extrema.
package window

// Extremum tracks the minimum or maximum of the most recent period values
// pushed. Designed for single-goroutine batch scans — no locks.
type Extremum struct {
	period int
	total  int // values pushed so far

	// Candidate values and their push positions, extremum at the front.
	// Monotonic: every stored value strictly beats its successors.
	vals []float64
	pos  []int

	// beats reports whether a kept value a displaces a newcomer b.
	beats func(a, b float64) bool
}

// NewMin returns a tracker reporting the window minimum. period must be
// positive.
func NewMin(period int) *Extremum {
	return &Extremum{
		period: period,
		beats:  func(a, b float64) bool { return a < b },
	}
}

// NewMax returns a tracker reporting the window maximum. period must be
// positive.
func NewMax(period int) *Extremum {
	return &Extremum{
		period: period,
		beats:  func(a, b float64) bool { return a > b },
	}
}

// Push appends the next value of the series to the window, evicting the
// value that slid out.
func (e *Extremum) Push(v float64) {
	// Drop candidates the newcomer beats or ties; they can never be the
	// window extremum again.
	n := len(e.vals)
	for n > 0 && !e.beats(e.vals[n-1], v) {
		n--
	}
	e.vals = append(e.vals[:n], v)
	e.pos = append(e.pos[:n], e.total)
	e.total++

	// At most one candidate can expire per push.
	if e.pos[0] <= e.total-e.period-1 {
		e.vals = e.vals[1:]
		e.pos = e.pos[1:]
	}
}

// Full reports whether at least period values have been pushed.
func (e *Extremum) Full() bool { return e.total >= e.period }

// Value returns the extremum of the current window. It panics if nothing
// has been pushed.
func (e *Extremum) Value() float64 { return e.vals[0] }

// Count returns the number of values pushed so far.
func (e *Extremum) Count() int { return e.total }

package indicator

import (
	"errors"
	"fmt"
)

// ErrInvalidPeriod is returned when a period (or band width) parameter is
// not positive.
var ErrInvalidPeriod = errors.New("period must be positive")

// InsufficientDataError reports an input series shorter than the minimum
// the requested indicator needs. It is raised before any computation; the
// output is never partially filled.
type InsufficientDataError struct {
	Received int // entries in the input series
	Required int // minimum entries the indicator needs
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data: received %d entries, required %d", e.Received, e.Required)
}

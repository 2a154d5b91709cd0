package indicator

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"ta-engine/internal/logger"
	"ta-engine/internal/metrics"
	"ta-engine/pkg/model"
)

// Spec requests one indicator from the engine.
type Spec struct {
	Type   string // "SMA", "EMA", "SMMA", "RSI", "STOCH", "ATR"
	Period int
}

// Name returns the conventional series name, e.g. "RSI_14".
func (s Spec) Name() string {
	return fmt.Sprintf("%s_%d", s.Type, s.Period)
}

// Result is one computed indicator series, named after its spec.
type Result struct {
	Name   string
	Values []float64
}

// Engine computes a configured set of indicators over one price history.
// It holds no per-call state, so a single Engine is safe for concurrent
// Compute calls on independent inputs.
type Engine struct {
	log     *slog.Logger
	metrics *metrics.Set
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger replaces the engine's default logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithRegistry registers the engine's Prometheus metrics on reg.
func WithRegistry(reg prometheus.Registerer) Option {
	return func(e *Engine) { e.metrics = metrics.New(reg) }
}

// NewEngine creates an indicator engine. Without options it logs JSON to
// stderr at Info and keeps its metrics unregistered.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		log:     logger.New("indicator-engine", slog.LevelInfo),
		metrics: metrics.New(nil),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Compute runs every spec over the sample history and returns the results
// in spec order. The first failing spec aborts the call; no partial result
// set is returned. Degenerate (non-finite) output values are counted and
// logged but never altered.
func (e *Engine) Compute(samples []model.Sample, specs []Spec) ([]Result, error) {
	closes := model.Closes(samples)

	results := make([]Result, 0, len(specs))
	for _, spec := range specs {
		start := time.Now()

		var values []float64
		var err error
		switch spec.Type {
		case "SMA":
			values, err = SMA(closes, spec.Period)
		case "EMA":
			values, err = EMA(closes, spec.Period)
		case "SMMA":
			values, err = SMMA(closes, spec.Period)
		case "RSI":
			values, err = RSI(closes, spec.Period)
		case "STOCH":
			values, err = StochasticOscillator(samples, spec.Period)
		case "ATR":
			values, err = ATR(samples, spec.Period)
		default:
			err = fmt.Errorf("unknown indicator type %q", spec.Type)
		}
		if err != nil {
			if _, short := err.(*InsufficientDataError); short {
				e.metrics.InsufficientData.Inc()
			}
			return nil, fmt.Errorf("%s: %w", spec.Name(), err)
		}

		e.metrics.ComputationsTotal.WithLabelValues(spec.Name()).Inc()
		e.metrics.ComputeDur.Observe(time.Since(start).Seconds())

		if n := countNonFinite(values); n > 0 {
			e.metrics.DegenerateValues.Add(float64(n))
			e.log.Warn("degenerate indicator values",
				slog.String("indicator", spec.Name()),
				slog.Int("count", n),
				slog.Int("series_len", len(values)),
			)
		}

		results = append(results, Result{Name: spec.Name(), Values: values})
	}

	return results, nil
}

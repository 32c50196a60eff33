// Package calc implements the deliberately expensive calculation and the
// memoized wrapper that keeps it from running on every render.
package calc

import (
	"github.com/Iron-Ham/taskmemo/internal/logging"
	"github.com/Iron-Ham/taskmemo/internal/memo"
	"github.com/Iron-Ham/taskmemo/internal/metrics"
)

// DefaultIterations is the number of additions performed per calculation.
const DefaultIterations = 100_000_000

// ExpensiveCalculation adds count to an accumulator DefaultIterations times.
// The result equals count * DefaultIterations; the loop is the point.
func ExpensiveCalculation(count int) int {
	return Iterate(count, DefaultIterations)
}

// Iterate adds count to an accumulator iterations times.
// Non-positive iterations yield 0.
func Iterate(count, iterations int) int {
	num := 0
	for i := 0; i < iterations; i++ {
		num += count
	}
	return num
}

// Calculator memoizes Iterate on its single input.
type Calculator struct {
	iterations int
	slot       *memo.Slot[int, int]
	logger     *logging.Logger
	metrics    *metrics.Metrics
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithIterations overrides the number of loop iterations per run.
func WithIterations(n int) Option {
	return func(c *Calculator) {
		c.iterations = n
	}
}

// WithLogger sets the logger used to report runs.
func WithLogger(l *logging.Logger) Option {
	return func(c *Calculator) {
		c.logger = l
	}
}

// WithMetrics sets the metrics sink for runs.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Calculator) {
		c.metrics = m
	}
}

// NewCalculator creates a Calculator with an empty cache.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{
		iterations: DefaultIterations,
		slot:       memo.NewSlot[int, int](),
		logger:     logging.NopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Value returns the calculation for count, running the loop only when count
// differs from the input of the cached result.
func (c *Calculator) Value(count int) int {
	return c.slot.Get(count, c.run)
}

func (c *Calculator) run(count int) int {
	c.logger.Debug("expensive calculation running", "count", count, "iterations", c.iterations)
	c.metrics.ObserveCalculation()
	return Iterate(count, c.iterations)
}

// Runs reports how many times the loop has actually run.
func (c *Calculator) Runs() int {
	return c.slot.Computations()
}

// Iterations returns the configured iteration count.
func (c *Calculator) Iterations() int {
	return c.iterations
}

// Package metrics exposes Prometheus counters for render and memoization
// activity, so the effect of the caches can be observed from outside the TUI.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/Iron-Ham/taskmemo/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Namespace is the metrics namespace used for every collector.
const Namespace = "taskmemo"

// View names used as the "view" label on render counters.
const (
	ViewRoot     = "root"
	ViewTodoList = "todo_list"
)

// Todo sources used as the "source" label on the todos-added counter.
const (
	SourceAdd    = "add"
	SourceSubmit = "submit"
)

// Metrics holds the application's collectors on a private registry.
// All methods are safe to call on a nil *Metrics.
type Metrics struct {
	registry *prometheus.Registry

	renders         *prometheus.CounterVec
	calculations    prometheus.Counter
	todosAdded      *prometheus.CounterVec
	submitsRejected prometheus.Counter
}

// New creates a Metrics instance with its collectors registered.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "renders_total",
			Help:      "Number of times a view produced new output.",
		}, []string{"view"}),
		calculations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "expensive_calculations_total",
			Help:      "Number of times the expensive calculation loop actually ran.",
		}),
		todosAdded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "todos_added_total",
			Help:      "Number of todos appended to the collection.",
		}, []string{"source"}),
		submitsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "submits_rejected_total",
			Help:      "Number of task submissions rejected by validation.",
		}),
	}

	m.registry.MustRegister(m.renders, m.calculations, m.todosAdded, m.submitsRejected)
	return m
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveRender records that view produced new output.
func (m *Metrics) ObserveRender(view string) {
	if m == nil {
		return
	}
	m.renders.WithLabelValues(view).Inc()
}

// RenderCounter returns the render counter for view.
func (m *Metrics) RenderCounter(view string) prometheus.Counter {
	if m == nil {
		return nil
	}
	return m.renders.WithLabelValues(view)
}

// ObserveCalculation records one run of the expensive calculation.
func (m *Metrics) ObserveCalculation() {
	if m == nil {
		return
	}
	m.calculations.Inc()
}

// ObserveTodoAdded records one appended todo.
func (m *Metrics) ObserveTodoAdded(source string) {
	if m == nil {
		return
	}
	m.todosAdded.WithLabelValues(source).Inc()
}

// ObserveSubmitRejected records one rejected submission.
func (m *Metrics) ObserveSubmitRejected() {
	if m == nil {
		return
	}
	m.submitsRejected.Inc()
}

// Handler returns an http.Handler serving the registry in the Prometheus
// exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve listens on addr and serves /metrics until ctx is canceled. It blocks
// and returns nil after a clean shutdown.
func (m *Metrics) Serve(ctx context.Context, addr string, logger *logging.Logger) error {
	if m == nil {
		return errors.New("metrics not initialized")
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(ln)
	}()
	logger.Info("metrics server listening", "addr", ln.Addr().String())

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("metrics server stopped: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("metrics server shutdown: %w", err)
	}
	logger.Info("metrics server stopped")
	return nil
}

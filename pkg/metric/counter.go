package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	// OutcomeSuccess labels an operation that completed.
	OutcomeSuccess = "success"

	// OutcomeError labels an operation that failed.
	OutcomeError = "error"
)

// IncrementalCounter counts events by label values.
type IncrementalCounter interface {
	Increment(val ...string)
}

// Counter is a Prometheus backed IncrementalCounter.
type Counter struct {
	Name string
	Help string

	vec *prometheus.CounterVec
}

// Increment adds one for the given label values.
func (c *Counter) Increment(val ...string) {
	c.vec.WithLabelValues(val...).Inc()
}

// NewCounter registers a counter vector on the default registry.
func NewCounter(name, help string, labels ...string) IncrementalCounter {
	return NewCounterWithRegistry(prometheus.DefaultRegisterer, name, help, labels...)
}

// NewCounterWithRegistry registers a counter vector on reg.
func NewCounterWithRegistry(reg prometheus.Registerer, name, help string, labels ...string) IncrementalCounter {
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: name,
		Help: help,
	}, labels)

	reg.MustRegister(counter)

	return &Counter{
		Name: name,
		Help: help,
		vec:  counter,
	}
}

// Noop discards every increment.
type Noop struct{}

// Increment does nothing.
func (Noop) Increment(...string) {}

// Menu groups the counters maintained while serving a menu.
type Menu struct {
	// Renders counts render requests by kind and outcome.
	Renders IncrementalCounter

	// Reloads counts menu file reloads by outcome.
	Reloads IncrementalCounter
}

// NewMenu registers the menu counters on reg.
func NewMenu(reg prometheus.Registerer) *Menu {
	return &Menu{
		Renders: NewCounterWithRegistry(reg, "navmenu_render_total", "Number of menu renders.", "kind", "outcome"),
		Reloads: NewCounterWithRegistry(reg, "navmenu_reload_total", "Number of menu file reloads.", "outcome"),
	}
}

// NoopMenu returns counters that record nothing.
func NoopMenu() *Menu {
	return &Menu{Renders: Noop{}, Reloads: Noop{}}
}

// GetHandlerForRegistry returns an HTTP handler serving the metrics gathered by reg.
func GetHandlerForRegistry(reg prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

// Package observe turns search engine events into Prometheus metrics.
//
// A Collector is a search.Observer; register it with search.WithObserver and
// expose its registry however the host program serves metrics. WriteText
// dumps any gatherer in the text exposition format, which is what the CLI
// prints after a run.
package observe

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/stepsearch/search"
)

const namespace = "stepsearch"

// Outcome label values.
const (
	OutcomeFound         = "found"
	OutcomeNoPath        = "no_path"
	OutcomeDepthExceeded = "depth_exceeded"
	OutcomeError         = "error"
)

// Collector records engine events.
type Collector struct {
	events     *prometheus.CounterVec
	outcomes   *prometheus.CounterVec
	restarts   *prometheus.CounterVec
	children   *prometheus.HistogramVec
	fringeSize *prometheus.GaugeVec
	treeSize   *prometheus.GaugeVec
}

// NewCollector creates the metrics and registers them with reg.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		events: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "events_total", Help: "Engine events by kind."},
			[]string{"algorithm", "kind"},
		),
		outcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "runs_finished_total", Help: "Finished runs by outcome."},
			[]string{"algorithm", "outcome"},
		),
		restarts: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "deepening_restarts_total", Help: "Iterative deepening ceiling increases."},
			[]string{"algorithm"},
		),
		children: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "expansion_children",
				Help:      "Children added per expansion.",
				Buckets:   prometheus.LinearBuckets(0, 1, 9),
			},
			[]string{"algorithm"},
		),
		fringeSize: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{Namespace: namespace, Name: "fringe_size", Help: "Fringe length after the last event."},
			[]string{"algorithm"},
		),
		treeSize: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{Namespace: namespace, Name: "tree_size", Help: "Search tree size after the last event."},
			[]string{"algorithm"},
		),
	}

	for _, col := range []prometheus.Collector{c.events, c.outcomes, c.restarts, c.children, c.fringeSize, c.treeSize} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("observe: register: %w", err)
		}
	}

	return c, nil
}

// OnEvent implements search.Observer.
func (c *Collector) OnEvent(ev search.Event) {
	alg := ev.Algorithm.String()
	c.events.WithLabelValues(alg, ev.Kind.String()).Inc()
	c.fringeSize.WithLabelValues(alg).Set(float64(ev.FringeLen))
	c.treeSize.WithLabelValues(alg).Set(float64(ev.TreeLen))

	switch ev.Kind {
	case search.EventExpanded:
		c.children.WithLabelValues(alg).Observe(float64(ev.Children))
	case search.EventRestarted:
		c.restarts.WithLabelValues(alg).Inc()
	case search.EventFinished:
		c.outcomes.WithLabelValues(alg, Outcome(ev.Result)).Inc()
	}
}

// Outcome maps a terminal result to its label value.
func Outcome(r search.Result) string {
	switch {
	case r.Status == search.FoundPath:
		return OutcomeFound
	case r.Reason == search.ReasonNoPath:
		return OutcomeNoPath
	case r.Reason == search.ReasonDepthExceeded:
		return OutcomeDepthExceeded
	default:
		return OutcomeError
	}
}

// WriteText writes every metric family of g in the text exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("observe: gather: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("observe: encode %s: %w", mf.GetName(), err)
		}
	}

	return nil
}

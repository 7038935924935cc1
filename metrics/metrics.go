// Package metrics exports a running sat.Solver's search statistics as
// Prometheus collectors, so a long benchmark run can be observed from a
// /metrics endpoint instead of parsed out of log lines.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cnfkit/solver/sat"
)

// Collector is a prometheus.Collector over a sat.Stats snapshot source.
// It is a pull-based collector: Source is invoked at scrape time, so it
// always reports the solver's current counters rather than a stale copy
// taken at registration time.
type Collector struct {
	Source func() sat.Stats

	instance string

	decisions     *prometheus.Desc
	propagations  *prometheus.Desc
	conflicts     *prometheus.Desc
	learned       *prometheus.Desc
	glueClauses   *prometheus.Desc
	restarts      *prometheus.Desc
	reductions    *prometheus.Desc
	maxLevel      *prometheus.Desc
}

// NewCollector returns a Collector labeled with instance (typically a
// benchmark instance filename), reading from source on every scrape.
func NewCollector(instance string, source func() sat.Stats) *Collector {
	labels := prometheus.Labels{"instance": instance}
	mk := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc("cnfkit_solver_"+name, help, nil, labels)
	}
	return &Collector{
		Source:       source,
		instance:     instance,
		decisions:    mk("decisions_total", "Number of branching decisions made."),
		propagations: mk("propagations_total", "Number of literals propagated."),
		conflicts:    mk("conflicts_total", "Number of conflicts encountered."),
		learned:      mk("learned_clauses", "Number of learnt clauses currently held."),
		glueClauses:  mk("glue_clauses_total", "Number of learnt clauses at or under the glue threshold."),
		restarts:     mk("restarts_total", "Number of search restarts performed."),
		reductions:   mk("reductions_total", "Number of learned-clause database reductions performed."),
		maxLevel:     mk("max_decision_level", "Highest decision level reached so far."),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.decisions
	ch <- c.propagations
	ch <- c.conflicts
	ch <- c.learned
	ch <- c.glueClauses
	ch <- c.restarts
	ch <- c.reductions
	ch <- c.maxLevel
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	st := c.Source()
	ch <- prometheus.MustNewConstMetric(c.decisions, prometheus.CounterValue, float64(st.Decisions))
	ch <- prometheus.MustNewConstMetric(c.propagations, prometheus.CounterValue, float64(st.Propagations))
	ch <- prometheus.MustNewConstMetric(c.conflicts, prometheus.CounterValue, float64(st.Conflicts))
	ch <- prometheus.MustNewConstMetric(c.learned, prometheus.GaugeValue, float64(st.Learned))
	ch <- prometheus.MustNewConstMetric(c.glueClauses, prometheus.CounterValue, float64(st.GlueClauses))
	ch <- prometheus.MustNewConstMetric(c.restarts, prometheus.CounterValue, float64(st.Restarts))
	ch <- prometheus.MustNewConstMetric(c.reductions, prometheus.CounterValue, float64(st.Reductions))
	ch <- prometheus.MustNewConstMetric(c.maxLevel, prometheus.GaugeValue, float64(st.MaxLevel))
}

// Registry bundles a fresh prometheus.Registry with the standard Go
// runtime/process collectors, ready to register one Collector per
// benchmark instance run.
func Registry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewGoCollector())
	reg.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))
	return reg
}

// Serve starts an HTTP server on addr exposing reg at /metrics. It blocks
// until the server errors or the listener is closed, mirroring
// http.ListenAndServe's contract.
func Serve(addr string, reg *prometheus.Registry) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	return http.ListenAndServe(addr, mux)
}

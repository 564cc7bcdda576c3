package solver

import "github.com/prometheus/client_golang/prometheus"

// Stats are statistics about a Resolve call, provided for information
// purposes only. They are the resolution-search analogue of the teacher
// engine's Stats struct (NbRestarts, NbConflicts, NbDecisions, ...),
// counting what this search does instead of what a CDCL search does.
type Stats struct {
	NbSeeds       int // How many negated-goal clauses were tried as a seed.
	NbSteps       int // How many refute calls were made, across all seeds.
	NbRefutations int // How many seeds derived the empty clause (0 or 1 is typical; >1 only if Resolve were changed to keep searching after success).
}

// PrometheusCollectors mirrors s into three Prometheus counters
// registered under the given namespace, returning them so a caller can
// register them with a prometheus.Registerer (e.g. via WithMetrics).
// Mirroring Stats into real counters rather than only returning a struct
// is what lets a host process embedding this library chart search cost
// over time the way it already charts everything else it runs.
func PrometheusCollectors(namespace string) (seeds, steps, refutations prometheus.Counter) {
	seeds = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resolve_seeds_total",
		Help:      "Number of negated-goal clauses tried as a refutation seed.",
	})
	steps = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resolve_steps_total",
		Help:      "Number of refute recursion steps taken across all Resolve calls.",
	})
	refutations = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resolve_refutations_total",
		Help:      "Number of Resolve calls that found a refutation (derived the empty clause).",
	})
	return seeds, steps, refutations
}

// WithMetrics registers collectors built by PrometheusCollectors with reg
// and returns an Option that adds each Resolve call's counts to them when
// that call returns.
func WithMetrics(reg prometheus.Registerer, namespace string) Option {
	seeds, steps, refutations := PrometheusCollectors(namespace)
	reg.MustRegister(seeds, steps, refutations)
	stats := &Stats{}
	return func(c *config) {
		c.metrics = stats
		c.onDone = append(c.onDone, func() {
			seeds.Add(float64(stats.NbSeeds))
			steps.Add(float64(stats.NbSteps))
			refutations.Add(float64(stats.NbRefutations))
			*stats = Stats{}
		})
	}
}

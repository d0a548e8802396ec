package sim

import (
	"github.com/uber-go/tally/v4"

	"vmsched/internal/sched"
)

// Metrics contains the counters emitted by the simulator.
type Metrics struct {
	// InvalidRequest counts requests rejected before any heuristic ran.
	InvalidRequest tally.Counter
	// Algorithm holds the per-heuristic metrics keyed by algorithm.
	Algorithm map[sched.Algorithm]*AlgorithmMetrics
}

// AlgorithmMetrics is the set of metrics tagged with one algorithm name.
type AlgorithmMetrics struct {
	// Runs counts completed runs.
	Runs tally.Counter
	// TasksScheduled counts outcomes produced.
	TasksScheduled tally.Counter
	// Makespan is the makespan of the latest run.
	Makespan tally.Gauge
	// RunLatency measures the wall time of the heuristic itself.
	RunLatency tally.Timer
}

// NewMetrics returns a Metrics struct with all metrics initialized and rooted
// below the given tally scope.
func NewMetrics(scope tally.Scope) *Metrics {
	runScope := scope.SubScope("run")
	m := &Metrics{
		InvalidRequest: runScope.Counter("invalid_request"),
		Algorithm:      make(map[sched.Algorithm]*AlgorithmMetrics),
	}
	for _, a := range sched.Algorithms() {
		tagged := runScope.Tagged(map[string]string{"algorithm": a.String()})
		m.Algorithm[a] = &AlgorithmMetrics{
			Runs:           tagged.Counter("runs"),
			TasksScheduled: tagged.Counter("tasks_scheduled"),
			Makespan:       tagged.Gauge("makespan"),
			RunLatency:     tagged.Timer("latency"),
		}
	}
	return m
}

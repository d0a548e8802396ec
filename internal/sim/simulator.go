// internal/sim/simulator.go

package sim

import (
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/uber-go/tally/v4"

	"vmsched/internal/sched"
)

// Simulator runs independent scheduling simulations. It holds no per-run
// state, so one Simulator may serve concurrent callers.
type Simulator struct {
	metrics *Metrics
	limits  Limits
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithLimits replaces DefaultLimits. Non-positive fields keep their default.
func WithLimits(lim Limits) Option {
	return func(s *Simulator) {
		if lim.MaxVMs > 0 {
			s.limits.MaxVMs = lim.MaxVMs
		}
		if lim.MaxCloudlets > 0 {
			s.limits.MaxCloudlets = lim.MaxCloudlets
		}
	}
}

// New creates a Simulator reporting below scope.
func New(scope tally.Scope, opts ...Option) *Simulator {
	if scope == nil {
		scope = tally.NoopScope
	}
	s := &Simulator{
		metrics: NewMetrics(scope),
		limits:  DefaultLimits(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run validates req, assigns its tasks with the selected heuristic and
// aggregates the outcomes. An unrecognized algorithm selects MIN_MIN.
func (s *Simulator) Run(req Request) (*Result, error) {
	vms, tasks, err := req.build(s.limits)
	if err != nil {
		s.metrics.InvalidRequest.Inc(1)
		return nil, err
	}

	algo, known := sched.ParseAlgorithm(req.SchedulingAlgorithm)
	runID := uuid.NewString()
	entry := log.WithFields(log.Fields{
		"run_id":    runID,
		"algorithm": algo.String(),
		"vms":       len(vms),
		"tasks":     len(tasks),
	})
	if !known {
		entry.WithField("selector", req.SchedulingAlgorithm).
			Debug("Unrecognized scheduling algorithm, using default")
	}

	m := s.metrics.Algorithm[algo]
	start := time.Now()
	tl := sched.NewTimeline(vms)
	outcomes := sched.HeuristicFor(algo).Schedule(tl, tasks)
	elapsed := time.Since(start)
	m.RunLatency.Record(elapsed)
	if outcomes == nil {
		outcomes = []sched.Outcome{}
	}

	if log.IsLevelEnabled(log.DebugLevel) {
		for _, o := range outcomes {
			entry.WithFields(log.Fields{
				"task_id":     o.TaskID,
				"vm_id":       o.VMID,
				"start_time":  o.StartTime,
				"finish_time": o.FinishTime,
			}).Debug("Task assigned")
		}
	}

	execTime, cost := summarize(outcomes)
	res := &Result{
		RunID:               runID,
		CloudletResults:     outcomes,
		TotalExecutionTime:  execTime,
		TotalCost:           cost,
		Makespan:            tl.Makespan(),
		SchedulingAlgorithm: algo.String(),
	}

	m.Runs.Inc(1)
	m.TasksScheduled.Inc(int64(len(outcomes)))
	m.Makespan.Update(res.Makespan)

	entry.WithFields(log.Fields{
		"total_execution_time": res.TotalExecutionTime,
		"total_cost":           res.TotalCost,
		"makespan":             res.Makespan,
		"elapsed":              elapsed,
	}).Info("Simulation finished")
	return res, nil
}

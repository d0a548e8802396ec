package sim

import "vmsched/internal/sched"

// Result is the outcome of one simulation run.
// RunID correlates log lines and the table header; it is not part of the
// response so identical requests encode identically.
type Result struct {
	RunID               string          `json:"-" yaml:"-"`
	CloudletResults     []sched.Outcome `json:"cloudletResults" yaml:"cloudletResults"`
	TotalExecutionTime  float64         `json:"totalExecutionTime" yaml:"totalExecutionTime"`
	TotalCost           float64         `json:"totalCost" yaml:"totalCost"`
	Makespan            float64         `json:"makespan" yaml:"makespan"`
	SchedulingAlgorithm string          `json:"schedulingAlgorithm" yaml:"schedulingAlgorithm"`
}

// summarize sums execution time and cost over outcomes in their order.
func summarize(outcomes []sched.Outcome) (execTime, cost float64) {
	for _, o := range outcomes {
		execTime += o.ExecutionTime
		cost += o.Cost
	}
	return execTime, cost
}

package sched

const (
	// ProcessingPowerFactor converts an instruction count into simulated time
	// units at the configured speed unit.
	ProcessingPowerFactor = 0.01
	// CostPerSecond is the monetary cost of one simulated time unit.
	CostPerSecond = 0.01
)

// ExecutionTime is the time the task occupies the vm.
func ExecutionTime(t Task, vm VM) float64 {
	return float64(t.Length) * ProcessingPowerFactor / float64(vm.MIPS)
}

// CompletionTime is the instant the task would finish on vm if the vm becomes
// free at readyAt.
func CompletionTime(t Task, vm VM, readyAt float64) float64 {
	return readyAt + ExecutionTime(t, vm)
}

// Cost prices an execution time.
func Cost(executionTime float64) float64 {
	return executionTime * CostPerSecond
}

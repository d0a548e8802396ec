package sched

// StatusSuccess is the only status an outcome can carry; the model has no failure path.
const StatusSuccess = "SUCCESS"

// Outcome is the committed assignment of one task to one vm.
type Outcome struct {
	TaskID        TaskID  `json:"cloudletId" yaml:"cloudletId"`
	VMID          VMID    `json:"vmId" yaml:"vmId"`
	StartTime     float64 `json:"startTime" yaml:"startTime"`
	FinishTime    float64 `json:"finishTime" yaml:"finishTime"`
	Status        string  `json:"status" yaml:"status"`
	ExecutionTime float64 `json:"executionTime" yaml:"executionTime"`
	Cost          float64 `json:"cost" yaml:"cost"`
}

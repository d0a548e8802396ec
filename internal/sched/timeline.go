// internal/sched/timeline.go

package sched

// Timeline is the mutable state of a single run: when each vm becomes free,
// how many tasks it received, and the outcomes committed so far.
// A Timeline belongs to exactly one run and must not be shared.
type Timeline struct {
	vms      []VM             // pool in scan order
	ready    map[VMID]float64 // busy-until instant per vm
	assigned map[VMID]int     // outcomes committed per vm
	outcomes []Outcome
}

// NewTimeline creates a timeline where every vm is free at t=0.
func NewTimeline(vms []VM) *Timeline {
	tl := &Timeline{
		vms:      vms,
		ready:    make(map[VMID]float64, len(vms)),
		assigned: make(map[VMID]int, len(vms)),
	}
	for _, vm := range vms {
		tl.ready[vm.ID] = 0
		tl.assigned[vm.ID] = 0
	}
	return tl
}

// VMs returns the pool in scan order.
func (tl *Timeline) VMs() []VM { return tl.vms }

// ReadyAt returns the instant vm id becomes free.
func (tl *Timeline) ReadyAt(id VMID) float64 { return tl.ready[id] }

// Assigned returns how many tasks were committed to vm id.
func (tl *Timeline) Assigned(id VMID) int { return tl.assigned[id] }

// Quote returns the completion time of t on vm given the vm's current readiness.
func (tl *Timeline) Quote(t Task, vm VM) float64 {
	return CompletionTime(t, vm, tl.ready[vm.ID])
}

// Commit records t on vm. The task starts when the vm becomes free, and the
// vm stays busy until the task finishes.
func (tl *Timeline) Commit(t Task, vm VM) Outcome {
	start := tl.ready[vm.ID]
	exec := ExecutionTime(t, vm)
	o := Outcome{
		TaskID:        t.ID,
		VMID:          vm.ID,
		StartTime:     start,
		FinishTime:    start + exec,
		Status:        StatusSuccess,
		ExecutionTime: exec,
		Cost:          Cost(exec),
	}
	tl.ready[vm.ID] = o.FinishTime
	tl.assigned[vm.ID]++
	tl.outcomes = append(tl.outcomes, o)
	return o
}

// Outcomes returns the committed outcomes in commit order.
func (tl *Timeline) Outcomes() []Outcome { return tl.outcomes }

// Makespan is the latest instant any vm stays busy.
func (tl *Timeline) Makespan() float64 {
	var m float64
	for _, t := range tl.ready {
		if t > m {
			m = t
		}
	}
	return m
}

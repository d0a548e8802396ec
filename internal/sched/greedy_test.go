package sched

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniformVMs(n int, mips int64) []VM {
	vms := make([]VM, n)
	for i := range vms {
		vms[i] = VM{ID: VMID(i), MIPS: mips}
	}
	return vms
}

func tasksOf(lengths ...int64) []Task {
	tasks := make([]Task, len(lengths))
	for i, l := range lengths {
		tasks[i] = Task{ID: TaskID(i), Length: l}
	}
	return tasks
}

type pair struct {
	task TaskID
	vm   VMID
}

func pairs(outcomes []Outcome) []pair {
	out := make([]pair, len(outcomes))
	for i, o := range outcomes {
		out[i] = pair{o.TaskID, o.VMID}
	}
	return out
}

func TestMinMinOrdersByAscendingLength(t *testing.T) {
	tl := NewTimeline(uniformVMs(2, 1000))
	outcomes := minMin{}.Schedule(tl, tasksOf(300, 100, 200))

	require.Len(t, outcomes, 3)
	assert.Equal(t, []pair{{1, 0}, {2, 1}, {0, 0}}, pairs(outcomes))

	// the 300 task waits for vm 0 which is free at 0.001 rather than vm 1 at 0.002
	assert.InDelta(t, 0.001, outcomes[2].StartTime, 1e-12)
	assert.InDelta(t, 0.004, outcomes[2].FinishTime, 1e-12)
}

func TestMaxMinOrdersByDescendingLength(t *testing.T) {
	tl := NewTimeline(uniformVMs(2, 1000))
	outcomes := maxMin{}.Schedule(tl, tasksOf(100, 200, 300))

	require.Len(t, outcomes, 3)
	assert.Equal(t, []pair{{2, 0}, {1, 1}, {0, 1}}, pairs(outcomes))
}

func TestSortedHeuristicsIgnoreInputOrder(t *testing.T) {
	tasks := tasksOf(500, 100, 100, 300, 200, 500, 50)
	reversed := slices.Clone(tasks)
	slices.Reverse(reversed)
	vms := []VM{{ID: 0, MIPS: 1000}, {ID: 1, MIPS: 250}, {ID: 2, MIPS: 700}}

	for _, h := range []Heuristic{minMin{}, maxMin{}} {
		forward := h.Schedule(NewTimeline(vms), tasks)
		backward := h.Schedule(NewTimeline(vms), reversed)
		assert.Equal(t, forward, backward, h.Algorithm().String())
	}
}

func TestSortedHeuristicsMatchPrimitive(t *testing.T) {
	tasks := tasksOf(400, 100, 300, 200)
	vms := []VM{{ID: 0, MIPS: 1000}, {ID: 1, MIPS: 500}}

	asc := []Task{tasks[1], tasks[3], tasks[2], tasks[0]}
	desc := []Task{tasks[0], tasks[2], tasks[3], tasks[1]}

	assert.Equal(t,
		assignEarliest(NewTimeline(vms), asc),
		minMin{}.Schedule(NewTimeline(vms), tasks))
	assert.Equal(t,
		assignEarliest(NewTimeline(vms), desc),
		maxMin{}.Schedule(NewTimeline(vms), tasks))
}

func TestSortDoesNotReorderCallerSlice(t *testing.T) {
	tasks := tasksOf(300, 100, 200)
	minMin{}.Schedule(NewTimeline(uniformVMs(1, 1000)), tasks)
	assert.Equal(t, tasksOf(300, 100, 200), tasks)
}

func TestMinimumCompletionTimeKeepsSubmissionOrder(t *testing.T) {
	tl := NewTimeline(uniformVMs(2, 1000))
	outcomes := mct{}.Schedule(tl, tasksOf(300, 100, 200))

	assert.Equal(t, []pair{{0, 0}, {1, 1}, {2, 1}}, pairs(outcomes))
}

func TestEarliestCompletionAgainstBusyVM(t *testing.T) {
	vms := []VM{{ID: 0, MIPS: 1000}, {ID: 1, MIPS: 500}}
	task := Task{ID: 0, Length: 100}

	for _, h := range []Heuristic{minMin{}, mct{}} {
		tl := NewTimeline(vms)
		// keep vm 0 busy until t=10
		tl.Commit(Task{ID: 99, Length: 1_000_000}, vms[0])
		require.InDelta(t, 10.0, tl.ReadyAt(0), 1e-9)

		onFast := CompletionTime(task, vms[0], tl.ReadyAt(0))
		onSlow := CompletionTime(task, vms[1], tl.ReadyAt(1))
		want := VMID(0)
		if onSlow < onFast {
			want = 1
		}

		outcomes := h.Schedule(tl, []Task{task})
		last := outcomes[len(outcomes)-1]
		assert.Equal(t, want, last.VMID, h.Algorithm().String())
		assert.Equal(t, VMID(1), last.VMID)
		assert.Equal(t, 0.0, last.StartTime)
	}
}

func TestEarliestTieGoesToFirstVM(t *testing.T) {
	tl := NewTimeline(uniformVMs(3, 1000))
	vm, at, ok := earliest(tl, Task{ID: 0, Length: 100})

	require.True(t, ok)
	assert.Equal(t, VMID(0), vm.ID)
	assert.InDelta(t, 0.001, at, 1e-12)
}

func TestGreedyEmptyPoolDropsTasks(t *testing.T) {
	for _, h := range []Heuristic{minMin{}, maxMin{}, mct{}} {
		assert.Empty(t, h.Schedule(NewTimeline(nil), tasksOf(1, 2)), h.Algorithm().String())
	}
}

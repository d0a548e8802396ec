package sched

import (
	"cmp"
	"slices"
)

// earliest returns the vm with the smallest completion time for t.
// The first vm in pool order wins a tie. ok is false for an empty pool.
func earliest(tl *Timeline, t Task) (best VM, bestAt float64, ok bool) {
	for _, vm := range tl.VMs() {
		at := tl.Quote(t, vm)
		if !ok || at < bestAt {
			best, bestAt, ok = vm, at, true
		}
	}
	return best, bestAt, ok
}

// assignEarliest commits each task, in the given order, to the vm that
// completes it first. Earlier commitments are never revisited.
func assignEarliest(tl *Timeline, tasks []Task) []Outcome {
	for _, t := range tasks {
		vm, _, ok := earliest(tl, t)
		if !ok {
			continue
		}
		tl.Commit(t, vm)
	}
	return tl.Outcomes()
}

// byLength returns a sorted copy of tasks. Equal lengths keep ascending id
// order so that the input order never matters.
func byLength(tasks []Task, descending bool) []Task {
	sorted := slices.Clone(tasks)
	slices.SortStableFunc(sorted, func(a, b Task) int {
		c := cmp.Compare(a.Length, b.Length)
		if descending {
			c = -c
		}
		if c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return sorted
}

type minMin struct{}

func (minMin) Algorithm() Algorithm { return MinMin }

// Schedule places the shortest tasks first.
func (minMin) Schedule(tl *Timeline, tasks []Task) []Outcome {
	return assignEarliest(tl, byLength(tasks, false))
}

type maxMin struct{}

func (maxMin) Algorithm() Algorithm { return MaxMin }

// Schedule places the longest tasks first.
func (maxMin) Schedule(tl *Timeline, tasks []Task) []Outcome {
	return assignEarliest(tl, byLength(tasks, true))
}

type mct struct{}

func (mct) Algorithm() Algorithm { return MinimumCompletionTime }

// Schedule keeps the submission order.
func (mct) Schedule(tl *Timeline, tasks []Task) []Outcome {
	return assignEarliest(tl, tasks)
}

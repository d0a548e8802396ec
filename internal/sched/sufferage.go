package sched

import (
	"math"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

type sufferage struct{}

func (sufferage) Algorithm() Algorithm { return Sufferage }

// bestTwo returns the vm with the smallest completion time for t together with
// that time and the smallest completion time among all other vms. With a
// single vm the second value is +Inf.
func bestTwo(tl *Timeline, t Task) (best VM, first, second float64, ok bool) {
	first, second = math.Inf(1), math.Inf(1)
	for _, vm := range tl.VMs() {
		at := tl.Quote(t, vm)
		switch {
		case !ok || at < first:
			second = first
			best, first, ok = vm, at, true
		case at < second:
			second = at
		}
	}
	return best, first, second, ok
}

// Schedule repeatedly picks, among the remaining tasks, the one that would
// lose the most by not getting its best vm, and gives it that vm.
func (sufferage) Schedule(tl *Timeline, tasks []Task) []Outcome {
	remaining := linkedhashmap.New()
	for _, t := range tasks {
		remaining.Put(t.ID, t)
	}

	for !remaining.Empty() {
		var (
			picked    Task
			pickedVM  VM
			found     bool
			maxSuffer = math.Inf(-1)
		)

		it := remaining.Iterator()
		for it.Next() {
			t := it.Value().(Task)
			vm, first, second, ok := bestTwo(tl, t)
			if !ok {
				continue
			}
			// first encountered maximum wins
			if s := second - first; s > maxSuffer {
				maxSuffer = s
				picked, pickedVM, found = t, vm, true
			}
		}

		// nothing can be placed (empty pool); leave the rest unassigned
		if !found {
			break
		}

		tl.Commit(picked, pickedVM)
		remaining.Remove(picked.ID)
	}
	return tl.Outcomes()
}

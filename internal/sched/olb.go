package sched

import "github.com/emirpasic/gods/trees/redblacktree"

type olb struct{}

func (olb) Algorithm() Algorithm { return OpportunisticLoadBalancing }

// loadKey orders vms by how many tasks they hold, then by pool position.
type loadKey struct {
	load int
	pos  int
}

// cmpLoad implements the Comparable interface for red-black tree ordering.
func cmpLoad(a, b any) int {
	ka, kb := a.(loadKey), b.(loadKey)
	switch {
	case ka.load < kb.load:
		return -1
	case ka.load > kb.load:
		return 1
	case ka.pos < kb.pos:
		return -1
	case ka.pos > kb.pos:
		return 1
	default:
		return 0
	}
}

// Schedule gives each task, in submission order, to the vm holding the fewest
// tasks so far. Speed and length play no part in the choice.
func (olb) Schedule(tl *Timeline, tasks []Task) []Outcome {
	loads := redblacktree.NewWith(cmpLoad)
	for i, vm := range tl.VMs() {
		loads.Put(loadKey{load: 0, pos: i}, vm)
	}

	for _, t := range tasks {
		node := loads.Left()
		if node == nil {
			continue
		}
		key := node.Key.(loadKey)
		vm := node.Value.(VM)

		tl.Commit(t, vm)

		loads.Remove(key)
		loads.Put(loadKey{load: key.load + 1, pos: key.pos}, vm)
	}
	return tl.Outcomes()
}

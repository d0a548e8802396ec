package sched

// Heuristic assigns every task to a vm of the timeline's pool and returns the
// outcomes in the order they were committed.
type Heuristic interface {
	Algorithm() Algorithm
	Schedule(tl *Timeline, tasks []Task) []Outcome
}

var heuristics = map[Algorithm]Heuristic{
	MinMin:                     minMin{},
	MaxMin:                     maxMin{},
	Sufferage:                  sufferage{},
	OpportunisticLoadBalancing: olb{},
	MinimumCompletionTime:      mct{},
}

// HeuristicFor returns the heuristic implementing a, or the default one when a
// is out of range.
func HeuristicFor(a Algorithm) Heuristic {
	if h, ok := heuristics[a]; ok {
		return h
	}
	return heuristics[DefaultAlgorithm]
}

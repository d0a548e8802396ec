// internal/sched/algorithm.go

package sched

// Algorithm names one of the assignment heuristics.
type Algorithm int

const (
	MinMin Algorithm = iota
	MaxMin
	Sufferage
	OpportunisticLoadBalancing
	MinimumCompletionTime
)

// DefaultAlgorithm is used whenever the selector is not recognized.
const DefaultAlgorithm = MinMin

var algorithms = []Algorithm{
	MinMin,
	MaxMin,
	Sufferage,
	OpportunisticLoadBalancing,
	MinimumCompletionTime,
}

func (a Algorithm) String() string {
	switch a {
	case MinMin:
		return "MIN_MIN"
	case MaxMin:
		return "MAX_MIN"
	case Sufferage:
		return "SUFFERAGE"
	case OpportunisticLoadBalancing:
		return "OPPORTUNISTIC_LOAD_BALANCING"
	case MinimumCompletionTime:
		return "MINIMUM_COMPLETION_TIME"
	default:
		return "UNKNOWN"
	}
}

// Algorithms lists every recognized heuristic in a fixed order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(algorithms))
	copy(out, algorithms)
	return out
}

// AlgorithmNames lists the selector strings callers may send.
func AlgorithmNames() []string {
	names := make([]string, 0, len(algorithms))
	for _, a := range algorithms {
		names = append(names, a.String())
	}
	return names
}

// ParseAlgorithm matches a selector exactly (case-sensitive).
func ParseAlgorithm(s string) (Algorithm, bool) {
	for _, a := range algorithms {
		if a.String() == s {
			return a, true
		}
	}
	return DefaultAlgorithm, false
}

// ResolveAlgorithm is ParseAlgorithm with a silent fallback to DefaultAlgorithm.
func ResolveAlgorithm(s string) Algorithm {
	a, _ := ParseAlgorithm(s)
	return a
}

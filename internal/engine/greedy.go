package engine

// Greedy builds the Longest-Processing-Time baseline.
//
// Items are taken in search order (weight descending, stable) and each goes
// to the team with the strictly smallest current load, the lowest index
// winning ties. Loads start at the pinned weights.
//
// Returns:
//   - Solution: Baseline assignment, also the initial upper bound for Search
func (in *Instance) Greedy() Solution {
	loads := in.initialLoads()
	assignment := make([][]WorkItem, len(loads))

	for _, it := range in.items {
		target := 0
		for t := 1; t < len(loads); t++ {
			if loads[t] < loads[target] {
				target = t
			}
		}

		loads[target] += it.Weight
		assignment[target] = append(assignment[target], it)
	}

	makespan := 0
	for _, l := range loads {
		makespan = max(makespan, l)
	}

	return Solution{Makespan: makespan, Assignment: assignment}
}

package engine

// Solution is a free-item assignment and its makespan in weight units.
type Solution struct {
	Makespan int

	// Assignment lists the free items per team, 0-based team index.
	Assignment [][]WorkItem
}

// cloneAssignment deep-copies the per-team lists so later backtracking cannot alias them.
func cloneAssignment(lists [][]WorkItem) [][]WorkItem {
	out := make([][]WorkItem, len(lists))
	for i, l := range lists {
		out[i] = append([]WorkItem(nil), l...)
	}

	return out
}

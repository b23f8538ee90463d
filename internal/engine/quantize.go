package engine

// Weight converts a job duration into search units.
//
// The result is round(minutes/quantum) with halves rounded up, and never
// less than 1 so every job carries weight. A quantum below 1 is treated as 1.
func Weight(minutes, quantum int) int {
	return max(roundDiv(minutes, max(quantum, 1)), 1)
}

// FixedWeight converts a team's aggregate pinned minutes into search units.
//
// A team with any pinned work is never weightless: when rounding yields 0
// for a positive total, the weight is forced to 1.
func FixedWeight(totalMinutes, quantum int) int {
	if totalMinutes <= 0 {
		return 0
	}

	return max(roundDiv(totalMinutes, max(quantum, 1)), 1)
}

// roundDiv returns n/d rounded half up for non-negative n and positive d.
// It never forms 2*n, so any n up to math.MaxInt is safe.
func roundDiv(n, d int) int {
	q, r := n/d, n%d
	if r >= d-r {
		q++
	}

	return q
}

// Package engine implements the minimum-makespan assignment core.
//
// A solve flows strictly forward through five stages:
//
//	Quantizer → Partitioner → Greedy baseline (LPT) → Branch-and-bound search → Assembler
//
// The quantizer turns minutes into integer weights at a configurable
// granularity, the partitioner separates pinned jobs from free ones, the
// greedy stage seeds an upper bound, and the search proves optimality (or
// stops when its budget runs out) by exploring free-item placements depth
// first with lower-bound, memoization and symmetry pruning. The assembler
// reports exact, unquantized minutes per team.
//
// The package performs no input validation; callers hand it validated
// problems (see the root teamsplit.Solver).
package engine

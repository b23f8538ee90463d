// Package strategy provides built-in assignment strategy implementations.
//
// Assignment strategies decide which team each free job goes to. Pinned jobs
// always stay on their team. The package includes three built-in strategies:
//
//   - BranchAndBound: exact minimum-makespan search seeded by the LPT baseline (default, "exact")
//   - LPT: longest-processing-time-first greedy placement ("lpt")
//   - RoundRobin: free jobs dealt to teams in input order ("round-robin")
//
// # Strategy Selection Guide
//
// BranchAndBound:
//   - Use when the busiest team must be as short as possible
//   - Works in quantized weight units; a coarser quantum shrinks the search space
//   - Bounded by a node ceiling and a timeout; on exhaustion the best plan found is returned
//
// LPT:
//   - Use for very large job lists where a provable optimum is not required
//   - Guaranteed within 4/3 of the optimum makespan
//
// RoundRobin:
//   - Use as a naive reference for comparisons
//   - Ignores durations entirely
//
// Custom strategies can be implemented by satisfying the types.AssignmentStrategy interface.
package strategy

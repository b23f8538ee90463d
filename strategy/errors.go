package strategy

import (
	"fmt"

	"github.com/arloliu/teamsplit/internal/engine"
	"github.com/arloliu/teamsplit/types"
)

// ErrNoTeams indicates that no teams were provided for assignment.
var ErrNoTeams = types.ErrNoTeams

// prepare checks the team count and builds the quantized engine instance.
func prepare(problem types.Problem) (*engine.Instance, error) {
	if problem.TeamCount < 1 {
		return nil, fmt.Errorf("%w: team count %d", ErrNoTeams, problem.TeamCount)
	}

	return engine.NewInstance(problem), nil
}

// baselineStats reports a non-searching strategy's plan as optimal only when
// it already meets the static lower bound.
func baselineStats(in *engine.Instance, sol engine.Solution) types.SearchStats {
	return types.SearchStats{Optimal: sol.Makespan <= in.LowerBound()}
}

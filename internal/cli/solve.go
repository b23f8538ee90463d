package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/arloliu/teamsplit"
	"github.com/arloliu/teamsplit/internal/render"
	"github.com/arloliu/teamsplit/server"
	"github.com/arloliu/teamsplit/source"
)

type solveFlags struct {
	teams     int
	quantum   int
	strategy  string
	timeout   time.Duration
	maxNodes  int64
	maxStates int64
	durations string
	json      bool
	remote    bool
}

func newSolveCommand(a *app) *cobra.Command {
	f := &solveFlags{}

	cmd := &cobra.Command{
		Use:   "solve <jobs.yaml|->",
		Short: "Assign the jobs of a job sheet to teams",
		Long: `Read a YAML job sheet and print the team assignment.

The sheet lists jobs with a name, an optional duration ("90", "1h30m", "1:30")
and an optional pinned team. Jobs without a duration are looked up by name in
the durations file.`,
		Example: `  teamsplit solve jobs.yaml --teams 3
  teamsplit solve jobs.yaml --strategy lpt --json
  cat jobs.yaml | teamsplit solve - --remote`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSolve(cmd, args[0], f)
		},
	}

	fl := cmd.Flags()
	fl.IntVarP(&f.teams, "teams", "t", 0, "number of teams (overrides the sheet and defaultTeamCount)")
	fl.IntVarP(&f.quantum, "quantum", "q", 0, "quantum in minutes (overrides the sheet and defaultQuantum)")
	fl.StringVarP(&f.strategy, "strategy", "s", "", "strategy: exact, lpt, round-robin")
	fl.DurationVar(&f.timeout, "timeout", 0, "search time budget (overrides search.timeout)")
	fl.Int64Var(&f.maxNodes, "max-nodes", 0, "search node budget (overrides search.maxNodes)")
	fl.Int64Var(&f.maxStates, "max-states", 0, "visited-state ceiling (overrides search.maxStates)")
	fl.StringVar(&f.durations, "durations", "", "YAML durations file for jobs without a duration")
	fl.BoolVar(&f.json, "json", false, "print the result as JSON")
	fl.BoolVar(&f.remote, "remote", false, "send the sheet to a running teamsplit service over NATS")

	return cmd
}

func (a *app) runSolve(cmd *cobra.Command, path string, f *solveFlags) error {
	ctx := cmd.Context()

	sheet, err := readSheet(ctx, path, cmd.InOrStdin())
	if err != nil {
		return err
	}

	fl := cmd.Flags()
	if fl.Changed("strategy") {
		a.cfg.Strategy = f.strategy
	}
	if fl.Changed("timeout") {
		a.cfg.Search.Timeout = f.timeout
	}
	if fl.Changed("max-nodes") {
		a.cfg.Search.MaxNodes = f.maxNodes
	}
	if fl.Changed("max-states") {
		a.cfg.Search.MaxStates = f.maxStates
	}
	if fl.Changed("durations") {
		a.cfg.Lookup.File = f.durations
	}

	// The service fills its own defaults for remote solves.
	defTeams, defQuantum := a.cfg.DefaultTeamCount, a.cfg.DefaultQuantum
	if f.remote {
		defTeams, defQuantum = 0, 0
	}

	problem := sheet.Problem(defTeams, defQuantum)
	if fl.Changed("teams") {
		problem.TeamCount = f.teams
	}
	if fl.Changed("quantum") {
		problem.Quantum = f.quantum
	}

	var res *teamsplit.Result
	if f.remote {
		res, err = a.solveRemote(ctx, problem)
	} else {
		res, err = a.solveLocal(ctx, problem)
	}
	if err != nil {
		return err
	}

	if f.json {
		return writeJSON(a, res)
	}

	return render.Plan(a.out, res)
}

func (a *app) solveLocal(ctx context.Context, problem teamsplit.Problem) (*teamsplit.Result, error) {
	var store teamsplit.HistoryStore
	if a.cfg.History.Enabled {
		nc, err := a.connect()
		if err != nil {
			a.logger.Warn("history disabled for this run; NATS unavailable", "error", err)
		} else {
			defer nc.Close()

			kv, err := a.openHistory(ctx, nc)
			if err != nil {
				a.logger.Warn("history disabled for this run", "error", err)
			} else {
				store = kv
			}
		}
	}

	solver, err := teamsplit.NewSolver(&a.cfg, a.solverOptions(nil, store)...)
	if err != nil {
		return nil, err
	}

	return solver.Solve(ctx, problem)
}

func (a *app) solveRemote(ctx context.Context, problem teamsplit.Problem) (*teamsplit.Result, error) {
	nc, err := a.connect()
	if err != nil {
		return nil, err
	}
	defer nc.Close()

	client := server.NewClient(nc, a.cfg.NATS.Subject, a.cfg.NATS.RequestTimeout,
		server.WithRetry(server.DefaultRetryPolicy()))

	return client.Solve(ctx, problem)
}

func readSheet(ctx context.Context, path string, stdin io.Reader) (source.Sheet, error) {
	if path != "-" {
		return source.NewFile(path).Load(ctx)
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return source.Sheet{}, fmt.Errorf("failed to read job sheet from stdin: %w", err)
	}

	return source.ParseSheet(data)
}


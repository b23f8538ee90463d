package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/arloliu/teamsplit"
	"github.com/arloliu/teamsplit/duration"
	"github.com/arloliu/teamsplit/internal/render"
)

func newHistoryCommand(a *app) *cobra.Command {
	var (
		limit  int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "history [id]",
		Short: "List recent solves or show one",
		Long: `List recent solves stored in the NATS JetStream KV history bucket,
newest first. With an id, print that solve's plan.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			nc, err := a.connect()
			if err != nil {
				return err
			}
			defer nc.Close()

			store, err := a.openHistory(ctx, nc)
			if err != nil {
				return err
			}

			solver, err := teamsplit.NewSolver(&a.cfg, teamsplit.WithLogger(a.logger), teamsplit.WithHistory(store))
			if err != nil {
				return err
			}

			if len(args) == 1 {
				rec, err := solver.Record(ctx, args[0])
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(a, rec)
				}

				return render.Plan(a.out, &rec.Result)
			}

			records, err := solver.History(ctx, limit)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(a, records)
			}

			tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tCREATED\tSTRATEGY\tJOBS\tTEAMS\tMAKESPAN\tGAP")
			for _, rec := range records {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\t%s\n",
					rec.ID,
					rec.CreatedAt.Local().Format("2006-01-02 15:04:05"),
					rec.Result.Strategy,
					len(rec.Problem.Jobs),
					rec.Problem.TeamCount,
					duration.Format(rec.Result.MakespanMinutes),
					duration.Format(rec.Result.GapMinutes),
				)
			}

			return tw.Flush()
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum records (defaults to history.listLimit)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print records as JSON")

	return cmd
}

func writeJSON(a *app, v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

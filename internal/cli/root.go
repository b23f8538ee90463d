// Package cli implements the teamsplit command-line tool.
package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/arloliu/teamsplit"
	"github.com/arloliu/teamsplit/internal/logging"
)

// app carries state shared by every subcommand.
type app struct {
	out    io.Writer
	errOut io.Writer

	configPath string
	natsURL    string
	logLevel   string
	logFormat  string

	cfg    teamsplit.Config
	logger teamsplit.Logger
}

// NewRootCommand builds the teamsplit command tree.
//
// Parameters:
//   - out: Destination for command output
//   - errOut: Destination for logs
//
// Returns:
//   - *cobra.Command: Root command with solve, serve, history and version
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "teamsplit",
		Short: "Split jobs across teams with the shortest possible finish time",
		Long: `teamsplit assigns jobs to interchangeable teams so the busiest team
finishes as early as possible. Jobs may be pinned to a team; the rest are
distributed by an exact branch-and-bound search seeded with a greedy plan.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "YAML config file (defaults are used when empty)")
	flags.StringVar(&a.natsURL, "nats-url", "", "NATS server URL (overrides nats.url)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides log.level)")
	flags.StringVar(&a.logFormat, "log-format", "", "log format: text or json (overrides log.format)")

	root.AddCommand(
		newSolveCommand(a),
		newServeCommand(a),
		newHistoryCommand(a),
		newVersionCommand(a),
	)

	return root
}

// setup loads the configuration and builds the logger.
func (a *app) setup(_ *cobra.Command, _ []string) error {
	cfg := teamsplit.DefaultConfig()
	if a.configPath != "" {
		loaded, err := teamsplit.LoadConfig(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if a.natsURL != "" {
		cfg.NATS.URL = a.natsURL
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}

	logger, err := logging.NewSlogWriter(a.errOut, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger

	return nil
}

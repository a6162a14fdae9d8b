package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/internal/logging"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	verbosity  int
	configPath string
	cfg        *config.Config
}

// NewRootCmd builds a fresh command tree. Each call has its own flag state.
func NewRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "gridpath",
		Short: "Grid maze pathfinding puzzles",
		Long: `gridpath solves grid maze puzzles:

  maze    cheapest route through a maze where turning costs extra
  race    shortcut counting on a single-lane race track
  memory  escape route through a grid filling with falling bytes`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(a.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (.toml, .yaml or .yml)")

	rootCmd.AddCommand(a.newMazeCmd())
	rootCmd.AddCommand(a.newRaceCmd())
	rootCmd.AddCommand(a.newMemoryCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// openInput returns the named file, or the command's stdin for "-".
func openInput(cmd *cobra.Command, name string) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	return f, nil
}

// readGrid parses the maze named by the --input flag.
func readGrid(cmd *cobra.Command, name string) (*gridgraph.Grid, error) {
	r, err := openInput(cmd, name)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	g, err := gridgraph.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return g, nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/internal/logging"
	"github.com/katalvlaran/gridpath/racetrack"
)

func (a *app) newRaceCmd() *cobra.Command {
	var (
		input     string
		duration  int
		threshold int
	)
	cmd := &cobra.Command{
		Use:   "race",
		Short: "Count race track cheats that save at least a threshold",
		Long: `race reads a single-lane track drawn with '#' walls, '.' track, 'S' and 'E'.
A cheat passes through walls for at most --duration steps; race counts the
distinct cheats whose saving reaches --threshold.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("duration") {
				a.cfg.Race.Duration = duration
			}
			if cmd.Flags().Changed("threshold") {
				a.cfg.Race.Threshold = threshold
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			logger := logging.GetLogger("race")
			defer logging.LogOperationStart(logger, "cheat count")()

			g, err := readGrid(cmd, input)
			if err != nil {
				return err
			}
			track, err := racetrack.New(g, bfs.WithLogger(logger))
			if err != nil {
				return err
			}
			n, err := track.Count(a.cfg.Race.Duration, a.cfg.Race.Threshold)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "shortest path: %d\n", track.Base())
			fmt.Fprintf(out, "there are %d cheats that will save at least %d picoseconds\n", n, a.cfg.Race.Threshold)
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "-", "track file (- for stdin)")
	cmd.Flags().IntVar(&duration, "duration", 20, "longest cheat in steps")
	cmd.Flags().IntVar(&threshold, "threshold", 100, "minimum saving to count")
	return cmd
}

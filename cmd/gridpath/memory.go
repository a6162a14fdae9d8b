package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/internal/logging"
	"github.com/katalvlaran/gridpath/memspace"
)

func (a *app) newMemoryCmd() *cobra.Command {
	var (
		input string
		size  int
		bytes int
	)
	cmd := &cobra.Command{
		Use:   "memory",
		Short: "Escape a memory grid filling with falling bytes",
		Long: `memory reads one "X,Y" byte coordinate per line. It prints the shortest
route from the top-left to the bottom-right corner after --bytes bytes fell,
then the first byte that cuts the route entirely.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("size") {
				a.cfg.Memory.Size = size
			}
			if cmd.Flags().Changed("bytes") {
				a.cfg.Memory.Bytes = bytes
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			logger := logging.GetLogger("memory")
			defer logging.LogOperationStart(logger, "memory escape")()

			r, err := openInput(cmd, input)
			if err != nil {
				return err
			}
			defer r.Close()
			fallen, err := memspace.Parse(r)
			if err != nil {
				return err
			}
			space, err := memspace.New(a.cfg.Memory.Size, fallen,
				memspace.WithContext(cmd.Context()),
				memspace.WithLogger(logger),
			)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			steps, err := space.ShortestPath(min(a.cfg.Memory.Bytes, space.Len()))
			switch {
			case errors.Is(err, gridgraph.ErrUnreachable):
				fmt.Fprintln(out, "unable to find path")
			case err != nil:
				return err
			default:
				fmt.Fprintf(out, "shortest path: %d\n", steps)
			}

			b, _, err := space.FirstBlocking()
			switch {
			case errors.Is(err, memspace.ErrNeverBlocked):
				fmt.Fprintln(out, "no byte blocks the exit")
			case err != nil:
				return err
			default:
				fmt.Fprintf(out, "first blocking byte: %d,%d\n", b.Col, b.Row)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "-", "byte list file (- for stdin)")
	cmd.Flags().IntVar(&size, "size", 0, "grid side length (0 infers from the input)")
	cmd.Flags().IntVar(&bytes, "bytes", 1024, "bytes fallen before measuring the route")
	return cmd
}

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/internal/logging"
)

var (
	wallStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9E9E9E", Dark: "#585858"})
	pathStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#005FD7", Dark: "#5FAFFF"})
	endmarkStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#008700", Dark: "#87D787"})
)

func (a *app) newMazeCmd() *cobra.Command {
	var (
		input       string
		turnPenalty int64
		stepCost    int64
		method      string
		show        bool
	)
	cmd := &cobra.Command{
		Use:   "maze",
		Short: "Find the lowest maze score and count the cells on optimal paths",
		Long: `maze reads a grid of '#' walls, '.' floor, one 'S' start and one or more
'E' goals. The walker starts facing east; every step forward costs the step
cost and every quarter turn costs the turn penalty. When no goal can be
reached, maze reports how many walls stand between 'S' and the first 'E'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			if flags.Changed("turn-penalty") {
				a.cfg.Maze.TurnPenalty = turnPenalty
			}
			if flags.Changed("step-cost") {
				a.cfg.Maze.StepCost = stepCost
			}
			if flags.Changed("method") {
				a.cfg.Maze.Method = method
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			return runMaze(cmd, input, a.cfg.Maze, show)
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "-", "maze file (- for stdin)")
	cmd.Flags().Int64Var(&turnPenalty, "turn-penalty", dijkstra.DefaultTurnPenalty, "cost of one quarter turn")
	cmd.Flags().Int64Var(&stepCost, "step-cost", dijkstra.DefaultStepCost, "cost of one step forward")
	cmd.Flags().StringVar(&method, "method", config.MethodTrace, "optimal cell method: trace or filter")
	cmd.Flags().BoolVar(&show, "show", false, "draw the maze with optimal cells marked")
	return cmd
}

func runMaze(cmd *cobra.Command, input string, m config.Maze, show bool) error {
	logger := logging.GetLogger("maze")
	defer logging.LogOperationStart(logger, "maze search")()

	g, err := readGrid(cmd, input)
	if err != nil {
		return err
	}
	res, err := dijkstra.Search(g,
		dijkstra.WithTurnPenalty(m.TurnPenalty),
		dijkstra.WithStepCost(m.StepCost),
		dijkstra.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !res.Reachable() {
		fmt.Fprintln(out, "no path found")
		fmt.Fprintln(out, "optimal path cells: 0")
		route, walls, err := g.WallsBetween(g.Start(), g.Goal())
		if err != nil {
			return err
		}
		logger.Info().Int("walls", walls).Int("route", len(route)).Msg("maze blocked")
		fmt.Fprintf(out, "walls to break: %d\n", walls)
		return nil
	}

	var cells []gridgraph.Position
	if m.Method == config.MethodFilter {
		cells = res.CandidateCells()
	} else {
		cells = res.OptimalCells()
	}
	logger.Info().
		Int64("score", res.Best).
		Int("cells", len(cells)).
		Int("explored", res.Explored).
		Str("method", m.Method).
		Msg("maze solved")

	fmt.Fprintf(out, "lowest score: %d\n", res.Best)
	fmt.Fprintf(out, "optimal path cells: %d\n", len(cells))
	if show {
		fmt.Fprint(out, renderMaze(g, cells))
	}
	return nil
}

// renderMaze draws g with the given cells marked 'O'.
func renderMaze(g *gridgraph.Grid, cells []gridgraph.Position) string {
	marks := make(map[gridgraph.Position]bool, len(cells))
	for _, p := range cells {
		marks[p] = true
	}
	var b strings.Builder
	g.RenderFunc(&b, func(p gridgraph.Position, c gridgraph.Cell) string {
		switch {
		case c == gridgraph.Start || c == gridgraph.Goal:
			return endmarkStyle.Render(string(c.Rune()))
		case marks[p]:
			return pathStyle.Render("O")
		case c == gridgraph.Wall:
			return wallStyle.Render(string(c.Rune()))
		default:
			return string(c.Rune())
		}
	})
	return b.String()
}

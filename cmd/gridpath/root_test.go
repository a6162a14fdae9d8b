package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
)

const smallMaze = `###############
#.......#....E#
#.#.###.#.###.#
#.....#.#...#.#
#.###.#####.#.#
#.#.#.......#.#
#.#.#####.###.#
#...........#.#
###.#.#####.#.#
#...#.....#.#.#
#.#.#.###.#.#.#
#.....#...#.#.#
#.###.#.#.#.#.#
#S..#.....#...#
###############
`

const snakeTrack = `#######
#S#...#
#.#.#.#
#...#E#
#######
`

const fallingBytes = "5,4\n4,2\n4,5\n3,0\n2,1\n6,3\n2,4\n1,5\n0,6\n3,3\n2,6\n5,1\n1,2\n" +
	"5,5\n2,5\n6,5\n1,4\n0,4\n6,4\n1,1\n6,1\n1,0\n0,5\n1,6\n2,0\n"

// writeInput stores content in a temp file and returns its path.
func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// run executes the command tree with args and returns its stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	rootCmd := NewRootCmd()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestMazeCmd(t *testing.T) {
	path := writeInput(t, "maze.txt", smallMaze)

	out, err := run(t, "", "maze", "-i", path)
	require.NoError(t, err)
	assert.Equal(t, "lowest score: 7036\noptimal path cells: 45\n", out)
}

func TestMazeCmd_Stdin(t *testing.T) {
	out, err := run(t, "S..\n##E\n", "maze", "--turn-penalty", "10")
	require.NoError(t, err)
	assert.Equal(t, "lowest score: 13\noptimal path cells: 4\n", out)
}

func TestMazeCmd_Method(t *testing.T) {
	const decoy = "S...\n#E##\n"

	out, err := run(t, decoy, "maze")
	require.NoError(t, err)
	assert.Equal(t, "lowest score: 1002\noptimal path cells: 3\n", out)

	out, err = run(t, decoy, "maze", "--method", "filter")
	require.NoError(t, err)
	assert.Equal(t, "lowest score: 1002\noptimal path cells: 5\n", out)

	_, err = run(t, decoy, "maze", "--method", "guess")
	assert.Error(t, err)
}

func TestMazeCmd_NoPath(t *testing.T) {
	out, err := run(t, "S#E\n", "maze")
	require.NoError(t, err)
	assert.Equal(t, "no path found\noptimal path cells: 0\nwalls to break: 1\n", out)
}

func TestMazeCmd_Show(t *testing.T) {
	out, err := run(t, "S.\n#E\n", "maze", "--show")
	require.NoError(t, err)
	assert.Contains(t, out, "lowest score: 1002")
	assert.Contains(t, out, "O")
}

func TestMazeCmd_BadInput(t *testing.T) {
	_, err := run(t, "S.x\n..E\n", "maze")
	var pe *gridgraph.ParseError
	assert.ErrorAs(t, err, &pe)

	_, err = run(t, "", "maze", "-i", filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}

func TestMazeCmd_ConfigFile(t *testing.T) {
	cfg := writeInput(t, "gridpath.toml", "[maze]\nturn_penalty = 10\n")

	out, err := run(t, "S..\n##E\n", "--config", cfg, "maze")
	require.NoError(t, err)
	assert.Equal(t, "lowest score: 13\noptimal path cells: 4\n", out)

	// flags win over the file
	out, err = run(t, "S..\n##E\n", "--config", cfg, "maze", "--turn-penalty", "100")
	require.NoError(t, err)
	assert.Equal(t, "lowest score: 103\noptimal path cells: 4\n", out)
}

func TestRaceCmd(t *testing.T) {
	path := writeInput(t, "track.txt", snakeTrack)

	out, err := run(t, "", "race", "-i", path, "--duration", "2", "--threshold", "4")
	require.NoError(t, err)
	assert.Equal(t, "shortest path: 10\nthere are 2 cheats that will save at least 4 picoseconds\n", out)

	out, err = run(t, "", "race", "-i", path, "--duration", "6", "--threshold", "2")
	require.NoError(t, err)
	assert.Equal(t, "shortest path: 10\nthere are 20 cheats that will save at least 2 picoseconds\n", out)
}

func TestRaceCmd_Unreachable(t *testing.T) {
	_, err := run(t, "S#E\n", "race")
	assert.ErrorIs(t, err, gridgraph.ErrUnreachable)
}

func TestMemoryCmd(t *testing.T) {
	path := writeInput(t, "bytes.txt", fallingBytes)

	out, err := run(t, "", "memory", "-i", path, "--size", "7", "--bytes", "12")
	require.NoError(t, err)
	assert.Equal(t, "shortest path: 22\nfirst blocking byte: 6,1\n", out)

	// every byte fallen: the exit is already cut off
	out, err = run(t, "", "memory", "-i", path)
	require.NoError(t, err)
	assert.Equal(t, "unable to find path\nfirst blocking byte: 6,1\n", out)
}

func TestMemoryCmd_NeverBlocked(t *testing.T) {
	out, err := run(t, "1,1\n", "memory", "--size", "3")
	require.NoError(t, err)
	assert.Equal(t, "shortest path: 4\nno byte blocks the exit\n", out)
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "gridpath version dev")
}

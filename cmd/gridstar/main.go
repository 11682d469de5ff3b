// Command gridstar runs one grid search and prints the path.
//
// Usage:
//
//	gridstar [-scenario file.yaml] [-env .env] [-render] [-dijkstra]
//
// The scenario file is overridden by GRIDSTAR_* environment variables, which
// may come from the -env file. Path cells are printed as "x,y" lines.
//
// Exit status: 0 on a path (full or partial), 1 on bad input, 2 when the goal
// is unreachable.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/gridstar/astar"
	"github.com/katalvlaran/gridstar/internal/render"
	"github.com/katalvlaran/gridstar/internal/scenario"
)

const (
	exitOK          = 0
	exitBadInput    = 1
	exitUnreachable = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, render.New(os.Stdout)))
}

func run(args []string, stdout, stderr io.Writer, r *render.Renderer) int {
	fs := flag.NewFlagSet("gridstar", flag.ContinueOnError)
	fs.SetOutput(stderr)
	scenarioPath := fs.String("scenario", "", "YAML scenario file (built-in demo when empty)")
	envFile := fs.String("env", ".env", "dotenv file with GRIDSTAR_* overrides")
	draw := fs.Bool("render", false, "draw the grid with the path")
	dijkstra := fs.Bool("dijkstra", false, "run uniform-cost search instead of A*")
	if err := fs.Parse(args); err != nil {
		return exitBadInput
	}

	sc, err := loadScenario(*scenarioPath, *envFile)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitBadInput
	}
	if *dijkstra {
		sc.Search.Dijkstra = true
	}

	level, _ := scenario.ParseLevel(sc.LogLevel)
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	f, err := sc.Finder(log)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitBadInput
	}
	log.Debug("finder ready", slog.String("finder", f.ID().String()),
		slog.Int("width", f.Grid().Width()), slog.Int("height", f.Grid().Height()))

	res, err := f.FindPath(sc.Start, sc.Goal)
	switch {
	case errors.Is(err, astar.ErrUnreachable):
		_ = r.Errorf("no path from %v to %v", sc.Start, sc.Goal)
		clearanceHint(f, sc, stdout)
		if *draw {
			_ = r.Grid(f.Grid(), nil, sc.Start, sc.Goal)
		}
		return exitUnreachable
	case err != nil:
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitBadInput
	}

	if *draw {
		if err := r.Grid(f.Grid(), res.Path, sc.Start, sc.Goal); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return exitBadInput
		}
	}
	if err := r.Path(res.Path); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitBadInput
	}
	if res.Partial {
		fmt.Fprintf(stdout, "partial path: goal unreachable, cost %.5f\n", res.Cost)
	} else {
		fmt.Fprintf(stdout, "cost %.5f, %d expanded\n", res.Cost, res.Expanded)
	}

	return exitOK
}

func loadScenario(path, envFile string) (scenario.Scenario, error) {
	if envFile != "" {
		if err := scenario.LoadEnv(envFile); err != nil {
			return scenario.Scenario{}, err
		}
	}
	sc, err := scenario.Load(path)
	if err != nil {
		return scenario.Scenario{}, err
	}
	if err := sc.ApplyEnv(); err != nil {
		return scenario.Scenario{}, err
	}

	return sc, nil
}

// clearanceHint reports how many blocked cells separate start from goal.
func clearanceHint(f *astar.Finder, sc scenario.Scenario, out io.Writer) {
	_, n, err := f.Grid().MinClearance(sc.Start, sc.Goal, sc.Search.Diagonal)
	if err != nil {
		return
	}
	fmt.Fprintf(out, "hint: clearing %d blocked cell(s) would connect start and goal\n", n)
}

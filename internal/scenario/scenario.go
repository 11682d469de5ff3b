// Package scenario loads a search scenario for the gridstar command: the grid
// to build, the endpoints, and the finder settings.
//
// Sources, lowest precedence first:
//
//	– Default()             built-in demo scenario
//	– a YAML file           Load / Parse
//	– GRIDSTAR_* variables  ApplyEnv, optionally fed from a .env file by LoadEnv
package scenario

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridstar/astar"
	"github.com/katalvlaran/gridstar/grid"
	"github.com/katalvlaran/gridstar/heuristic"
)

// ErrInvalidScenario is returned for a scenario that cannot be run.
var ErrInvalidScenario = errors.New("scenario: invalid scenario")

// Search mirrors astar.Options in a serialisable form.
type Search struct {
	Diagonal         bool           `yaml:"diagonal"`
	Heuristic        heuristic.Kind `yaml:"heuristic"`
	Weight           float64        `yaml:"weight"`
	IncludeStart     bool           `yaml:"include_start"`
	IncludeEnd       bool           `yaml:"include_end"`
	NearestOnFailure bool           `yaml:"nearest_on_failure"`
	Dijkstra         bool           `yaml:"dijkstra"`
}

// Scenario is one runnable search.
type Scenario struct {
	Grid     grid.Config   `yaml:"grid"`
	Start    grid.Position `yaml:"start"`
	Goal     grid.Position `yaml:"goal"`
	Search   Search        `yaml:"search"`
	LogLevel string        `yaml:"log_level"`
}

// Default returns a 20×10 random grid searched corner to corner with the
// finder's default options.
func Default() Scenario {
	o := astar.DefaultOptions()

	return Scenario{
		Grid:  grid.Config{Width: 20, Height: 10, DensityOfObstacles: 2, Seed: 1},
		Start: grid.Pos(0, 0),
		Goal:  grid.Pos(19, 9),
		Search: Search{
			Diagonal:         o.Diagonal,
			Heuristic:        o.Heuristic,
			Weight:           o.Weight,
			IncludeStart:     o.IncludeStart,
			IncludeEnd:       o.IncludeEnd,
			NearestOnFailure: o.NearestOnFailure,
			Dijkstra:         o.Dijkstra,
		},
		LogLevel: "info",
	}
}

// Load reads a YAML scenario from path. Fields absent from the file keep
// their Default values. An empty path yields Default().
func Load(path string) (Scenario, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("scenario: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes a YAML scenario on top of Default().
func Parse(data []byte) (Scenario, error) {
	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scenario{}, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	if err := s.Validate(); err != nil {
		return Scenario{}, err
	}

	return s, nil
}

// Validate checks the fields the grid and finder constructors do not.
func (s Scenario) Validate() error {
	if s.Grid.Matrix == nil && (s.Grid.Width <= 0 || s.Grid.Height <= 0) {
		return fmt.Errorf("%w: grid needs a matrix or positive width and height", ErrInvalidScenario)
	}
	if _, err := ParseLevel(s.LogLevel); err != nil {
		return err
	}

	return nil
}

// Options converts the search settings into finder options.
func (s Scenario) Options(log *slog.Logger) []astar.Option {
	opts := []astar.Option{
		astar.WithDiagonal(s.Search.Diagonal),
		astar.WithHeuristic(s.Search.Heuristic),
		astar.WithWeight(s.Search.Weight),
		astar.WithIncludeStart(s.Search.IncludeStart),
		astar.WithIncludeEnd(s.Search.IncludeEnd),
		astar.WithNearestOnFailure(s.Search.NearestOnFailure),
		astar.WithLogger(log),
	}
	if s.Search.Dijkstra {
		opts = append(opts, astar.WithDijkstra())
	}

	return opts
}

// Finder builds the grid and a finder configured by s.
func (s Scenario) Finder(log *slog.Logger) (*astar.Finder, error) {
	return astar.New(s.Grid, s.Options(log)...)
}

// ParseLevel accepts slog level names ("debug", "INFO", "warn+2", …).
func ParseLevel(name string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalidScenario, name)
	}

	return l, nil
}

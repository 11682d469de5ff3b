// Package astar defines the options, results and sentinel errors of the
// grid A* engine.
//
// Options:
//
//	– Diagonal:         allow the four diagonal steps (default true).
//	– Heuristic:        distance estimate (default heuristic.Manhattan).
//	– Weight:           multiplies both the heuristic and every step cost (default 1).
//	– IncludeStart:     keep the start cell in the returned path (default true).
//	– IncludeEnd:       keep the goal cell in the returned path (default true).
//	– NearestOnFailure: return a best-effort path when the goal is unreachable.
//	– Dijkstra:         force the heuristic term to zero (uniform-cost search).
//	– Logger:           structured logger for search outcomes (default discards).
//
// Errors (sentinel):
//
//	– ErrOutOfBounds      start or goal outside the grid (wraps grid.ErrOutOfBounds).
//	– ErrUnreachable      start/goal blocked, or the frontier ran dry.
//	– ErrOptionViolation  invalid option value (negative weight, unknown heuristic).
//	– ErrNilGrid          NewWithGrid called with a nil grid.
package astar

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/gridstar/grid"
	"github.com/katalvlaran/gridstar/heuristic"
)

// Sentinel errors returned by the A* implementation.
var (
	// ErrOutOfBounds indicates a start or goal position outside the grid.
	// It is the grid package's sentinel so either can be matched.
	ErrOutOfBounds = grid.ErrOutOfBounds

	// ErrUnreachable indicates that no path joins start and goal: one of
	// them is blocked, or the open list was exhausted.
	ErrUnreachable = errors.New("astar: path could not be created")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrNilGrid indicates a nil *grid.Grid was supplied.
	ErrNilGrid = errors.New("astar: grid is nil")
)

// DiagonalCostFactor is the fixed √2 approximation applied to diagonal steps.
const DiagonalCostFactor = 1.41421

// Options configures a Finder.
type Options struct {
	Diagonal         bool
	Heuristic        heuristic.Kind
	Weight           float64
	IncludeStart     bool
	IncludeEnd       bool
	NearestOnFailure bool
	Dijkstra         bool
	Logger           *slog.Logger

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring a Finder.
type Option func(*Options)

// DefaultOptions returns the documented defaults:
//   - Diagonal:         true
//   - Heuristic:        heuristic.Manhattan
//   - Weight:           1
//   - IncludeStart:     true
//   - IncludeEnd:       true
//   - NearestOnFailure: false
//   - Dijkstra:         false
//   - Logger:           discards everything
func DefaultOptions() Options {
	return Options{
		Diagonal:     true,
		Heuristic:    heuristic.Manhattan,
		Weight:       1,
		IncludeStart: true,
		IncludeEnd:   true,
		Logger:       slog.New(slog.DiscardHandler),
	}
}

// WithDiagonal enables or disables diagonal movement.
func WithDiagonal(allowed bool) Option {
	return func(o *Options) {
		o.Diagonal = allowed
	}
}

// WithHeuristic selects the distance estimate. Unknown kinds are recorded
// and surfaced as ErrOptionViolation.
func WithHeuristic(kind heuristic.Kind) Option {
	return func(o *Options) {
		if !kind.Valid() {
			o.err = fmt.Errorf("%w: heuristic %v", ErrOptionViolation, kind)
			return
		}
		o.Heuristic = kind
	}
}

// WithWeight sets the scalar applied to the heuristic and to step costs.
// Negative or non-finite weights are recorded as ErrOptionViolation.
func WithWeight(weight float64) Option {
	return func(o *Options) {
		if err := checkWeight(weight); err != nil {
			o.err = err
			return
		}
		o.Weight = weight
	}
}

// WithIncludeStart controls whether the start cell opens the returned path.
func WithIncludeStart(include bool) Option {
	return func(o *Options) {
		o.IncludeStart = include
	}
}

// WithIncludeEnd controls whether the goal cell closes the returned path.
func WithIncludeEnd(include bool) Option {
	return func(o *Options) {
		o.IncludeEnd = include
	}
}

// WithNearestOnFailure makes an unreachable goal return the path to the last
// node the search closed instead of ErrUnreachable.
func WithNearestOnFailure(allow bool) Option {
	return func(o *Options) {
		o.NearestOnFailure = allow
	}
}

// WithDijkstra zeroes the heuristic term so the search expands a pure
// uniform-cost frontier.
//
// Only the heuristic weight becomes 0. Step costs keep Weight (default 1), so
// Result.Cost stays comparable with an A* search over the same grid. Setting
// WithWeight(0) instead would make every g zero and order the frontier by
// insertion alone.
func WithDijkstra() Option {
	return func(o *Options) {
		o.Dijkstra = true
	}
}

// WithLogger sets the logger for search outcomes. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func checkWeight(w float64) error {
	if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("%w: weight %v must be finite and non-negative", ErrOptionViolation, w)
	}

	return nil
}

// heuristicWeight is the weight fed to heuristic.Estimate.
func (o Options) heuristicWeight() float64 {
	if o.Dijkstra {
		return 0
	}

	return o.Weight
}

// Result contains the outcome of a search.
type Result struct {
	// Path runs start → goal, trimmed by the include flags. Never nil.
	Path []grid.Position
	// Cost is the accumulated g value of the last node on the search path.
	Cost float64
	// Expanded counts nodes moved to the closed list by the main loop.
	Expanded int
	// Found is true when the goal was reached.
	Found bool
	// Partial is true when Path leads to the last closed node because the
	// goal was unreachable and NearestOnFailure was set.
	Partial bool
}

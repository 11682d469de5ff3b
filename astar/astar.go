// Package astar implements A* search on a grid.Grid, with Dijkstra as the
// zero-heuristic specialization of the same engine.
//
// Each search:
//
//  1. resets the finder's Scratch and open list;
//  2. fails with ErrUnreachable if start or goal is blocked;
//  3. closes every blocked cell with zero g/h/f and precomputes h for the rest;
//  4. opens the start with g = 0;
//  5. repeatedly closes the open node with the lowest f (ties go to the node
//     that entered the open list first), stops at the goal, and otherwise
//     relaxes every walkable, non-closed neighbour with step cost Weight
//     (orthogonal) or Weight·1.41421 (diagonal);
//  6. on exhaustion returns ErrUnreachable, or the path to the last closed
//     node when NearestOnFailure is set.
//
// Closed nodes are never reopened, so an inconsistent heuristic (or a weight
// that inflates it) can return a sub-optimal path.
//
// Complexity:
//
//   - Time:  O(N log N) for N = Width×Height, plus the O(N) pre-pass.
//   - Space: O(N) scratch owned by the Finder, O(N) heap entries worst case.
package astar

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridstar/grid"
	"github.com/katalvlaran/gridstar/heuristic"
)

// ctxCheckInterval is how many expansions run between context checks.
const ctxCheckInterval = 256

// Finder runs searches over one grid. A Finder serialises its own searches;
// separate Finders may share a *grid.Grid and search concurrently.
type Finder struct {
	mu      sync.Mutex
	id      uuid.UUID
	grid    *grid.Grid
	scratch *grid.Scratch
	open    *openList
	opts    Options
}

// New builds the grid described by cfg and returns a Finder that owns it.
// Returns grid construction errors or ErrOptionViolation.
func New(cfg grid.Config, opts ...Option) (*Finder, error) {
	g, err := grid.New(cfg)
	if err != nil {
		return nil, err
	}

	return NewWithGrid(g, opts...)
}

// NewDijkstra is New with WithDijkstra applied last.
func NewDijkstra(cfg grid.Config, opts ...Option) (*Finder, error) {
	return New(cfg, append(opts, WithDijkstra())...)
}

// NewWithGrid returns a Finder searching g. g is only read, so it may be
// shared with other Finders.
func NewWithGrid(g *grid.Grid, opts ...Option) (*Finder, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	f := &Finder{id: uuid.New(), opts: o}
	f.attach(g)

	return f, nil
}

// attach installs g and sizes the search state to it.
func (f *Finder) attach(g *grid.Grid) {
	f.grid = g
	f.scratch = g.NewScratch()
	f.open = newOpenList(g.NumberOfFields())
}

// ID identifies the finder in log records.
func (f *Finder) ID() uuid.UUID { return f.id }

// Grid returns the grid being searched. Callers must not rely on it for
// search state; use NodeState.
func (f *Finder) Grid() *grid.Grid {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.grid
}

// GridClone returns an independent copy of the grid for inspection or
// rendering.
func (f *Finder) GridClone() *grid.Grid {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.grid.Clone()
}

// Options returns a copy of the current configuration.
func (f *Finder) Options() Options {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.opts
}

// SetGrid rebuilds the grid from cfg. The previous grid is left untouched.
func (f *Finder) SetGrid(cfg grid.Config) error {
	g, err := grid.New(cfg)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.attach(g)

	return nil
}

// SetHeuristic changes the distance estimate for later searches.
func (f *Finder) SetHeuristic(kind heuristic.Kind) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: heuristic %v", ErrOptionViolation, kind)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.opts.Heuristic = kind

	return nil
}

// SetWeight changes the heuristic and step-cost weight for later searches.
func (f *Finder) SetWeight(w float64) error {
	if err := checkWeight(w); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.opts.Weight = w

	return nil
}

// NodeState reports the search state left at p by the most recent search.
func (f *Finder) NodeState(p grid.Position) (grid.NodeState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id, err := f.grid.Index(p)
	if err != nil {
		return grid.NodeState{}, err
	}

	return f.scratch.State(id), nil
}

// FindPath searches from start to goal. See FindPathContext.
func (f *Finder) FindPath(start, goal grid.Position) (Result, error) {
	return f.FindPathContext(context.Background(), start, goal)
}

// FindPathContext searches from start to goal, checking ctx between
// expansions.
//
// Returns:
//
//   - Result with Found=true and the path on success.
//   - an empty Result and ErrUnreachable if either end is blocked or no path
//     exists (unless NearestOnFailure, which yields Partial=true and nil).
//   - ErrOutOfBounds for positions outside the grid.
//   - ctx.Err() if the context ends first.
//
// Equal start and goal yield a one-cell path when either include flag is set.
func (f *Finder) FindPathContext(ctx context.Context, start, goal grid.Position) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	r := &runner{
		ctx:     ctx,
		g:       f.grid,
		s:       f.scratch,
		open:    f.open,
		options: f.opts,
		log:     f.opts.Logger.With(slog.String("finder", f.id.String())),
	}

	return r.run(start, goal)
}

// runner holds the mutable state for a single search.
type runner struct {
	ctx     context.Context
	g       *grid.Grid    // read-only topology
	s       *grid.Scratch // per-node g/h/f, lists, parents
	open    *openList     // frontier ordered by (f, seq)
	options Options
	log     *slog.Logger

	startID, goalID int
	expanded        int
	lastClosed      int
}

func (r *runner) run(start, goal grid.Position) (Result, error) {
	r.s.Reset()
	r.open.reset()

	var err error
	if r.startID, err = r.g.Index(start); err != nil {
		return emptyResult(), fmt.Errorf("astar: start: %w", err)
	}
	if r.goalID, err = r.g.Index(goal); err != nil {
		return emptyResult(), fmt.Errorf("astar: goal: %w", err)
	}
	if !r.g.Node(r.startID).Walkable || !r.g.Node(r.goalID).Walkable {
		r.log.Info("path could not be created: start or goal is not walkable",
			slog.String("start", start.String()), slog.String("goal", goal.String()))
		return emptyResult(), fmt.Errorf("%w: start %v or goal %v is not walkable", ErrUnreachable, start, goal)
	}

	r.prepare(goal)
	r.s.SetG(r.startID, 0)
	r.s.Open(r.startID)
	r.open.push(r.s, r.startID)
	r.lastClosed = r.startID

	found, err := r.process()
	if err != nil {
		return emptyResult(), err
	}

	switch {
	case found:
		res := Result{
			Path:     r.pathTo(r.goalID, r.options.IncludeEnd),
			Cost:     r.s.G(r.goalID),
			Expanded: r.expanded,
			Found:    true,
		}
		r.log.Debug("path found",
			slog.String("start", start.String()), slog.String("goal", goal.String()),
			slog.Int("length", len(res.Path)), slog.Float64("cost", res.Cost),
			slog.Int("expanded", res.Expanded))
		return res, nil

	case r.options.NearestOnFailure:
		res := Result{
			Path:     r.pathTo(r.lastClosed, true),
			Cost:     r.s.G(r.lastClosed),
			Expanded: r.expanded,
			Partial:  true,
		}
		r.log.Info("goal unreachable, returning path to last closed node",
			slog.String("goal", goal.String()),
			slog.String("nearest", r.g.Position(r.lastClosed).String()),
			slog.Int("expanded", r.expanded))
		return res, nil
	}

	r.log.Info("path could not be created",
		slog.String("start", start.String()), slog.String("goal", goal.String()),
		slog.Int("expanded", r.expanded))
	res := emptyResult()
	res.Expanded = r.expanded

	return res, fmt.Errorf("%w: open list exhausted after %d expansions", ErrUnreachable, r.expanded)
}

// prepare closes every blocked node with zeroed values and stores h for every
// walkable one.
func (r *runner) prepare(goal grid.Position) {
	kind, w := r.options.Heuristic, r.options.heuristicWeight()
	for id := 0; id < r.g.NumberOfFields(); id++ {
		n := r.g.Node(id)
		if !n.Walkable {
			r.s.ZeroFGH(id)
			r.s.Close(id)
			continue
		}
		r.s.SetH(id, heuristic.Estimate(kind, n.Position, goal, w))
	}
}

// process is the main loop. It reports whether the goal was closed.
func (r *runner) process() (bool, error) {
	for {
		if r.expanded%ctxCheckInterval == 0 {
			if err := r.ctx.Err(); err != nil {
				return false, err
			}
		}

		cur, ok := r.open.pop(r.s)
		if !ok {
			return false, nil
		}
		r.s.Close(cur)
		r.expanded++
		r.lastClosed = cur

		if cur == r.goalID {
			return true, nil
		}
		r.relax(cur)
	}
}

// relax offers cur as parent to each walkable, non-closed neighbour.
func (r *runner) relax(cur int) {
	cp := r.g.Position(cur)
	w := r.options.Weight
	for _, n := range r.g.SurroundingNodes(cp, r.options.Diagonal) {
		if r.s.IsClosed(n.ID) {
			continue
		}
		step := w
		if n.Position.X != cp.X && n.Position.Y != cp.Y {
			step = w * DiagonalCostFactor
		}
		next := r.s.G(cur) + step

		wasOpen := r.s.IsOpen(n.ID)
		if wasOpen && next >= r.s.G(n.ID) {
			continue
		}
		r.s.SetG(n.ID, next)
		r.s.SetParent(n.ID, cur)
		if wasOpen {
			r.open.update(r.s, n.ID)
			continue
		}
		r.s.Open(n.ID)
		r.open.push(r.s, n.ID)
	}
}

// pathTo rebuilds the path ending at id. The start node alone is returned
// whenever either include flag asks for it.
func (r *runner) pathTo(id int, includeEnd bool) []grid.Position {
	if id == r.startID {
		if r.options.IncludeStart || includeEnd {
			return []grid.Position{r.g.Position(id)}
		}
		return []grid.Position{}
	}

	return grid.Backtrace(r.g, r.s, id, r.options.IncludeStart, includeEnd)
}

func emptyResult() Result {
	return Result{Path: []grid.Position{}}
}

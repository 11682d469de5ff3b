package grid

import (
	"errors"
	"fmt"
	"math/rand"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates the grid would have no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrNonRectangular indicates matrix rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all matrix rows must have the same length")
	// ErrNegativeCost indicates a cost matrix cell below zero.
	ErrNegativeCost = errors.New("grid: cell cost must be non-negative")
	// ErrBadDensity indicates an obstacle density outside [0,10].
	ErrBadDensity = errors.New("grid: density of obstacles must be within [0,10]")
	// ErrOutOfBounds indicates a position outside [0,Width)×[0,Height).
	ErrOutOfBounds = errors.New("grid: position out of bounds")
)

// MaxDensity is the top of the obstacle density scale.
const MaxDensity = 10

// Position is an immutable integer cell coordinate.
type Position struct {
	X, Y int
}

// Pos is shorthand for Position{X: x, Y: y}.
func Pos(x, y int) Position { return Position{X: x, Y: y} }

// String renders the position as "x,y".
func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Node is the static description of one cell. Search state lives in Scratch.
type Node struct {
	ID       int      // row-major identifier, unique within the grid
	Position Position // cell coordinate
	Walkable bool     // false for obstacles
	Cost     int      // cell cost, only set for grids built WithMaxCost
}

// Config describes how to build a Grid. A nil Matrix selects random mode.
type Config struct {
	Width              int     `yaml:"width"`
	Height             int     `yaml:"height"`
	DensityOfObstacles int     `yaml:"density"`
	Matrix             [][]int `yaml:"matrix"`
	// MaxCost, if > 0, treats Matrix as a cost matrix: cells with
	// cost ≥ MaxCost are blocked.
	MaxCost int `yaml:"max_cost"`
	// Seed, if non-zero, makes random mode reproducible.
	Seed int64 `yaml:"seed"`
}

// Options holds tunable construction parameters.
type Options struct {
	// MaxCost enables cost-matrix interpretation when > 0.
	MaxCost int
	// Rand supplies obstacle placement for Random. Nil uses a time-seeded source.
	Rand *rand.Rand
}

// Option configures grid construction.
type Option func(*Options)

// WithMaxCost interprets the matrix as cell costs, blocking cells with
// cost ≥ maxCost. Values ≤ 0 keep the 0/1 interpretation.
func WithMaxCost(maxCost int) Option {
	return func(o *Options) {
		o.MaxCost = maxCost
	}
}

// WithRand sets the random source used by Random.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithSeed seeds a private random source for Random.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// DefaultOptions returns Options with the 0/1 matrix interpretation and no
// explicit random source.
func DefaultOptions() Options {
	return Options{}
}

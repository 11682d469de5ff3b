// Package heuristic provides the distance estimates used to guide A* on a
// grid.
//
// Every estimate is a pure function of two positions and a non-negative
// weight that scales the result. Weight 0 collapses every estimate to 0,
// which turns A* into uniform-cost search.
//
//	dx = |b.x − a.x|, dy = |b.y − a.y|
//
//	Manhattan:  (dx + dy)·w                  4-connected grids
//	Euclidean:  sqrt(dx² + dy²)·w            any-angle movement
//	Chebyshev:  max(dx, dy)·w                8-connected, diagonal cost 1
//	Octile:     (dx + dy − 0.58·min(dx,dy))·w 8-connected, diagonal cost ≈ √2
package heuristic

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/gridstar/grid"
)

// ErrUnknownKind indicates a heuristic name or value outside the known set.
var ErrUnknownKind = errors.New("heuristic: unknown heuristic")

// Kind selects a distance estimate.
type Kind int

const (
	// Manhattan sums the axis distances.
	Manhattan Kind = iota
	// Euclidean is the straight-line distance.
	Euclidean
	// Chebyshev is the larger axis distance.
	Chebyshev
	// Octile approximates an 8-connected grid with diagonal cost √2.
	Octile
)

// octileFactor approximates 2 − √2.
const octileFactor = 0.58

var names = [...]string{
	Manhattan: "Manhattan",
	Euclidean: "Euclidean",
	Chebyshev: "Chebyshev",
	Octile:    "Octile",
}

// String returns the canonical name of k.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return names[k]
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	return k >= Manhattan && k <= Octile
}

// Parse resolves a case-insensitive heuristic name. The historical
// misspelling "Manhatten" is accepted as Manhattan.
func Parse(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "manhattan", "manhatten":
		return Manhattan, nil
	case "euclidean":
		return Euclidean, nil
	case "chebyshev":
		return Chebyshev, nil
	case "octile":
		return Octile, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// UnmarshalText implements encoding.TextUnmarshaler so a Kind can be read
// from YAML or environment values by name.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*k = parsed

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}

	return []byte(names[k]), nil
}

// Estimate returns the weighted distance estimate between a and b.
// An invalid kind estimates 0.
func Estimate(kind Kind, a, b grid.Position, weight float64) float64 {
	dx := math.Abs(float64(b.X - a.X))
	dy := math.Abs(float64(b.Y - a.Y))

	switch kind {
	case Manhattan:
		return (dx + dy) * weight
	case Euclidean:
		return math.Sqrt(dx*dx+dy*dy) * weight
	case Chebyshev:
		return math.Max(dx, dy) * weight
	case Octile:
		return (dx + dy - octileFactor*math.Min(dx, dy)) * weight
	}

	return 0
}

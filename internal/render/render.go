// Package render draws grids and search results for the gridstar command.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridstar/grid"
)

// Cell glyphs.
const (
	GlyphOpen  = '.'
	GlyphWall  = '#'
	GlyphPath  = '*'
	GlyphStart = 'S'
	GlyphGoal  = 'G'
)

// Renderer writes grids to out, colouring them when Colour is set.
type Renderer struct {
	out    io.Writer
	width  int
	Colour bool

	styleOpen  color.Style
	styleWall  color.Style
	stylePath  color.Style
	styleStart color.Style
	styleGoal  color.Style
	styleError color.Style
}

// New returns a Renderer sized to the current terminal, colouring only when
// stdout is one.
func New(out io.Writer) *Renderer {
	w, _ := TerminalSize()
	return NewWithWidth(out, w, IsTerminal())
}

// NewWithWidth returns a Renderer that draws grids up to width columns.
func NewWithWidth(out io.Writer, width int, colour bool) *Renderer {
	return &Renderer{
		out:        out,
		width:      width,
		Colour:     colour,
		styleOpen:  color.Style{color.FgGray},
		styleWall:  color.Style{color.FgWhite, color.BgBlack},
		stylePath:  color.Style{color.FgYellow, color.OpBold},
		styleStart: color.Style{color.FgGreen, color.OpBold},
		styleGoal:  color.Style{color.FgRed, color.OpBold},
		styleError: color.Style{color.FgRed, color.OpBold},
	}
}

// Path writes one "x,y" line per position.
func (r *Renderer) Path(path []grid.Position) error {
	var b strings.Builder
	for _, p := range path {
		b.WriteString(p.String())
		b.WriteByte('\n')
	}
	_, err := io.WriteString(r.out, b.String())

	return err
}

// Grid draws g one row per line with the path, start and goal marked. Grids
// wider than the renderer are summarised instead of wrapped.
func (r *Renderer) Grid(g *grid.Grid, path []grid.Position, start, goal grid.Position) error {
	if g.Width() > r.width {
		_, err := fmt.Fprintf(r.out, "grid %dx%d is wider than %d columns, not drawn\n", g.Width(), g.Height(), r.width)
		return err
	}

	onPath := mapset.New[grid.Position]()
	for _, p := range path {
		onPath.Put(p)
	}

	var b strings.Builder
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			p := grid.Pos(x, y)
			walkable, _ := g.IsWalkableAt(p)
			switch {
			case p == start:
				b.WriteString(r.paint(r.styleStart, GlyphStart))
			case p == goal:
				b.WriteString(r.paint(r.styleGoal, GlyphGoal))
			case onPath.Has(p):
				b.WriteString(r.paint(r.stylePath, GlyphPath))
			case !walkable:
				b.WriteString(r.paint(r.styleWall, GlyphWall))
			default:
				b.WriteString(r.paint(r.styleOpen, GlyphOpen))
			}
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(r.out, b.String())

	return err
}

// Errorf writes a highlighted message line.
func (r *Renderer) Errorf(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if r.Colour {
		msg = r.styleError.Sprint(msg)
	}
	_, err := fmt.Fprintln(r.out, msg)

	return err
}

func (r *Renderer) paint(s color.Style, glyph rune) string {
	if !r.Colour {
		return string(glyph)
	}
	return s.Sprint(string(glyph))
}

package render_test

import (
	"bytes"
	"testing"

	"github.com/gookit/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridstar/grid"
	"github.com/katalvlaran/gridstar/internal/render"
)

func detourGrid(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.FromMatrix([][]int{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	})
	require.NoError(t, err)
	return g
}

var detourPath = []grid.Position{{X: 0, Y: 1}, {X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}}

func TestGrid_Plain(t *testing.T) {
	var buf bytes.Buffer
	r := render.NewWithWidth(&buf, 80, false)

	require.NoError(t, r.Grid(detourGrid(t), detourPath, grid.Pos(0, 1), grid.Pos(2, 1)))
	assert.Equal(t, "***\nS#G\n...\n", buf.String())
}

func TestGrid_ColourMatchesPlain(t *testing.T) {
	var plain, coloured bytes.Buffer
	g := detourGrid(t)
	require.NoError(t, render.NewWithWidth(&plain, 80, false).Grid(g, detourPath, grid.Pos(0, 1), grid.Pos(2, 1)))
	require.NoError(t, render.NewWithWidth(&coloured, 80, true).Grid(g, detourPath, grid.Pos(0, 1), grid.Pos(2, 1)))

	assert.Equal(t, plain.String(), color.ClearCode(coloured.String()))
}

func TestGrid_TooWide(t *testing.T) {
	var buf bytes.Buffer
	r := render.NewWithWidth(&buf, 2, false)

	require.NoError(t, r.Grid(detourGrid(t), nil, grid.Pos(0, 0), grid.Pos(2, 2)))
	assert.Equal(t, "grid 3x3 is wider than 2 columns, not drawn\n", buf.String())
}

func TestPath(t *testing.T) {
	var buf bytes.Buffer
	r := render.NewWithWidth(&buf, 80, false)

	require.NoError(t, r.Path(detourPath[:3]))
	assert.Equal(t, "0,1\n0,0\n1,0\n", buf.String())

	buf.Reset()
	require.NoError(t, r.Path(nil))
	assert.Empty(t, buf.String())
}

func TestErrorf(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.NewWithWidth(&buf, 80, true).Errorf("no path after %d expansions", 7))
	assert.Equal(t, "no path after 7 expansions\n", color.ClearCode(buf.String()))
}

func TestTerminalSize_Defaults(t *testing.T) {
	w, h := render.TerminalSize()
	assert.Positive(t, w)
	assert.Positive(t, h)
}

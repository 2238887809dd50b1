package tui

import (
	"math"

	"github.com/younwookim/stickman/internal/application/match"
	"github.com/younwookim/stickman/internal/domain/entity"
)

// Color is the palette index of a cell
type Color int

const (
	ColorDefault Color = iota
	ColorPlatform
	ColorPlayer
	ColorPatrol
	ColorChase
	ColorAttack
	ColorDefend
	ColorDefeated
	ColorStrike
)

// Cell is one character of the arena view
type Cell struct {
	Rune  rune
	Color Color
}

var blank = Cell{Rune: ' '}

// Glyphs per fighter kind
const (
	glyphPlatform = '='
	glyphPlayer   = '@'
	glyphDefeated = 'x'
	glyphStrike   = '*'
)

var behaviorCells = map[entity.Behavior]Cell{
	entity.BehaviorPatrol: {'p', ColorPatrol},
	entity.BehaviorChase:  {'c', ColorChase},
	entity.BehaviorAttack: {'A', ColorAttack},
	entity.BehaviorDefend: {'D', ColorDefend},
}

// Grid is a fixed-size buffer of cells
type Grid struct {
	cols, rows int
	cells      []Cell
}

// NewGrid creates a blank grid
func NewGrid(cols, rows int) *Grid {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	g := &Grid{cols: cols, rows: rows, cells: make([]Cell, cols*rows)}
	for i := range g.cells {
		g.cells[i] = blank
	}
	return g
}

// Cols returns the grid width
func (g *Grid) Cols() int { return g.cols }

// Rows returns the grid height
func (g *Grid) Rows() int { return g.rows }

// At returns the cell at (x, y); out of range reads are blank
func (g *Grid) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= g.cols || y >= g.rows {
		return blank
	}
	return g.cells[y*g.cols+x]
}

// Row returns the runes of row y as a string
func (g *Grid) Row(y int) string {
	runes := make([]rune, g.cols)
	for x := range runes {
		runes[x] = g.At(x, y).Rune
	}
	return string(runes)
}

func (g *Grid) set(x, y int, c Cell) {
	if x < 0 || y < 0 || x >= g.cols || y >= g.rows {
		return
	}
	g.cells[y*g.cols+x] = c
}

// raster maps arena coordinates onto grid cells
type raster struct {
	grid   *Grid
	sx, sy float64
}

// fill paints every cell the rect touches. Rects thinner than a cell still
// paint one cell.
func (r raster) fill(rect entity.Rect, c Cell) {
	x0 := int(math.Floor(rect.X * r.sx))
	y0 := int(math.Floor(rect.Y * r.sy))
	x1 := int(math.Ceil(rect.Right()*r.sx)) - 1
	y1 := int(math.Ceil(rect.Bottom()*r.sy)) - 1
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r.grid.set(x, y, c)
		}
	}
}

// Rasterize draws a snapshot onto a cols x rows grid scaled to the arena.
// Later layers win: platforms, enemies, player, then attack boxes.
func Rasterize(snap match.Snapshot, cols, rows int) *Grid {
	g := NewGrid(cols, rows)
	if snap.ArenaWidth <= 0 || snap.ArenaHeight <= 0 {
		return g
	}
	r := raster{
		grid: g,
		sx:   float64(g.cols) / snap.ArenaWidth,
		sy:   float64(g.rows) / snap.ArenaHeight,
	}

	for _, p := range snap.Platforms {
		r.fill(p, Cell{glyphPlatform, ColorPlatform})
	}
	for _, e := range snap.Enemies {
		c, ok := behaviorCells[e.Behavior]
		if !ok {
			c = behaviorCells[entity.BehaviorPatrol]
		}
		if e.Defeated {
			c = Cell{glyphDefeated, ColorDefeated}
		}
		r.fill(e.Bounds, c)
	}
	r.fill(snap.Player.Bounds, Cell{glyphPlayer, ColorPlayer})

	strike := Cell{glyphStrike, ColorStrike}
	if snap.Player.AttackBox != nil {
		r.fill(*snap.Player.AttackBox, strike)
	}
	for _, e := range snap.Enemies {
		if e.AttackBox != nil && !e.Defeated {
			r.fill(*e.AttackBox, strike)
		}
	}
	return g
}

// Package grid provides a sparse, unbounded tile grid keyed by integer
// coordinates. It has no dependency on ebitengine: pure data plus the
// pixel-space/tile-space conversions the rest of the game builds on.
package grid

import (
	"fmt"
	"math"

	"github.com/yohamta/donburi"
)

// ErrUndecided is returned when a coordinate that has never been generated
// is read or deleted. Callers that want "maybe absent" semantics should use
// Contains first.
var ErrUndecided = fmt.Errorf("tile undecided")

// Coord addresses a single tile. Negative columns and rows are valid; the
// grid extends in all four directions.
type Coord struct {
	Column, Row int
}

// Kind classifies a decided tile. Absence from the grid is a third state
// ("undecided") distinct from KindSpace: an undecided tile has not been
// generated yet, a KindSpace tile has been generated and is walkable.
type Kind uint8

const (
	KindSpace Kind = iota
	KindBlock
)

// Tile is the decided contents of one coordinate. Block tiles carry the
// handle of their solid entity so destructive regeneration can remove it;
// the handle is an arena index, not a pointer.
type Tile struct {
	Kind   Kind
	Entity donburi.Entity
}

// Rect is an axis-aligned rectangle in world pixel space.
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports whether the rectangles share positive area. Touching
// edges do not overlap, which keeps a body resting flush against a block
// out of the collision set.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X && r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Center returns the rectangle's midpoint.
func (r Rect) Center() (x, y float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Grid maps tile coordinates to decided tiles at a fixed pixel scale.
type Grid struct {
	scale int
	tiles map[Coord]Tile
}

// New creates an empty grid. Scale is the width and height in pixels of one
// tile side.
func New(scale int) *Grid {
	return &Grid{
		scale: scale,
		tiles: map[Coord]Tile{},
	}
}

// Scale returns the pixels per tile side.
func (g *Grid) Scale() int {
	return g.scale
}

// RectOf returns the pixel rectangle covered by the given tile. Tile (0,0)
// has its top-left corner at the world origin.
func (g *Grid) RectOf(c Coord) Rect {
	s := float64(g.scale)
	return Rect{X: float64(c.Column) * s, Y: float64(c.Row) * s, W: s, H: s}
}

// IndexOf returns the coordinate of the tile containing the given pixel
// point. Floor division, so top and left tile edges belong to the tile they
// open, and negative positions index negative tiles.
func (g *Grid) IndexOf(x, y float64) Coord {
	s := float64(g.scale)
	return Coord{
		Column: int(math.Floor(x / s)),
		Row:    int(math.Floor(y / s)),
	}
}

// VisibleTiles returns every tile intersecting the view rectangle, as the
// closed coordinate range between the top-left and bottom-right corners.
// The result is ordered row-major so callers that feed it to a seeded
// generator get a reproducible draw order.
func (g *Grid) VisibleTiles(view Rect) []Coord {
	topLeft := g.IndexOf(view.X, view.Y)
	bottomRight := g.IndexOf(view.X+view.W, view.Y+view.H)

	coords := make([]Coord, 0, (bottomRight.Row-topLeft.Row+1)*(bottomRight.Column-topLeft.Column+1))
	for row := topLeft.Row; row <= bottomRight.Row; row++ {
		for column := topLeft.Column; column <= bottomRight.Column; column++ {
			coords = append(coords, Coord{Column: column, Row: row})
		}
	}
	return coords
}

// Contains reports whether the coordinate has been decided.
func (g *Grid) Contains(c Coord) bool {
	_, ok := g.tiles[c]
	return ok
}

// Get returns the decided tile at c, or ErrUndecided.
func (g *Grid) Get(c Coord) (Tile, error) {
	t, ok := g.tiles[c]
	if !ok {
		return Tile{}, fmt.Errorf("get (%d,%d): %w", c.Column, c.Row, ErrUndecided)
	}
	return t, nil
}

// Set records the tile at c, deciding the coordinate.
func (g *Grid) Set(c Coord, t Tile) {
	g.tiles[c] = t
}

// Delete removes the decision at c, returning the coordinate to the
// undecided state. Deleting an undecided coordinate is a caller bug and
// returns ErrUndecided.
func (g *Grid) Delete(c Coord) error {
	if _, ok := g.tiles[c]; !ok {
		return fmt.Errorf("delete (%d,%d): %w", c.Column, c.Row, ErrUndecided)
	}
	delete(g.tiles, c)
	return nil
}

// Each calls fn for every decided tile. Iteration order is unspecified.
func (g *Grid) Each(fn func(Coord, Tile)) {
	for c, t := range g.tiles {
		fn(c, t)
	}
}

// Clear returns every coordinate to the undecided state.
func (g *Grid) Clear() {
	g.tiles = map[Coord]Tile{}
}

// Len returns the number of decided tiles.
func (g *Grid) Len() int {
	return len(g.tiles)
}

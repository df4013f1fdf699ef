// Package maze defines the coordinate, cell, vertex, and grid types plus
// sentinel errors for maze construction.
package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors for maze construction.
var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("maze: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrNoStart indicates the grid contains no start cell.
	ErrNoStart = errors.New("maze: grid has no start cell")
	// ErrMultipleStarts indicates the grid contains more than one start cell.
	ErrMultipleStarts = errors.New("maze: grid has more than one start cell")
)

// Coord is a 2D integer grid coordinate: X is the column, Y is the row.
// Coords compare structurally and may be used as map keys.
type Coord struct {
	X, Y int
}

// Add returns the coordinate displaced by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Sub returns the component-wise difference c - o.
// Two adjacent vertices differ by exactly one unit in one component.
func (c Coord) Sub(o Coord) Coord {
	return Coord{X: c.X - o.X, Y: c.Y - o.Y}
}

// CellType classifies a grid cell. The raw textual encoding of the puzzle
// is resolved into this enumeration at parse time; the graph never sees it.
type CellType int

const (
	// CellWall is impassable; wall cells have no vertex at all.
	CellWall CellType = iota
	// CellOpen is plain walkable floor.
	CellOpen
	// CellStart is the fixed entry cell. Traverses like open floor.
	CellStart
	// CellKey increments the carried-key count when collected.
	CellKey
	// CellDoor may only be crossed while at least one key is held;
	// crossing consumes one key.
	CellDoor
	// CellExit is the goal cell.
	CellExit
)

var cellTypeNames = map[CellType]string{
	CellWall:  "Wall",
	CellOpen:  "Open",
	CellStart: "Start",
	CellKey:   "Key",
	CellDoor:  "Door",
	CellExit:  "Exit",
}

// String returns a human-readable cell type name.
func (t CellType) String() string {
	if s, ok := cellTypeNames[t]; ok {
		return s
	}
	return "Unknown"
}

// Interesting reports whether the cell is a checkpoint candidate:
// a key, a door, or the exit.
func (t CellType) Interesting() bool {
	return t == CellKey || t == CellDoor || t == CellExit
}

// Vertex is one graph node per non-wall cell. Neighbors is populated once
// by New and never mutated afterward. Vertices carry no per-search state;
// searches in the solve package keep their own distance/predecessor maps.
type Vertex struct {
	// Pos is the vertex position within the grid.
	Pos Coord
	// Type is the cell classification for this vertex.
	Type CellType
	// Neighbors lists the in-bounds, non-wall 4-directional neighbors.
	Neighbors []*Vertex
}

// String renders the vertex as "(x,y) <Type>".
func (v *Vertex) String() string {
	return fmt.Sprintf("(%d,%d) <%s>", v.Pos.X, v.Pos.Y, v.Type)
}
